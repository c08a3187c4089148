package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/paywithclerc/payment-backend/internal/core/domain"
)

// TransactionRepository reads transaction documents. Transactions are
// written by the settlement pipeline, not by this service.
type TransactionRepository struct {
	coll *mongo.Collection
}

func NewTransactionRepository(db *mongo.Database) *TransactionRepository {
	return &TransactionRepository{coll: db.Collection(collectionTransactions)}
}

type itemDoc struct {
	Name      string  `bson:"name"`
	Cost      int64   `bson:"cost"`
	PriceUnit float64 `bson:"price_unit"`
	Quantity  int     `bson:"quantity"`
}

type transactionDoc struct {
	Amount  int64     `bson:"amount"`
	Taxes   int64     `bson:"taxes"`
	Date    time.Time `bson:"date"`
	StoreID string    `bson:"store_id"`
	Items   []itemDoc `bson:"items"`
}

// Get retrieves a transaction by its id (the gateway charge id), rebuilding
// the item list in stored order.
func (r *TransactionRepository) Get(ctx context.Context, id string) (*domain.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc transactionDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("find transaction: %w", err)
	}

	items := make([]domain.Item, 0, len(doc.Items))
	for _, it := range doc.Items {
		items = append(items, domain.Item{
			Name:      it.Name,
			Cost:      it.Cost,
			PriceUnit: it.PriceUnit,
			Quantity:  it.Quantity,
		})
	}

	return &domain.Transaction{
		ID:      id,
		Amount:  doc.Amount,
		Taxes:   doc.Taxes,
		Date:    doc.Date,
		StoreID: doc.StoreID,
		Items:   items,
	}, nil
}
