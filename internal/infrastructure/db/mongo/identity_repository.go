package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IdentityRepository answers user-existence checks against the customers and
// vendors collections.
type IdentityRepository struct {
	customers *mongo.Collection
	vendors   *mongo.Collection
}

func NewIdentityRepository(db *mongo.Database) *IdentityRepository {
	return &IdentityRepository{
		customers: db.Collection(collectionCustomers),
		vendors:   db.Collection(collectionVendors),
	}
}

// IsValidUser reports whether userID names an existing customer or vendor.
// Customers are checked first because they hit the API more often; the
// result does not depend on the order.
func (r *IdentityRepository) IsValidUser(ctx context.Context, userID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": docID(userID)}
	limitOne := options.Count().SetLimit(1)

	n, err := r.customers.CountDocuments(ctx, filter, limitOne)
	if err != nil {
		return false, fmt.Errorf("check customer: %w", err)
	}
	if n > 0 {
		return true, nil
	}

	n, err = r.vendors.CountDocuments(ctx, filter, limitOne)
	if err != nil {
		return false, fmt.Errorf("check vendor: %w", err)
	}
	return n > 0, nil
}
