package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/paywithclerc/payment-backend/internal/core/domain"
)

const backendStripe = "stripe"

// vendorStoresField is the vendor property holding the vendor's store ids.
const vendorStoresField = "stores"

// StoreRepository persists stores as two documents: the main store document
// and a Stripe credential document in a sibling collection keyed by the
// store id.
type StoreRepository struct {
	stores  *mongo.Collection
	backend *mongo.Collection
	vendors *mongo.Collection
	logger  zerolog.Logger

	// AppendStoreIDs switches the vendor store-list update from the default
	// overwrite (last writer wins) to an append. Off by default: the current
	// contract is single store per vendor.
	AppendStoreIDs bool
}

func NewStoreRepository(db *mongo.Database, logger zerolog.Logger) *StoreRepository {
	return &StoreRepository{
		stores:  db.Collection(collectionStores),
		backend: db.Collection(collectionStoreBackend),
		vendors: db.Collection(collectionVendors),
		logger:  logger,
	}
}

type storeDoc struct {
	Name            string `bson:"name"`
	DefaultCurrency string `bson:"default_currency"`
	ParentVendorID  string `bson:"parent_vendor_id"`
}

type credentialDoc struct {
	ID             string  `bson:"_id"`
	Backend        string  `bson:"backend"`
	PublishableKey string  `bson:"stripe_publishable_key"`
	UserID         string  `bson:"stripe_user_id"`
	RefreshToken   string  `bson:"stripe_refresh_token"`
	AccessToken    string  `bson:"stripe_access_token"`
	TxnFeeBase     float64 `bson:"txn_fee_base"`
	TxnFeePercent  float64 `bson:"txn_fee_percent"`
}

// SaveStore writes the main document, then the credential document, then
// overwrites the owning vendor's store list. The owning vendor must exist;
// a vendor id matching no document yields ErrVendorNotFound. The sequence is
// not atomic: a failure partway through leaves the earlier writes in place;
// each such case is logged as a partial write before the error is returned.
func (r *StoreRepository) SaveStore(ctx context.Context, store *domain.Store, vendorID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.stores.InsertOne(ctx, storeDoc{
		Name:            store.Name,
		DefaultCurrency: store.DefaultCurrency,
		ParentVendorID:  vendorID,
	})
	if err != nil {
		return "", fmt.Errorf("insert store: %w", err)
	}
	storeID := insertedID(res.InsertedID)

	if _, err := r.backend.InsertOne(ctx, credentialDoc{
		ID:             storeID,
		Backend:        backendStripe,
		PublishableKey: store.StripePublishableKey,
		UserID:         store.StripeUserID,
		RefreshToken:   store.StripeRefreshToken,
		AccessToken:    store.StripeAccessToken,
		TxnFeeBase:     store.TxnFeeBase,
		TxnFeePercent:  store.TxnFeePercent,
	}); err != nil {
		r.logger.Error().Err(err).Str("store_id", storeID).
			Msg("partial write: store saved without credential document")
		return "", fmt.Errorf("insert store credentials: %w", err)
	}

	update := bson.M{"$set": bson.M{vendorStoresField: []string{storeID}}}
	if r.AppendStoreIDs {
		update = bson.M{"$push": bson.M{vendorStoresField: storeID}}
	}
	res2, err := r.vendors.UpdateOne(ctx, bson.M{"_id": docID(vendorID)}, update)
	if err != nil {
		r.logger.Error().Err(err).Str("store_id", storeID).Str("vendor_id", vendorID).
			Msg("partial write: vendor store list not updated")
		return "", fmt.Errorf("update vendor store list: %w", err)
	}
	if res2.MatchedCount == 0 {
		r.logger.Error().Str("store_id", storeID).Str("vendor_id", vendorID).
			Msg("partial write: owning vendor does not exist")
		return "", domain.ErrVendorNotFound
	}

	r.logger.Info().Str("store_id", storeID).Str("vendor_id", vendorID).Msg("store saved")
	return storeID, nil
}

// GetStore retrieves a store by id. Strict existence: if the main document
// exists but the credential document does not, the store is reported as not
// found rather than returned half-populated.
func (r *StoreRepository) GetStore(ctx context.Context, id string) (*domain.Store, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var main storeDoc
	if err := r.stores.FindOne(ctx, bson.M{"_id": docID(id)}).Decode(&main); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, fmt.Errorf("find store: %w", err)
	}

	var creds credentialDoc
	if err := r.backend.FindOne(ctx, bson.M{"_id": id, "backend": backendStripe}).Decode(&creds); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Info().Str("store_id", id).Msg("store has no credential document")
			return nil, domain.ErrStoreNotFound
		}
		return nil, fmt.Errorf("find store credentials: %w", err)
	}

	return &domain.Store{
		ID:                   id,
		Name:                 main.Name,
		DefaultCurrency:      main.DefaultCurrency,
		StripePublishableKey: creds.PublishableKey,
		StripeUserID:         creds.UserID,
		StripeRefreshToken:   creds.RefreshToken,
		StripeAccessToken:    creds.AccessToken,
		TxnFeeBase:           creds.TxnFeeBase,
		TxnFeePercent:        creds.TxnFeePercent,
	}, nil
}

// insertedID renders a driver-assigned id as the external string form.
func insertedID(v any) string {
	if oid, ok := v.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprintf("%v", v)
}
