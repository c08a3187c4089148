package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/paywithclerc/payment-backend/internal/core/domain"
)

// VendorRepository persists vendor documents.
type VendorRepository struct {
	coll *mongo.Collection
}

func NewVendorRepository(db *mongo.Database) *VendorRepository {
	return &VendorRepository{coll: db.Collection(collectionVendors)}
}

type vendorDoc struct {
	Name           string   `bson:"name"`
	PublishableKey string   `bson:"stripe_publishable_key"`
	UserID         string   `bson:"stripe_user_id"`
	RefreshToken   string   `bson:"stripe_refresh_token"`
	AccessToken    string   `bson:"stripe_access_token"`
	Stores         []string `bson:"stores"`
}

// Save inserts a new vendor and returns the datastore-assigned id.
func (r *VendorRepository) Save(ctx context.Context, vendor *domain.Vendor) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, vendorDoc{
		Name:           vendor.Name,
		PublishableKey: vendor.StripePublishableKey,
		UserID:         vendor.StripeUserID,
		RefreshToken:   vendor.StripeRefreshToken,
		AccessToken:    vendor.StripeAccessToken,
		Stores:         vendor.StoreIDs,
	})
	if err != nil {
		return "", fmt.Errorf("insert vendor: %w", err)
	}
	return insertedID(res.InsertedID), nil
}
