package ports

import (
	"context"

	"github.com/paywithclerc/payment-backend/internal/core/domain"
)

// CreateStoreInput carries everything needed to persist a new store for a
// vendor, including the Stripe credentials from the vendor's onboarding.
type CreateStoreInput struct {
	VendorID             string
	Name                 string
	DefaultCurrency      string
	StripePublishableKey string
	StripeUserID         string
	StripeRefreshToken   string
	StripeAccessToken    string
	TxnFeeBase           float64
	TxnFeePercent        float64
}

// StoreService defines store and transaction use cases.
type StoreService interface {
	CreateStore(ctx context.Context, input CreateStoreInput) (string, error)
	GetStore(ctx context.Context, id string) (*domain.Store, error)
	GetTransaction(ctx context.Context, id string) (*domain.Transaction, error)
}
