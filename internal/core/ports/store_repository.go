package ports

import (
	"context"

	"github.com/paywithclerc/payment-backend/internal/core/domain"
)

// StoreRepository defines persistence operations for stores.
type StoreRepository interface {
	// SaveStore writes the main store document, then the Stripe credential
	// document, then overwrites the owning vendor's store list with the new
	// id. A vendorID matching no vendor yields domain.ErrVendorNotFound.
	// The three writes are sequential and not atomic: a failure partway
	// through is logged as a partial write and returned as an error, but
	// earlier writes are not rolled back.
	SaveStore(ctx context.Context, store *domain.Store, vendorID string) (string, error)

	// GetStore retrieves a store by id. A store whose main document exists
	// but whose credential document is missing is treated as not found —
	// callers never see a partially populated Store.
	GetStore(ctx context.Context, id string) (*domain.Store, error)
}
