package ports

import (
	"context"

	"github.com/paywithclerc/payment-backend/internal/core/domain"
)

// VendorRepository defines persistence operations for vendors.
type VendorRepository interface {
	// Save inserts a new vendor document and returns the identifier assigned
	// by the datastore.
	Save(ctx context.Context, vendor *domain.Vendor) (string, error)
}
