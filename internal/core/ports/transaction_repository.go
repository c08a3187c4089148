package ports

import (
	"context"

	"github.com/paywithclerc/payment-backend/internal/core/domain"
)

// TransactionRepository reads completed transactions.
type TransactionRepository interface {
	// Get retrieves a transaction by its id (the gateway charge id). The
	// item sequence preserves stored order.
	Get(ctx context.Context, id string) (*domain.Transaction, error)
}
