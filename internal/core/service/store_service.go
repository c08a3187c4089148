package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/paywithclerc/payment-backend/internal/core/domain"
	"github.com/paywithclerc/payment-backend/internal/core/ports"
)

// StoreService exposes store creation and the read paths for stores and
// transactions.
type StoreService struct {
	stores       ports.StoreRepository
	transactions ports.TransactionRepository
	logger       zerolog.Logger
}

func NewStoreService(stores ports.StoreRepository, transactions ports.TransactionRepository, logger zerolog.Logger) *StoreService {
	return &StoreService{stores: stores, transactions: transactions, logger: logger}
}

// CreateStore persists a new store for a vendor and returns its id.
func (s *StoreService) CreateStore(ctx context.Context, input ports.CreateStoreInput) (string, error) {
	switch {
	case input.VendorID == "":
		return "", fmt.Errorf("%w: vendor_id is required", domain.ErrInvalidInput)
	case input.Name == "":
		return "", fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	case input.DefaultCurrency == "":
		return "", fmt.Errorf("%w: default_currency is required", domain.ErrInvalidInput)
	}

	store := &domain.Store{
		Name:                 input.Name,
		DefaultCurrency:      input.DefaultCurrency,
		StripePublishableKey: input.StripePublishableKey,
		StripeUserID:         input.StripeUserID,
		StripeRefreshToken:   input.StripeRefreshToken,
		StripeAccessToken:    input.StripeAccessToken,
		TxnFeeBase:           input.TxnFeeBase,
		TxnFeePercent:        input.TxnFeePercent,
	}

	id, err := s.stores.SaveStore(ctx, store, input.VendorID)
	if err != nil {
		return "", fmt.Errorf("create store: %w", err)
	}

	s.logger.Info().Str("store_id", id).Str("vendor_id", input.VendorID).Msg("store created")
	return id, nil
}

func (s *StoreService) GetStore(ctx context.Context, id string) (*domain.Store, error) {
	if id == "" {
		return nil, domain.ErrStoreNotFound
	}
	return s.stores.GetStore(ctx, id)
}

func (s *StoreService) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	if id == "" {
		return nil, domain.ErrTransactionNotFound
	}
	return s.transactions.Get(ctx, id)
}
