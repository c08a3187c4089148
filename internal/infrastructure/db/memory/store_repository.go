package memory

import (
	"context"

	"github.com/paywithclerc/payment-backend/internal/core/domain"
)

// StoreRepository implements ports.StoreRepository against a memory DB.
type StoreRepository struct {
	db *DB

	// AppendStoreIDs switches the vendor update from the default overwrite
	// (last writer wins, single store per vendor) to an append.
	AppendStoreIDs bool

	// FailCredentialWrite, when set, makes SaveStore fail between the main
	// document write and the credential write, simulating a partial write.
	FailCredentialWrite error
}

func NewStoreRepository(db *DB) *StoreRepository {
	return &StoreRepository{db: db}
}

func (r *StoreRepository) SaveStore(_ context.Context, store *domain.Store, vendorID string) (string, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	id := r.db.nextID("store")
	main := *store
	main.ID = id
	r.db.stores[id] = main

	if r.FailCredentialWrite != nil {
		return "", r.FailCredentialWrite
	}

	r.db.credentials[id] = credentialDoc{
		publishableKey: store.StripePublishableKey,
		userID:         store.StripeUserID,
		refreshToken:   store.StripeRefreshToken,
		accessToken:    store.StripeAccessToken,
		txnFeeBase:     store.TxnFeeBase,
		txnFeePercent:  store.TxnFeePercent,
	}

	v, ok := r.db.vendors[vendorID]
	if !ok {
		// Store and credentials are already written; the absent vendor makes
		// this a partial write, same as the datastore raising on update.
		return "", domain.ErrVendorNotFound
	}
	if r.AppendStoreIDs {
		v.StoreIDs = append(v.StoreIDs, id)
	} else {
		v.StoreIDs = []string{id}
	}
	r.db.vendors[vendorID] = v

	return id, nil
}

func (r *StoreRepository) GetStore(_ context.Context, id string) (*domain.Store, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	main, ok := r.db.stores[id]
	if !ok {
		return nil, domain.ErrStoreNotFound
	}
	creds, ok := r.db.credentials[id]
	if !ok {
		// Main document without credentials is a partial write; the store is
		// treated as absent, never returned half-populated.
		return nil, domain.ErrStoreNotFound
	}

	return &domain.Store{
		ID:                   id,
		Name:                 main.Name,
		DefaultCurrency:      main.DefaultCurrency,
		StripePublishableKey: creds.publishableKey,
		StripeUserID:         creds.userID,
		StripeRefreshToken:   creds.refreshToken,
		StripeAccessToken:    creds.accessToken,
		TxnFeeBase:           creds.txnFeeBase,
		TxnFeePercent:        creds.txnFeePercent,
	}, nil
}
