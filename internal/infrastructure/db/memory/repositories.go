package memory

import (
	"context"

	"github.com/paywithclerc/payment-backend/internal/core/domain"
)

// VendorRepository implements ports.VendorRepository.
type VendorRepository struct {
	db *DB
}

func NewVendorRepository(db *DB) *VendorRepository {
	return &VendorRepository{db: db}
}

func (r *VendorRepository) Save(_ context.Context, vendor *domain.Vendor) (string, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	v := *vendor
	v.ID = r.db.nextID("vendor")
	r.db.vendors[v.ID] = v
	return v.ID, nil
}

// IdentityRepository implements ports.IdentityRepository.
type IdentityRepository struct {
	db *DB
}

func NewIdentityRepository(db *DB) *IdentityRepository {
	return &IdentityRepository{db: db}
}

func (r *IdentityRepository) IsValidUser(_ context.Context, userID string) (bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	if _, ok := r.db.customers[userID]; ok {
		return true, nil
	}
	_, ok := r.db.vendors[userID]
	return ok, nil
}

// TransactionRepository implements ports.TransactionRepository.
type TransactionRepository struct {
	db *DB
}

func NewTransactionRepository(db *DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Get(_ context.Context, id string) (*domain.Transaction, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	t, ok := r.db.transactions[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	clone := t
	clone.Items = append([]domain.Item(nil), t.Items...)
	return &clone, nil
}

// SecretRepository implements ports.SecretRepository.
type SecretRepository struct {
	db *DB
}

func NewSecretRepository(db *DB) *SecretRepository {
	return &SecretRepository{db: db}
}

func (r *SecretRepository) Get(_ context.Context, name string) (string, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	value, ok := r.db.secrets[name]
	if !ok {
		return "", domain.ErrSecretNotFound
	}
	return value, nil
}
