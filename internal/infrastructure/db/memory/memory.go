// Package memory provides in-process implementations of the repository
// ports, honoring the same contracts as the Mongo implementations: the
// store/credential document split, the strict-existence read, and the
// last-writer-wins vendor store-list overwrite. Used by tests and local
// development.
package memory

import (
	"fmt"
	"sync"

	"github.com/paywithclerc/payment-backend/internal/core/domain"
)

// DB is a process-local document store mirroring the datastore layout:
// stores, credential documents keyed by store id, vendors, customers,
// transactions, and secrets.
type DB struct {
	mu           sync.RWMutex
	stores       map[string]domain.Store
	credentials  map[string]credentialDoc
	vendors      map[string]domain.Vendor
	customers    map[string]struct{}
	transactions map[string]domain.Transaction
	secrets      map[string]string
	seq          int
}

// credentialDoc is the Stripe credential half of a store, stored separately
// from the main document.
type credentialDoc struct {
	publishableKey string
	userID         string
	refreshToken   string
	accessToken    string
	txnFeeBase     float64
	txnFeePercent  float64
}

func NewDB() *DB {
	return &DB{
		stores:       make(map[string]domain.Store),
		credentials:  make(map[string]credentialDoc),
		vendors:      make(map[string]domain.Vendor),
		customers:    make(map[string]struct{}),
		transactions: make(map[string]domain.Transaction),
		secrets:      make(map[string]string),
	}
}

func (db *DB) nextID(prefix string) string {
	db.seq++
	return fmt.Sprintf("%s_%06d", prefix, db.seq)
}

// --- Seeding helpers for tests and local development ---

func (db *DB) AddCustomer(id string) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.customers[id] = struct{}{}
}

func (db *DB) AddVendor(v domain.Vendor) string {
	db.mu.Lock()
	defer db.mu.Unlock()
	if v.ID == "" {
		v.ID = db.nextID("vendor")
	}
	db.vendors[v.ID] = v
	return v.ID
}

func (db *DB) AddTransaction(t domain.Transaction) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.transactions[t.ID] = t
}

func (db *DB) SetSecret(name, value string) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.secrets[name] = value
}

// Vendor returns a copy of the stored vendor, for assertions.
func (db *DB) Vendor(id string) (domain.Vendor, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	v, ok := db.vendors[id]
	return v, ok
}
