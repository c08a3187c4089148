package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/paywithclerc/payment-backend/internal/core/domain"
)

func TestIdentityRepository_CustomerAndVendor(t *testing.T) {
	db := NewDB()
	db.AddCustomer("cus_1")
	vendorID := db.AddVendor(domain.Vendor{Name: "Cafe Co"})
	repo := NewIdentityRepository(db)

	for _, id := range []string{"cus_1", vendorID} {
		ok, err := repo.IsValidUser(context.Background(), id)
		if err != nil {
			t.Fatalf("IsValidUser(%s): %v", id, err)
		}
		if !ok {
			t.Fatalf("expected %s to be valid", id)
		}
	}

	ok, err := repo.IsValidUser(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("IsValidUser: %v", err)
	}
	if ok {
		t.Fatalf("unknown id reported valid")
	}
}

// An id present in both collections is valid regardless of which collection
// is consulted first.
func TestIdentityRepository_IDInBothCollections(t *testing.T) {
	db := NewDB()
	db.AddCustomer("both_1")
	db.AddVendor(domain.Vendor{ID: "both_1", Name: "Cafe Co"})
	repo := NewIdentityRepository(db)

	ok, err := repo.IsValidUser(context.Background(), "both_1")
	if err != nil {
		t.Fatalf("IsValidUser: %v", err)
	}
	if !ok {
		t.Fatalf("expected id in both collections to be valid")
	}
}

func TestTransactionRepository_PreservesItemOrder(t *testing.T) {
	db := NewDB()
	db.AddTransaction(domain.Transaction{
		ID:      "ch_1",
		Amount:  1500,
		Taxes:   75,
		Date:    time.Date(2019, 3, 16, 12, 0, 0, 0, time.UTC),
		StoreID: "store_1",
		Items: []domain.Item{
			{Name: "espresso", Cost: 300, PriceUnit: 3.00, Quantity: 1},
			{Name: "croissant", Cost: 450, PriceUnit: 4.50, Quantity: 1},
			{Name: "latte", Cost: 750, PriceUnit: 3.75, Quantity: 2},
		},
	})
	repo := NewTransactionRepository(db)

	txn, err := repo.Get(context.Background(), "ch_1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	want := []string{"espresso", "croissant", "latte"}
	for i, item := range txn.Items {
		if item.Name != want[i] {
			t.Fatalf("item order not preserved: got %v at %d, want %v", item.Name, i, want[i])
		}
	}
}

func TestTransactionRepository_Missing(t *testing.T) {
	repo := NewTransactionRepository(NewDB())

	if _, err := repo.Get(context.Background(), "ch_missing"); !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}
}

func TestVendorRepository_SaveAssignsID(t *testing.T) {
	db := NewDB()
	repo := NewVendorRepository(db)

	id, err := repo.Save(context.Background(), &domain.Vendor{Name: "Cafe Co", StripeUserID: "acct_1"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if id == "" {
		t.Fatalf("expected assigned id")
	}
	v, ok := db.Vendor(id)
	if !ok || v.StripeUserID != "acct_1" {
		t.Fatalf("vendor not persisted: %+v", v)
	}
}

func TestSecretRepository_GetAndMissing(t *testing.T) {
	db := NewDB()
	db.SetSecret(domain.SecretJWTKey, "super-secret")
	repo := NewSecretRepository(db)

	value, err := repo.Get(context.Background(), domain.SecretJWTKey)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if value != "super-secret" {
		t.Fatalf("unexpected value %q", value)
	}

	if _, err := repo.Get(context.Background(), domain.SecretMailgun); !errors.Is(err, domain.ErrSecretNotFound) {
		t.Fatalf("expected ErrSecretNotFound, got %v", err)
	}
}
