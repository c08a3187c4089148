package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/paywithclerc/payment-backend/internal/core/domain"
)

// stubIdentityRepo mimics the customers-then-vendors lookup.
type stubIdentityRepo struct {
	customers map[string]bool
	vendors   map[string]bool
	err       error
}

func (r *stubIdentityRepo) IsValidUser(_ context.Context, userID string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if r.customers[userID] {
		return true, nil
	}
	return r.vendors[userID], nil
}

func TestSessionService_Refresh_ValidUser(t *testing.T) {
	tokens := NewTokenService("signing-key")
	identity := &stubIdentityRepo{customers: map[string]bool{"cus_abc": true}}
	svc := NewSessionService(identity, tokens, time.Minute, zerolog.Nop())

	token, err := svc.Refresh(context.Background(), "cus_abc")
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}

	userID, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token did not verify: %v", err)
	}
	if userID != "cus_abc" {
		t.Fatalf("expected cus_abc, got %q", userID)
	}
}

func TestSessionService_Refresh_UnknownUser(t *testing.T) {
	svc := NewSessionService(&stubIdentityRepo{}, NewTokenService("k"), time.Minute, zerolog.Nop())

	if _, err := svc.Refresh(context.Background(), "ghost"); !errors.Is(err, domain.ErrInvalidUser) {
		t.Fatalf("expected ErrInvalidUser, got %v", err)
	}
}

func TestSessionService_Refresh_EmptyUserID(t *testing.T) {
	svc := NewSessionService(&stubIdentityRepo{}, NewTokenService("k"), time.Minute, zerolog.Nop())

	if _, err := svc.Refresh(context.Background(), ""); !errors.Is(err, domain.ErrInvalidUser) {
		t.Fatalf("expected ErrInvalidUser, got %v", err)
	}
}

// A user present in both collections is still simply valid; the lookup order
// never changes the boolean result.
func TestSessionService_Refresh_UserInBothCollections(t *testing.T) {
	identity := &stubIdentityRepo{
		customers: map[string]bool{"both_1": true},
		vendors:   map[string]bool{"both_1": true},
	}
	tokens := NewTokenService("signing-key")
	svc := NewSessionService(identity, tokens, time.Minute, zerolog.Nop())

	token, err := svc.Refresh(context.Background(), "both_1")
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if userID, err := tokens.Verify(token); err != nil || userID != "both_1" {
		t.Fatalf("unexpected verify result: %q %v", userID, err)
	}
}

func TestSessionService_Refresh_LookupError(t *testing.T) {
	identity := &stubIdentityRepo{err: errors.New("datastore down")}
	svc := NewSessionService(identity, NewTokenService("k"), time.Minute, zerolog.Nop())

	_, err := svc.Refresh(context.Background(), "cus_abc")
	if err == nil || errors.Is(err, domain.ErrInvalidUser) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}
