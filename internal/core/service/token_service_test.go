package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/paywithclerc/payment-backend/internal/core/domain"
)

func TestTokenService_IssueVerifyRoundtrip(t *testing.T) {
	svc := NewTokenService("signing-key")

	token, err := svc.Issue("user_1", time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	userID, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if userID != "user_1" {
		t.Fatalf("expected user_1, got %q", userID)
	}
}

func TestTokenService_DefaultTTL(t *testing.T) {
	svc := NewTokenService("signing-key")

	token, err := svc.Issue("user_1", 0)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := svc.Verify(token); err != nil {
		t.Fatalf("token with default ttl should verify: %v", err)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("signing-key")

	// Correctly signed but already expired.
	claims := jwt.MapClaims{
		"user_id": "user_1",
		"exp":     time.Now().Add(-time.Minute).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("signing-key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_WrongKey(t *testing.T) {
	token, err := NewTokenService("other-key").Issue("user_1", time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewTokenService("signing-key").Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_MissingExpiry(t *testing.T) {
	svc := NewTokenService("signing-key")

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user_1",
	}).SignedString([]byte("signing-key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for token without exp, got %v", err)
	}
}

func TestTokenService_MissingUserID(t *testing.T) {
	svc := NewTokenService("signing-key")

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Minute).Unix(),
	}).SignedString([]byte("signing-key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for token without user_id, got %v", err)
	}
}

func TestTokenService_Garbage(t *testing.T) {
	svc := NewTokenService("signing-key")

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Verify(tok); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", tok, err)
		}
	}
}
