package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/paywithclerc/payment-backend/internal/core/domain"
	"github.com/paywithclerc/payment-backend/internal/infrastructure/db/memory"
)

func TestLoadSecrets_AllPresent(t *testing.T) {
	db := memory.NewDB()
	db.SetSecret(domain.SecretJWTKey, "jwt-key")
	db.SetSecret(domain.SecretStripeAPIKey, "sk_test_1")
	db.SetSecret(domain.SecretMailgun, "mg-key")

	secrets, err := LoadSecrets(context.Background(), memory.NewSecretRepository(db), zerolog.Nop())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if secrets.JWTKey != "jwt-key" || secrets.StripeAPIKey != "sk_test_1" || secrets.MailgunKey != "mg-key" {
		t.Fatalf("unexpected secrets: %+v", secrets)
	}
}

func TestLoadSecrets_MailgunOptional(t *testing.T) {
	db := memory.NewDB()
	db.SetSecret(domain.SecretJWTKey, "jwt-key")
	db.SetSecret(domain.SecretStripeAPIKey, "sk_test_1")

	secrets, err := LoadSecrets(context.Background(), memory.NewSecretRepository(db), zerolog.Nop())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if secrets.MailgunKey != "" {
		t.Fatalf("expected empty mailgun key, got %q", secrets.MailgunKey)
	}
}

func TestLoadSecrets_RequiredMissing(t *testing.T) {
	db := memory.NewDB()
	db.SetSecret(domain.SecretStripeAPIKey, "sk_test_1")

	if _, err := LoadSecrets(context.Background(), memory.NewSecretRepository(db), zerolog.Nop()); !errors.Is(err, domain.ErrSecretNotFound) {
		t.Fatalf("expected ErrSecretNotFound, got %v", err)
	}
}
