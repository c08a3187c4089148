package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/paywithclerc/payment-backend/internal/core/domain"
	"github.com/paywithclerc/payment-backend/internal/core/ports"
)

// LoadSecrets reads the process secrets from the datastore, once, at
// startup. The signing key and gateway key are required; the mail key is
// optional and its absence is only logged.
func LoadSecrets(ctx context.Context, repo ports.SecretRepository, logger zerolog.Logger) (*domain.Secrets, error) {
	jwtKey, err := repo.Get(ctx, domain.SecretJWTKey)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", domain.SecretJWTKey, err)
	}

	stripeKey, err := repo.Get(ctx, domain.SecretStripeAPIKey)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", domain.SecretStripeAPIKey, err)
	}

	mailgunKey, err := repo.Get(ctx, domain.SecretMailgun)
	if err != nil {
		if !errors.Is(err, domain.ErrSecretNotFound) {
			return nil, fmt.Errorf("load %s: %w", domain.SecretMailgun, err)
		}
		logger.Warn().Str("secret", domain.SecretMailgun).Msg("optional secret not configured")
	}

	return &domain.Secrets{
		JWTKey:       jwtKey,
		StripeAPIKey: stripeKey,
		MailgunKey:   mailgunKey,
	}, nil
}
