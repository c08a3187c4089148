package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/paywithclerc/payment-backend/internal/core/domain"
	"github.com/paywithclerc/payment-backend/internal/core/ports"
)

// SessionService gates token issuance on the identity check.
type SessionService struct {
	identity ports.IdentityRepository
	tokens   *TokenService
	ttl      time.Duration
	logger   zerolog.Logger
}

func NewSessionService(identity ports.IdentityRepository, tokens *TokenService, ttl time.Duration, logger zerolog.Logger) *SessionService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &SessionService{identity: identity, tokens: tokens, ttl: ttl, logger: logger}
}

// Refresh issues a fresh session token for userID. An unknown or empty user
// id is an authorization failure, not an input error: the caller learns only
// that access was denied.
func (s *SessionService) Refresh(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", domain.ErrInvalidUser
	}

	ok, err := s.identity.IsValidUser(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("refresh token: %w", err)
	}
	if !ok {
		s.logger.Info().Str("user_id", userID).Msg("token refresh denied for unknown user")
		return "", domain.ErrInvalidUser
	}

	token, err := s.tokens.Issue(userID, s.ttl)
	if err != nil {
		return "", fmt.Errorf("refresh token: %w", err)
	}
	return token, nil
}
