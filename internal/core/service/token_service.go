package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/paywithclerc/payment-backend/internal/core/domain"
)

// DefaultTokenTTL is the contractual token lifetime when none is configured.
const DefaultTokenTTL = 60 * time.Second

// TokenService signs and verifies session tokens. Tokens are self-contained:
// validity is decided by signature and expiry alone, never by server-side
// state, so a token cannot be revoked before it expires.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue returns a signed token for userID expiring after ttl; a zero ttl
// means DefaultTokenTTL. The caller is responsible for having validated the
// user first.
func (s *TokenService) Issue(userID string, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify resolves a token to the user id it was issued for. Every failure
// mode — malformed token, wrong signature, wrong algorithm, expired or
// missing exp, missing user_id — collapses to domain.ErrInvalidToken so that
// no validation detail crosses the trust boundary.
func (s *TokenService) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", domain.ErrInvalidToken
	}
	return userID, nil
}
