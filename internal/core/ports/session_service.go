package ports

import "context"

// SessionService issues short-lived session tokens to known users.
type SessionService interface {
	// Refresh returns a new signed token for userID if and only if the
	// identity check passes; otherwise domain.ErrInvalidUser.
	Refresh(ctx context.Context, userID string) (string, error)
}

// TokenVerifier resolves a bearer token to the user id it was issued for.
// Implementations fail closed: any structural, signature, or expiry problem
// yields domain.ErrInvalidToken with no further detail.
type TokenVerifier interface {
	Verify(token string) (string, error)
}
