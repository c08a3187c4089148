package ports

import "context"

// IdentityRepository answers whether an opaque user id names a known actor.
type IdentityRepository interface {
	// IsValidUser reports whether userID exists in the customers collection
	// or the vendors collection. Customers are checked first (they hit the
	// API more often); the boolean result does not depend on the order.
	IsValidUser(ctx context.Context, userID string) (bool, error)
}
