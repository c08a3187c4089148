package ports

import "context"

// SecretRepository reads named secrets from the datastore.
type SecretRepository interface {
	// Get returns the secret value stored under name, or
	// domain.ErrSecretNotFound when the document does not exist. Callers
	// decide whether absence is fatal.
	Get(ctx context.Context, name string) (string, error)
}
