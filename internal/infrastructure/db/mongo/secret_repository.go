package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/paywithclerc/payment-backend/internal/core/domain"
)

// SecretRepository reads named secrets. Secrets are written out of band;
// this repository only ever reads, once per secret at process start.
type SecretRepository struct {
	coll   *mongo.Collection
	logger zerolog.Logger
}

func NewSecretRepository(db *mongo.Database, logger zerolog.Logger) *SecretRepository {
	return &SecretRepository{coll: db.Collection(collectionSecrets), logger: logger}
}

type secretDoc struct {
	Key string `bson:"key"`
}

// Get returns the secret stored under name. Absence is logged and reported
// as domain.ErrSecretNotFound; the caller decides whether that is fatal.
func (r *SecretRepository) Get(ctx context.Context, name string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc secretDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": name}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Info().Str("secret", name).Msg("secret document does not exist")
			return "", domain.ErrSecretNotFound
		}
		return "", fmt.Errorf("find secret: %w", err)
	}
	return doc.Key, nil
}
