package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// guardTTL bounds how long a charge can be replayed by its idempotency key.
const guardTTL = 24 * time.Hour

// ChargeGuard records completed charges by idempotency key so a repeated
// request replays the original charge instead of charging twice.
// Key format: charge:idem:<key> → "<charge_id> <status>"
type ChargeGuard struct {
	client *redis.Client
}

// NewChargeGuard creates a ChargeGuard wrapping the given Redis client.
func NewChargeGuard(client *redis.Client) *ChargeGuard {
	return &ChargeGuard{client: client}
}

// Lookup returns the charge previously recorded under key, if any.
func (g *ChargeGuard) Lookup(ctx context.Context, key string) (string, string, bool, error) {
	val, err := g.client.Get(ctx, g.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", "", false, nil
		}
		return "", "", false, fmt.Errorf("idempotency lookup: %w", err)
	}

	chargeID, status, ok := strings.Cut(val, " ")
	if !ok {
		// Unparseable entry: treat as unseen rather than replaying garbage.
		return "", "", false, nil
	}
	return chargeID, status, true, nil
}

// Remember records a completed charge under key (expires after guardTTL).
func (g *ChargeGuard) Remember(ctx context.Context, key, chargeID, status string) error {
	return g.client.Set(ctx, g.key(key), chargeID+" "+status, guardTTL).Err()
}

func (g *ChargeGuard) key(idempotencyKey string) string {
	return "charge:idem:" + idempotencyKey
}
