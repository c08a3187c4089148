// Package redis connects to Redis and hosts the charge idempotency guard.
// Redis is an optional dependency here: the server runs without it, minus
// replay protection.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultPingTimeout = 5 * time.Second

// Config captures the settings for establishing a Redis connection.
type Config struct {
	Addr string
	DB   int
	// PingTimeout bounds the startup connectivity check. Zero means
	// defaultPingTimeout.
	PingTimeout time.Duration
}

// Connect builds a Redis client and verifies it answers a ping before
// handing it out, so a misconfigured address fails at startup rather than
// on the first charge.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	timeout := cfg.PingTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
