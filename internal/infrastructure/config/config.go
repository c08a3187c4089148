package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// TokenTTLSeconds is the session token lifetime. 60 seconds is the
	// contractual default.
	TokenTTLSeconds int `env:"TOKEN_TTL_SECONDS, default=60"`

	// Currency is the fixed charge currency (lowercase ISO code).
	Currency string `env:"CHARGE_CURRENCY, default=cad"`

	// PlatformFeeAmount is the fixed application fee retained by the
	// platform on every charge, in minor currency units.
	PlatformFeeAmount int64 `env:"PLATFORM_FEE_AMOUNT, default=100"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=clerc"`
}

type RedisConfig struct {
	// Addr may be empty: Redis is optional and only backs the charge
	// idempotency guard.
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
