package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/paywithclerc/payment-backend/internal/api"
	"github.com/paywithclerc/payment-backend/internal/core/service"
	"github.com/paywithclerc/payment-backend/internal/infrastructure/config"
	mongodb "github.com/paywithclerc/payment-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/paywithclerc/payment-backend/internal/infrastructure/db/redis"
	"github.com/paywithclerc/payment-backend/internal/infrastructure/stripe"
	"github.com/paywithclerc/payment-backend/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	// --- Redis (optional, backs charge idempotency only) ---
	redisClient := connectRedis(ctx, cfg, log)

	// --- Secrets ---
	secretRepo := mongodb.NewSecretRepository(db, log)
	secrets, err := service.LoadSecrets(ctx, secretRepo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("secrets load failed")
	}

	gateway := stripe.NewClient(secrets.StripeAPIKey, log)

	e := api.NewRouter(api.Options{
		Mongo:       db,
		Redis:       redisClient,
		Gateway:     gateway,
		Secrets:     secrets,
		TokenTTL:    time.Duration(cfg.TokenTTLSeconds) * time.Second,
		Currency:    cfg.Currency,
		PlatformFee: cfg.PlatformFeeAmount,
		Logger:      log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}

	log.Info().Msg("server exited")
}

// connectRedis connects to Redis when an address is configured. A missing or
// unreachable Redis only disables charge idempotency; the server still runs.
func connectRedis(ctx context.Context, cfg *config.Config, log zerolog.Logger) *redis.Client {
	if cfg.Redis.Addr == "" {
		log.Warn().Msg("redis not configured, charge idempotency disabled")
		return nil
	}

	client, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, charge idempotency disabled")
		return nil
	}
	return client
}
