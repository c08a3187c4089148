package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/paywithclerc/payment-backend/internal/api/handler"
	"github.com/paywithclerc/payment-backend/internal/api/middleware"
	"github.com/paywithclerc/payment-backend/internal/core/domain"
	"github.com/paywithclerc/payment-backend/internal/core/ports"
	"github.com/paywithclerc/payment-backend/internal/core/service"
	mongodb "github.com/paywithclerc/payment-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/paywithclerc/payment-backend/internal/infrastructure/db/redis"
)

// Options carries everything the router needs to assemble the service graph.
type Options struct {
	Mongo   *mongo.Database
	Redis   *redis.Client // optional; disables charge idempotency when nil
	Gateway ports.PaymentGateway
	Secrets *domain.Secrets

	TokenTTL    time.Duration
	Currency    string
	PlatformFee int64

	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))

	// --- Dependencies ---
	identityRepo := mongodb.NewIdentityRepository(opts.Mongo)
	vendorRepo := mongodb.NewVendorRepository(opts.Mongo)
	storeRepo := mongodb.NewStoreRepository(opts.Mongo, opts.Logger)
	transactionRepo := mongodb.NewTransactionRepository(opts.Mongo)

	var guard service.ChargeGuard
	if opts.Redis != nil {
		guard = redisdb.NewChargeGuard(opts.Redis)
	}

	tokenService := service.NewTokenService(opts.Secrets.JWTKey)
	sessionService := service.NewSessionService(identityRepo, tokenService, opts.TokenTTL, opts.Logger)
	paymentService := service.NewPaymentService(opts.Gateway, vendorRepo, guard, opts.Currency, opts.PlatformFee, opts.Logger)
	storeService := service.NewStoreService(storeRepo, transactionRepo, opts.Logger)

	sessionHandler := handler.NewSessionHandler(sessionService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	storeHandler := handler.NewStoreHandler(storeService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(opts.Mongo, opts.Redis)

	authRequired := middleware.Auth(tokenService)

	// --- Health probes and metrics (no auth required) ---
	e.GET("/", healthHandler.Liveness)
	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Session routes (no auth: this is where tokens come from) ---
	e.POST("/jwt/refresh", sessionHandler.Refresh)

	// --- Payment routes ---
	e.POST("/charge", paymentHandler.Charge, authRequired)
	e.POST("/vendors/connect-standard-account", paymentHandler.ConnectStandardAccount, authRequired)
	e.POST("/customers/create", paymentHandler.CreateCustomer)
	e.POST("/customers/create-ephemeral-key", paymentHandler.CreateEphemeralKey, authRequired)

	// --- Store routes ---
	e.POST("/stores", storeHandler.Create, authRequired)
	e.GET("/stores/:id", storeHandler.Get, authRequired)
	e.GET("/transactions/:id", storeHandler.GetTransaction, authRequired)

	return e
}
