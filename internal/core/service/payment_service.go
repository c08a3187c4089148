package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/paywithclerc/payment-backend/internal/core/domain"
	"github.com/paywithclerc/payment-backend/internal/core/ports"
)

// ChargeGuard abstracts the idempotency store (Redis). A nil guard disables
// replay protection entirely.
type ChargeGuard interface {
	// Lookup returns the charge previously recorded under key, if any.
	Lookup(ctx context.Context, key string) (chargeID string, status string, found bool, err error)
	// Remember records a completed charge under key.
	Remember(ctx context.Context, key, chargeID, status string) error
}

// PaymentService implements the charge split and vendor onboarding flows.
type PaymentService struct {
	gateway     ports.PaymentGateway
	vendors     ports.VendorRepository
	guard       ChargeGuard
	currency    string
	platformFee int64
	logger      zerolog.Logger
}

func NewPaymentService(
	gateway ports.PaymentGateway,
	vendors ports.VendorRepository,
	guard ChargeGuard,
	currency string,
	platformFee int64,
	logger zerolog.Logger,
) *PaymentService {
	return &PaymentService{
		gateway:     gateway,
		vendors:     vendors,
		guard:       guard,
		currency:    currency,
		platformFee: platformFee,
		logger:      logger,
	}
}

// Charge creates a charge on the vendor's connected account, retaining the
// platform fee. Input validation happens before any external call; gateway
// failures are never retried (double-charge risk).
func (s *PaymentService) Charge(ctx context.Context, input ports.ChargeInput) (*ports.ChargeOutput, error) {
	switch {
	case input.CustomerID == "":
		return nil, fmt.Errorf("%w: customer_id is required", domain.ErrInvalidInput)
	case input.ConnectedAccountID == "":
		return nil, fmt.Errorf("%w: connected_account_id is required", domain.ErrInvalidInput)
	case input.Source == "":
		return nil, fmt.Errorf("%w: source is required", domain.ErrInvalidInput)
	case input.Amount <= 0:
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	}

	// Replay a previously completed charge rather than charging twice.
	// Guard failures never block a payment.
	if s.guard != nil && input.IdempotencyKey != "" {
		chargeID, status, found, err := s.guard.Lookup(ctx, input.IdempotencyKey)
		if err != nil {
			s.logger.Warn().Err(err).Msg("idempotency lookup failed, charging anyway")
		} else if found {
			s.logger.Info().
				Str("idempotency_key", input.IdempotencyKey).
				Str("charge_id", chargeID).
				Msg("idempotent charge replay")
			return &ports.ChargeOutput{
				ChargeID: chargeID,
				Status:   domain.ChargeStatus(status),
				Replayed: true,
			}, nil
		}
	}

	result, err := s.gateway.CreateCharge(ctx, ports.ChargeParams{
		Amount:             input.Amount,
		Currency:           s.currency,
		CustomerID:         input.CustomerID,
		Source:             input.Source,
		ApplicationFee:     s.platformFee,
		ConnectedAccountID: input.ConnectedAccountID,
	})
	if err != nil {
		var gwErr *domain.GatewayError
		if errors.As(err, &gwErr) {
			s.logger.Info().
				Str("customer_id", input.CustomerID).
				Str("connected_account", input.ConnectedAccountID).
				Str("reason", gwErr.Message).
				Msg("charge declined")
			return nil, fmt.Errorf("%w: %s", domain.ErrPaymentDeclined, gwErr.Message)
		}
		return nil, fmt.Errorf("create charge: %w", err)
	}

	status := domain.ChargeSucceeded
	if result.Status != string(domain.ChargeSucceeded) {
		// The gateway accepted the charge but it has not settled. Surface
		// this explicitly; money may still arrive.
		s.logger.Warn().
			Str("charge_id", result.ID).
			Str("gateway_status", result.Status).
			Msg("charge not yet succeeded")
		status = domain.ChargePending
	}

	if s.guard != nil && input.IdempotencyKey != "" {
		if err := s.guard.Remember(ctx, input.IdempotencyKey, result.ID, string(status)); err != nil {
			s.logger.Warn().Err(err).Str("charge_id", result.ID).Msg("failed to record idempotency key")
		}
	}

	s.logger.Info().
		Str("charge_id", result.ID).
		Int64("amount", input.Amount).
		Str("connected_account", input.ConnectedAccountID).
		Msg("charge created")

	return &ports.ChargeOutput{ChargeID: result.ID, Status: status}, nil
}

// ConnectStandardAccount exchanges a Connect authorization code for the
// vendor's credentials and persists a new vendor. A rejected exchange is
// treated as a caller input error; nothing is persisted on failure.
func (s *PaymentService) ConnectStandardAccount(ctx context.Context, input ports.ConnectAccountInput) (string, error) {
	switch {
	case input.AuthCode == "":
		return "", fmt.Errorf("%w: account_auth_code is required", domain.ErrInvalidInput)
	case input.VendorName == "":
		return "", fmt.Errorf("%w: vendor_name is required", domain.ErrInvalidInput)
	}

	creds, err := s.gateway.ExchangeOAuthCode(ctx, input.AuthCode)
	if err != nil {
		var gwErr *domain.GatewayError
		if errors.As(err, &gwErr) {
			s.logger.Info().Str("vendor_name", input.VendorName).Str("reason", gwErr.Message).
				Msg("account authorization rejected by gateway")
			return "", fmt.Errorf("%w: %s", domain.ErrOAuthRejected, gwErr.Message)
		}
		return "", fmt.Errorf("exchange auth code: %w", err)
	}

	vendorID, err := s.vendors.Save(ctx, &domain.Vendor{
		Name:                 input.VendorName,
		StripePublishableKey: creds.PublishableKey,
		StripeUserID:         creds.AccountID,
		StripeRefreshToken:   creds.RefreshToken,
		StripeAccessToken:    creds.AccessToken,
	})
	if err != nil {
		return "", fmt.Errorf("save vendor: %w", err)
	}

	s.logger.Info().
		Str("vendor_id", vendorID).
		Str("stripe_user_id", creds.AccountID).
		Msg("vendor connected")

	return vendorID, nil
}

// CreateCustomer registers a customer on the platform gateway account and
// returns the gateway customer id.
func (s *PaymentService) CreateCustomer(ctx context.Context, name, email string) (string, error) {
	id, err := s.gateway.CreateCustomer(ctx, name, email)
	if err != nil {
		return "", fmt.Errorf("create customer: %w", err)
	}
	s.logger.Info().Str("customer_id", id).Msg("customer created")
	return id, nil
}

// CreateEphemeralKey returns the gateway's ephemeral key payload verbatim;
// mobile clients consume the JSON as-is.
func (s *PaymentService) CreateEphemeralKey(ctx context.Context, customerID, apiVersion string) (json.RawMessage, error) {
	if customerID == "" {
		return nil, fmt.Errorf("%w: customer_id is required", domain.ErrInvalidInput)
	}
	key, err := s.gateway.CreateEphemeralKey(ctx, customerID, apiVersion)
	if err != nil {
		return nil, fmt.Errorf("create ephemeral key: %w", err)
	}
	return key, nil
}
