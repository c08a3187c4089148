package ports

import (
	"context"
	"encoding/json"

	"github.com/paywithclerc/payment-backend/internal/core/domain"
)

// ChargeInput carries a verified customer's charge request. The caller has
// already authenticated the session; these fields come from the request body.
type ChargeInput struct {
	CustomerID         string
	ConnectedAccountID string
	Source             string
	Amount             int64
	// IdempotencyKey, when non-empty, lets the service return a previously
	// created charge instead of charging twice.
	IdempotencyKey string
}

// ChargeOutput reports the created (or replayed) charge.
type ChargeOutput struct {
	ChargeID string
	Status   domain.ChargeStatus
	// Replayed is true when the idempotency key matched an earlier charge
	// and the gateway was not called.
	Replayed bool
}

// ConnectAccountInput carries a vendor onboarding request.
type ConnectAccountInput struct {
	AuthCode   string
	VendorName string
}

// PaymentService defines the charge and vendor onboarding use cases.
type PaymentService interface {
	Charge(ctx context.Context, input ChargeInput) (*ChargeOutput, error)
	ConnectStandardAccount(ctx context.Context, input ConnectAccountInput) (string, error)
	CreateCustomer(ctx context.Context, name, email string) (string, error)
	CreateEphemeralKey(ctx context.Context, customerID, apiVersion string) (json.RawMessage, error)
}
