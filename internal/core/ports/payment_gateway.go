package ports

import (
	"context"
	"encoding/json"
)

// ChargeParams carries everything the gateway needs to create a charge on a
// vendor's connected account while retaining a platform fee.
type ChargeParams struct {
	Amount             int64  // minor currency units
	Currency           string // lowercase ISO code, e.g. "cad"
	CustomerID         string // gateway customer id
	Source             string // payment source token
	ApplicationFee     int64  // platform fee, minor currency units
	ConnectedAccountID string // vendor's gateway account id
}

// ChargeResult is the gateway's answer to a charge creation.
type ChargeResult struct {
	ID     string
	Status string
}

// OAuthCredentials is the result of exchanging a Connect authorization code.
type OAuthCredentials struct {
	PublishableKey string
	AccountID      string // the vendor's gateway account id
	RefreshToken   string
	AccessToken    string
}

// PaymentGateway is the narrow surface of the payment provider the core
// consumes. API-level failures are returned as *domain.GatewayError;
// transport failures as ordinary errors. None of these calls is ever
// retried by the core.
type PaymentGateway interface {
	CreateCharge(ctx context.Context, params ChargeParams) (*ChargeResult, error)
	ExchangeOAuthCode(ctx context.Context, code string) (*OAuthCredentials, error)
	CreateCustomer(ctx context.Context, name, email string) (string, error)
	// CreateEphemeralKey returns the raw key payload for mobile clients,
	// which expect the gateway's JSON verbatim.
	CreateEphemeralKey(ctx context.Context, customerID, apiVersion string) (json.RawMessage, error)
}
