// Package stripe is a thin adapter over the Stripe REST API covering the
// narrow surface the core consumes: destination charges with an application
// fee, Connect OAuth code exchange, customer creation, and ephemeral keys.
// Requests are form-encoded per the Stripe wire protocol; API-level failures
// come back as *domain.GatewayError, transport failures as plain errors.
// Nothing here retries.
package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/paywithclerc/payment-backend/internal/core/domain"
	"github.com/paywithclerc/payment-backend/internal/core/ports"
)

const (
	defaultAPIBase     = "https://api.stripe.com"
	defaultConnectBase = "https://connect.stripe.com"
	requestTimeout     = 30 * time.Second
)

// Client implements ports.PaymentGateway against the Stripe API.
type Client struct {
	apiKey      string
	apiBase     string
	connectBase string
	httpClient  *http.Client
	logger      zerolog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithBaseURLs overrides the API and Connect endpoints. Used by tests.
func WithBaseURLs(apiBase, connectBase string) Option {
	return func(c *Client) {
		c.apiBase = apiBase
		c.connectBase = connectBase
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		apiKey:      apiKey,
		apiBase:     defaultAPIBase,
		connectBase: defaultConnectBase,
		httpClient:  &http.Client{Timeout: requestTimeout},
		logger:      logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type chargeResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// CreateCharge creates a destination charge: the customer is charged on the
// platform account, funds settle on the vendor's connected account, and the
// platform retains the application fee. This is the one-call fee split; no
// second transfer is ever made.
func (c *Client) CreateCharge(ctx context.Context, p ports.ChargeParams) (*ports.ChargeResult, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(p.Amount, 10))
	form.Set("currency", p.Currency)
	form.Set("customer", p.CustomerID)
	form.Set("source", p.Source)
	form.Set("application_fee_amount", strconv.FormatInt(p.ApplicationFee, 10))
	form.Set("destination[account]", p.ConnectedAccountID)
	form.Set("on_behalf_of", p.ConnectedAccountID)

	body, err := c.postForm(ctx, c.apiBase+"/v1/charges", form, nil)
	if err != nil {
		return nil, err
	}

	var resp chargeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode charge response: %w", err)
	}
	return &ports.ChargeResult{ID: resp.ID, Status: resp.Status}, nil
}

type oauthTokenResponse struct {
	PublishableKey string `json:"stripe_publishable_key"`
	UserID         string `json:"stripe_user_id"`
	RefreshToken   string `json:"refresh_token"`
	AccessToken    string `json:"access_token"`
}

// ExchangeOAuthCode exchanges a Connect standard-account authorization code
// for the vendor's credentials, authenticating with the platform secret.
func (c *Client) ExchangeOAuthCode(ctx context.Context, code string) (*ports.OAuthCredentials, error) {
	form := url.Values{}
	form.Set("client_secret", c.apiKey)
	form.Set("code", code)
	form.Set("grant_type", "authorization_code")

	body, err := c.postForm(ctx, c.connectBase+"/oauth/token", form, nil)
	if err != nil {
		return nil, err
	}

	var resp oauthTokenResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode oauth response: %w", err)
	}
	return &ports.OAuthCredentials{
		PublishableKey: resp.PublishableKey,
		AccountID:      resp.UserID,
		RefreshToken:   resp.RefreshToken,
		AccessToken:    resp.AccessToken,
	}, nil
}

// CreateCustomer registers a customer on the platform account.
func (c *Client) CreateCustomer(ctx context.Context, name, email string) (string, error) {
	form := url.Values{}
	if name != "" {
		form.Set("name", name)
	}
	if email != "" {
		form.Set("email", email)
	}

	body, err := c.postForm(ctx, c.apiBase+"/v1/customers", form, nil)
	if err != nil {
		return "", err
	}

	var resp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decode customer response: %w", err)
	}
	return resp.ID, nil
}

// CreateEphemeralKey grants a mobile client temporary access to a customer.
// The payload is returned verbatim; clients expect Stripe's JSON unmodified.
func (c *Client) CreateEphemeralKey(ctx context.Context, customerID, apiVersion string) (json.RawMessage, error) {
	form := url.Values{}
	form.Set("customer", customerID)

	headers := map[string]string{"Stripe-Version": apiVersion}
	body, err := c.postForm(ctx, c.apiBase+"/v1/ephemeral_keys", form, headers)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

func (c *Client) postForm(ctx context.Context, endpoint string, form url.Values, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stripe request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.gatewayError(resp.StatusCode, body)
	}
	return body, nil
}

// gatewayError extracts the gateway's message from an error body. An
// undecodable body still yields a GatewayError carrying the status code.
func (c *Client) gatewayError(status int, body []byte) *domain.GatewayError {
	var e struct {
		Error json.RawMessage `json:"error"`
		Desc  string          `json:"error_description"`
	}
	msg := ""
	if json.Unmarshal(body, &e) == nil {
		var nested struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(e.Error, &nested) == nil && nested.Message != "" {
			msg = nested.Message
		} else if e.Desc != "" {
			msg = e.Desc
		} else {
			// OAuth errors may carry only a bare error code string.
			var code string
			if json.Unmarshal(e.Error, &code) == nil {
				msg = code
			}
		}
	}

	c.logger.Info().Int("status", status).Str("message", msg).Msg("stripe api error")
	return &domain.GatewayError{StatusCode: status, Message: msg}
}
