package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/paywithclerc/payment-backend/internal/api/middleware"
	"github.com/paywithclerc/payment-backend/internal/core/domain"
	"github.com/paywithclerc/payment-backend/internal/core/ports"
)

type stubPaymentService struct {
	chargeFn       func(ctx context.Context, input ports.ChargeInput) (*ports.ChargeOutput, error)
	connectFn      func(ctx context.Context, input ports.ConnectAccountInput) (string, error)
	customerFn     func(ctx context.Context, name, email string) (string, error)
	ephemeralKeyFn func(ctx context.Context, customerID, apiVersion string) (json.RawMessage, error)
}

func (s *stubPaymentService) Charge(ctx context.Context, input ports.ChargeInput) (*ports.ChargeOutput, error) {
	return s.chargeFn(ctx, input)
}

func (s *stubPaymentService) ConnectStandardAccount(ctx context.Context, input ports.ConnectAccountInput) (string, error) {
	return s.connectFn(ctx, input)
}

func (s *stubPaymentService) CreateCustomer(ctx context.Context, name, email string) (string, error) {
	return s.customerFn(ctx, name, email)
}

func (s *stubPaymentService) CreateEphemeralKey(ctx context.Context, customerID, apiVersion string) (json.RawMessage, error) {
	return s.ephemeralKeyFn(ctx, customerID, apiVersion)
}

func newAuthedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, userID string) echo.Context {
	c := e.NewContext(req, rec)
	c.Set(middleware.UserIDKey, userID)
	return c
}

func TestPaymentHandler_Charge_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubPaymentService{
		chargeFn: func(ctx context.Context, input ports.ChargeInput) (*ports.ChargeOutput, error) {
			if input.CustomerID != "cus_1" || input.ConnectedAccountID != "acct_9" {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.IdempotencyKey != "key-42" {
				t.Fatalf("idempotency key not forwarded: %q", input.IdempotencyKey)
			}
			return &ports.ChargeOutput{ChargeID: "ch_1", Status: domain.ChargeSucceeded}, nil
		},
	}
	h := NewPaymentHandler(stub)

	body := strings.NewReader(`{"customer_id":"cus_1","connected_vendor_id":"acct_9","payment_source":"tok_visa","amount":2500}`)
	req := httptest.NewRequest(http.MethodPost, "/charge", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Idempotency-Key", "key-42")
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, "cus_1")

	if err := h.Charge(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["charge_id"] != "ch_1" || resp["status"] != "succeeded" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestPaymentHandler_Charge_PendingAnswers202(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubPaymentService{
		chargeFn: func(ctx context.Context, input ports.ChargeInput) (*ports.ChargeOutput, error) {
			return &ports.ChargeOutput{ChargeID: "ch_2", Status: domain.ChargePending}, nil
		},
	}
	h := NewPaymentHandler(stub)

	body := strings.NewReader(`{"customer_id":"cus_1","connected_vendor_id":"acct_9","payment_source":"tok_visa","amount":100}`)
	req := httptest.NewRequest(http.MethodPost, "/charge", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, "cus_1")

	if err := h.Charge(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
}

func TestPaymentHandler_Charge_Unauthenticated(t *testing.T) {
	e := echo.New()
	stub := &stubPaymentService{
		chargeFn: func(ctx context.Context, input ports.ChargeInput) (*ports.ChargeOutput, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewPaymentHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/charge", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Charge(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestPaymentHandler_Charge_MissingAmount(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubPaymentService{
		chargeFn: func(ctx context.Context, input ports.ChargeInput) (*ports.ChargeOutput, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewPaymentHandler(stub)

	body := strings.NewReader(`{"customer_id":"cus_1","connected_vendor_id":"acct_9","payment_source":"tok_visa"}`)
	req := httptest.NewRequest(http.MethodPost, "/charge", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, "cus_1")

	err := h.Charge(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestPaymentHandler_ConnectStandardAccount_MissingAuthCode(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubPaymentService{
		connectFn: func(ctx context.Context, input ports.ConnectAccountInput) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	h := NewPaymentHandler(stub)

	body := strings.NewReader(`{"vendor_name":"Cafe Uno"}`)
	req := httptest.NewRequest(http.MethodPost, "/vendors/connect-standard-account", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, "vendor_7")

	err := h.ConnectStandardAccount(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestPaymentHandler_Charge_Declined(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubPaymentService{
		chargeFn: func(ctx context.Context, input ports.ChargeInput) (*ports.ChargeOutput, error) {
			return nil, domain.ErrPaymentDeclined
		},
	}
	h := NewPaymentHandler(stub)

	body := strings.NewReader(`{"customer_id":"cus_1","connected_vendor_id":"acct_9","payment_source":"tok_visa","amount":100}`)
	req := httptest.NewRequest(http.MethodPost, "/charge", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, "cus_1")

	if err := h.Charge(c); !errors.Is(err, domain.ErrPaymentDeclined) {
		t.Fatalf("expected ErrPaymentDeclined, got %v", err)
	}
}

func TestPaymentHandler_ConnectStandardAccount_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubPaymentService{
		connectFn: func(ctx context.Context, input ports.ConnectAccountInput) (string, error) {
			if input.AuthCode != "ac_code" || input.VendorName != "Cafe Uno" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return "vendor_7", nil
		},
	}
	h := NewPaymentHandler(stub)

	body := strings.NewReader(`{"account_auth_code":"ac_code","vendor_name":"Cafe Uno"}`)
	req := httptest.NewRequest(http.MethodPost, "/vendors/connect-standard-account", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, "vendor_7")

	if err := h.ConnectStandardAccount(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["vendor_id"] != "vendor_7" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestPaymentHandler_CreateCustomer_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubPaymentService{
		customerFn: func(ctx context.Context, name, email string) (string, error) {
			if name != "Ada" || email != "ada@example.com" {
				t.Fatalf("unexpected args: %s %s", name, email)
			}
			return "cus_new", nil
		},
	}
	h := NewPaymentHandler(stub)

	body := strings.NewReader(`{"name":"Ada","email":"ada@example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/customers/create", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateCustomer(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestPaymentHandler_CreateCustomer_BadEmail(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubPaymentService{
		customerFn: func(ctx context.Context, name, email string) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	h := NewPaymentHandler(stub)

	body := strings.NewReader(`{"name":"Ada","email":"not-an-email"}`)
	req := httptest.NewRequest(http.MethodPost, "/customers/create", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateCustomer(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestPaymentHandler_CreateEphemeralKey_ReturnsRawPayload(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	raw := `{"id":"ephkey_1","secret":"ek_test_abc"}`
	stub := &stubPaymentService{
		ephemeralKeyFn: func(ctx context.Context, customerID, apiVersion string) (json.RawMessage, error) {
			if customerID != "cus_1" || apiVersion != "2019-05-16" {
				t.Fatalf("unexpected args: %s %s", customerID, apiVersion)
			}
			return json.RawMessage(raw), nil
		},
	}
	h := NewPaymentHandler(stub)

	body := strings.NewReader(`{"customer_id":"cus_1","api_version":"2019-05-16"}`)
	req := httptest.NewRequest(http.MethodPost, "/customers/create-ephemeral-key", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, "cus_1")

	if err := h.CreateEphemeralKey(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != raw {
		t.Fatalf("payload not returned verbatim: %s", rec.Body.String())
	}
}
