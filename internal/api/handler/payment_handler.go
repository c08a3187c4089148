package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/paywithclerc/payment-backend/internal/api/metrics"
	"github.com/paywithclerc/payment-backend/internal/core/domain"
	"github.com/paywithclerc/payment-backend/internal/core/ports"
)

// PaymentHandler handles charges, vendor onboarding, and customer creation.
type PaymentHandler struct {
	payments ports.PaymentService
}

func NewPaymentHandler(payments ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// Charge creates a charge on a vendor's connected account, retaining the
// platform fee. A non-settled charge answers 202 rather than 200.
//
// @Summary      Charge a customer
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string         false  "Idempotency key to prevent double charges"
// @Param        body             body      chargeRequest  true   "Charge details"
// @Success      200              {object}  chargeResponse
// @Success      202              {object}  chargeResponse
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Failure      402              {object}  errorResponse
// @Router       /charge [post]
func (h *PaymentHandler) Charge(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	var req chargeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start := time.Now()
	out, err := h.payments.Charge(c.Request().Context(), ports.ChargeInput{
		CustomerID:         req.CustomerID,
		ConnectedAccountID: req.ConnectedVendorID,
		Source:             req.PaymentSource,
		Amount:             req.Amount,
		IdempotencyKey:     c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		if errors.Is(err, domain.ErrPaymentDeclined) {
			metrics.ChargesTotal.WithLabelValues("declined").Inc()
		}
		return err
	}

	metrics.ChargesTotal.WithLabelValues(string(out.Status)).Inc()
	metrics.ChargeDuration.Observe(time.Since(start).Seconds())

	status := http.StatusOK
	if out.Status == domain.ChargePending {
		status = http.StatusAccepted
	}
	return c.JSON(status, chargeResponse{ChargeID: out.ChargeID, Status: string(out.Status)})
}

// ConnectStandardAccount completes vendor onboarding: the authorization code
// is exchanged with the gateway and the vendor's credentials are persisted.
//
// @Summary      Connect a vendor's standard account
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      connectAccountRequest  true  "Onboarding authorization"
// @Success      201   {object}  connectAccountResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /vendors/connect-standard-account [post]
func (h *PaymentHandler) ConnectStandardAccount(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	var req connectAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	vendorID, err := h.payments.ConnectStandardAccount(c.Request().Context(), ports.ConnectAccountInput{
		AuthCode:   req.AccountAuthCode,
		VendorName: req.VendorName,
	})
	if err != nil {
		return err
	}

	metrics.VendorsConnectedTotal.Inc()
	return c.JSON(http.StatusCreated, connectAccountResponse{VendorID: vendorID})
}

// CreateCustomer registers a customer on the platform gateway account.
//
// @Summary      Create a platform customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      createCustomerRequest  true  "Customer details"
// @Success      201   {object}  createCustomerResponse
// @Failure      400   {object}  errorResponse
// @Router       /customers/create [post]
func (h *PaymentHandler) CreateCustomer(c echo.Context) error {
	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customerID, err := h.payments.CreateCustomer(c.Request().Context(), req.Name, req.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createCustomerResponse{CustomerID: customerID})
}

// CreateEphemeralKey grants a mobile client temporary gateway access to a
// customer. The gateway's JSON payload is returned verbatim.
//
// @Summary      Create an ephemeral key
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ephemeralKeyRequest  true  "Customer and client API version"
// @Success      200   {object}  object
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /customers/create-ephemeral-key [post]
func (h *PaymentHandler) CreateEphemeralKey(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	var req ephemeralKeyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	key, err := h.payments.CreateEphemeralKey(c.Request().Context(), req.CustomerID, req.APIVersion)
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, key)
}
