package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/paywithclerc/payment-backend/internal/core/ports"
)

// StoreHandler handles store creation and the store/transaction read paths.
type StoreHandler struct {
	stores ports.StoreService
}

func NewStoreHandler(stores ports.StoreService) *StoreHandler {
	return &StoreHandler{stores: stores}
}

// Create persists a new store owned by the authenticated vendor.
//
// @Summary      Create a store
// @Tags         stores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createStoreRequest  true  "Store details"
// @Success      201   {object}  createStoreResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /stores [post]
func (h *StoreHandler) Create(c echo.Context) error {
	vendorID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createStoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	storeID, err := h.stores.CreateStore(c.Request().Context(), ports.CreateStoreInput{
		VendorID:             vendorID,
		Name:                 req.Name,
		DefaultCurrency:      req.DefaultCurrency,
		StripePublishableKey: req.StripePublishableKey,
		StripeUserID:         req.StripeUserID,
		StripeRefreshToken:   req.StripeRefreshToken,
		StripeAccessToken:    req.StripeAccessToken,
		TxnFeeBase:           req.TxnFeeBase,
		TxnFeePercent:        req.TxnFeePercent,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createStoreResponse{StoreID: storeID})
}

// Get returns a store by id.
//
// @Summary      Get a store
// @Tags         stores
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Store id"
// @Success      200  {object}  domain.Store
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /stores/{id} [get]
func (h *StoreHandler) Get(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	store, err := h.stores.GetStore(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, store)
}

// GetTransaction returns a transaction by id.
//
// @Summary      Get a transaction
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Transaction id (gateway charge id)"
// @Success      200  {object}  domain.Transaction
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /transactions/{id} [get]
func (h *StoreHandler) GetTransaction(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	txn, err := h.stores.GetTransaction(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, txn)
}
