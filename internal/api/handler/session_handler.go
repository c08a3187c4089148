package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/paywithclerc/payment-backend/internal/api/metrics"
	"github.com/paywithclerc/payment-backend/internal/core/ports"
)

// SessionHandler handles session token issuance.
type SessionHandler struct {
	sessions ports.SessionService
}

func NewSessionHandler(sessions ports.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Refresh issues a short-lived session token for a known user.
//
// @Summary      Issue a session token
// @Tags         security
// @Accept       json
// @Produce      json
// @Param        body  body      refreshTokenRequest  true  "User identifier"
// @Success      200   {object}  refreshTokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /jwt/refresh [post]
func (h *SessionHandler) Refresh(c echo.Context) error {
	var req refreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, err := h.sessions.Refresh(c.Request().Context(), req.UserID)
	if err != nil {
		return err
	}

	metrics.TokensIssuedTotal.Inc()
	return c.JSON(http.StatusOK, refreshTokenResponse{Token: token})
}
