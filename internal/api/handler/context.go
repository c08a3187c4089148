package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/paywithclerc/payment-backend/internal/api/middleware"
)

// ctxUserID extracts the verified user id injected by the Auth middleware.
// Its presence proves the middleware ran; a route registered without the
// middleware fails closed here.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.UserIDKey).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
