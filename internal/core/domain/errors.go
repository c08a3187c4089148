package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidInput = errors.New("invalid input")
var ErrInvalidUser = errors.New("invalid user")
var ErrInvalidToken = errors.New("invalid token")
var ErrStoreNotFound = errors.New("store not found")
var ErrTransactionNotFound = errors.New("transaction not found")
var ErrVendorNotFound = errors.New("vendor not found")
var ErrSecretNotFound = errors.New("secret not found")
var ErrPaymentDeclined = errors.New("payment declined")
var ErrOAuthRejected = errors.New("account authorization rejected")

// GatewayError is an error reported by the payment gateway's API (as opposed
// to a transport failure reaching it). Message is the gateway's own
// human-readable description and is safe to surface to callers.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gateway error (status %d)", e.StatusCode)
	}
	return e.Message
}
