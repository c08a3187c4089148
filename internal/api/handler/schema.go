package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type refreshTokenRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

type refreshTokenResponse struct {
	Token string `json:"token"`
}

type chargeRequest struct {
	CustomerID        string `json:"customer_id"         validate:"required"`
	ConnectedVendorID string `json:"connected_vendor_id" validate:"required"`
	PaymentSource     string `json:"payment_source"      validate:"required"`
	Amount            int64  `json:"amount"              validate:"required,gt=0"`
}

type chargeResponse struct {
	ChargeID string `json:"charge_id"`
	Status   string `json:"status"`
}

type connectAccountRequest struct {
	AccountAuthCode string `json:"account_auth_code" validate:"required"`
	VendorName      string `json:"vendor_name"       validate:"required"`
}

type connectAccountResponse struct {
	VendorID string `json:"vendor_id"`
}

type createCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
}

type createCustomerResponse struct {
	CustomerID string `json:"customer_id"`
}

type ephemeralKeyRequest struct {
	CustomerID string `json:"customer_id" validate:"required"`
	APIVersion string `json:"api_version" validate:"required"`
}

type createStoreRequest struct {
	Name                 string  `json:"name"             validate:"required"`
	DefaultCurrency      string  `json:"default_currency" validate:"required"`
	StripePublishableKey string  `json:"stripe_publishable_key"`
	StripeUserID         string  `json:"stripe_user_id"`
	StripeRefreshToken   string  `json:"stripe_refresh_token"`
	StripeAccessToken    string  `json:"stripe_access_token"`
	TxnFeeBase           float64 `json:"txn_fee_base"`
	TxnFeePercent        float64 `json:"txn_fee_percent"`
}

type createStoreResponse struct {
	StoreID string `json:"store_id"`
}
