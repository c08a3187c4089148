package domain

// Store is a vendor-owned storefront. The Stripe credential fields live in a
// separate backend document in the datastore; a Store is only considered to
// exist when both the main document and the credential document are present.
type Store struct {
	ID                   string  `json:"id,omitempty"`
	Name                 string  `json:"name"`
	DefaultCurrency      string  `json:"default_currency"`
	StripePublishableKey string  `json:"stripe_publishable_key"`
	StripeUserID         string  `json:"stripe_user_id"`
	StripeRefreshToken   string  `json:"-"`
	StripeAccessToken    string  `json:"-"`
	TxnFeeBase           float64 `json:"txn_fee_base"`
	TxnFeePercent        float64 `json:"txn_fee_percent"`
}
