package domain

// Vendor is a seller with a Stripe connected account. StoreIDs holds the ids
// of the vendor's stores; the current persistence contract overwrites it with
// a single-element list on every store save (single-store-per-vendor
// limitation, see StoreRepository).
type Vendor struct {
	ID                   string   `json:"id,omitempty"`
	Name                 string   `json:"name"`
	StripePublishableKey string   `json:"stripe_publishable_key"`
	StripeUserID         string   `json:"stripe_user_id"`
	StripeRefreshToken   string   `json:"-"`
	StripeAccessToken    string   `json:"-"`
	StoreIDs             []string `json:"store_ids"`
}
