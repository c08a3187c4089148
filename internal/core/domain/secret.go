package domain

// Document names under the secrets collection.
const (
	SecretJWTKey       = "JWT_KEY"
	SecretStripeAPIKey = "STRIPE_API_SECRET"
	SecretMailgun      = "MAILGUN"
)

// Secrets holds the process-wide secrets loaded once at startup. Read-only
// after load; safe to share across requests.
type Secrets struct {
	JWTKey       string
	StripeAPIKey string
	MailgunKey   string
}
