package domain

// ChargeStatus is the settlement state of a charge as reported by the
// payment gateway.
type ChargeStatus string

const (
	ChargeSucceeded ChargeStatus = "succeeded"
	// ChargePending covers every non-"succeeded" gateway status: the charge
	// was accepted but has not settled. Surfaced explicitly to callers
	// rather than treated as success or failure.
	ChargePending ChargeStatus = "pending"
)
