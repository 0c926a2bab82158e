package models

// Plan is an entry of the static plan catalogue.
type Plan struct {
	Name Tier `json:"name"`

	// PriceCents is the monthly price in cents.
	PriceCents int `json:"priceCents"`

	// IncludedChecks is the quota applied on plan change. [UnlimitedChecks]
	// means no quota.
	IncludedChecks int `json:"includedChecks"`
}

// SubscriptionRequest is the body of POST /subscription.
type SubscriptionRequest struct {
	Plan Tier `json:"plan"`
}
