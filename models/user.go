package models

import "time"

// Tier is a subscription tier. It decides how many checks a user may submit
// before the quota runs out.
type Tier string

const (
	TierTrial        Tier = "trial"
	TierStarter      Tier = "starter"
	TierProfessional Tier = "professional"
	TierEnterprise   Tier = "enterprise"
)

// UnlimitedChecks is the ChecksRemaining sentinel for tiers without a quota.
// Such users are never decremented.
const UnlimitedChecks = -1

// Valid reports whether t is one of the known subscription tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierTrial, TierStarter, TierProfessional, TierEnterprise:
		return true
	}
	return false
}

// User represents an account entity used for authentication and quota
// accounting. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Password is the plain-text password received on register/login.
	// It is only ever read from requests and never persisted.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of Password.
	PasswordHash string `json:"-"`

	// Tier is the current subscription tier.
	Tier Tier `json:"tier"`

	// ChecksRemaining is the remaining check allowance. [UnlimitedChecks]
	// means the tier has no quota.
	ChecksRemaining int `json:"checksRemaining"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// Unlimited reports whether the user's tier carries no quota.
func (u User) Unlimited() bool {
	return u.ChecksRemaining == UnlimitedChecks
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
