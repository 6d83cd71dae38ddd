// Package profile stores the investor profile that personalizes recommendations.
package profile

import "time"

// DefaultUserID is the only user of the single-user deployment.
const DefaultUserID = "default_user"

// Defaults applied when a profile is created lazily.
const (
	DefaultRiskTolerance   = "medium"
	DefaultInvestmentGoal  = "long_term_growth"
	DefaultPreferredAssets = "BTC,ETH"
)

// UserProfile is the persisted investor profile.
type UserProfile struct {
	ID              int64     `json:"id"`
	UserID          string    `json:"user_id"`
	RiskTolerance   string    `json:"risk_tolerance"`
	InvestmentGoal  string    `json:"investment_goal"`
	PreferredAssets string    `json:"preferred_assets"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ProfileUpdate carries the fields a user may change.
// A nil PreferredAssets leaves the stored value untouched.
type ProfileUpdate struct {
	RiskTolerance   string  `json:"risk_tolerance"`
	InvestmentGoal  string  `json:"investment_goal"`
	PreferredAssets *string `json:"preferred_assets,omitempty"`
}
