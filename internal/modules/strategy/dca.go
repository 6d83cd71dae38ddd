// Package strategy produces DCA plans, rebalancing signals and market sentiment.
package strategy

import (
	"fmt"
	"strings"

	"github.com/aristath/cryptoadvisor/pkg/formulas"
)

// RiskProfile is the user's declared risk tolerance.
type RiskProfile string

const (
	RiskLow    RiskProfile = "low"
	RiskMedium RiskProfile = "medium"
	RiskHigh   RiskProfile = "high"
)

// DCAPlanType is the plan type reported in every DCA plan.
const DCAPlanType = "Dollar Cost Averaging (DCA)"

// DCAConfig describes how a risk profile invests.
type DCAConfig struct {
	Frequency   string
	AmountRatio float64
	Assets      []string
}

var dcaConfigs = map[RiskProfile]DCAConfig{
	RiskLow:    {Frequency: "Weekly", AmountRatio: 0.05, Assets: []string{"BTC", "ETH", "USDC"}},
	RiskMedium: {Frequency: "Bi-weekly", AmountRatio: 0.10, Assets: []string{"BTC", "ETH", "SOL", "LINK"}},
	RiskHigh:   {Frequency: "Daily", AmountRatio: 0.15, Assets: []string{"BTC", "ETH", "SOL", "PEPE", "RNDR"}},
}

// ParseRiskProfile maps s case-insensitively to a known profile.
// Anything unrecognized is treated as medium.
func ParseRiskProfile(s string) RiskProfile {
	profile := RiskProfile(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := dcaConfigs[profile]; ok {
		return profile
	}
	return RiskMedium
}

// ConfigFor returns the DCA configuration of a profile.
func ConfigFor(profile RiskProfile) DCAConfig {
	cfg, ok := dcaConfigs[profile]
	if !ok {
		cfg = dcaConfigs[RiskMedium]
	}
	cfg.Assets = append([]string(nil), cfg.Assets...)
	return cfg
}

// DCAPlan is a recommended dollar cost averaging schedule.
type DCAPlan struct {
	Type              string   `json:"type"`
	Frequency         string   `json:"frequency"`
	RecommendedAmount float64  `json:"recommended_amount"`
	TargetAssets      []string `json:"target_assets"`
	Rationale         string   `json:"rationale"`
}

// NewDCAPlan builds a plan for riskProfile investing a share of balance.
// The rationale echoes the caller's input rather than the resolved profile.
func NewDCAPlan(riskProfile string, balance float64) DCAPlan {
	cfg := ConfigFor(ParseRiskProfile(riskProfile))

	return DCAPlan{
		Type:              DCAPlanType,
		Frequency:         cfg.Frequency,
		RecommendedAmount: formulas.Round(balance*cfg.AmountRatio, 2),
		TargetAssets:      cfg.Assets,
		Rationale: fmt.Sprintf(
			"Based on your %s risk profile, we suggest a %s entry to minimize volatility impact.",
			riskProfile, cfg.Frequency),
	}
}
