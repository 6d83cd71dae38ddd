package strategy

import (
	"context"
	"fmt"

	"github.com/aristath/cryptoadvisor/internal/modules/profile"
	"github.com/rs/zerolog"
)

// MockBalance is the portfolio balance used until balances are tracked.
const MockBalance = 100000

// MockCurrentAllocation and MockTargetAllocation stand in for real holdings.
var (
	MockCurrentAllocation = Allocation{{"BTC", 0.65}, {"ETH", 0.25}, {"SOL", 0.10}}
	MockTargetAllocation  = Allocation{{"BTC", 0.50}, {"ETH", 0.30}, {"SOL", 0.20}}
)

// ProfileReader loads the current user's profile.
type ProfileReader interface {
	Get(ctx context.Context) (*profile.UserProfile, error)
}

// Strategies bundles every recommendation for the current user.
type Strategies struct {
	DCAPlan            DCAPlan           `json:"dca_plan"`
	RebalancingSignals []RebalanceSignal `json:"rebalancing_signals"`
	MarketSentiment    Sentiment         `json:"market_sentiment"`
}

// Service assembles strategy recommendations.
type Service struct {
	profiles  ProfileReader
	sentiment SentimentProvider
	log       zerolog.Logger
}

// NewService creates a new strategy service
func NewService(profiles ProfileReader, sentiment SentimentProvider, log zerolog.Logger) *Service {
	return &Service{
		profiles:  profiles,
		sentiment: sentiment,
		log:       log.With().Str("service", "strategy").Logger(),
	}
}

// Strategies builds the DCA plan for the stored risk tolerance together with
// the rebalancing signals of the mock portfolio and the market sentiment.
func (s *Service) Strategies(ctx context.Context) (*Strategies, error) {
	p, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	sentiment, err := s.sentiment.Sentiment(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get market sentiment: %w", err)
	}

	result := &Strategies{
		DCAPlan:            NewDCAPlan(p.RiskTolerance, MockBalance),
		RebalancingSignals: RebalancingSignals(MockCurrentAllocation, MockTargetAllocation),
		MarketSentiment:    sentiment,
	}

	s.log.Debug().
		Str("risk_tolerance", p.RiskTolerance).
		Int("signals", len(result.RebalancingSignals)).
		Msg("Built strategies")

	return result, nil
}
