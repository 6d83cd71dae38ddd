// Package analytics computes portfolio risk metrics from a return series.
package analytics

import (
	"context"
	"fmt"

	"github.com/aristath/cryptoadvisor/pkg/formulas"
	"github.com/rs/zerolog"
)

const (
	// DefaultRiskFreeRate is the annual risk-free rate used for the Sharpe ratio.
	DefaultRiskFreeRate = 0.02
	// DefaultConfidence is the confidence level used for value at risk.
	DefaultConfidence = 0.95

	StatusHealthy          = "Healthy"
	StatusInsufficientData = "Insufficient data"
)

// ReturnsProvider supplies the periodic return series of the portfolio.
type ReturnsProvider interface {
	Returns(ctx context.Context) ([]float64, error)
}

// PortfolioMetrics is the response of the analytics endpoint.
type PortfolioMetrics struct {
	SharpeRatio float64 `json:"sharpe_ratio"`
	Volatility  float64 `json:"volatility"`
	VaR95       float64 `json:"var_95"`
	Status      string  `json:"status"`
}

// SharpeRatio returns the annualized Sharpe ratio of daily returns.
func SharpeRatio(returns []float64, riskFreeRate float64) float64 {
	return formulas.SharpeRatio(returns, riskFreeRate)
}

// Volatility returns the annualized volatility of daily returns.
func Volatility(returns []float64) float64 {
	return formulas.AnnualizedVolatility(returns)
}

// ValueAtRisk returns the historical VaR threshold at the given confidence.
func ValueAtRisk(returns []float64, confidence float64) float64 {
	return formulas.ValueAtRisk(returns, confidence)
}

// Service computes portfolio metrics for the configured returns provider.
type Service struct {
	returns ReturnsProvider
	log     zerolog.Logger
}

// NewService creates a new analytics service
func NewService(returns ReturnsProvider, log zerolog.Logger) *Service {
	return &Service{
		returns: returns,
		log:     log.With().Str("service", "analytics").Logger(),
	}
}

// PortfolioMetrics computes Sharpe (2dp), volatility (4dp) and VaR 95 (4dp).
func (s *Service) PortfolioMetrics(ctx context.Context) (*PortfolioMetrics, error) {
	returns, err := s.returns.Returns(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load returns: %w", err)
	}

	status := StatusHealthy
	if len(returns) < 2 {
		status = StatusInsufficientData
	}

	metrics := &PortfolioMetrics{
		SharpeRatio: formulas.Round(SharpeRatio(returns, DefaultRiskFreeRate), 2),
		Volatility:  formulas.Round(Volatility(returns), 4),
		VaR95:       formulas.Round(ValueAtRisk(returns, DefaultConfidence), 4),
		Status:      status,
	}

	s.log.Debug().
		Int("returns", len(returns)).
		Float64("sharpe", metrics.SharpeRatio).
		Msg("Computed portfolio metrics")

	return metrics, nil
}
