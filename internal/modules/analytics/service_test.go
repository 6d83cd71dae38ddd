package analytics

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticReturns struct {
	returns []float64
	err     error
}

func (s staticReturns) Returns(context.Context) ([]float64, error) {
	return s.returns, s.err
}

func TestShortSeriesYieldZero(t *testing.T) {
	for _, returns := range [][]float64{nil, {}, {0.05}} {
		assert.Equal(t, 0.0, SharpeRatio(returns, DefaultRiskFreeRate))
		assert.Equal(t, 0.0, Volatility(returns))
	}
}

func TestSharpeRatio_ZeroVariance(t *testing.T) {
	assert.Equal(t, 0.0, SharpeRatio([]float64{0.01, 0.01, 0.01, 0.01}, DefaultRiskFreeRate))
}

func TestValueAtRisk(t *testing.T) {
	assert.Equal(t, 0.0, ValueAtRisk(nil, 0.95))
	assert.InDelta(t, 1.2, ValueAtRisk([]float64{1, 2, 3, 4, 5}, 0.95), 1e-9)
}

func TestPortfolioMetrics(t *testing.T) {
	tests := []struct {
		name    string
		returns []float64
		status  string
	}{
		{"healthy", []float64{0.01, -0.02, 0.03, 0.0, -0.01}, StatusHealthy},
		{"single return", []float64{0.01}, StatusInsufficientData},
		{"empty", nil, StatusInsufficientData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(staticReturns{returns: tt.returns}, zerolog.Nop())

			metrics, err := svc.PortfolioMetrics(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.status, metrics.Status)
			if tt.status == StatusInsufficientData {
				assert.Equal(t, 0.0, metrics.SharpeRatio)
				assert.Equal(t, 0.0, metrics.Volatility)
			}
		})
	}
}

func TestPortfolioMetrics_Rounding(t *testing.T) {
	returns := []float64{0.0123, -0.0211, 0.0302, 0.0047, -0.0118, 0.0251}
	svc := NewService(staticReturns{returns: returns}, zerolog.Nop())

	metrics, err := svc.PortfolioMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, metrics.SharpeRatio, roundTo(SharpeRatio(returns, DefaultRiskFreeRate), 100))
	assert.Equal(t, metrics.Volatility, roundTo(Volatility(returns), 10000))
	assert.Equal(t, metrics.VaR95, roundTo(ValueAtRisk(returns, DefaultConfidence), 10000))
}

func TestPortfolioMetrics_ProviderError(t *testing.T) {
	svc := NewService(staticReturns{err: errors.New("boom")}, zerolog.Nop())

	_, err := svc.PortfolioMetrics(context.Background())
	assert.ErrorContains(t, err, "boom")
}

func TestMockReturnsProvider_Deterministic(t *testing.T) {
	a, err := NewMockReturnsProvider(42).Returns(context.Background())
	require.NoError(t, err)
	b, err := NewMockReturnsProvider(42).Returns(context.Background())
	require.NoError(t, err)

	assert.Len(t, a, 100)
	assert.Equal(t, a, b)
}

func roundTo(v, factor float64) float64 {
	return math.Round(v*factor) / factor
}
