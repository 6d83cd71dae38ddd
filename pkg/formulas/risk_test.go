package formulas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSharpeRatio(t *testing.T) {
	tests := []struct {
		name     string
		returns  []float64
		expected float64
	}{
		{"nil returns", nil, 0},
		{"single return", []float64{0.05}, 0},
		{"constant returns", []float64{0.1, 0.1, 0.1, 0.1}, 0},
		{"constant negative returns", []float64{-0.013, -0.013, -0.013}, 0},
		{
			// mean 0.02, population std 0.01
			name:     "two point series",
			returns:  []float64{0.01, 0.03},
			expected: (0.02 - 0.02/252) / 0.01 * math.Sqrt(252),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, SharpeRatio(tt.returns, 0.02), 1e-9)
		})
	}
}

func TestSharpeRatio_UsesPopulationStdDev(t *testing.T) {
	returns := []float64{0.01, 0.02, 0.03, 0.04}
	// population variance = 0.000125
	expected := (0.025 - 0.0) / math.Sqrt(0.000125) * math.Sqrt(252)
	assert.InDelta(t, expected, SharpeRatio(returns, 0), 1e-9)
}

func TestAnnualizedVolatility(t *testing.T) {
	assert.Equal(t, 0.0, AnnualizedVolatility(nil))
	assert.Equal(t, 0.0, AnnualizedVolatility([]float64{0.2}))
	assert.Equal(t, 0.0, AnnualizedVolatility([]float64{0.01, 0.01, 0.01}))
	assert.InDelta(t, 0.01*math.Sqrt(252), AnnualizedVolatility([]float64{0.01, 0.03}), 1e-12)
}

func TestValueAtRisk(t *testing.T) {
	assert.Equal(t, 0.0, ValueAtRisk(nil, 0.95))
	assert.Equal(t, 0.0, ValueAtRisk([]float64{}, 0.99))
	assert.InDelta(t, 1.2, ValueAtRisk([]float64{1, 2, 3, 4, 5}, 0.95), 1e-12)
	assert.InDelta(t, 1.2, ValueAtRisk([]float64{5, 3, 1, 4, 2}, 0.95), 1e-12, "input order must not matter")
	assert.InDelta(t, 3.0, ValueAtRisk([]float64{1, 2, 3, 4, 5}, 0.5), 1e-12)
}

func TestPercentile(t *testing.T) {
	data := []float64{10, 20, 30, 40}
	assert.Equal(t, 10.0, Percentile(data, 0))
	assert.Equal(t, 40.0, Percentile(data, 100))
	assert.InDelta(t, 25.0, Percentile(data, 50), 1e-12)
	assert.InDelta(t, 13.0, Percentile(data, 10), 1e-12)
	assert.Equal(t, []float64{10, 20, 30, 40}, data)
}
