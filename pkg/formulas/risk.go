package formulas

import (
	"math"
	"sort"
)

// SharpeRatio annualizes the excess daily return per unit of volatility:
//
//	(mean(returns) - riskFreeRate/252) / popStdDev(returns) * sqrt(252)
//
// Fewer than two returns, or a series with no dispersion, yields 0. Callers
// must treat a zero ratio as possibly meaning "insufficient data".
func SharpeRatio(returns []float64, riskFreeRate float64) float64 {
	if len(returns) < 2 {
		return 0
	}

	stdDev := PopulationStdDev(returns)
	if stdDev == 0 {
		return 0
	}

	excess := Mean(returns) - riskFreeRate/TradingPeriodsPerYear
	return excess / stdDev * math.Sqrt(TradingPeriodsPerYear)
}

// AnnualizedVolatility calculates annualized volatility from daily returns
// Formula: population std dev of daily returns * sqrt(252 trading days)
func AnnualizedVolatility(returns []float64) float64 {
	if len(returns) < 2 {
		return 0
	}
	return PopulationStdDev(returns) * math.Sqrt(TradingPeriodsPerYear)
}

// ValueAtRisk returns the (1-confidence)*100-th percentile of the return
// distribution: the loss threshold not exceeded with the given confidence.
// The value is a return (usually negative), not a currency amount.
func ValueAtRisk(returns []float64, confidenceLevel float64) float64 {
	if len(returns) == 0 {
		return 0
	}
	return Percentile(returns, (1-confidenceLevel)*100)
}

// Percentile computes the p-th percentile (0-100) using linear interpolation
// between the closest order statistics, rank = p/100 * (n-1).
// The input slice is not modified.
func Percentile(data []float64, p float64) float64 {
	if len(data) == 0 {
		return 0
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}

	rank := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}

	fraction := rank - float64(lower)
	return sorted[lower] + fraction*(sorted[upper]-sorted[lower])
}
