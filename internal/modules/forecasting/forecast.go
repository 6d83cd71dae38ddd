// Package forecasting projects short-term prices with a linear trend.
package forecasting

import "github.com/aristath/cryptoadvisor/pkg/formulas"

const (
	// DefaultDays is the projection horizon when none is requested.
	DefaultDays = 7

	// BandMethod names how lower and upper are derived. They are a fixed
	// percentage around the point estimate, not a statistical interval.
	BandMethod = "fixed_5pct_heuristic"

	bandWidth     = 0.05
	fallbackDrift = 0.001
)

// ForecastPoint is a single projected day.
type ForecastPoint struct {
	Day   int      `json:"day"`
	Price float64  `json:"price"`
	Lower *float64 `json:"lower,omitempty"`
	Upper *float64 `json:"upper,omitempty"`
}

// Project extrapolates days future prices.
//
// With at least two history points it fits price against index with ordinary
// least squares and predicts at len(history)-1+i, bracketing each prediction
// with a ±5% band. Otherwise it applies a 0.1% daily drift to currentPrice and
// leaves the band unset.
func Project(currentPrice float64, history []float64, days int) []ForecastPoint {
	if days <= 0 {
		return []ForecastPoint{}
	}

	points := make([]ForecastPoint, 0, days)

	intercept, slope, ok := formulas.LinearFit(history)
	if !ok {
		for i := 1; i <= days; i++ {
			points = append(points, ForecastPoint{
				Day:   i,
				Price: currentPrice * (1 + fallbackDrift*float64(i)),
			})
		}
		return points
	}

	last := len(history) - 1
	for i := 1; i <= days; i++ {
		price := intercept + slope*float64(last+i)
		lower := price * (1 - bandWidth)
		upper := price * (1 + bandWidth)
		points = append(points, ForecastPoint{
			Day:   i,
			Price: price,
			Lower: &lower,
			Upper: &upper,
		})
	}

	return points
}
