// Package formulas provides the pure numeric building blocks used by the
// analytics, forecasting and strategy modules.
package formulas

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// TradingPeriodsPerYear is the annualization factor for daily series.
const TradingPeriodsPerYear = 252

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// PopulationStdDev calculates the standard deviation dividing by N (not N-1).
// A series whose values are all identical has a deviation of exactly zero,
// even when the floating point mean would not reproduce the values bit for bit.
func PopulationStdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	if floats.Max(data) == floats.Min(data) {
		return 0
	}
	return stat.PopStdDev(data, nil)
}

// Round rounds value to the given number of decimal places. Rounding works on
// the exact binary value and breaks exact ties to even, so 0.125 becomes 0.12
// and 2.675 (stored as 2.67499...) becomes 2.67.
func Round(value float64, places int) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) || places < 0 {
		return value
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(value, 'f', places, 64), 64)
	if err != nil {
		return value
	}
	return rounded
}
