package formulas

import "gonum.org/v1/gonum/stat"

// LinearFit fits an ordinary least squares line of values against their
// zero-based index and returns the intercept and slope.
// With fewer than two values the fit is undefined and ok is false.
func LinearFit(values []float64) (intercept, slope float64, ok bool) {
	if len(values) < 2 {
		return 0, 0, false
	}

	xs := make([]float64, len(values))
	for i := range xs {
		xs[i] = float64(i)
	}

	intercept, slope = stat.LinearRegression(xs, values, nil, false)
	return intercept, slope, true
}
