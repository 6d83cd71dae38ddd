package formulas

import (
	"math"

	"github.com/markcheno/go-talib"
)

// CalculateRSI calculates the Relative Strength Index
//
// RSI Formula:
//
//	RSI = 100 - (100 / (1 + RS))
//	where RS = Average Gain / Average Loss over N periods
//
// Returns the latest RSI value (0-100) or nil if there is insufficient data.
func CalculateRSI(closes []float64, length int) *float64 {
	if length <= 0 || len(closes) < length+1 {
		return nil
	}

	rsi := talib.Rsi(closes, length)

	if len(rsi) > 0 && !math.IsNaN(rsi[len(rsi)-1]) {
		result := rsi[len(rsi)-1]
		return &result
	}

	return nil
}
