package calculator

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Volatility computes annualized true-range volatility as a percentage,
// rounded to 2 decimals. The true range for day i is
// max(high-low, |high-prevClose|, |low-prevClose|) expressed as a percent
// of the previous close; the average daily value is annualized by sqrt(252).
// Requires at least 10 data points; returns nil otherwise.
func Volatility(closes, highs, lows []float64) *float64 {
	n := len(closes)
	if n < 10 || len(highs) < n || len(lows) < n {
		return nil
	}

	ranges := make([]float64, 0, n-1)
	for i := 1; i < n; i++ {
		prev := closes[i-1]
		if prev <= 0 {
			continue
		}
		tr := math.Max(highs[i]-lows[i],
			math.Max(math.Abs(highs[i]-prev), math.Abs(lows[i]-prev)))
		ranges = append(ranges, tr/prev*100)
	}
	if len(ranges) == 0 {
		return nil
	}

	daily := stat.Mean(ranges, nil)
	return ptr(round2(daily * math.Sqrt(tradingDaysPerYear)))
}
