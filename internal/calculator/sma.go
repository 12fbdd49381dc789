package calculator

import "gonum.org/v1/gonum/stat"

// SMA computes the simple moving average of the last period prices,
// rounded to 2 decimals. Returns nil when the series is shorter than the
// window.
func SMA(prices []float64, period int) *float64 {
	if period <= 0 || len(prices) < period {
		return nil
	}
	mean := stat.Mean(prices[len(prices)-period:], nil)
	return ptr(round2(mean))
}
