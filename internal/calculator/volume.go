package calculator

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// obvWindow is the lookback used to turn raw cumulative OBV into a trend.
const obvWindow = 14

// OBVTrend builds the cumulative on-balance-volume series and normalizes
// its movement over the last 14 points into [-100, 100]: positive values
// mean volume is flowing in on up days. Returns 0 when fewer than 14 OBV
// points exist or the window carries no volume.
func OBVTrend(closes, volumes []float64) float64 {
	n := len(closes)
	if n < obvWindow || len(volumes) < n {
		return 0
	}

	obv := make([]float64, n)
	for i := 1; i < n; i++ {
		switch {
		case closes[i] > closes[i-1]:
			obv[i] = obv[i-1] + volumes[i]
		case closes[i] < closes[i-1]:
			obv[i] = obv[i-1] - volumes[i]
		default:
			obv[i] = obv[i-1]
		}
	}

	window := obv[n-obvWindow:]
	var volSum float64
	for _, v := range volumes[n-obvWindow:] {
		volSum += math.Abs(v)
	}
	if volSum == 0 {
		return 0
	}
	return round2((window[len(window)-1] - window[0]) / volSum * 100)
}

// DefaultVWAPPeriod is the trailing window for the VWAP indicator.
const DefaultVWAPPeriod = 14

// VWAP computes the volume-weighted average price over the last period
// days using the typical price (high+low+close)/3, rounded to 2 decimals.
// Returns nil when the series is shorter than the window or the window has
// no volume.
func VWAP(closes, highs, lows, volumes []float64, period int) *float64 {
	n := len(closes)
	if period <= 0 || n < period || len(highs) < n || len(lows) < n || len(volumes) < n {
		return nil
	}

	var priceVolume, volSum float64
	for i := n - period; i < n; i++ {
		typical := (highs[i] + lows[i] + closes[i]) / 3
		priceVolume += typical * volumes[i]
		volSum += volumes[i]
	}
	if volSum == 0 {
		return nil
	}
	return ptr(round2(priceVolume / volSum))
}

// AverageVolume returns the mean of the last period volumes rounded to a
// whole number, or nil when the series is shorter than the window.
func AverageVolume(volumes []float64, period int) *float64 {
	if period <= 0 || len(volumes) < period {
		return nil
	}
	mean := stat.Mean(volumes[len(volumes)-period:], nil)
	return ptr(math.Round(mean))
}

// VolumeTrend compares average volume between the first and second halves
// of the series and returns the percent change, rounded to 2 decimals.
// Returns 0 for series shorter than 10 points or a zero first-half average.
func VolumeTrend(volumes []float64) float64 {
	if len(volumes) < 10 {
		return 0
	}
	mid := len(volumes) / 2
	firstAvg := stat.Mean(volumes[:mid], nil)
	if firstAvg == 0 {
		return 0
	}
	secondAvg := stat.Mean(volumes[mid:], nil)
	return round2((secondAvg - firstAvg) / firstAvg * 100)
}
