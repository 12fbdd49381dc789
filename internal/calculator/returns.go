package calculator

import (
	"math"

	"github.com/rudedude2015501/SmartTick/internal/model"
)

// minYearSpan is roughly one month; annualizing shorter windows produces
// absurd extrapolations.
const minYearSpan = 0.08

// PercentChange returns the percent change from start to end, rounded to
// 2 decimals. A zero or negative start yields 0.
func PercentChange(start, end float64) float64 {
	if start <= 0 {
		return 0
	}
	return round2((end - start) / start * 100)
}

// AnnualizedReturn computes the compound annual growth rate over the span
// of the series as a percentage, rounded to 2 decimals. The series must be
// sorted ascending by date, cover at least ~1 month, and start from a
// positive price; otherwise nil.
func AnnualizedReturn(series model.PriceSeries) *float64 {
	if len(series) < 2 {
		return nil
	}
	first, last := series[0], series[len(series)-1]
	years := last.Date.Sub(first.Date).Hours() / 24 / 365
	if years < minYearSpan || first.Close <= 0 {
		return nil
	}
	totalReturn := last.Close/first.Close - 1
	cagr := math.Pow(1+totalReturn, 1/years) - 1
	return ptr(round2(cagr * 100))
}
