// Package calculator provides the pure indicator functions behind the
// SmartTick analytics pipeline. Every function is deterministic, leaves its
// inputs untouched, and degrades to a nil or zero result when the series is
// too short instead of returning an error.
package calculator

import "math"

// tradingDaysPerYear is the standard annualization base.
const tradingDaysPerYear = 252

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func ptr(v float64) *float64 { return &v }
