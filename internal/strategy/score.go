package strategy

import "math"

// Flat metric keys consumed by the composite scorer.
const (
	MetricRSI14           = "rsi14"
	MetricSMASignal       = "smaSignal"
	MetricVolatility      = "volatility"
	MetricOBVTrend        = "obvTrend"
	MetricVWAPDiffPct     = "vwapDiffPct"
	MetricAvgVolume10d    = "avgVolume10d"
	MetricReturn13w       = "return13w"
	MetricCongressSent    = "congressSentiment"
	MetricCongressBuySell = "congressBuySell"
)

type scoreEntry struct {
	key       string
	weight    float64
	normalize func(float64) float64
}

// scoreTable fixes the weights and normalization curves of the composite
// score. Weights sum to 1.0; every curve clamps its output to [0, 100].
var scoreTable = []scoreEntry{
	{MetricRSI14, 0.10, normRSI},
	{MetricSMASignal, 0.10, normSMASignal},
	{MetricVolatility, 0.05, normVolatility},
	{MetricOBVTrend, 0.10, normOBV},
	{MetricVWAPDiffPct, 0.10, normVWAP},
	{MetricAvgVolume10d, 0.05, normVolume},
	{MetricReturn13w, 0.15, normReturn},
	{MetricCongressSent, 0.20, normSentiment},
	{MetricCongressBuySell, 0.15, normRatio},
}

// neutralNorm is the contribution of a metric the caller could not supply.
const neutralNorm = 50.0

// Score computes the weighted 0-100 composite from a flat metrics map,
// rounded to 1 decimal. Missing keys contribute the neutral midpoint so a
// sparse input still produces a bounded score.
func Score(metrics map[string]float64) float64 {
	var sum float64
	for _, entry := range scoreTable {
		norm := neutralNorm
		if raw, ok := metrics[entry.key]; ok {
			norm = clamp(entry.normalize(raw), 0, 100)
		}
		sum += entry.weight * norm
	}
	return math.Round(sum*10) / 10
}

func clamp(v, min, max float64) float64 {
	return math.Max(min, math.Min(max, v))
}

// normRSI is U-shaped: oversold scores high, overbought low, and the
// 30-70 midrange maps linearly from 60 down to 40.
func normRSI(rsi float64) float64 {
	switch {
	case rsi < 30:
		return 60 + (30-rsi)/30*40
	case rsi > 70:
		return 40 - (rsi-70)/30*40
	default:
		return 60 - (rsi-30)/40*20
	}
}

// normSMASignal maps the +1/0/-1 crossover signal onto 100/50/0.
func normSMASignal(signal float64) float64 {
	switch signal {
	case 1:
		return 100
	case -1:
		return 0
	default:
		return 50
	}
}

// normVolatility rewards calm price action; anything at or beyond 5%
// annualized-daily volatility scores 0.
func normVolatility(volPct float64) float64 {
	return 100 * (1 - clamp(volPct, 0, 5)/5)
}

// normOBV maps an OBV trend between -10% and +10% linearly onto the scale.
func normOBV(trendPct float64) float64 {
	return clamp((trendPct+10)/20*100, 0, 100)
}

// normVWAP maps price-vs-VWAP percent difference between -5% and +5%.
func normVWAP(pctDiff float64) float64 {
	return clamp((pctDiff+5)/10*100, 0, 100)
}

// normVolume gives full credit at one million shares of 10-day average
// volume.
func normVolume(vol float64) float64 {
	return 100 * math.Min(math.Max(vol, 0), 1_000_000) / 1_000_000
}

// normReturn maps a 13-week return between -20% and +20%.
func normReturn(retPct float64) float64 {
	return clamp((retPct+20)/40*100, 0, 100)
}

// normSentiment shifts congressional sentiment from [-100, 100] to the
// score scale.
func normSentiment(sentiment float64) float64 {
	return (sentiment + 100) / 2
}

// normRatio caps the buy/sell ratio at 2 before scaling.
func normRatio(ratio float64) float64 {
	return clamp(ratio, 0, 2) / 2 * 100
}
