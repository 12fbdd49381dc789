package strategy

import (
	"github.com/rudedude2015501/SmartTick/internal/calculator"
	"github.com/rudedude2015501/SmartTick/internal/model"
)

// thirteenWeeks in trading days, for the medium-term return metric.
const thirteenWeeks = 65

// BuildScoreInput flattens a Metrics object (plus the sorted price series
// it was computed from) into the map the composite scorer consumes. Keys
// whose underlying indicator is unavailable are left out so Score falls
// back to the neutral midpoint for them.
func BuildScoreInput(m *model.Metrics, prices model.PriceSeries) map[string]float64 {
	input := map[string]float64{
		MetricOBVTrend:     m.VolumeIndicators.OBV,
		MetricCongressSent: m.CongressionalSentiment,
	}

	if m.RSI != nil {
		input[MetricRSI14] = *m.RSI
	}
	if m.Volatility != nil {
		input[MetricVolatility] = *m.Volatility
	}

	if sma20, sma50 := m.MovingAverages.SMA20, m.MovingAverages.SMA50; sma20 != nil && sma50 != nil {
		switch {
		case *sma20 > *sma50:
			input[MetricSMASignal] = 1
		case *sma20 < *sma50:
			input[MetricSMASignal] = -1
		default:
			input[MetricSMASignal] = 0
		}
	}

	if vwap := m.VolumeIndicators.VWAP; vwap != nil && *vwap > 0 {
		input[MetricVWAPDiffPct] = calculator.PercentChange(*vwap, m.LatestPrice)
	}

	volumes := prices.Volumes()
	if avg := calculator.AverageVolume(volumes, 10); avg != nil {
		input[MetricAvgVolume10d] = *avg
	}

	closes := prices.Closes()
	if len(closes) >= 2 {
		start := 0
		if len(closes) > thirteenWeeks {
			start = len(closes) - thirteenWeeks - 1
		}
		input[MetricReturn13w] = calculator.PercentChange(closes[start], closes[len(closes)-1])
	}

	buys, sells := m.VolumeMetrics.BuyTrades, m.VolumeMetrics.SellTrades
	switch {
	case sells > 0:
		input[MetricCongressBuySell] = float64(buys) / float64(sells)
	case buys > 0:
		// All buys: report the capped maximum rather than dividing by zero.
		input[MetricCongressBuySell] = 2
	}

	return input
}
