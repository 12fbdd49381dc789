package strategy

import "github.com/rudedude2015501/SmartTick/internal/model"

// Rate derives the five-level rating from the signal list plus per-metric
// tie-break terms. The tie-breaks re-apply the signal thresholds directly,
// so a condition that already emitted a signal counts twice. That mirrors
// the historical SmartTick behavior and is kept on purpose.
func Rate(m *model.Metrics, signals []model.Signal) model.Rating {
	if m == nil {
		return model.RatingNeutral
	}

	var buySignals, sellSignals int
	for _, s := range signals {
		switch s.Type {
		case model.SignalBuy:
			buySignals++
		case model.SignalSell:
			sellSignals++
		}
	}

	score := buySignals - sellSignals +
		rsiTieBreak(m) + smaTieBreak(m) + congressTieBreak(m) + obvTieBreak(m)

	switch {
	case score >= 3:
		return model.RatingStrongBuy
	case score > 0:
		return model.RatingBuy
	case score == 0:
		return model.RatingNeutral
	case score > -3:
		return model.RatingSell
	default:
		return model.RatingStrongSell
	}
}

func rsiTieBreak(m *model.Metrics) int {
	if m.RSI == nil {
		return 0
	}
	switch {
	case *m.RSI > rsiOverbought:
		return -1
	case *m.RSI < rsiOversold:
		return 1
	default:
		return 0
	}
}

func smaTieBreak(m *model.Metrics) int {
	sma20, sma50 := m.MovingAverages.SMA20, m.MovingAverages.SMA50
	if sma20 == nil || sma50 == nil {
		return 0
	}
	if *sma20 > *sma50 {
		return 1
	}
	return -1
}

func congressTieBreak(m *model.Metrics) int {
	switch {
	case m.CongressionalSentiment > sentimentLimit:
		return 1
	case m.CongressionalSentiment < -sentimentLimit:
		return -1
	default:
		return 0
	}
}

func obvTieBreak(m *model.Metrics) int {
	switch {
	case m.VolumeIndicators.OBV > obvLimit:
		return 1
	case m.VolumeIndicators.OBV < -obvLimit:
		return -1
	default:
		return 0
	}
}
