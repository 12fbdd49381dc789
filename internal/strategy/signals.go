// Package strategy turns a Metrics object into discrete buy/sell signals,
// an overall five-level rating, and a weighted 0-100 composite score.
package strategy

import "github.com/rudedude2015501/SmartTick/internal/model"

// Signal thresholds. The same values drive both signal generation and the
// rating tie-breaks.
const (
	rsiOversold    = 30
	rsiOverbought  = 70
	sentimentLimit = 30
	obvLimit       = 30
)

// GenerateSignals evaluates every rule against the metrics. Rules are
// independent and cumulative; no triggered rule means an empty list.
func GenerateSignals(m *model.Metrics) []model.Signal {
	if m == nil {
		return nil
	}

	signals := []model.Signal{}

	if m.RSI != nil {
		switch {
		case *m.RSI < rsiOversold:
			signals = append(signals, model.Signal{
				Type: model.SignalBuy, Strength: model.StrengthStrong, Indicator: "RSI",
				Message: "RSI below 30 indicates oversold conditions",
			})
		case *m.RSI > rsiOverbought:
			signals = append(signals, model.Signal{
				Type: model.SignalSell, Strength: model.StrengthStrong, Indicator: "RSI",
				Message: "RSI above 70 indicates overbought conditions",
			})
		}
	}

	if sma20, sma50 := m.MovingAverages.SMA20, m.MovingAverages.SMA50; sma20 != nil && sma50 != nil {
		switch {
		case *sma20 > *sma50:
			signals = append(signals, model.Signal{
				Type: model.SignalBuy, Strength: model.StrengthModerate, Indicator: "SMA",
				Message: "20-day SMA above 50-day SMA (golden cross)",
			})
		case *sma20 < *sma50:
			signals = append(signals, model.Signal{
				Type: model.SignalSell, Strength: model.StrengthModerate, Indicator: "SMA",
				Message: "20-day SMA below 50-day SMA (death cross)",
			})
		}
	}

	switch {
	case m.CongressionalSentiment > sentimentLimit:
		signals = append(signals, model.Signal{
			Type: model.SignalBuy, Strength: model.StrengthModerate, Indicator: "Congress",
			Message: "Strong buying activity among politicians",
		})
	case m.CongressionalSentiment < -sentimentLimit:
		signals = append(signals, model.Signal{
			Type: model.SignalSell, Strength: model.StrengthModerate, Indicator: "Congress",
			Message: "Strong selling activity among politicians",
		})
	}

	switch {
	case m.VolumeIndicators.OBV > obvLimit:
		signals = append(signals, model.Signal{
			Type: model.SignalBuy, Strength: model.StrengthModerate, Indicator: "OBV",
			Message: "Positive volume trend",
		})
	case m.VolumeIndicators.OBV < -obvLimit:
		signals = append(signals, model.Signal{
			Type: model.SignalSell, Strength: model.StrengthModerate, Indicator: "OBV",
			Message: "Negative volume trend",
		})
	}

	return signals
}
