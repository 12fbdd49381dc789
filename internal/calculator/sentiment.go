package calculator

import "github.com/rudedude2015501/SmartTick/internal/model"

// sentimentWindow is how many of the most recent trades feed the
// congressional sentiment metric.
const sentimentWindow = 20

// CongressionalSentiment scales the buy/sell imbalance of the most recent
// 20 trades to [-100, 100] (+100 all buys, -100 all sells), rounded to 2
// decimals. Trades that are neither buys nor sells are ignored; with no
// countable trades the sentiment is 0. The series must be sorted ascending
// by date.
func CongressionalSentiment(trades model.TradeSeries) float64 {
	recent := trades
	if len(recent) > sentimentWindow {
		recent = recent[len(recent)-sentimentWindow:]
	}

	var buys, sells int
	for _, t := range recent {
		switch {
		case t.IsBuy():
			buys++
		case t.IsSell():
			sells++
		}
	}
	if buys+sells == 0 {
		return 0
	}
	return round2(float64(buys-sells) / float64(buys+sells) * 100)
}

// PoliticianVolumeMetrics summarizes politician trade activity: buy and
// sell counts and the buy percentage in [0, 100].
func PoliticianVolumeMetrics(trades model.TradeSeries) (buys, sells int, buyRatio float64) {
	for _, t := range trades {
		switch {
		case t.IsBuy():
			buys++
		case t.IsSell():
			sells++
		}
	}
	if buys+sells > 0 {
		buyRatio = round2(float64(buys) / float64(buys+sells) * 100)
	}
	return buys, sells, buyRatio
}

// TotalTradeValue sums the representative dollar magnitude of every trade's
// disclosed size range. Unparseable sizes contribute 0.
func TotalTradeValue(trades model.TradeSeries) float64 {
	var total float64
	for _, t := range trades {
		total += t.SizeValue()
	}
	return total
}
