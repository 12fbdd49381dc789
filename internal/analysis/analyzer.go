// Package analysis assembles the full Metrics object for one symbol from
// its price history and politician trade records.
package analysis

import (
	"errors"

	"github.com/rudedude2015501/SmartTick/internal/calculator"
	"github.com/rudedude2015501/SmartTick/internal/model"
)

// MinPricePoints is the hard floor below which no metrics are computed.
const MinPricePoints = 10

// The two precondition failures callers must handle. Everything below these
// thresholds degrades per-indicator to nil instead of failing.
var (
	ErrInsufficientPriceData = errors.New("not enough historical price data: need at least 10 days")
	ErrInsufficientTradeData = errors.New("no congressional trade data available for sentiment analysis")
)

// Analyze validates both series, sorts copies of them ascending by date,
// and computes every metric. Inputs are never mutated; individual
// indicators that lack history come back nil inside the Metrics rather
// than failing the whole computation.
func Analyze(symbol string, prices model.PriceSeries, trades model.TradeSeries) (*model.Metrics, error) {
	if len(prices) < MinPricePoints {
		return nil, ErrInsufficientPriceData
	}
	if len(trades) == 0 {
		return nil, ErrInsufficientTradeData
	}

	sortedPrices := prices.SortedByDate()
	sortedTrades := trades.SortedByDate()

	closes := sortedPrices.Closes()
	highs := sortedPrices.Highs()
	lows := sortedPrices.Lows()
	volumes := sortedPrices.Volumes()

	buys, sells, buyRatio := calculator.PoliticianVolumeMetrics(sortedTrades)

	return &model.Metrics{
		Symbol:      symbol,
		LatestPrice: closes[len(closes)-1],
		MovingAverages: model.MovingAverages{
			SMA20:  calculator.SMA(closes, 20),
			SMA50:  calculator.SMA(closes, 50),
			SMA200: calculator.SMA(closes, 200),
		},
		Volatility: calculator.Volatility(closes, highs, lows),
		RSI:        calculator.RSI(closes, calculator.DefaultRSIPeriod),
		VolumeIndicators: model.VolumeIndicators{
			OBV:  calculator.OBVTrend(closes, volumes),
			VWAP: calculator.VWAP(closes, highs, lows, volumes, calculator.DefaultVWAPPeriod),
		},
		CongressionalSentiment: calculator.CongressionalSentiment(sortedTrades),
		Performance: model.Performance{
			OverallReturn:    calculator.PercentChange(closes[0], closes[len(closes)-1]),
			AnnualizedReturn: calculator.AnnualizedReturn(sortedPrices),
		},
		VolumeMetrics: model.VolumeMetrics{
			AvgVolume:       calculator.AverageVolume(volumes, 30),
			VolumeTrend:     calculator.VolumeTrend(volumes),
			TotalTrades:     len(sortedTrades),
			BuyTrades:       buys,
			SellTrades:      sells,
			BuyRatio:        buyRatio,
			DisclosedVolume: calculator.TotalTradeValue(sortedTrades),
		},
	}, nil
}
