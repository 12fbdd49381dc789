package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rudedude2015501/SmartTick/internal/model"
)

func dailyPrices(n int, startClose float64) model.PriceSeries {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make(model.PriceSeries, n)
	for i := 0; i < n; i++ {
		c := startClose + float64(i)
		out[i] = model.PricePoint{
			Date:   base.AddDate(0, 0, i),
			Open:   c - 0.5,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 1000,
		}
	}
	return out
}

func buyTrades(n int) model.TradeSeries {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make(model.TradeSeries, n)
	for i := 0; i < n; i++ {
		out[i] = model.Trade{
			TradedDate: base.AddDate(0, 0, i),
			Type:       "buy",
			Size:       "$1,001 - $15,000",
		}
	}
	return out
}

func TestAnalyze_InsufficientPriceData(t *testing.T) {
	_, err := Analyze("AAPL", dailyPrices(9, 100), buyTrades(5))
	require.ErrorIs(t, err, ErrInsufficientPriceData)
}

func TestAnalyze_InsufficientTradeData(t *testing.T) {
	_, err := Analyze("AAPL", dailyPrices(10, 100), nil)
	require.ErrorIs(t, err, ErrInsufficientTradeData)
}

func TestAnalyze_MinimalSeries(t *testing.T) {
	m, err := Analyze("AAPL", dailyPrices(10, 100), buyTrades(5))
	require.NoError(t, err)

	assert.Equal(t, "AAPL", m.Symbol)
	assert.Equal(t, 109.0, m.LatestPrice)

	// Short-history indicators degrade instead of failing the call.
	assert.Nil(t, m.MovingAverages.SMA20)
	assert.Nil(t, m.MovingAverages.SMA50)
	assert.Nil(t, m.MovingAverages.SMA200)
	assert.Nil(t, m.RSI)
	assert.Nil(t, m.VolumeIndicators.VWAP)
	assert.Zero(t, m.VolumeIndicators.OBV)
	assert.Nil(t, m.Performance.AnnualizedReturn)
	assert.Nil(t, m.VolumeMetrics.AvgVolume)

	assert.NotNil(t, m.Volatility)
	assert.Equal(t, 9.0, m.Performance.OverallReturn)
	assert.Equal(t, 100.0, m.CongressionalSentiment)
	assert.Zero(t, m.VolumeMetrics.VolumeTrend)
	assert.Equal(t, 5, m.VolumeMetrics.TotalTrades)
	assert.Equal(t, 5, m.VolumeMetrics.BuyTrades)
	assert.Zero(t, m.VolumeMetrics.SellTrades)
	assert.Equal(t, 100.0, m.VolumeMetrics.BuyRatio)
	assert.Equal(t, 5*8000.5, m.VolumeMetrics.DisclosedVolume)
}

func TestAnalyze_LongSeries(t *testing.T) {
	m, err := Analyze("MSFT", dailyPrices(250, 100), buyTrades(3))
	require.NoError(t, err)

	require.NotNil(t, m.MovingAverages.SMA20)
	require.NotNil(t, m.MovingAverages.SMA50)
	require.NotNil(t, m.MovingAverages.SMA200)
	assert.Greater(t, *m.MovingAverages.SMA20, *m.MovingAverages.SMA50)
	require.NotNil(t, m.RSI)
	assert.Equal(t, 100.0, *m.RSI)
	require.NotNil(t, m.VolumeIndicators.VWAP)
	require.NotNil(t, m.Performance.AnnualizedReturn)
	require.NotNil(t, m.VolumeMetrics.AvgVolume)
	assert.Equal(t, 1000.0, *m.VolumeMetrics.AvgVolume)
}

func TestAnalyze_SortsWithoutMutatingInput(t *testing.T) {
	prices := dailyPrices(10, 100)
	// Reverse so the newest close is first.
	for i, j := 0, len(prices)-1; i < j; i, j = i+1, j-1 {
		prices[i], prices[j] = prices[j], prices[i]
	}
	first := prices[0]

	m, err := Analyze("AAPL", prices, buyTrades(2))
	require.NoError(t, err)

	// Metrics reflect chronological order, not input order.
	assert.Equal(t, 109.0, m.LatestPrice)
	assert.Equal(t, 9.0, m.Performance.OverallReturn)
	// The caller's slice is left as passed.
	assert.Equal(t, first, prices[0])
}
