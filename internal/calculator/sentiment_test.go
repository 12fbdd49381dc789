package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rudedude2015501/SmartTick/internal/model"
)

func mkTrades(types ...string) model.TradeSeries {
	out := make(model.TradeSeries, len(types))
	for i, tt := range types {
		out[i] = model.Trade{Type: tt}
	}
	return out
}

func TestCongressionalSentiment_AllBuys(t *testing.T) {
	assert.Equal(t, 100.0, CongressionalSentiment(mkTrades("buy", "buy", "buy")))
}

func TestCongressionalSentiment_Mixed(t *testing.T) {
	types := make([]string, 0, 20)
	for i := 0; i < 12; i++ {
		types = append(types, "buy")
	}
	for i := 0; i < 8; i++ {
		types = append(types, "sell")
	}
	assert.Equal(t, 20.0, CongressionalSentiment(mkTrades(types...)))
}

func TestCongressionalSentiment_WindowIsLastTwenty(t *testing.T) {
	// 5 old sells followed by 20 buys: only the buys fall in the window.
	types := make([]string, 0, 25)
	for i := 0; i < 5; i++ {
		types = append(types, "sell")
	}
	for i := 0; i < 20; i++ {
		types = append(types, "buy")
	}
	assert.Equal(t, 100.0, CongressionalSentiment(mkTrades(types...)))
}

func TestCongressionalSentiment_CaseInsensitive(t *testing.T) {
	assert.Equal(t, 0.0, CongressionalSentiment(mkTrades("BUY", "Sell")))
}

func TestCongressionalSentiment_NoCountableTrades(t *testing.T) {
	assert.Equal(t, 0.0, CongressionalSentiment(nil))
	assert.Equal(t, 0.0, CongressionalSentiment(mkTrades("exchange", "")))
}

func TestPoliticianVolumeMetrics(t *testing.T) {
	buys, sells, ratio := PoliticianVolumeMetrics(mkTrades("buy", "buy", "buy", "sell", "exchange"))
	assert.Equal(t, 3, buys)
	assert.Equal(t, 1, sells)
	assert.Equal(t, 75.0, ratio)
}

func TestPoliticianVolumeMetrics_Empty(t *testing.T) {
	buys, sells, ratio := PoliticianVolumeMetrics(nil)
	assert.Zero(t, buys)
	assert.Zero(t, sells)
	assert.Zero(t, ratio)
}

func TestTotalTradeValue(t *testing.T) {
	trades := model.TradeSeries{
		{Size: "$1,001 - $15,000"},
		{Size: "$1,001 - $15,000"},
		{Size: ""},
	}
	assert.Equal(t, 16001.0, TotalTradeValue(trades))
}
