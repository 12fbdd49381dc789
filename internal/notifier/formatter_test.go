package notifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rudedude2015501/SmartTick/internal/collector"
	"github.com/rudedude2015501/SmartTick/internal/leaderboard"
	"github.com/rudedude2015501/SmartTick/internal/model"
)

func sampleResult() *collector.AnalysisResult {
	sma20 := 105.5
	return &collector.AnalysisResult{
		Symbol: "AAPL",
		Metrics: &model.Metrics{
			Symbol:      "AAPL",
			LatestPrice: 110.25,
			MovingAverages: model.MovingAverages{
				SMA20: &sma20,
			},
			CongressionalSentiment: 60,
			VolumeMetrics: model.VolumeMetrics{
				TotalTrades: 10, BuyTrades: 8, SellTrades: 2, BuyRatio: 80,
				DisclosedVolume: 123456,
			},
		},
		Signals: []model.Signal{
			{Type: model.SignalBuy, Strength: model.StrengthModerate, Indicator: "Congress", Message: "Strong buying activity among politicians"},
		},
		Rating:      model.RatingBuy,
		Score:       67.8,
		GeneratedAt: time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC),
	}
}

func TestFormatAnalysisReport(t *testing.T) {
	got := FormatAnalysisReport(sampleResult())

	assert.Contains(t, got, "<b>AAPL</b>")
	assert.Contains(t, got, "Price: $110.25")
	assert.Contains(t, got, "SMA20: 105.50")
	assert.Contains(t, got, "SMA50: n/a", "missing indicators render as n/a")
	assert.Contains(t, got, "10 (8 buys / 2 sells, 80.0% buys)")
	assert.Contains(t, got, "Disclosed volume: ~$123456")
	assert.Contains(t, got, "Strong buying activity among politicians")
	assert.Contains(t, got, "Rating: <b>BUY</b> | Score: <b>67.8</b>/100")
}

func TestFormatLeaderboard_RespectsLimit(t *testing.T) {
	board := &leaderboard.Board{
		GeneratedAt: time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC),
		Entries: []leaderboard.Entry{
			{Rank: 1, Symbol: "AAA", Score: 80, Rating: "STRONG BUY"},
			{Rank: 2, Symbol: "BBB", Score: 70, Rating: "BUY"},
			{Rank: 3, Symbol: "CCC", Score: 60, Rating: "NEUTRAL"},
		},
	}
	got := FormatLeaderboard(board, 2)
	assert.Contains(t, got, "AAA")
	assert.Contains(t, got, "BBB")
	assert.NotContains(t, got, "CCC")
}

func TestFormatStrongRatingAlert(t *testing.T) {
	got := FormatStrongRatingAlert([]leaderboard.Entry{
		{Symbol: "AAA", Rating: "STRONG BUY", Score: 81.5},
	})
	assert.Contains(t, got, "Strong rating alert")
	assert.Contains(t, got, "AAA: STRONG BUY (score 81.5)")
}
