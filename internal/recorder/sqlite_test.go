package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rudedude2015501/SmartTick/internal/collector"
	"github.com/rudedude2015501/SmartTick/internal/leaderboard"
	"github.com/rudedude2015501/SmartTick/internal/model"
)

func openTestRecorder(t *testing.T) *SQLiteRecorder {
	t.Helper()
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "test.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r
}

func TestSQLiteRecorder_RecordAnalysis(t *testing.T) {
	r := openTestRecorder(t)

	sma20 := 105.5
	res := &collector.AnalysisResult{
		Symbol: "AAPL",
		Metrics: &model.Metrics{
			Symbol:      "AAPL",
			LatestPrice: 110,
			MovingAverages: model.MovingAverages{
				SMA20: &sma20,
			},
			CongressionalSentiment: 60,
			VolumeMetrics: model.VolumeMetrics{
				TotalTrades: 5, BuyTrades: 4, SellTrades: 1, BuyRatio: 80,
				DisclosedVolume: 40002.5,
			},
		},
		Rating:      model.RatingBuy,
		Score:       67.8,
		GeneratedAt: time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, r.RecordAnalysis(res))
	require.NoError(t, r.RecordAnalysis(res))

	var count int
	require.NoError(t, r.db.QueryRow(`SELECT COUNT(*) FROM analysis_snapshots WHERE symbol = 'AAPL'`).Scan(&count))
	assert.Equal(t, 2, count)

	// Unset indicators land as NULL, not zero.
	var nullRSI int
	require.NoError(t, r.db.QueryRow(`SELECT COUNT(*) FROM analysis_snapshots WHERE rsi IS NULL`).Scan(&nullRSI))
	assert.Equal(t, 2, nullRSI)

	var gotSMA float64
	require.NoError(t, r.db.QueryRow(`SELECT sma20 FROM analysis_snapshots LIMIT 1`).Scan(&gotSMA))
	assert.Equal(t, 105.5, gotSMA)
}

func TestSQLiteRecorder_RecordLeaderboard(t *testing.T) {
	r := openTestRecorder(t)

	board := &leaderboard.Board{
		GeneratedAt: time.Date(2024, 6, 3, 16, 30, 0, 0, time.UTC),
		Entries: []leaderboard.Entry{
			{Rank: 1, Symbol: "AAA", Score: 80, Rating: "STRONG BUY"},
			{Rank: 2, Symbol: "BBB", Score: 70, Rating: "BUY"},
		},
	}
	require.NoError(t, r.RecordLeaderboard(board))

	var count int
	require.NoError(t, r.db.QueryRow(`SELECT COUNT(*) FROM leaderboard_entries WHERE run_ts = ?`, board.GeneratedAt.Unix()).Scan(&count))
	assert.Equal(t, 2, count)

	var topSymbol string
	require.NoError(t, r.db.QueryRow(`SELECT symbol FROM leaderboard_entries WHERE rank = 1`).Scan(&topSymbol))
	assert.Equal(t, "AAA", topSymbol)
}

func TestNoopRecorder(t *testing.T) {
	n := NewNoopRecorder()
	assert.NoError(t, n.RecordAnalysis(nil))
	assert.NoError(t, n.RecordLeaderboard(nil))
	assert.NoError(t, n.Close())
}
