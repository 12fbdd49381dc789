package recorder

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/rudedude2015501/SmartTick/internal/collector"
	"github.com/rudedude2015501/SmartTick/internal/leaderboard"
)

// SQLiteRecorder persists analysis snapshots and leaderboard runs to a
// SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	log zerolog.Logger
	mu  sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string, log zerolog.Logger) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the service writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log.With().Str("component", "recorder").Logger()}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	r.log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_snapshots (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp         INTEGER NOT NULL,
			symbol            TEXT NOT NULL,
			latest_price      REAL,
			sma20             REAL,
			sma50             REAL,
			sma200            REAL,
			volatility        REAL,
			rsi               REAL,
			obv               REAL,
			vwap              REAL,
			sentiment         REAL,
			overall_return    REAL,
			annualized_return REAL,
			avg_volume        REAL,
			volume_trend      REAL,
			total_trades      INTEGER,
			buy_trades        INTEGER,
			sell_trades       INTEGER,
			buy_ratio         REAL,
			disclosed_volume  REAL,
			signal_count      INTEGER,
			rating            TEXT,
			score             REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_symbol_ts ON analysis_snapshots(symbol, timestamp)`,

		`CREATE TABLE IF NOT EXISTS leaderboard_entries (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			run_ts       INTEGER NOT NULL,
			rank         INTEGER NOT NULL,
			symbol       TEXT NOT NULL,
			score        REAL,
			rating       TEXT,
			sentiment    REAL,
			buy_trades   INTEGER,
			sell_trades  INTEGER,
			total_trades INTEGER,
			buy_ratio    REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_leaderboard_run ON leaderboard_entries(run_ts)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordAnalysis stores one analysis snapshot. Nullable indicators are
// stored as SQL NULLs.
func (r *SQLiteRecorder) RecordAnalysis(res *collector.AnalysisResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := res.Metrics
	_, err := r.db.Exec(`INSERT INTO analysis_snapshots
		(timestamp, symbol, latest_price, sma20, sma50, sma200, volatility, rsi,
		 obv, vwap, sentiment, overall_return, annualized_return,
		 avg_volume, volume_trend, total_trades, buy_trades, sell_trades, buy_ratio,
		 disclosed_volume, signal_count, rating, score)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		res.GeneratedAt.Unix(), res.Symbol, m.LatestPrice,
		nullable(m.MovingAverages.SMA20), nullable(m.MovingAverages.SMA50), nullable(m.MovingAverages.SMA200),
		nullable(m.Volatility), nullable(m.RSI),
		m.VolumeIndicators.OBV, nullable(m.VolumeIndicators.VWAP),
		m.CongressionalSentiment, m.Performance.OverallReturn, nullable(m.Performance.AnnualizedReturn),
		nullable(m.VolumeMetrics.AvgVolume), m.VolumeMetrics.VolumeTrend,
		m.VolumeMetrics.TotalTrades, m.VolumeMetrics.BuyTrades, m.VolumeMetrics.SellTrades, m.VolumeMetrics.BuyRatio,
		m.VolumeMetrics.DisclosedVolume, len(res.Signals), string(res.Rating), res.Score,
	)
	return err
}

// RecordLeaderboard stores every entry of one leaderboard run under a
// shared run timestamp.
func (r *SQLiteRecorder) RecordLeaderboard(board *leaderboard.Board) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	runTS := board.GeneratedAt.Unix()
	for _, e := range board.Entries {
		if _, err := tx.Exec(`INSERT INTO leaderboard_entries
			(run_ts, rank, symbol, score, rating, sentiment, buy_trades, sell_trades, total_trades, buy_ratio)
			VALUES (?,?,?,?,?,?,?,?,?,?)`,
			runTS, e.Rank, e.Symbol, e.Score, e.Rating, e.Sentiment,
			e.BuyTrades, e.SellTrades, e.TotalTrades, e.BuyRatio,
		); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}

// nullable converts a *float64 into a driver-friendly NULL-or-value.
func nullable(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
