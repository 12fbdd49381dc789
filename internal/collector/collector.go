// Package collector fetches the raw series for a symbol and runs the full
// analytics pipeline over them.
package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/rudedude2015501/SmartTick/internal/analysis"
	"github.com/rudedude2015501/SmartTick/internal/model"
	"github.com/rudedude2015501/SmartTick/internal/strategy"
)

// Default fetch windows. A year of prices covers the SMA200 window; the
// trade limit matches what the backend trade-summary endpoint serves.
const (
	DefaultPriceDays  = 365
	DefaultTradeLimit = 100
)

// AnalysisResult bundles everything the pipeline derives for one symbol.
type AnalysisResult struct {
	Symbol      string         `json:"symbol"`
	Metrics     *model.Metrics `json:"metrics"`
	Signals     []model.Signal `json:"signals"`
	Rating      model.Rating   `json:"rating"`
	Score       float64        `json:"score"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// Collector orchestrates fetch, metrics assembly, signal generation,
// rating, and composite scoring.
type Collector struct {
	fetcher Fetcher
	log     zerolog.Logger
}

// New creates a Collector on top of the given fetcher.
func New(fetcher Fetcher, log zerolog.Logger) *Collector {
	return &Collector{
		fetcher: fetcher,
		log:     log.With().Str("component", "collector").Logger(),
	}
}

// Analyze runs the full pipeline for one symbol. Insufficient-data
// preconditions surface as the typed analysis errors so callers can tell
// "not enough price history" from "no trade data".
func (c *Collector) Analyze(ctx context.Context, symbol string) (*AnalysisResult, error) {
	prices, err := c.fetcher.FetchPriceHistory(ctx, symbol, DefaultPriceDays)
	if err != nil {
		return nil, fmt.Errorf("price history for %s: %w", symbol, err)
	}
	trades, err := c.fetcher.FetchTrades(ctx, symbol, DefaultTradeLimit)
	if err != nil {
		return nil, fmt.Errorf("trades for %s: %w", symbol, err)
	}

	metrics, err := analysis.Analyze(symbol, prices, trades)
	if err != nil {
		return nil, err
	}

	signals := strategy.GenerateSignals(metrics)
	rating := strategy.Rate(metrics, signals)
	score := strategy.Score(strategy.BuildScoreInput(metrics, prices.SortedByDate()))

	c.log.Debug().
		Str("symbol", symbol).
		Int("signals", len(signals)).
		Str("rating", string(rating)).
		Float64("score", score).
		Msg("analysis complete")

	return &AnalysisResult{
		Symbol:      symbol,
		Metrics:     metrics,
		Signals:     signals,
		Rating:      rating,
		Score:       score,
		GeneratedAt: time.Now(),
	}, nil
}
