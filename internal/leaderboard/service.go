// Package leaderboard scores a configured universe of symbols and ranks
// them by composite score.
package leaderboard

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/rudedude2015501/SmartTick/internal/cache"
	"github.com/rudedude2015501/SmartTick/internal/collector"
)

// Entry is one ranked symbol on the board.
type Entry struct {
	Rank        int     `json:"rank"`
	Symbol      string  `json:"symbol"`
	Score       float64 `json:"score"`
	Rating      string  `json:"rating"`
	Sentiment   float64 `json:"sentiment"`
	BuyTrades   int     `json:"buy_trades"`
	SellTrades  int     `json:"sell_trades"`
	TotalTrades int     `json:"total_trades"`
	BuyRatio    float64 `json:"buy_ratio"`
}

// Board is the result of one full leaderboard run.
type Board struct {
	GeneratedAt time.Time `json:"generated_at"`
	Entries     []Entry   `json:"entries"`
}

// ErrNoResults means every symbol in the universe failed to produce an
// analysis, so there is nothing to rank.
var ErrNoResults = errors.New("no symbols produced an analysis result")

// Service computes leaderboards over a fixed symbol universe. Each call to
// Refresh analyzes the universe concurrently; the analytics core holds no
// shared state, so per-symbol runs are independent.
type Service struct {
	collector *collector.Collector
	cache     *cache.AnalysisCache
	symbols   []string
	log       zerolog.Logger

	mu      sync.RWMutex
	current *Board
}

// New creates a leaderboard service. The cache may be nil.
func New(col *collector.Collector, c *cache.AnalysisCache, symbols []string, log zerolog.Logger) *Service {
	return &Service{
		collector: col,
		cache:     c,
		symbols:   symbols,
		log:       log.With().Str("component", "leaderboard").Logger(),
	}
}

// Refresh analyzes every symbol in the universe, ranks the successful
// results by composite score, stores the board as current, and returns it.
// Symbols that fail (fetch errors, insufficient data) are logged and
// skipped rather than failing the run.
func (s *Service) Refresh(ctx context.Context) (*Board, error) {
	var (
		mu      sync.Mutex
		results []*collector.AnalysisResult
		wg      sync.WaitGroup
	)

	for _, symbol := range s.symbols {
		wg.Add(1)
		go func(symbol string) {
			defer wg.Done()
			res, err := s.collector.Analyze(ctx, symbol)
			if err != nil {
				s.log.Warn().Str("symbol", symbol).Err(err).Msg("skipping symbol")
				return
			}
			if s.cache != nil {
				s.cache.Set(symbol, res)
			}
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
		}(symbol)
	}
	wg.Wait()

	if len(results) == 0 {
		return nil, ErrNoResults
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Symbol < results[j].Symbol
	})

	board := &Board{GeneratedAt: time.Now(), Entries: make([]Entry, len(results))}
	for i, res := range results {
		vm := res.Metrics.VolumeMetrics
		board.Entries[i] = Entry{
			Rank:        i + 1,
			Symbol:      res.Symbol,
			Score:       res.Score,
			Rating:      string(res.Rating),
			Sentiment:   res.Metrics.CongressionalSentiment,
			BuyTrades:   vm.BuyTrades,
			SellTrades:  vm.SellTrades,
			TotalTrades: vm.TotalTrades,
			BuyRatio:    vm.BuyRatio,
		}
	}

	s.mu.Lock()
	s.current = board
	s.mu.Unlock()

	s.log.Info().Int("symbols", len(s.symbols)).Int("ranked", len(board.Entries)).Msg("leaderboard refreshed")
	return board, nil
}

// Current returns the most recent board, or nil before the first refresh.
func (s *Service) Current() *Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// StrongRatings returns the entries rated STRONG BUY or STRONG SELL,
// used for alerting.
func (b *Board) StrongRatings() []Entry {
	var out []Entry
	for _, e := range b.Entries {
		if e.Rating == "STRONG BUY" || e.Rating == "STRONG SELL" {
			out = append(out, e)
		}
	}
	return out
}
