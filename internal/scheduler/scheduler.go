// Package scheduler runs the recurring jobs: leaderboard refreshes,
// history recording, and strong-rating alerts.
package scheduler

import (
	"context"
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/rudedude2015501/SmartTick/internal/cache"
	"github.com/rudedude2015501/SmartTick/internal/collector"
	"github.com/rudedude2015501/SmartTick/internal/leaderboard"
	"github.com/rudedude2015501/SmartTick/internal/notifier"
	"github.com/rudedude2015501/SmartTick/internal/recorder"
)

// Scheduler manages all cron tasks.
type Scheduler struct {
	Cron        *cron.Cron
	Collector   *collector.Collector
	Leaderboard *leaderboard.Service
	Cache       *cache.AnalysisCache
	Notifier    *notifier.TelegramNotifier
	Recorder    recorder.Recorder
	Ctx         context.Context
	log         zerolog.Logger
}

// New creates a Scheduler. Notifier may be nil when Telegram is not
// configured.
func New(ctx context.Context, col *collector.Collector, lb *leaderboard.Service, c *cache.AnalysisCache, tn *notifier.TelegramNotifier, rec recorder.Recorder, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		Cron:        cron.New(cron.WithSeconds()),
		Collector:   col,
		Leaderboard: lb,
		Cache:       c,
		Notifier:    tn,
		Recorder:    rec,
		Ctx:         ctx,
		log:         log.With().Str("component", "scheduler").Logger(),
	}
}

// RegisterAll registers the leaderboard refresh job.
func (s *Scheduler) RegisterAll(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	s.log.Info().Msg("scheduler stopped")
}

// RunRefreshNow executes the refresh task immediately (manual trigger /
// RUN_ON_START).
func (s *Scheduler) RunRefreshNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	s.log.Info().Msg("running leaderboard refresh")

	// Stale per-symbol entries must not outlive the refresh that
	// supersedes them.
	s.Cache.Clear()

	board, err := s.Leaderboard.Refresh(s.Ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("leaderboard refresh failed")
		s.trySend(fmt.Sprintf("❌ Leaderboard refresh failed: %v", err))
		return
	}

	if err := s.Recorder.RecordLeaderboard(board); err != nil {
		s.log.Error().Err(err).Msg("record leaderboard")
	}
	for _, symbol := range boardSymbols(board) {
		if res, ok := s.Cache.Get(symbol); ok {
			if err := s.Recorder.RecordAnalysis(res); err != nil {
				s.log.Error().Err(err).Str("symbol", symbol).Msg("record analysis")
			}
		}
	}

	if strong := board.StrongRatings(); len(strong) > 0 {
		s.trySend(notifier.FormatStrongRatingAlert(strong))
	}
}

// HandleCommand serves the Telegram chat commands.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}

	switch strings.ToLower(fields[0]) {
	case "/analyze":
		if len(fields) < 2 {
			return "Usage: /analyze SYMBOL"
		}
		symbol := strings.ToUpper(fields[1])
		if res, ok := s.Cache.Get(symbol); ok {
			return notifier.FormatAnalysisReport(res)
		}
		res, err := s.Collector.Analyze(s.Ctx, symbol)
		if err != nil {
			return fmt.Sprintf("Analysis failed for %s: %v", symbol, err)
		}
		s.Cache.Set(symbol, res)
		if err := s.Recorder.RecordAnalysis(res); err != nil {
			s.log.Error().Err(err).Str("symbol", symbol).Msg("record analysis")
		}
		return notifier.FormatAnalysisReport(res)

	case "/leaderboard":
		board := s.Leaderboard.Current()
		if board == nil {
			return "No leaderboard yet. It is computed on the configured schedule."
		}
		return notifier.FormatLeaderboard(board, 10)

	case "/help":
		return "Commands:\n/analyze SYMBOL - full analysis for one stock\n/leaderboard - current top-ranked symbols\n/help - this message"

	default:
		return ""
	}
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		s.log.Error().Err(err).Msg("telegram notify failed")
	}
}

func boardSymbols(board *leaderboard.Board) []string {
	symbols := make([]string, len(board.Entries))
	for i, e := range board.Entries {
		symbols[i] = e.Symbol
	}
	return symbols
}
