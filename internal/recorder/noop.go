package recorder

import (
	"github.com/rudedude2015501/SmartTick/internal/collector"
	"github.com/rudedude2015501/SmartTick/internal/leaderboard"
)

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordAnalysis(_ *collector.AnalysisResult) error { return nil }
func (n *NoopRecorder) RecordLeaderboard(_ *leaderboard.Board) error     { return nil }
func (n *NoopRecorder) Close() error                                     { return nil }
