package recorder

import (
	"github.com/rudedude2015501/SmartTick/internal/collector"
	"github.com/rudedude2015501/SmartTick/internal/leaderboard"
)

// Recorder persists analysis history for later inspection. Implementations
// must be safe for concurrent use.
type Recorder interface {
	RecordAnalysis(res *collector.AnalysisResult) error
	RecordLeaderboard(board *leaderboard.Board) error
	Close() error
}
