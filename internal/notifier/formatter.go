package notifier

import (
	"fmt"
	"strings"

	"github.com/rudedude2015501/SmartTick/internal/collector"
	"github.com/rudedude2015501/SmartTick/internal/leaderboard"
	"github.com/rudedude2015501/SmartTick/internal/model"
)

// FormatAnalysisReport renders one analysis result as a Telegram message.
func FormatAnalysisReport(res *collector.AnalysisResult) string {
	m := res.Metrics
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>%s</b> | %s\n\n", res.Symbol, res.GeneratedAt.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Price: $%.2f\n", m.LatestPrice))
	b.WriteString(fmt.Sprintf("SMA20: %s | SMA50: %s | SMA200: %s\n",
		fmtIndicator(m.MovingAverages.SMA20), fmtIndicator(m.MovingAverages.SMA50), fmtIndicator(m.MovingAverages.SMA200)))
	b.WriteString(fmt.Sprintf("RSI: %s | Volatility: %s%%\n", fmtIndicator(m.RSI), fmtIndicator(m.Volatility)))
	b.WriteString(fmt.Sprintf("OBV trend: %+.2f | VWAP: %s\n", m.VolumeIndicators.OBV, fmtIndicator(m.VolumeIndicators.VWAP)))
	b.WriteString(fmt.Sprintf("Overall return: %+.2f%%", m.Performance.OverallReturn))
	if m.Performance.AnnualizedReturn != nil {
		b.WriteString(fmt.Sprintf(" (annualized %+.2f%%)", *m.Performance.AnnualizedReturn))
	}
	b.WriteString("\n\n")

	b.WriteString("🏛 <b>Congressional activity:</b>\n")
	b.WriteString(fmt.Sprintf("  Sentiment: %+.1f\n", m.CongressionalSentiment))
	b.WriteString(fmt.Sprintf("  Trades: %d (%d buys / %d sells, %.1f%% buys)\n",
		m.VolumeMetrics.TotalTrades, m.VolumeMetrics.BuyTrades, m.VolumeMetrics.SellTrades, m.VolumeMetrics.BuyRatio))
	if m.VolumeMetrics.DisclosedVolume > 0 {
		b.WriteString(fmt.Sprintf("  Disclosed volume: ~$%.0f\n", m.VolumeMetrics.DisclosedVolume))
	}
	b.WriteString("\n")

	if len(res.Signals) > 0 {
		b.WriteString("🚦 <b>Signals:</b>\n")
		for _, s := range res.Signals {
			b.WriteString(fmt.Sprintf("  %s %s [%s] %s\n", signalEmoji(s.Type), s.Strength, s.Indicator, s.Message))
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("Rating: <b>%s</b> | Score: <b>%.1f</b>/100\n", res.Rating, res.Score))
	return b.String()
}

// FormatLeaderboard renders the current board, top entries first.
func FormatLeaderboard(board *leaderboard.Board, limit int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🏆 <b>Leaderboard</b> | %s\n\n", board.GeneratedAt.Format("2006-01-02 15:04")))
	for _, e := range board.Entries {
		if limit > 0 && e.Rank > limit {
			break
		}
		b.WriteString(fmt.Sprintf("%2d. <b>%s</b>  %.1f  %s  (sentiment %+.0f, %d trades)\n",
			e.Rank, e.Symbol, e.Score, e.Rating, e.Sentiment, e.TotalTrades))
	}
	return b.String()
}

// FormatStrongRatingAlert renders the alert sent when a scheduled run
// finds symbols with a strong rating.
func FormatStrongRatingAlert(entries []leaderboard.Entry) string {
	var b strings.Builder
	b.WriteString("⚠️ <b>Strong rating alert</b>\n\n")
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("%s: %s (score %.1f)\n", e.Symbol, e.Rating, e.Score))
	}
	return b.String()
}

func fmtIndicator(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *v)
}

func signalEmoji(t model.SignalType) string {
	if t == model.SignalBuy {
		return "🟢"
	}
	return "🔴"
}
