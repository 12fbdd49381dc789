package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/rudedude2015501/SmartTick/internal/analysis"
	"github.com/rudedude2015501/SmartTick/internal/cache"
	"github.com/rudedude2015501/SmartTick/internal/collector"
	"github.com/rudedude2015501/SmartTick/internal/leaderboard"
)

type handlers struct {
	collector   *collector.Collector
	cache       *cache.AnalysisCache
	leaderboard *leaderboard.Service
	log         zerolog.Logger
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// analysis serves the full result for one symbol, cached per TTL.
func (h *handlers) analysis(w http.ResponseWriter, r *http.Request) {
	res, status, errMsg := h.analyze(r)
	if errMsg != "" {
		writeJSON(w, status, map[string]string{"error": errMsg})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// score serves just the composite score and rating for one symbol.
func (h *handlers) score(w http.ResponseWriter, r *http.Request) {
	res, status, errMsg := h.analyze(r)
	if errMsg != "" {
		writeJSON(w, status, map[string]string{"error": errMsg})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"symbol": res.Symbol,
		"score":  res.Score,
		"rating": res.Rating,
	})
}

func (h *handlers) analyze(r *http.Request) (*collector.AnalysisResult, int, string) {
	symbol := strings.ToUpper(chi.URLParam(r, "symbol"))
	if symbol == "" {
		return nil, http.StatusBadRequest, "symbol is required"
	}

	if res, ok := h.cache.Get(symbol); ok {
		return res, http.StatusOK, ""
	}

	res, err := h.collector.Analyze(r.Context(), symbol)
	switch {
	case err == nil:
		h.cache.Set(symbol, res)
		return res, http.StatusOK, ""
	case errors.Is(err, analysis.ErrInsufficientPriceData),
		errors.Is(err, analysis.ErrInsufficientTradeData):
		// Expected, recoverable: the UI shows the specific message.
		return nil, http.StatusUnprocessableEntity, err.Error()
	default:
		h.log.Error().Err(err).Str("symbol", symbol).Msg("analysis failed")
		return nil, http.StatusBadGateway, "upstream data fetch failed"
	}
}

func (h *handlers) board(w http.ResponseWriter, r *http.Request) {
	board := h.leaderboard.Current()
	if board == nil {
		// First request before any scheduled run computes it on demand.
		var err error
		board, err = h.leaderboard.Refresh(r.Context())
		if err != nil {
			h.log.Error().Err(err).Msg("on-demand leaderboard refresh failed")
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": "leaderboard unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, board)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
