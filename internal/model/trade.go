package model

import (
	"encoding/json"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// TradeType classifies a disclosed trade. Anything that is not a buy or a
// sell (exchanges, options exercises, blank fields) counts as neither.
type TradeType string

const (
	TradeBuy  TradeType = "buy"
	TradeSell TradeType = "sell"
)

// Trade is one disclosed politician trade. TradedDate and Price are
// normalized at ingestion; calculators never see the wire variants.
type Trade struct {
	TradedDate time.Time
	Type       string
	Price      *float64 // nil when absent or unparseable
	Size       string
	Politician string
	Symbol     string
}

// tradeWire mirrors the backend JSON. The feed is inconsistent about the
// date field name and ships prices either as numbers or as "$1,234.56".
type tradeWire struct {
	Traded     string          `json:"traded"`
	TradeDate  string          `json:"trade_date"`
	Type       string          `json:"type"`
	Price      json.RawMessage `json:"price"`
	Size       json.RawMessage `json:"size"`
	Politician string          `json:"politician"`
	Symbol     string          `json:"symbol"`
}

// UnmarshalJSON normalizes the wire shape into the canonical Trade fields.
func (t *Trade) UnmarshalJSON(data []byte) error {
	var w tradeWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	raw := w.Traded
	if raw == "" {
		raw = w.TradeDate
	}
	t.TradedDate = parseTradeDate(raw)
	t.Type = w.Type
	t.Price = parsePriceValue(w.Price)
	t.Size = rawToString(w.Size)
	t.Politician = w.Politician
	t.Symbol = w.Symbol
	return nil
}

func parseTradeDate(raw string) time.Time {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// parsePriceValue accepts a JSON number or a currency-formatted string.
// Returns nil for anything that does not yield a positive price.
func parsePriceValue(raw json.RawMessage) *float64 {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		if num > 0 {
			return &num
		}
		return nil
	}
	var str string
	if err := json.Unmarshal(raw, &str); err != nil {
		return nil
	}
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(str))
	num, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || num <= 0 {
		return nil
	}
	return &num
}

func rawToString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}
	return strings.Trim(string(raw), `"`)
}

// IsBuy reports whether the trade is a buy, case-insensitively.
func (t Trade) IsBuy() bool { return strings.EqualFold(t.Type, string(TradeBuy)) }

// IsSell reports whether the trade is a sell, case-insensitively.
func (t Trade) IsSell() bool { return strings.EqualFold(t.Type, string(TradeSell)) }

// SizeValue returns the representative dollar magnitude of the disclosed
// size range. See ParseSizeValue.
func (t Trade) SizeValue() float64 { return ParseSizeValue(t.Size) }

var sizeToken = regexp.MustCompile(`(\d[\d,]*(?:\.\d+)?)\s*([KkMm])?`)

// ParseSizeValue parses disclosure size text ("$1,001 - $15,000", "<$1,000",
// "2.5M") into a single dollar figure: the midpoint for a range, the bound
// for "<" expressions, the value itself for a single token, 0 otherwise.
func ParseSizeValue(size string) float64 {
	if size == "" {
		return 0
	}
	matches := sizeToken.FindAllStringSubmatch(size, -1)
	var values []float64
	for _, m := range matches {
		text := strings.ReplaceAll(m[1], ",", "")
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			continue
		}
		switch strings.ToUpper(m[2]) {
		case "K":
			v *= 1_000
		case "M":
			v *= 1_000_000
		}
		values = append(values, v)
	}
	switch {
	case len(values) == 0:
		return 0
	case len(values) == 1:
		return values[0]
	default:
		// "<$1,000" style bounds carry a single token; ranges use the
		// first two tokens and ignore any trailing noise.
		return (values[0] + values[1]) / 2
	}
}

// TradeSeries holds trades for one symbol or politician.
type TradeSeries []Trade

// SortedByDate returns a copy sorted ascending by traded date (stable).
func (s TradeSeries) SortedByDate() TradeSeries {
	out := make(TradeSeries, len(s))
	copy(out, s)
	sort.SliceStable(out, func(i, j int) bool { return out[i].TradedDate.Before(out[j].TradedDate) })
	return out
}
