package collector

import (
	"context"

	"github.com/rudedude2015501/SmartTick/internal/model"
)

// Fetcher retrieves the two series the analytics pipeline consumes.
type Fetcher interface {
	FetchPriceHistory(ctx context.Context, symbol string, days int) (model.PriceSeries, error)
	FetchTrades(ctx context.Context, symbol string, limit int) (model.TradeSeries, error)
	Name() string
}
