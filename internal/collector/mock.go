package collector

import (
	"context"
	"time"

	"github.com/rudedude2015501/SmartTick/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	BasePrice float64
	Prices    model.PriceSeries
	Trades    model.TradeSeries
	Err       error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchPriceHistory(_ context.Context, _ string, days int) (model.PriceSeries, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Prices != nil {
		return m.Prices, nil
	}
	return GenerateMockPrices(m.BasePrice, days), nil
}

func (m *MockFetcher) FetchTrades(_ context.Context, _ string, limit int) (model.TradeSeries, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Trades != nil {
		return m.Trades, nil
	}
	return GenerateMockTrades(limit), nil
}

// GenerateMockPrices builds a gently trending daily series ending today.
func GenerateMockPrices(basePrice float64, count int) model.PriceSeries {
	if basePrice <= 0 {
		basePrice = 100
	}
	series := make(model.PriceSeries, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		series[i] = model.PricePoint{
			Date:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1_000_000,
		}
	}
	return series
}

// GenerateMockTrades alternates buys and sells, most recent last.
func GenerateMockTrades(count int) model.TradeSeries {
	trades := make(model.TradeSeries, count)
	for i := 0; i < count; i++ {
		tradeType := "buy"
		if i%3 == 0 {
			tradeType = "sell"
		}
		price := 100.0 + float64(i)
		trades[i] = model.Trade{
			TradedDate: time.Now().AddDate(0, 0, -(count - i)),
			Type:       tradeType,
			Price:      &price,
			Size:       "$1,001 - $15,000",
		}
	}
	return trades
}
