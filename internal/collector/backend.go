package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rudedude2015501/SmartTick/internal/model"
)

// BackendFetcher implements Fetcher against the SmartTick backend REST API.
type BackendFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewBackendFetcher creates a fetcher with optional proxy support.
func NewBackendFetcher(baseURL, apiKey, proxyURL string) *BackendFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &BackendFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *BackendFetcher) Name() string { return "backend" }

// pricePoint is the JSON shape of one day of price history. Dates arrive
// as "2006-01-02" or full RFC3339 timestamps depending on the provider.
type pricePoint struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// FetchPriceHistory returns up to days of daily price history, sorted
// ascending by date. Points with unparseable dates are dropped.
func (f *BackendFetcher) FetchPriceHistory(ctx context.Context, symbol string, days int) (model.PriceSeries, error) {
	endpoint := fmt.Sprintf("%s/api/price/%s?days=%d", f.BaseURL, url.PathEscape(symbol), days)
	body, err := f.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch price history: %w", err)
	}

	var points []pricePoint
	if err := json.Unmarshal(body, &points); err != nil {
		return nil, fmt.Errorf("decode price history: %w", err)
	}

	series := make(model.PriceSeries, 0, len(points))
	for _, p := range points {
		ts, err := parsePriceDate(p.Date)
		if err != nil {
			continue
		}
		series = append(series, model.PricePoint{
			Date:   ts,
			Open:   p.Open,
			High:   p.High,
			Low:    p.Low,
			Close:  p.Close,
			Volume: p.Volume,
		})
	}
	return series.SortedByDate(), nil
}

// FetchTrades returns up to limit disclosed trades for the symbol, sorted
// ascending by traded date. Field-name and price-format variations are
// normalized by the Trade decoder.
func (f *BackendFetcher) FetchTrades(ctx context.Context, symbol string, limit int) (model.TradeSeries, error) {
	endpoint := fmt.Sprintf("%s/api/trades/summary/%s?limit=%d", f.BaseURL, url.PathEscape(symbol), limit)
	body, err := f.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch trades: %w", err)
	}

	var trades model.TradeSeries
	if err := json.Unmarshal(body, &trades); err != nil {
		return nil, fmt.Errorf("decode trades: %w", err)
	}
	return trades.SortedByDate(), nil
}

func (f *BackendFetcher) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

func parsePriceDate(raw string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", raw)
}
