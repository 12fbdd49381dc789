package model

// MovingAverages holds trailing simple moving averages of the close price.
// A nil entry means the series is too short for that window.
type MovingAverages struct {
	SMA20  *float64 `json:"sma20"`
	SMA50  *float64 `json:"sma50"`
	SMA200 *float64 `json:"sma200"`
}

// VolumeIndicators holds the volume-derived technical indicators.
// OBV is the normalized on-balance-volume trend in [-100, 100]; it degrades
// to 0 rather than nil when the window is too short.
type VolumeIndicators struct {
	OBV  float64  `json:"obv"`
	VWAP *float64 `json:"vwap"`
}

// Performance holds return statistics over the analyzed window.
type Performance struct {
	OverallReturn    float64  `json:"overall_return"`
	AnnualizedReturn *float64 `json:"annualized_return"`
}

// VolumeMetrics combines market volume statistics with politician trade
// activity counts. DisclosedVolume is the summed dollar magnitude of the
// trades' disclosed size ranges.
type VolumeMetrics struct {
	AvgVolume       *float64 `json:"avg_volume"`
	VolumeTrend     float64  `json:"volume_trend"`
	TotalTrades     int      `json:"total_trades"`
	BuyTrades       int      `json:"buy_trades"`
	SellTrades      int      `json:"sell_trades"`
	BuyRatio        float64  `json:"buy_ratio"`
	DisclosedVolume float64  `json:"disclosed_volume"`
}

// Metrics is the computed analytics result for one symbol. It is built
// fresh per analysis and never mutated afterwards.
type Metrics struct {
	Symbol                 string           `json:"symbol"`
	LatestPrice            float64          `json:"latest_price"`
	MovingAverages         MovingAverages   `json:"moving_averages"`
	Volatility             *float64         `json:"volatility"`
	RSI                    *float64         `json:"rsi"`
	VolumeIndicators       VolumeIndicators `json:"volume_indicators"`
	CongressionalSentiment float64          `json:"congressional_sentiment"`
	Performance            Performance      `json:"performance"`
	VolumeMetrics          VolumeMetrics    `json:"volume_metrics"`
}
