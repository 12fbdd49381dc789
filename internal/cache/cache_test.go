package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rudedude2015501/SmartTick/internal/collector"
)

func TestCache_SetGet(t *testing.T) {
	c := New(time.Minute)
	res := &collector.AnalysisResult{Symbol: "AAPL", Score: 61.5}
	c.Set("AAPL", res)

	got, ok := c.Get("AAPL")
	require.True(t, ok)
	assert.Same(t, res, got)
}

func TestCache_MissUnknownSymbol(t *testing.T) {
	c := New(time.Minute)
	_, ok := c.Get("MSFT")
	assert.False(t, ok)
}

func TestCache_Expiry(t *testing.T) {
	c := New(15 * time.Minute)
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	now := base
	c.now = func() time.Time { return now }

	c.Set("AAPL", &collector.AnalysisResult{Symbol: "AAPL"})

	now = base.Add(14 * time.Minute)
	_, ok := c.Get("AAPL")
	assert.True(t, ok, "entry should survive inside the TTL")

	now = base.Add(16 * time.Minute)
	_, ok = c.Get("AAPL")
	assert.False(t, ok, "entry should expire past the TTL")
}

func TestCache_SetResetsTTL(t *testing.T) {
	c := New(10 * time.Minute)
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	now := base
	c.now = func() time.Time { return now }

	c.Set("AAPL", &collector.AnalysisResult{Symbol: "AAPL"})
	now = base.Add(9 * time.Minute)
	c.Set("AAPL", &collector.AnalysisResult{Symbol: "AAPL"})

	now = base.Add(15 * time.Minute)
	_, ok := c.Get("AAPL")
	assert.True(t, ok)
}

func TestCache_Clear(t *testing.T) {
	c := New(time.Minute)
	c.Set("AAPL", &collector.AnalysisResult{Symbol: "AAPL"})
	c.Set("MSFT", &collector.AnalysisResult{Symbol: "MSFT"})
	c.Clear()

	_, ok := c.Get("AAPL")
	assert.False(t, ok)
	_, ok = c.Get("MSFT")
	assert.False(t, ok)
}
