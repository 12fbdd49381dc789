// Package cache provides a small TTL cache for analysis results so
// repeated lookups of the same symbol do not refetch and recompute.
package cache

import (
	"sync"
	"time"

	"github.com/rudedude2015501/SmartTick/internal/collector"
)

type entry struct {
	result    *collector.AnalysisResult
	createdAt time.Time
}

// AnalysisCache is a mutex-guarded TTL cache keyed by symbol. It is an
// explicit, injectable object; nothing in the service relies on
// package-level state.
type AnalysisCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

// New creates a cache with the given TTL.
func New(ttl time.Duration) *AnalysisCache {
	return &AnalysisCache{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached result for symbol if it is still fresh.
func (c *AnalysisCache) Get(symbol string) (*collector.AnalysisResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[symbol]
	if !ok || c.now().After(e.createdAt.Add(c.ttl)) {
		return nil, false
	}
	return e.result, true
}

// Set stores the result for symbol, resetting its TTL.
func (c *AnalysisCache) Set(symbol string, result *collector.AnalysisResult) {
	c.mu.Lock()
	c.entries[symbol] = entry{result: result, createdAt: c.now()}
	c.mu.Unlock()
}

// Clear drops every cached entry.
func (c *AnalysisCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}
