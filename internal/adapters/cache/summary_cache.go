package cache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"

	"github.com/wgopar/usd-conversions-agent/internal/domain"
)

// RistrettoSummaryCache memoizes generated market summaries by prompt.
type RistrettoSummaryCache struct {
	cache *ristretto.Cache
}

func NewSummaryCache(maxItems int64) (*RistrettoSummaryCache, error) {
	if maxItems <= 0 {
		return nil, fmt.Errorf("create summary cache failed: max items must be positive, got %d", maxItems)
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create summary cache failed: %w", err)
	}
	return &RistrettoSummaryCache{cache: c}, nil
}

func (c *RistrettoSummaryCache) Get(key string) (domain.MarketSummary, bool) {
	if v, ok := c.cache.Get(key); ok {
		s, ok := v.(domain.MarketSummary)
		return s, ok
	}
	return domain.MarketSummary{}, false
}

// Set stores a copy of summary so callers may keep mutating their highlights slice.
func (c *RistrettoSummaryCache) Set(key string, summary domain.MarketSummary, ttl time.Duration) {
	stored := domain.MarketSummary{
		Summary:    summary.Summary,
		Highlights: append([]string(nil), summary.Highlights...),
	}
	c.cache.SetWithTTL(key, stored, 1, ttl)
}

func (c *RistrettoSummaryCache) Close() { c.cache.Close() }
