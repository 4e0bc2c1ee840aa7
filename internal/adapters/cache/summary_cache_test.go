package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wgopar/usd-conversions-agent/internal/domain"
)

func TestSummaryCache_SetAndGet(t *testing.T) {
	c, err := NewSummaryCache(128)
	require.NoError(t, err)
	defer c.Close()

	want := domain.MarketSummary{Summary: "USD firm", Highlights: []string{"EUR down"}}
	c.Set("prompt-a", want, time.Minute)
	c.cache.Wait()

	got, ok := c.Get("prompt-a")
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestSummaryCache_GetMissWhenEmpty(t *testing.T) {
	c, err := NewSummaryCache(64)
	require.NoError(t, err)
	defer c.Close()

	got, ok := c.Get("nothing")
	require.False(t, ok)
	require.Equal(t, domain.MarketSummary{}, got)
}

func TestSummaryCache_StoresCopy(t *testing.T) {
	c, err := NewSummaryCache(64)
	require.NoError(t, err)
	defer c.Close()

	highlights := []string{"EUR down"}
	c.Set("k", domain.MarketSummary{Summary: "s", Highlights: highlights}, time.Minute)
	c.cache.Wait()
	highlights[0] = "changed"

	got, ok := c.Get("k")
	require.True(t, ok)
	require.Equal(t, []string{"EUR down"}, got.Highlights)
}

func TestSummaryCache_ExpiresAfterTTL(t *testing.T) {
	c, err := NewSummaryCache(64)
	require.NoError(t, err)
	defer c.Close()

	c.Set("short", domain.MarketSummary{Summary: "s"}, 50*time.Millisecond)
	c.cache.Wait()

	require.Eventually(t, func() bool {
		_, ok := c.Get("short")
		return !ok
	}, 3*time.Second, 50*time.Millisecond)
}

func TestNewSummaryCache_RejectsNonPositiveSize(t *testing.T) {
	_, err := NewSummaryCache(0)
	require.Error(t, err)
}
