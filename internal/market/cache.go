package market

import (
	"context"
	"sync"
	"time"
)

// CachedOracle wraps an Oracle with a per-symbol TTL cache so repeated
// price questions within a conversation don't refetch.
type CachedOracle struct {
	inner Oracle
	ttl   time.Duration

	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	quote   *Quote
	expires time.Time
}

// NewCachedOracle wraps inner with a TTL cache. A non-positive ttl defaults
// to one minute.
func NewCachedOracle(inner Oracle, ttl time.Duration) *CachedOracle {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CachedOracle{
		inner:   inner,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (c *CachedOracle) Lookup(ctx context.Context, symbol string) (*Quote, error) {
	c.mu.Lock()
	if e, ok := c.entries[symbol]; ok && time.Now().Before(e.expires) {
		c.mu.Unlock()
		return e.quote, nil
	}
	c.mu.Unlock()

	quote, err := c.inner.Lookup(ctx, symbol)
	if err != nil {
		// Errors are not cached; the next call retries.
		return nil, err
	}

	c.mu.Lock()
	c.entries[symbol] = cacheEntry{quote: quote, expires: time.Now().Add(c.ttl)}
	c.mu.Unlock()
	return quote, nil
}
