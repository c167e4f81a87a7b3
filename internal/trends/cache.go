package trends

import (
	"sync"
	"time"

	domain "github.com/cardledger/market-trends/pkg/types"
)

const defaultCacheTTL = 15 * time.Minute

// Cache holds the most recently computed MarketSummary for the TTL
// window. It is process-local and lost on restart; a cold start simply
// recomputes. Empty summaries are cached the same as populated ones so
// an upstream outage does not turn into a retry storm.
type Cache struct {
	mu       sync.Mutex
	summary  *domain.MarketSummary
	cachedAt time.Time
	ttl      time.Duration
	nowFunc  func() time.Time
}

// CacheOption configures the Cache.
type CacheOption func(*Cache)

// WithTTL sets the cache time-to-live.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithCacheNowFunc overrides the time function for testing.
func WithCacheNowFunc(f func() time.Time) CacheOption {
	return func(c *Cache) {
		c.nowFunc = f
	}
}

// NewCache creates a Cache with the default 15-minute TTL.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		ttl:     defaultCacheTTL,
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached summary and true when a summary exists and its
// age is below the TTL. Expired or absent entries report a miss.
func (c *Cache) Get() (*domain.MarketSummary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.summary == nil {
		return nil, false
	}
	if c.nowFunc().Sub(c.cachedAt) >= c.ttl {
		return nil, false
	}
	return c.summary, true
}

// Set stores a summary, overwriting any previous entry and resetting
// the TTL window.
func (c *Cache) Set(s *domain.MarketSummary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.summary = s
	c.cachedAt = c.nowFunc()
}

// Invalidate drops the cached entry so the next Get is a miss.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.summary = nil
}
