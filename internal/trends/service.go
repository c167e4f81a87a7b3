package trends

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/cardledger/market-trends/internal/ebay"
	"github.com/cardledger/market-trends/internal/metrics"
	"github.com/cardledger/market-trends/internal/store"
	domain "github.com/cardledger/market-trends/pkg/types"
)

const defaultSearchQuery = "trading cards"

// Service serves current market trends: cache-first reads with a
// single-flight guarded upstream fetch on miss. Upstream failures
// degrade to the empty valid summary and are never surfaced to callers;
// the trends page shows "no data" instead of breaking.
type Service struct {
	paginator *ebay.Paginator
	agg       *Aggregator
	cache     *Cache
	store     store.Store
	log       *slog.Logger

	query      string
	categoryID string
	nowFunc    func() time.Time

	flight singleflight.Group
}

// ServiceOption configures the Service.
type ServiceOption func(*Service)

// WithServiceLogger sets a custom logger.
func WithServiceLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.log = l
	}
}

// WithSearchQuery sets the marketplace search query.
func WithSearchQuery(q string) ServiceOption {
	return func(s *Service) {
		s.query = q
	}
}

// WithCategoryID restricts the search to an eBay category.
func WithCategoryID(id string) ServiceOption {
	return func(s *Service) {
		s.categoryID = id
	}
}

// WithServiceNowFunc overrides the time function for testing.
func WithServiceNowFunc(f func() time.Time) ServiceOption {
	return func(s *Service) {
		s.nowFunc = f
	}
}

// NewService creates a Service. The store is used only to anchor the
// live summary's percentChange against the latest persisted snapshot
// and may be nil, in which case percentChange stays 0.
func NewService(
	paginator *ebay.Paginator,
	agg *Aggregator,
	cache *Cache,
	st store.Store,
	opts ...ServiceOption,
) *Service {
	s := &Service{
		paginator: paginator,
		agg:       agg,
		cache:     cache,
		store:     st,
		log:       slog.Default(),
		query:     defaultSearchQuery,
		nowFunc:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CurrentTrends returns the current market summary. Cache hits are
// served directly; concurrent misses share one upstream fetch. The
// result is always a valid summary, possibly empty.
func (s *Service) CurrentTrends(ctx context.Context) *domain.MarketSummary {
	if cached, ok := s.cache.Get(); ok {
		metrics.TrendCacheHitsTotal.Inc()
		return cached
	}
	metrics.TrendCacheMissesTotal.Inc()

	v, _, shared := s.flight.Do("trends", func() (any, error) {
		return s.fetchAndCache(ctx), nil
	})
	if shared {
		s.log.Debug("trend fetch shared with concurrent caller")
	}

	return v.(*domain.MarketSummary)
}

// Refresh invalidates the cache so the next read recomputes.
func (s *Service) Refresh() {
	s.cache.Invalidate()
	metrics.TrendCacheInvalidationsTotal.Inc()
	s.log.Info("trend cache invalidated")
}

// fetchAndCache fetches listings, aggregates them, and stores the
// result in the cache. Any upstream failure yields the empty summary,
// which is cached like any other result so an outage does not turn
// every request into an upstream call.
func (s *Service) fetchAndCache(ctx context.Context) *domain.MarketSummary {
	start := time.Now()
	defer func() {
		metrics.TrendAggregationDuration.Observe(time.Since(start).Seconds())
	}()

	metrics.TrendFetchesTotal.Inc()

	var listings []domain.RawListing

	result, err := s.paginator.Collect(ctx, ebay.SearchRequest{
		Query:      s.query,
		CategoryID: s.categoryID,
	})
	if err != nil {
		metrics.TrendFetchErrorsTotal.Inc()
		s.log.Error("trend fetch failed, serving empty summary", "error", err)
	} else {
		listings = result.Listings
		s.log.Info("trend fetch complete",
			"listings", len(listings),
			"pages", result.PagesUsed,
			"stopped_at", result.StoppedAt,
		)
	}

	summary := s.agg.Aggregate(listings)
	s.enrichPercentChange(ctx, summary)
	s.cache.Set(summary)

	return summary
}

// enrichPercentChange anchors the live average against the latest
// persisted snapshot. Best-effort: lookup failures leave the field 0.
func (s *Service) enrichPercentChange(ctx context.Context, summary *domain.MarketSummary) {
	if s.store == nil || summary.Empty() {
		return
	}

	prior, err := s.store.GetLatestSnapshotBefore(ctx, s.nowFunc())
	if err != nil {
		s.log.Debug("no prior snapshot for percent change", "error", err)
		return
	}
	if prior.AveragePrice <= 0 {
		return
	}

	avg := summary.MarketMovement.AveragePrice
	summary.MarketMovement.PercentChange = (avg - prior.AveragePrice) / prior.AveragePrice * 100
}
