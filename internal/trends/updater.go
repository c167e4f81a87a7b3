package trends

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/cardledger/market-trends/internal/ebay"
	"github.com/cardledger/market-trends/internal/metrics"
	"github.com/cardledger/market-trends/internal/notify"
	"github.com/cardledger/market-trends/internal/store"
	domain "github.com/cardledger/market-trends/pkg/types"
)

const defaultSampleSize = 20

// Updater persists the once-per-day trend snapshot. It always fetches
// fresh from the marketplace, bypassing the read cache, so the stored
// history is anchored to real upstream data at write time.
type Updater struct {
	paginator *ebay.Paginator
	agg       *Aggregator
	cache     *Cache
	store     store.Store
	notifier  notify.Notifier
	log       *slog.Logger

	query      string
	categoryID string
	sampleSize int
	nowFunc    func() time.Time
}

// UpdaterOption configures the Updater.
type UpdaterOption func(*Updater)

// WithUpdaterLogger sets a custom logger.
func WithUpdaterLogger(l *slog.Logger) UpdaterOption {
	return func(u *Updater) {
		u.log = l
	}
}

// WithUpdaterSearchQuery sets the marketplace search query.
func WithUpdaterSearchQuery(q string) UpdaterOption {
	return func(u *Updater) {
		u.query = q
	}
}

// WithUpdaterCategoryID restricts the search to an eBay category.
func WithUpdaterCategoryID(id string) UpdaterOption {
	return func(u *Updater) {
		u.categoryID = id
	}
}

// WithSampleSize caps how many item rows are stored per snapshot.
func WithSampleSize(n int) UpdaterOption {
	return func(u *Updater) {
		u.sampleSize = n
	}
}

// WithNotifier sets the digest notifier. Without one, no digest is sent.
func WithNotifier(n notify.Notifier) UpdaterOption {
	return func(u *Updater) {
		u.notifier = n
	}
}

// WithUpdaterNowFunc overrides the time function for testing.
func WithUpdaterNowFunc(f func() time.Time) UpdaterOption {
	return func(u *Updater) {
		u.nowFunc = f
	}
}

// NewUpdater creates an Updater.
func NewUpdater(
	paginator *ebay.Paginator,
	agg *Aggregator,
	cache *Cache,
	st store.Store,
	opts ...UpdaterOption,
) *Updater {
	u := &Updater{
		paginator:  paginator,
		agg:        agg,
		cache:      cache,
		store:      st,
		log:        slog.Default(),
		query:      defaultSearchQuery,
		sampleSize: defaultSampleSize,
		nowFunc:    time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// UpdateForDate writes the snapshot for a calendar date. Idempotent: if
// the date already has a snapshot the call is a no-op. A day whose
// aggregate has no listings is skipped entirely; a hole in the history
// is preferred over a fabricated zero row.
func (u *Updater) UpdateForDate(ctx context.Context, date time.Time) error {
	dateKey := domain.DateKey(date)

	_, err := u.store.GetSnapshotByDate(ctx, date)
	if err == nil {
		u.log.Info("snapshot already exists, skipping", "date", dateKey)
		metrics.SnapshotSkipsTotal.WithLabelValues("exists").Inc()
		return nil
	}
	if !errors.Is(err, store.ErrSnapshotNotFound) {
		return fmt.Errorf("checking snapshot for %s: %w", dateKey, err)
	}

	result, err := u.paginator.Collect(ctx, ebay.SearchRequest{
		Query:      u.query,
		CategoryID: u.categoryID,
	})
	if err != nil {
		return fmt.Errorf("fetching listings for %s: %w", dateKey, err)
	}

	summary := u.agg.Aggregate(result.Listings)
	if summary.Empty() {
		u.log.Warn("no listings for date, skipping snapshot", "date", dateKey)
		metrics.SnapshotSkipsTotal.WithLabelValues("no_data").Inc()
		return nil
	}

	snap := &domain.TrendSnapshot{
		SnapshotDate: date,
		AveragePrice: summary.MarketMovement.AveragePrice,
		HighestSale:  summary.MarketMovement.HighestSale,
		LowestSale:   summary.MarketMovement.LowestSale,
		TotalSold:    summary.MarketMovement.TotalSold,
	}

	prior, err := u.store.GetLatestSnapshotBefore(ctx, date)
	switch {
	case err == nil && prior.AveragePrice > 0:
		snap.PercentChange = (snap.AveragePrice - prior.AveragePrice) / prior.AveragePrice * 100
	case err != nil && !errors.Is(err, store.ErrSnapshotNotFound):
		return fmt.Errorf("looking up prior snapshot for %s: %w", dateKey, err)
	}

	if err := u.store.InsertSnapshot(ctx, snap); err != nil {
		if errors.Is(err, store.ErrSnapshotExists) {
			// Lost a race with a concurrent update for the same date.
			u.log.Info("snapshot inserted concurrently, skipping", "date", dateKey)
			metrics.SnapshotSkipsTotal.WithLabelValues("exists").Inc()
			return nil
		}
		return fmt.Errorf("writing snapshot for %s: %w", dateKey, err)
	}

	metrics.SnapshotWritesTotal.Inc()
	u.log.Info("snapshot written",
		"date", dateKey,
		"average_price", snap.AveragePrice,
		"total_sold", snap.TotalSold,
		"percent_change", snap.PercentChange,
	)

	// The item sample is best-effort detail; its loss never rolls back
	// the snapshot row.
	items := u.sampleItems(result.Listings)
	if len(items) > 0 {
		if err := u.store.InsertSnapshotItems(ctx, snap.ID, items); err != nil {
			metrics.SnapshotItemFailuresTotal.Inc()
			u.log.Warn("snapshot item sample failed", "date", dateKey, "error", err)
		}
	}

	if u.notifier != nil {
		digest := &notify.DigestPayload{
			Date:          dateKey,
			AveragePrice:  snap.AveragePrice,
			PercentChange: snap.PercentChange,
			TotalSold:     snap.TotalSold,
			HighestSale:   snap.HighestSale,
			LowestSale:    snap.LowestSale,
			TopItems:      items,
		}
		if err := u.notifier.SendDailyDigest(ctx, digest); err != nil {
			u.log.Warn("daily digest delivery failed", "date", dateKey, "error", err)
		}
	}

	return nil
}

// RunDailyUpdate writes today's snapshot and then invalidates the read
// cache so the next live request reflects the newly anchored date.
// Safe to re-run: the idempotency check makes repeats no-ops.
func (u *Updater) RunDailyUpdate(ctx context.Context) error {
	if err := u.UpdateForDate(ctx, u.nowFunc()); err != nil {
		return err
	}

	if u.cache != nil {
		u.cache.Invalidate()
		metrics.TrendCacheInvalidationsTotal.Inc()
	}

	return nil
}

// sampleItems picks the highest-priced listings for the snapshot's item
// sample, capped at the configured size.
func (u *Updater) sampleItems(listings []domain.RawListing) []domain.TrendSnapshotItem {
	filtered := make([]domain.RawListing, 0, len(listings))
	for _, l := range listings {
		if l.Price > 0 {
			filtered = append(filtered, l)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Price > filtered[j].Price
	})

	n := min(u.sampleSize, len(filtered))
	items := make([]domain.TrendSnapshotItem, 0, n)
	for _, l := range filtered[:n] {
		items = append(items, domain.TrendSnapshotItem{
			Title:    l.Title,
			Price:    l.Price,
			Currency: l.Currency,
			ImageURL: l.ImageURL,
			ItemURL:  l.ItemURL,
			Category: l.Category,
		})
	}
	return items
}
