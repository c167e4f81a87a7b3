// Package trends computes, caches, and persists market trend summaries
// for the configured card search.
package trends

import (
	"math/rand"
	"sort"
	"time"

	domain "github.com/cardledger/market-trends/pkg/types"
)

const (
	defaultWindowDays  = 90
	defaultMoversCount = 5
	recentSalesCount   = 10

	// Bounds for the synthetic trailing series.
	priceJitter  = 0.15
	volumeJitter = 0.30
)

// Aggregator turns a batch of raw listings into a MarketSummary. It is
// pure computation: no I/O, no shared state beyond its random source.
type Aggregator struct {
	windowDays  int
	moversCount int
	rng         *rand.Rand
	nowFunc     func() time.Time
}

// AggregatorOption configures the Aggregator.
type AggregatorOption func(*Aggregator)

// WithWindowDays sets the length of the trailing trend series.
func WithWindowDays(days int) AggregatorOption {
	return func(a *Aggregator) {
		a.windowDays = days
	}
}

// WithMoversCount sets how many gainers and losers to report.
func WithMoversCount(n int) AggregatorOption {
	return func(a *Aggregator) {
		a.moversCount = n
	}
}

// WithRand overrides the random source used for the synthetic series.
func WithRand(rng *rand.Rand) AggregatorOption {
	return func(a *Aggregator) {
		a.rng = rng
	}
}

// WithAggregatorNowFunc overrides the time function for testing.
func WithAggregatorNowFunc(f func() time.Time) AggregatorOption {
	return func(a *Aggregator) {
		a.nowFunc = f
	}
}

// NewAggregator creates an Aggregator.
func NewAggregator(opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{
		windowDays:  defaultWindowDays,
		moversCount: defaultMoversCount,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		nowFunc:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Aggregate computes a MarketSummary from a batch of listings. Listings
// with a non-positive price are excluded from every statistic. An empty
// batch (after filtering) yields the empty valid summary, not an error.
func (a *Aggregator) Aggregate(listings []domain.RawListing) *domain.MarketSummary {
	filtered := make([]domain.RawListing, 0, len(listings))
	for _, l := range listings {
		if l.Price > 0 {
			filtered = append(filtered, l)
		}
	}

	summary := &domain.MarketSummary{
		TrendData:   []domain.TrendPoint{},
		TopGainers:  []domain.Mover{},
		TopLosers:   []domain.Mover{},
		RecentSales: []domain.RecentSale{},
	}

	if len(filtered) == 0 {
		return summary
	}

	var sum float64
	highest := filtered[0].Price
	lowest := filtered[0].Price
	for _, l := range filtered {
		sum += l.Price
		if l.Price > highest {
			highest = l.Price
		}
		if l.Price < lowest {
			lowest = l.Price
		}
	}

	summary.MarketMovement = domain.MarketMovement{
		AveragePrice: sum / float64(len(filtered)),
		TotalSold:    len(filtered),
		HighestSale:  highest,
		LowestSale:   lowest,
	}

	sorted := make([]domain.RawListing, len(filtered))
	copy(sorted, filtered)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price > sorted[j].Price
	})

	median := sorted[len(sorted)/2].Price
	summary.TopGainers = a.movers(sorted[:min(a.moversCount, len(sorted))], median)

	lowEnd := make([]domain.RawListing, 0, a.moversCount)
	for i := len(sorted) - 1; i >= 0 && len(lowEnd) < a.moversCount; i-- {
		lowEnd = append(lowEnd, sorted[i])
	}
	summary.TopLosers = a.movers(lowEnd, median)

	summary.RecentSales = a.recentSales(sorted)
	summary.TrendData = a.syntheticSeries(summary.MarketMovement)

	return summary
}

// movers builds mover rows for a slice of listings. PriceChange is the
// percentage deviation from the batch median, not a movement over time.
func (a *Aggregator) movers(listings []domain.RawListing, median float64) []domain.Mover {
	out := make([]domain.Mover, 0, len(listings))
	for _, l := range listings {
		out = append(out, domain.Mover{
			Name:          l.Title,
			PreviousPrice: median,
			CurrentPrice:  l.Price,
			PriceChange:   (l.Price - median) / median * 100,
			ImageURL:      l.ImageURL,
			ItemURL:       l.ItemURL,
		})
	}
	return out
}

// recentSales returns the highest-priced listings as the recent-sales
// sample. SoldDate is the aggregation date; the feed has no true sale dates.
func (a *Aggregator) recentSales(sorted []domain.RawListing) []domain.RecentSale {
	today := domain.DateKey(a.nowFunc())
	n := min(recentSalesCount, len(sorted))
	out := make([]domain.RecentSale, 0, n)
	for _, l := range sorted[:n] {
		out = append(out, domain.RecentSale{
			Title:      l.Title,
			Price:      l.Price,
			ImageURL:   l.ImageURL,
			ItemWebURL: l.ItemURL,
			Category:   l.Category,
			SoldDate:   today,
		})
	}
	return out
}

// syntheticSeries produces one point per day for the trailing window,
// ending today. Past points are the current baseline perturbed within
// fixed bounds; only today's point reflects the real aggregate. This is
// a visualization heuristic, not historical data.
func (a *Aggregator) syntheticSeries(mv domain.MarketMovement) []domain.TrendPoint {
	now := a.nowFunc()
	points := make([]domain.TrendPoint, 0, a.windowDays)

	for i := a.windowDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		if i == 0 {
			points = append(points, domain.TrendPoint{
				Date:         domain.DateKey(day),
				AveragePrice: mv.AveragePrice,
				TotalSold:    mv.TotalSold,
			})
			continue
		}

		priceFactor := 1 + (a.rng.Float64()*2-1)*priceJitter
		volumeFactor := 1 + (a.rng.Float64()*2-1)*volumeJitter

		points = append(points, domain.TrendPoint{
			Date:         domain.DateKey(day),
			AveragePrice: mv.AveragePrice * priceFactor,
			TotalSold:    int(float64(mv.TotalSold) * volumeFactor),
		})
	}

	return points
}
