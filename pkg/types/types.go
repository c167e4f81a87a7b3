// Package domain defines the core business types for the market trends service.
package domain

import (
	"time"
)

// RawListing is a single marketplace search result. Raw listings are
// ephemeral: they live for the duration of one aggregation pass and are
// only persisted as part of a snapshot's top-N item sample.
type RawListing struct {
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	ImageURL string  `json:"image_url,omitempty"`
	ItemURL  string  `json:"item_url"`
	Category string  `json:"category"`
}

// MarketMovement holds the headline statistics for the current batch.
type MarketMovement struct {
	AveragePrice  float64 `json:"averagePrice"`
	PercentChange float64 `json:"percentChange"`
	TotalSold     int     `json:"totalSold"`
	HighestSale   float64 `json:"highestSale"`
	LowestSale    float64 `json:"lowestSale"`
}

// TrendPoint is one day in the rolling trend series.
//
// Points older than today are synthetic: they are derived from the current
// aggregate with bounded pseudo-random variation, not from real historical
// data. Consumers wanting real history should read persisted snapshots.
type TrendPoint struct {
	Date         string  `json:"date"` // YYYY-MM-DD
	AveragePrice float64 `json:"averagePrice"`
	TotalSold    int     `json:"totalSold"`
}

// Mover is a listing highlighted as relatively high- or low-priced versus
// its peer batch. PriceChange is the percentage deviation from the batch
// median price, not a price movement over time; no per-listing price
// history exists to compute a true delta.
type Mover struct {
	Name          string  `json:"name"`
	PreviousPrice float64 `json:"previousPrice"`
	CurrentPrice  float64 `json:"currentPrice"`
	PriceChange   float64 `json:"priceChange"`
	ImageURL      string  `json:"imageUrl,omitempty"`
	ItemURL       string  `json:"itemUrl"`
}

// RecentSale is a display row for the recent-sales sample. SoldDate is a
// placeholder set to the aggregation date; the upstream feed does not
// supply true sale dates.
type RecentSale struct {
	Title      string  `json:"title"`
	Price      float64 `json:"price"`
	ImageURL   string  `json:"imageUrl,omitempty"`
	ItemWebURL string  `json:"itemWebUrl"`
	Category   string  `json:"category"`
	SoldDate   string  `json:"soldDate"` // YYYY-MM-DD
}

// MarketSummary is the full aggregated payload served to the UI.
type MarketSummary struct {
	MarketMovement MarketMovement `json:"marketMovement"`
	TrendData      []TrendPoint   `json:"trendData"`
	TopGainers     []Mover        `json:"topGainers"`
	TopLosers      []Mover        `json:"topLosers"`
	RecentSales    []RecentSale   `json:"recentSales"`
}

// Empty reports whether the summary carries no data (zero contributing
// listings). An empty summary is a valid result, not an error state.
func (s *MarketSummary) Empty() bool {
	return s.MarketMovement.TotalSold == 0
}

// TrendSnapshot is a persisted, immutable daily summary of aggregated
// listing statistics. At most one snapshot exists per calendar date.
type TrendSnapshot struct {
	ID            string    `json:"id"             db:"id"`
	SnapshotDate  time.Time `json:"snapshot_date"  db:"snapshot_date"`
	AveragePrice  float64   `json:"average_price"  db:"average_price"`
	HighestSale   float64   `json:"highest_sale"   db:"highest_sale"`
	LowestSale    float64   `json:"lowest_sale"    db:"lowest_sale"`
	TotalSold     int       `json:"total_sold"     db:"total_sold"`
	PercentChange float64   `json:"percent_change" db:"percent_change"`
	CreatedAt     time.Time `json:"created_at"     db:"created_at"`
}

// TrendSnapshotItem is one listing from the sample that contributed to a
// snapshot. Items are owned by their snapshot and removed with it.
type TrendSnapshotItem struct {
	ID         string  `json:"id"                  db:"id"`
	SnapshotID string  `json:"snapshot_id"         db:"snapshot_id"`
	Title      string  `json:"title"               db:"title"`
	Price      float64 `json:"price"               db:"price"`
	Currency   string  `json:"currency"            db:"currency"`
	ImageURL   string  `json:"image_url,omitempty" db:"image_url"`
	ItemURL    string  `json:"item_url"            db:"item_url"`
	Category   string  `json:"category"            db:"category"`
}

// DateKey formats t as the calendar-day key used for snapshot uniqueness.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
