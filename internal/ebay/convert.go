package ebay

import (
	"strconv"

	domain "github.com/cardledger/market-trends/pkg/types"
)

// ToRawListings converts eBay API item summaries into raw listings for
// trend aggregation. Items whose price fails to parse come through with a
// zero price; the aggregator excludes non-positive prices from every
// statistic, so they never skew the numbers.
func ToRawListings(items []ItemSummary) []domain.RawListing {
	listings := make([]domain.RawListing, 0, len(items))
	for i := range items {
		listings = append(listings, toRawListing(&items[i]))
	}
	return listings
}

func toRawListing(item *ItemSummary) domain.RawListing {
	l := domain.RawListing{
		Title:    item.Title,
		Currency: item.Price.Currency,
		ItemURL:  item.ItemWebURL,
	}

	if p, err := strconv.ParseFloat(item.Price.Value, 64); err == nil {
		l.Price = p
	}

	if item.Image != nil && item.Image.ImageURL != "" {
		l.ImageURL = item.Image.ImageURL
	}

	// First category name wins; the Browse API lists the leaf category first.
	if len(item.Categories) > 0 {
		l.Category = item.Categories[0].CategoryName
	}

	return l
}
