package ebay

import (
	"context"
	"fmt"

	domain "github.com/cardledger/market-trends/pkg/types"
)

const (
	defaultPageSize = 100
	defaultMaxPages = 3
)

// Paginator accumulates multiple pages of search results for a single
// query. The trend aggregate wants a deeper sample than one page, but the
// page budget is capped so a broad query cannot burn the daily API quota.
type Paginator struct {
	client   EbayClient
	pageSize int
	maxPages int
}

// PaginatorOption configures the Paginator.
type PaginatorOption func(*Paginator)

// WithPageSize overrides the default page size.
func WithPageSize(size int) PaginatorOption {
	return func(p *Paginator) {
		p.pageSize = size
	}
}

// WithMaxPages overrides the default max pages.
func WithMaxPages(n int) PaginatorOption {
	return func(p *Paginator) {
		p.maxPages = n
	}
}

// NewPaginator creates a new Paginator.
func NewPaginator(client EbayClient, opts ...PaginatorOption) *Paginator {
	p := &Paginator{
		client:   client,
		pageSize: defaultPageSize,
		maxPages: defaultMaxPages,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// CollectResult holds the result of a paginated search.
type CollectResult struct {
	Listings  []domain.RawListing
	PagesUsed int
	StoppedAt string // "max_pages", "no_more_results"
}

// Collect fetches listings for a search query, stopping when:
// - No more results from eBay
// - Max pages reached
func (p *Paginator) Collect(
	ctx context.Context,
	req SearchRequest,
) (*CollectResult, error) {
	req.Limit = p.pageSize

	result := &CollectResult{}

	for page := range p.maxPages {
		req.Offset = page * p.pageSize

		resp, err := p.client.Search(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("searching page %d: %w", page, err)
		}

		result.PagesUsed++

		if len(resp.Items) == 0 {
			result.StoppedAt = "no_more_results"
			return result, nil
		}

		result.Listings = append(result.Listings, ToRawListings(resp.Items)...)

		if !resp.HasMore {
			result.StoppedAt = "no_more_results"
			return result, nil
		}
	}

	result.StoppedAt = "max_pages"
	return result, nil
}
