package ebay_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cardledger/market-trends/internal/ebay"
	"github.com/cardledger/market-trends/internal/ebay/mocks"
)

func makeItems(n, offset int) []ebay.ItemSummary {
	items := make([]ebay.ItemSummary, n)
	for i := range items {
		items[i] = ebay.ItemSummary{
			ItemID: fmt.Sprintf("v1|%d|0", offset+i),
			Title:  fmt.Sprintf("Card %d", offset+i),
			Price:  ebay.ItemPrice{Value: "10.00", Currency: "USD"},
		}
	}
	return items
}

func TestPaginator_Collect_StopsAtMaxPages(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockEbayClient(t)
	for page := range 3 {
		offset := page * 100
		client.EXPECT().
			Search(mock.Anything, mock.MatchedBy(func(req ebay.SearchRequest) bool {
				return req.Offset == offset && req.Limit == 100
			})).
			Return(&ebay.SearchResponse{
				Items:   makeItems(100, offset),
				Total:   1000,
				HasMore: true,
			}, nil).
			Once()
	}

	p := ebay.NewPaginator(client)
	result, err := p.Collect(context.Background(), ebay.SearchRequest{Query: "trading cards"})

	require.NoError(t, err)
	assert.Len(t, result.Listings, 300)
	assert.Equal(t, 3, result.PagesUsed)
	assert.Equal(t, "max_pages", result.StoppedAt)
}

func TestPaginator_Collect_StopsWhenExhausted(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockEbayClient(t)
	client.EXPECT().
		Search(mock.Anything, mock.MatchedBy(func(req ebay.SearchRequest) bool {
			return req.Offset == 0
		})).
		Return(&ebay.SearchResponse{
			Items:   makeItems(42, 0),
			Total:   42,
			HasMore: false,
		}, nil).
		Once()

	p := ebay.NewPaginator(client)
	result, err := p.Collect(context.Background(), ebay.SearchRequest{Query: "trading cards"})

	require.NoError(t, err)
	assert.Len(t, result.Listings, 42)
	assert.Equal(t, 1, result.PagesUsed)
	assert.Equal(t, "no_more_results", result.StoppedAt)
}

func TestPaginator_Collect_EmptyPage(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockEbayClient(t)
	client.EXPECT().
		Search(mock.Anything, mock.Anything).
		Return(&ebay.SearchResponse{Items: nil, Total: 0, HasMore: false}, nil).
		Once()

	p := ebay.NewPaginator(client)
	result, err := p.Collect(context.Background(), ebay.SearchRequest{Query: "unheard of card"})

	require.NoError(t, err)
	assert.Empty(t, result.Listings)
	assert.Equal(t, 1, result.PagesUsed)
	assert.Equal(t, "no_more_results", result.StoppedAt)
}

func TestPaginator_Collect_SearchError(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockEbayClient(t)
	client.EXPECT().
		Search(mock.Anything, mock.Anything).
		Return(nil, errors.New("boom")).
		Once()

	p := ebay.NewPaginator(client)
	result, err := p.Collect(context.Background(), ebay.SearchRequest{Query: "trading cards"})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "searching page 0")
}

func TestPaginator_Options(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockEbayClient(t)
	client.EXPECT().
		Search(mock.Anything, mock.MatchedBy(func(req ebay.SearchRequest) bool {
			return req.Limit == 25 && req.Offset == 0
		})).
		Return(&ebay.SearchResponse{
			Items:   makeItems(25, 0),
			Total:   500,
			HasMore: true,
		}, nil).
		Once()

	p := ebay.NewPaginator(client, ebay.WithPageSize(25), ebay.WithMaxPages(1))
	result, err := p.Collect(context.Background(), ebay.SearchRequest{Query: "trading cards"})

	require.NoError(t, err)
	assert.Len(t, result.Listings, 25)
	assert.Equal(t, "max_pages", result.StoppedAt)
}
