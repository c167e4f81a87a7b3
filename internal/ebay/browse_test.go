package ebay_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cardledger/market-trends/internal/ebay"
	"github.com/cardledger/market-trends/internal/ebay/mocks"
)

const browseResponseJSON = `{
	"itemSummaries": [
		{
			"itemId": "v1|110001|0",
			"title": "Charizard Holo 1999 Base Set",
			"price": {"value": "312.50", "currency": "USD"},
			"itemWebUrl": "https://ebay.com/itm/110001",
			"image": {"imageUrl": "https://i.ebayimg.com/110001.jpg"},
			"condition": "Used",
			"categories": [{"categoryId": "183454", "categoryName": "CCG Individual Cards"}]
		},
		{
			"itemId": "v1|110002|0",
			"title": "Pikachu Promo",
			"price": {"value": "14.99", "currency": "USD"},
			"itemWebUrl": "https://ebay.com/itm/110002",
			"condition": "New"
		}
	],
	"total": 2,
	"offset": 0,
	"limit": 50,
	"next": ""
}`

func staticTokens(t *testing.T, token string) *mocks.MockTokenProvider {
	t.Helper()
	tp := mocks.NewMockTokenProvider(t)
	tp.EXPECT().Token(mock.Anything).Return(token, nil).Maybe()
	return tp
}

func TestBrowseClient_Search(t *testing.T) {
	t.Parallel()

	var gotReq *http.Request

	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotReq = r.Clone(r.Context())
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(browseResponseJSON))
		}),
	)
	defer srv.Close()

	client := ebay.NewBrowseClient(
		staticTokens(t, "bearer-token"),
		ebay.WithBrowseURL(srv.URL),
		ebay.WithMarketplace("EBAY_GB"),
	)

	resp, err := client.Search(context.Background(), ebay.SearchRequest{
		Query:      "pokemon cards",
		CategoryID: "183454",
		Limit:      50,
		Sort:       "newlyListed",
	})
	require.NoError(t, err)

	// Request format.
	require.NotNil(t, gotReq)
	assert.Equal(t, "Bearer bearer-token", gotReq.Header.Get("Authorization"))
	assert.Equal(t, "EBAY_GB", gotReq.Header.Get("X-EBAY-C-MARKETPLACE-ID"))
	q := gotReq.URL.Query()
	assert.Equal(t, "pokemon cards", q.Get("q"))
	assert.Equal(t, "183454", q.Get("category_ids"))
	assert.Equal(t, "50", q.Get("limit"))
	assert.Equal(t, "newlyListed", q.Get("sort"))

	// Response parsing.
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Charizard Holo 1999 Base Set", resp.Items[0].Title)
	assert.Equal(t, "312.50", resp.Items[0].Price.Value)
	assert.Equal(t, "CCG Individual Cards", resp.Items[0].Categories[0].CategoryName)
	assert.Nil(t, resp.Items[1].Image)
	assert.Equal(t, 2, resp.Total)
	assert.False(t, resp.HasMore)
}

func TestBrowseClient_Search_HasMore(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"itemSummaries":[{"itemId":"1","title":"x","price":{"value":"1.00","currency":"USD"}}],"total":500,"offset":0,"limit":1,"next":"https://api.ebay.com/next-page"}`))
		}),
	)
	defer srv.Close()

	client := ebay.NewBrowseClient(
		staticTokens(t, "tok"),
		ebay.WithBrowseURL(srv.URL),
	)

	resp, err := client.Search(context.Background(), ebay.SearchRequest{Query: "x"})
	require.NoError(t, err)
	assert.True(t, resp.HasMore)
}

func TestBrowseClient_Search_DefaultLimit(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "50", r.URL.Query().Get("limit"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"itemSummaries":[],"total":0}`))
		}),
	)
	defer srv.Close()

	client := ebay.NewBrowseClient(
		staticTokens(t, "tok"),
		ebay.WithBrowseURL(srv.URL),
	)

	_, err := client.Search(context.Background(), ebay.SearchRequest{Query: "x"})
	require.NoError(t, err)
}

func TestBrowseClient_Search_APIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"errors":[{"message":"internal error"}]}`))
		}),
	)
	defer srv.Close()

	client := ebay.NewBrowseClient(
		staticTokens(t, "tok"),
		ebay.WithBrowseURL(srv.URL),
	)

	_, err := client.Search(context.Background(), ebay.SearchRequest{Query: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestBrowseClient_Search_TokenError(t *testing.T) {
	t.Parallel()

	tp := mocks.NewMockTokenProvider(t)
	tp.EXPECT().Token(mock.Anything).Return("", assert.AnError).Once()

	client := ebay.NewBrowseClient(tp)

	_, err := client.Search(context.Background(), ebay.SearchRequest{Query: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "getting auth token")
}

func TestBrowseClient_Search_MalformedJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("not json at all"))
		}),
	)
	defer srv.Close()

	client := ebay.NewBrowseClient(
		staticTokens(t, "tok"),
		ebay.WithBrowseURL(srv.URL),
	)

	_, err := client.Search(context.Background(), ebay.SearchRequest{Query: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing search response")
}
