package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/cardledger/market-trends/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.GetTrends(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"title":"Internal Server Error"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetTrends(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 500)")
}

func TestClient_GetTrends(t *testing.T) {
	t.Parallel()

	summary := domain.MarketSummary{
		MarketMovement: domain.MarketMovement{
			AveragePrice: 22.27,
			TotalSold:    11,
			HighestSale:  100,
			LowestSale:   5,
		},
		TopGainers: []domain.Mover{
			{Name: "Charizard Holo", CurrentPrice: 100, PriceChange: 900},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/trends", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.GetTrends(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 22.27, result.MarketMovement.AveragePrice, 0.001)
	assert.Equal(t, 11, result.MarketMovement.TotalSold)
	require.Len(t, result.TopGainers, 1)
	assert.Equal(t, "Charizard Holo", result.TopGainers[0].Name)
}

func TestClient_RefreshTrends(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/trends/refresh", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(StatusResponse{Status: "cache invalidated"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	status, err := c.RefreshTrends(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cache invalidated", status.Status)
}

func TestClient_RunUpdate(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/trends/update", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(StatusResponse{Status: "update complete"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	status, err := c.RunUpdate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "update complete", status.Status)
}

func TestClient_ListSnapshots(t *testing.T) {
	t.Parallel()

	snapshots := []domain.TrendSnapshot{
		{ID: "s1", SnapshotDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), AveragePrice: 22.27},
		{ID: "s2", SnapshotDate: time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), AveragePrice: 20.10},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/snapshots", r.URL.Path)
		assert.Equal(t, "30", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(snapshots)
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.ListSnapshots(context.Background(), 30)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "s1", result[0].ID)
}

func TestClient_ListSnapshots_DefaultLimit(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]domain.TrendSnapshot{})
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.ListSnapshots(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestClient_GetSnapshot(t *testing.T) {
	t.Parallel()

	detail := SnapshotDetail{
		TrendSnapshot: domain.TrendSnapshot{
			ID:           "s1",
			SnapshotDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			AveragePrice: 22.27,
			TotalSold:    11,
		},
		Items: []domain.TrendSnapshotItem{
			{ID: "i1", Title: "Charizard Holo", Price: 100},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/snapshots/2025-06-15", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(detail)
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.GetSnapshot(context.Background(), "2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, "s1", result.ID)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Charizard Holo", result.Items[0].Title)
}

func TestClient_GetSnapshot_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"title":"Not Found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetSnapshot(context.Background(), "2025-01-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 404)")
}
