package client

import (
	"context"
	"fmt"

	domain "github.com/cardledger/market-trends/pkg/types"
)

// StatusResponse is the body returned by the refresh and update endpoints.
type StatusResponse struct {
	Status string `json:"status"`
}

// SnapshotDetail is a snapshot with its stored item sample.
type SnapshotDetail struct {
	domain.TrendSnapshot
	Items []domain.TrendSnapshotItem `json:"items"`
}

// GetTrends fetches the current market summary.
func (c *Client) GetTrends(ctx context.Context) (*domain.MarketSummary, error) {
	var summary domain.MarketSummary
	if err := c.get(ctx, "/api/v1/trends", &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// RefreshTrends invalidates the server-side trend cache.
func (c *Client) RefreshTrends(ctx context.Context) (*StatusResponse, error) {
	var status StatusResponse
	if err := c.post(ctx, "/api/v1/trends/refresh", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// RunUpdate triggers the daily snapshot update for today.
func (c *Client) RunUpdate(ctx context.Context) (*StatusResponse, error) {
	var status StatusResponse
	if err := c.post(ctx, "/api/v1/trends/update", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// ListSnapshots returns up to limit daily snapshots, newest first.
func (c *Client) ListSnapshots(ctx context.Context, limit int) ([]domain.TrendSnapshot, error) {
	path := "/api/v1/snapshots"
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}
	var snapshots []domain.TrendSnapshot
	if err := c.get(ctx, path, &snapshots); err != nil {
		return nil, err
	}
	return snapshots, nil
}

// GetSnapshot returns the snapshot for the given date (YYYY-MM-DD) with its
// item sample.
func (c *Client) GetSnapshot(ctx context.Context, date string) (*SnapshotDetail, error) {
	var detail SnapshotDetail
	if err := c.get(ctx, "/api/v1/snapshots/"+date, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}
