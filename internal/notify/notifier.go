// Package notify defines the notification interface and implementations
// for daily market digest delivery.
package notify

import (
	"context"

	domain "github.com/cardledger/market-trends/pkg/types"
)

// DigestPayload contains the data needed to send a daily market digest.
type DigestPayload struct {
	Date          string // YYYY-MM-DD
	AveragePrice  float64
	PercentChange float64
	TotalSold     int
	HighestSale   float64
	LowestSale    float64
	TopItems      []domain.TrendSnapshotItem
}

// Notifier defines the interface for sending daily market digests.
type Notifier interface {
	SendDailyDigest(ctx context.Context, digest *DigestPayload) error
}
