// Package store defines the datastore abstraction for market-trends.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/cardledger/market-trends/pkg/types"
)

var (
	// ErrSnapshotNotFound is returned when no snapshot matches a lookup.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrSnapshotExists is returned when inserting a snapshot for a date
	// that already has one. Callers treat this as a no-op, which makes
	// concurrent daily updates idempotent.
	ErrSnapshotExists = errors.New("snapshot already exists for date")
)

const defaultListLimit = 90

// Store defines all data access operations for market-trends.
type Store interface {
	// Snapshots
	GetSnapshotByDate(ctx context.Context, date time.Time) (*domain.TrendSnapshot, error)
	GetLatestSnapshotBefore(ctx context.Context, date time.Time) (*domain.TrendSnapshot, error)
	InsertSnapshot(ctx context.Context, s *domain.TrendSnapshot) error
	ListSnapshots(ctx context.Context, limit int) ([]domain.TrendSnapshot, error)

	// Snapshot items
	InsertSnapshotItems(ctx context.Context, snapshotID string, items []domain.TrendSnapshotItem) error
	ListSnapshotItems(ctx context.Context, snapshotID string) ([]domain.TrendSnapshotItem, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close()
}
