//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/cardledger/market-trends/internal/store"
	domain "github.com/cardledger/market-trends/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("cmt_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func testSnapshot(date time.Time) *domain.TrendSnapshot {
	return &domain.TrendSnapshot{
		SnapshotDate:  date,
		AveragePrice:  22.27,
		HighestSale:   100,
		LowestSale:    5,
		TotalSold:     11,
		PercentChange: 0,
	}
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_InsertSnapshot(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("insert new snapshot", func(t *testing.T) {
		snap := testSnapshot(date)
		err := s.InsertSnapshot(ctx, snap)
		require.NoError(t, err)
		assert.NotEmpty(t, snap.ID)
		assert.False(t, snap.CreatedAt.IsZero())
	})

	t.Run("duplicate date returns ErrSnapshotExists", func(t *testing.T) {
		snap := testSnapshot(date)
		err := s.InsertSnapshot(ctx, snap)
		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrSnapshotExists)
	})
}

func TestPostgresStore_GetSnapshotByDate(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	snap := testSnapshot(date)
	require.NoError(t, s.InsertSnapshot(ctx, snap))

	t.Run("found", func(t *testing.T) {
		got, err := s.GetSnapshotByDate(ctx, date)
		require.NoError(t, err)
		assert.Equal(t, snap.ID, got.ID)
		assert.InDelta(t, 22.27, got.AveragePrice, 0.01)
		assert.Equal(t, 11, got.TotalSold)
	})

	t.Run("missing date", func(t *testing.T) {
		_, err := s.GetSnapshotByDate(ctx, date.AddDate(0, 0, 7))
		assert.ErrorIs(t, err, store.ErrSnapshotNotFound)
	})
}

func TestPostgresStore_GetLatestSnapshotBefore(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	// Snapshots on the 1st and 3rd; the 2nd is a hole.
	d1 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	d3 := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	s1 := testSnapshot(d1)
	require.NoError(t, s.InsertSnapshot(ctx, s1))
	s3 := testSnapshot(d3)
	s3.AveragePrice = 30
	require.NoError(t, s.InsertSnapshot(ctx, s3))

	t.Run("skips over holes", func(t *testing.T) {
		got, err := s.GetLatestSnapshotBefore(ctx, d3)
		require.NoError(t, err)
		assert.Equal(t, s1.ID, got.ID)
	})

	t.Run("excludes the query date itself", func(t *testing.T) {
		got, err := s.GetLatestSnapshotBefore(ctx, d3.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Equal(t, s3.ID, got.ID)
	})

	t.Run("nothing prior", func(t *testing.T) {
		_, err := s.GetLatestSnapshotBefore(ctx, d1)
		assert.ErrorIs(t, err, store.ErrSnapshotNotFound)
	})
}

func TestPostgresStore_ListSnapshots(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := range 5 {
		snap := testSnapshot(base.AddDate(0, 0, i))
		require.NoError(t, s.InsertSnapshot(ctx, snap))
	}

	t.Run("newest first with limit", func(t *testing.T) {
		snaps, err := s.ListSnapshots(ctx, 3)
		require.NoError(t, err)
		require.Len(t, snaps, 3)
		assert.True(t, snaps[0].SnapshotDate.After(snaps[1].SnapshotDate))
		assert.True(t, snaps[1].SnapshotDate.After(snaps[2].SnapshotDate))
	})

	t.Run("non-positive limit uses default", func(t *testing.T) {
		snaps, err := s.ListSnapshots(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, snaps, 5)
	})
}

func TestPostgresStore_SnapshotItems(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	snap := testSnapshot(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, s.InsertSnapshot(ctx, snap))

	items := []domain.TrendSnapshotItem{
		{
			Title:    "Charizard Base Set Holo PSA 9",
			Price:    425.00,
			Currency: "USD",
			ImageURL: "https://i.ebayimg.com/images/111.jpg",
			ItemURL:  "https://www.ebay.com/itm/111",
			Category: "CCG Individual Cards",
		},
		{
			Title:    "Blastoise Base Set Holo",
			Price:    120.00,
			Currency: "USD",
			ItemURL:  "https://www.ebay.com/itm/222",
			Category: "CCG Individual Cards",
		},
	}

	require.NoError(t, s.InsertSnapshotItems(ctx, snap.ID, items))
	assert.NotEmpty(t, items[0].ID)
	assert.Equal(t, snap.ID, items[0].SnapshotID)

	got, err := s.ListSnapshotItems(ctx, snap.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Ordered by price descending.
	assert.Equal(t, "Charizard Base Set Holo PSA 9", got[0].Title)
	assert.Empty(t, got[1].ImageURL)
}
