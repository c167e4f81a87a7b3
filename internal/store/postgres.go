package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/cardledger/market-trends/pkg/types"
)

const defaultPoolSize = 10

// pgUniqueViolation is the SQLSTATE for unique constraint violations.
const pgUniqueViolation = "23505"

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// InsertSnapshot writes a new daily snapshot. The snapshot's ID and
// CreatedAt are populated from the database. Inserting a second snapshot
// for the same date returns ErrSnapshotExists.
func (s *PostgresStore) InsertSnapshot(ctx context.Context, snap *domain.TrendSnapshot) error {
	args := pgx.NamedArgs{
		"snapshot_date":  snap.SnapshotDate,
		"average_price":  snap.AveragePrice,
		"highest_sale":   snap.HighestSale,
		"lowest_sale":    snap.LowestSale,
		"total_sold":     snap.TotalSold,
		"percent_change": snap.PercentChange,
	}

	err := s.pool.QueryRow(ctx, queryInsertSnapshot, args).Scan(&snap.ID, &snap.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: %s", ErrSnapshotExists, domain.DateKey(snap.SnapshotDate))
		}
		return fmt.Errorf("inserting snapshot: %w", err)
	}
	return nil
}

// GetSnapshotByDate retrieves the snapshot for a calendar date, or
// ErrSnapshotNotFound if that day has no snapshot.
func (s *PostgresStore) GetSnapshotByDate(
	ctx context.Context,
	date time.Time,
) (*domain.TrendSnapshot, error) {
	snap := &domain.TrendSnapshot{}
	err := scanSnapshot(s.pool.QueryRow(ctx, queryGetSnapshotByDate, date), snap)
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// GetLatestSnapshotBefore retrieves the most recent snapshot strictly
// before the given date. Days without snapshots are skipped over, so a
// hole in the history never acts as a zero baseline.
func (s *PostgresStore) GetLatestSnapshotBefore(
	ctx context.Context,
	date time.Time,
) (*domain.TrendSnapshot, error) {
	snap := &domain.TrendSnapshot{}
	err := scanSnapshot(s.pool.QueryRow(ctx, queryGetLatestSnapshotBefore, date), snap)
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// ListSnapshots returns snapshots newest-first, capped at limit.
// A non-positive limit falls back to the default.
func (s *PostgresStore) ListSnapshots(
	ctx context.Context,
	limit int,
) ([]domain.TrendSnapshot, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.pool.Query(ctx, queryListSnapshots, limit)
	if err != nil {
		return nil, fmt.Errorf("querying snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []domain.TrendSnapshot
	for rows.Next() {
		var snap domain.TrendSnapshot
		if err := rows.Scan(
			&snap.ID, &snap.SnapshotDate, &snap.AveragePrice, &snap.HighestSale,
			&snap.LowestSale, &snap.TotalSold, &snap.PercentChange, &snap.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshots: %w", err)
	}

	return snaps, nil
}

// InsertSnapshotItems writes the item sample for a snapshot. Items are
// inserted one at a time; the first failure aborts with the error, and
// any rows already written stay (the item sample is best-effort detail).
func (s *PostgresStore) InsertSnapshotItems(
	ctx context.Context,
	snapshotID string,
	items []domain.TrendSnapshotItem,
) error {
	for i := range items {
		item := &items[i]
		item.SnapshotID = snapshotID

		args := pgx.NamedArgs{
			"snapshot_id": snapshotID,
			"title":       item.Title,
			"price":       item.Price,
			"currency":    item.Currency,
			"image_url":   item.ImageURL,
			"item_url":    item.ItemURL,
			"category":    item.Category,
		}

		if err := s.pool.QueryRow(ctx, queryInsertSnapshotItem, args).Scan(&item.ID); err != nil {
			return fmt.Errorf("inserting snapshot item %d: %w", i, err)
		}
	}
	return nil
}

// ListSnapshotItems returns the item sample for a snapshot, highest
// price first.
func (s *PostgresStore) ListSnapshotItems(
	ctx context.Context,
	snapshotID string,
) ([]domain.TrendSnapshotItem, error) {
	rows, err := s.pool.Query(ctx, queryListSnapshotItems, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("querying snapshot items: %w", err)
	}
	defer rows.Close()

	var items []domain.TrendSnapshotItem
	for rows.Next() {
		var item domain.TrendSnapshotItem
		if err := rows.Scan(
			&item.ID, &item.SnapshotID, &item.Title, &item.Price,
			&item.Currency, &item.ImageURL, &item.ItemURL, &item.Category,
		); err != nil {
			return nil, fmt.Errorf("scanning snapshot item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshot items: %w", err)
	}

	return items, nil
}

func scanSnapshot(row pgx.Row, snap *domain.TrendSnapshot) error {
	err := row.Scan(
		&snap.ID, &snap.SnapshotDate, &snap.AveragePrice, &snap.HighestSale,
		&snap.LowestSale, &snap.TotalSold, &snap.PercentChange, &snap.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrSnapshotNotFound
	}
	if err != nil {
		return fmt.Errorf("scanning snapshot: %w", err)
	}
	return nil
}
