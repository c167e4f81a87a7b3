package store

// SQL query constants organized by entity.
// All SQL lives here — PostgresStore methods reference these constants.

// Snapshot queries.
const (
	queryInsertSnapshot = `
		INSERT INTO trend_snapshots (
			snapshot_date, average_price, highest_sale, lowest_sale,
			total_sold, percent_change
		) VALUES (
			@snapshot_date, @average_price, @highest_sale, @lowest_sale,
			@total_sold, @percent_change
		)
		RETURNING id, created_at`

	queryGetSnapshotByDate = `
		SELECT id, snapshot_date, average_price, highest_sale, lowest_sale,
			total_sold, percent_change, created_at
		FROM trend_snapshots
		WHERE snapshot_date = $1::date`

	queryGetLatestSnapshotBefore = `
		SELECT id, snapshot_date, average_price, highest_sale, lowest_sale,
			total_sold, percent_change, created_at
		FROM trend_snapshots
		WHERE snapshot_date < $1::date
		ORDER BY snapshot_date DESC
		LIMIT 1`

	queryListSnapshots = `
		SELECT id, snapshot_date, average_price, highest_sale, lowest_sale,
			total_sold, percent_change, created_at
		FROM trend_snapshots
		ORDER BY snapshot_date DESC
		LIMIT $1`
)

// Snapshot item queries.
const (
	queryInsertSnapshotItem = `
		INSERT INTO trend_snapshot_items (
			snapshot_id, title, price, currency, image_url, item_url, category
		) VALUES (
			@snapshot_id, @title, @price, @currency, @image_url, @item_url, @category
		)
		RETURNING id`

	queryListSnapshotItems = `
		SELECT id, snapshot_id, title, price, currency,
			COALESCE(image_url, ''), item_url, category
		FROM trend_snapshot_items
		WHERE snapshot_id = $1
		ORDER BY price DESC`
)
