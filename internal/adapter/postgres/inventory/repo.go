// Package inventory implements the append-only inventory history repository
// using PostgreSQL. Records are never updated or deleted.
package inventory

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/wholestock/inventory-backend/internal/adapter/postgres"
	"github.com/wholestock/inventory-backend/internal/domain"
)

// defaultQueryLimit caps history queries when the caller does not set one.
const defaultQueryLimit = 50

// Repo provides inventory history persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new inventory history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const recordColumns = `id, product_id, action, quantity_change, performed_by, notes, created_at`

const appendRecordSQL = `
INSERT INTO inventory_history (id, product_id, action, quantity_change, performed_by, notes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, now())
RETURNING ` + recordColumns

const listByProductSQL = `
SELECT ` + recordColumns + `
FROM inventory_history
WHERE product_id = $1
ORDER BY created_at DESC`

// Append inserts one history record. Called by the catalog service inside
// the same transaction as the product write, so the pair commits atomically.
func (r *Repo) Append(ctx context.Context, record domain.InventoryRecord) (domain.InventoryRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, appendRecordSQL,
		record.ID, record.ProductID, record.Action.String(),
		record.QuantityChange, record.PerformedBy, record.Notes,
	)

	saved, err := scanRecord(row)
	if err != nil {
		return domain.InventoryRecord{}, postgres.MapError(err, "inventory_record", record.ProductID)
	}

	return saved, nil
}

// ListByProduct returns the full history for one product, most recent first.
// Unknown product IDs yield an empty slice, not an error; history outlives
// products and absence of history is not exceptional.
func (r *Repo) ListByProduct(ctx context.Context, productID uuid.UUID) ([]domain.InventoryRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByProductSQL, productID)
	if err != nil {
		return nil, fmt.Errorf("list history by product: %w", err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("list history by product: %w", err)
	}

	return records, nil
}

// Query returns history records matching the filter, most recent first.
// A zero filter limit falls back to the repository default.
func (r *Repo) Query(ctx context.Context, filter domain.RecordFilter) ([]domain.InventoryRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultQueryLimit
	}

	query := psql.Select(recordColumns).
		From("inventory_history").
		OrderBy("created_at DESC").
		Limit(uint64(limit))

	if filter.ProductID != nil {
		query = query.Where(squirrel.Eq{"product_id": *filter.ProductID})
	}
	if filter.Since != nil {
		query = query.Where(squirrel.GtOrEq{"created_at": *filter.Since})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build history query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}

	return records, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanRecord(row pgx.Row) (domain.InventoryRecord, error) {
	var (
		rec    domain.InventoryRecord
		action string
	)
	err := row.Scan(
		&rec.ID, &rec.ProductID, &action, &rec.QuantityChange,
		&rec.PerformedBy, &rec.Notes, &rec.CreatedAt,
	)
	if err != nil {
		return domain.InventoryRecord{}, err
	}

	rec.Action = domain.InventoryAction(action)
	return rec, nil
}

func scanRecords(rows pgx.Rows) ([]domain.InventoryRecord, error) {
	result := []domain.InventoryRecord{}
	for rows.Next() {
		var (
			rec    domain.InventoryRecord
			action string
		)
		err := rows.Scan(
			&rec.ID, &rec.ProductID, &action, &rec.QuantityChange,
			&rec.PerformedBy, &rec.Notes, &rec.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		rec.Action = domain.InventoryAction(action)
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
