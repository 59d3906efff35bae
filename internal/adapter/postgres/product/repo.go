// Package product implements the Product repository using PostgreSQL.
// It owns all reads and writes of the products table, including the
// aggregate queries consumed by the report service.
package product

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

// Repo provides product persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new product repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// psql is the statement builder configured for PostgreSQL placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const productColumns = `id, name, sku, description, category, price, quantity, min_stock_level, supplier, created_at, updated_at`

// ---------------------------------------------------------------------------
// Raw SQL for fixed statements
// ---------------------------------------------------------------------------

const insertProductSQL = `
INSERT INTO products (id, name, sku, description, category, price, quantity, min_stock_level, supplier, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
RETURNING ` + productColumns

const getProductByIDSQL = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1`

const deleteProductSQL = `DELETE FROM products WHERE id = $1`

const listCategoriesSQL = `
SELECT DISTINCT category
FROM products
WHERE category IS NOT NULL AND category <> ''
ORDER BY category`

const statsSQL = `
SELECT
    count(*),
    COALESCE(sum(price * quantity), 0),
    count(*) FILTER (WHERE quantity > 0 AND quantity <= min_stock_level),
    count(*) FILTER (WHERE quantity = 0),
    count(DISTINCT category) FILTER (WHERE category IS NOT NULL AND category <> '')
FROM products`

const categoryStatsSQL = `
SELECT
    COALESCE(NULLIF(category, ''), $1) AS bucket,
    count(*),
    COALESCE(sum(price * quantity), 0)
FROM products
GROUP BY bucket
ORDER BY bucket`

const listLowStockSQL = `
SELECT id, name, sku, category, quantity, min_stock_level, supplier
FROM products
WHERE quantity <= min_stock_level
ORDER BY quantity, name`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new product and returns the persisted domain.Product.
// Returns domain.ErrAlreadyExists when the SKU is already taken; the unique
// index on sku is the serialization point for concurrent same-sku creates.
func (r *Repo) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, insertProductSQL,
		p.ID, p.Name, p.SKU, p.Description, p.Category,
		p.Price, p.Quantity, p.MinStockLevel, p.Supplier,
	)

	created, err := scanProduct(row)
	if err != nil {
		return nil, postgres.MapError(err, "product", p.SKU)
	}

	return created, nil
}

// Update applies a partial update and returns the updated product.
// Only the fields set in params are touched; updated_at is always refreshed.
// Returns domain.ErrNotFound if the product does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.ProductUpdateParams) (*domain.Product, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := psql.Update("products").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + productColumns)

	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.Description != nil {
		update = update.Set("description", textOrNull(*params.Description))
	}
	if params.Category != nil {
		update = update.Set("category", textOrNull(*params.Category))
	}
	if params.Price != nil {
		update = update.Set("price", *params.Price)
	}
	if params.Quantity != nil {
		update = update.Set("quantity", *params.Quantity)
	}
	if params.MinStockLevel != nil {
		update = update.Set("min_stock_level", *params.MinStockLevel)
	}
	if params.Supplier != nil {
		update = update.Set("supplier", textOrNull(*params.Supplier))
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	updated, err := scanProduct(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "product", id)
	}

	return updated, nil
}

// Delete removes a product row. History records are not touched; they are
// intentionally not foreign-keyed to products.
// Returns domain.ErrNotFound if the product does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteProductSQL, id)
	if err != nil {
		return postgres.MapError(err, "product", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a product by primary key.
// Returns domain.ErrNotFound if the product does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProduct(q.QueryRow(ctx, getProductByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "product", id)
	}

	return p, nil
}

// List returns products matching the filter, ordered by name.
// All filter criteria are optional and AND-combined.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := psql.Select(productColumns).From("products").OrderBy("name")

	if filter.Search != nil && *filter.Search != "" {
		query = query.Where(squirrel.ILike{"name": "%" + *filter.Search + "%"})
	}
	if filter.Category != nil && *filter.Category != "" {
		query = query.Where(squirrel.Eq{"category": *filter.Category})
	}
	if filter.MinPrice != nil {
		query = query.Where(squirrel.GtOrEq{"price": *filter.MinPrice})
	}
	if filter.MaxPrice != nil {
		query = query.Where(squirrel.LtOrEq{"price": *filter.MaxPrice})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return products, nil
}

// ListCategories returns all distinct non-empty category values, sorted.
// Returns an empty slice (not nil) when the catalog has no categories.
func (r *Repo) ListCategories(ctx context.Context) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listCategoriesSQL)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("list categories: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return categories, nil
}

// ---------------------------------------------------------------------------
// Aggregate queries (report service)
// ---------------------------------------------------------------------------

// Stats computes the warehouse-wide aggregate snapshot in a single statement,
// so all counters are consistent as of one read.
func (r *Repo) Stats(ctx context.Context) (domain.InventoryStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var stats domain.InventoryStats
	err := q.QueryRow(ctx, statsSQL).Scan(
		&stats.TotalProducts,
		&stats.TotalValue,
		&stats.LowStockItems,
		&stats.OutOfStockItems,
		&stats.TotalCategories,
	)
	if err != nil {
		return domain.InventoryStats{}, fmt.Errorf("inventory stats: %w", err)
	}

	return stats, nil
}

// CategoryStats returns product count and stock value per category.
// Products with an empty category fall into domain.UncategorizedBucket.
func (r *Repo) CategoryStats(ctx context.Context) ([]domain.CategoryStat, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, categoryStatsSQL, domain.UncategorizedBucket)
	if err != nil {
		return nil, fmt.Errorf("category stats: %w", err)
	}
	defer rows.Close()

	stats := []domain.CategoryStat{}
	for rows.Next() {
		var s domain.CategoryStat
		if err := rows.Scan(&s.Category, &s.ProductCount, &s.TotalValue); err != nil {
			return nil, fmt.Errorf("category stats: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("category stats: %w", err)
	}

	return stats, nil
}

// ListLowStock returns the reduced projection of all products at or below
// their low-stock threshold (including out-of-stock), lowest quantity first.
func (r *Repo) ListLowStock(ctx context.Context) ([]domain.LowStockItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listLowStockSQL)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()

	items := []domain.LowStockItem{}
	for rows.Next() {
		var item domain.LowStockItem
		err := rows.Scan(
			&item.ID, &item.Name, &item.SKU, &item.Category,
			&item.Quantity, &item.MinStockLevel, &item.Supplier,
		)
		if err != nil {
			return nil, fmt.Errorf("list low stock: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}

	return items, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanProduct scans a single row into a domain.Product.
func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.SKU, &p.Description, &p.Category,
		&p.Price, &p.Quantity, &p.MinStockLevel, &p.Supplier,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// scanProducts scans multiple rows into a []domain.Product.
func scanProducts(rows pgx.Rows) ([]domain.Product, error) {
	result := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		err := rows.Scan(
			&p.ID, &p.Name, &p.SKU, &p.Description, &p.Category,
			&p.Price, &p.Quantity, &p.MinStockLevel, &p.Supplier,
			&p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// textOrNull maps an empty string to NULL for nullable text columns, so an
// explicit clear in a partial update stores NULL rather than "".
func textOrNull(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
