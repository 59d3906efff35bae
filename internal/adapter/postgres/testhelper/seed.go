package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/wholestock/inventory-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an active customer user with a throwaway password hash.
// Returns the filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "testuser-" + suffix,
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$10$testhashtesthashtesthashtesthashtesthashtesthashtest",
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, email, password_hash, role, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Username, user.Email, user.PasswordHash, user.Role.String(), user.IsActive, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedProduct creates a product with a unique SKU and the given price and
// quantity. Returns the filled domain.Product.
func SeedProduct(t *testing.T, pool *pgxpool.Pool, price string, quantity int) domain.Product {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	product := domain.Product{
		ID:            uuid.New(),
		Name:          "Test Product " + suffix,
		SKU:           "SKU-" + suffix,
		Price:         decimal.RequireFromString(price),
		Quantity:      quantity,
		MinStockLevel: domain.DefaultMinStockLevel,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO products (id, name, sku, price, quantity, min_stock_level, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		product.ID, product.Name, product.SKU, product.Price, product.Quantity,
		product.MinStockLevel, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProduct insert: %v", err)
	}

	return product
}

// SeedRecord appends an inventory history record for the given product.
func SeedRecord(t *testing.T, pool *pgxpool.Pool, productID uuid.UUID, action domain.InventoryAction, change int, createdAt time.Time) domain.InventoryRecord {
	t.Helper()
	ctx := context.Background()

	rec := domain.InventoryRecord{
		ID:             uuid.New(),
		ProductID:      productID,
		Action:         action,
		QuantityChange: change,
		PerformedBy:    "seed",
		CreatedAt:      createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO inventory_history (id, product_id, action, quantity_change, performed_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.ProductID, rec.Action.String(), rec.QuantityChange, rec.PerformedBy, rec.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord insert: %v", err)
	}

	return rec
}
