package product_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/wholestock/inventory-backend/internal/adapter/postgres/product"
	"github.com/wholestock/inventory-backend/internal/adapter/postgres/testhelper"
	"github.com/wholestock/inventory-backend/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func newProduct(sku string) *domain.Product {
	return &domain.Product{
		ID:            uuid.New(),
		Name:          "Widget " + sku,
		SKU:           sku,
		Description:   ptr("a widget"),
		Category:      ptr("widgets"),
		Price:         decimal.RequireFromString("9.99"),
		Quantity:      20,
		MinStockLevel: 5,
		Supplier:      ptr("Acme"),
	}
}

func TestRepo_Create(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := product.New(pool)
	ctx := context.Background()

	in := newProduct("CRT-" + uuid.New().String()[:8])

	created, err := repo.Create(ctx, in)
	require.NoError(t, err)
	require.Equal(t, in.ID, created.ID)
	require.Equal(t, in.Name, created.Name)
	require.Equal(t, in.SKU, created.SKU)
	require.True(t, in.Price.Equal(created.Price))
	require.Equal(t, in.Quantity, created.Quantity)
	require.False(t, created.CreatedAt.IsZero())
	require.False(t, created.UpdatedAt.IsZero())
}

func TestRepo_Create_DuplicateSKU(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := product.New(pool)
	ctx := context.Background()

	sku := "DUP-" + uuid.New().String()[:8]

	_, err := repo.Create(ctx, newProduct(sku))
	require.NoError(t, err)

	dup := newProduct(sku)
	dup.ID = uuid.New()
	_, err = repo.Create(ctx, dup)
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestRepo_GetByID(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := product.New(pool)
	ctx := context.Background()

	seeded := testhelper.SeedProduct(t, pool, "15.50", 3)

	got, err := repo.GetByID(ctx, seeded.ID)
	require.NoError(t, err)
	require.Equal(t, seeded.ID, got.ID)
	require.Equal(t, seeded.SKU, got.SKU)
	require.True(t, got.Price.Equal(decimal.RequireFromString("15.50")))
	require.Equal(t, 3, got.Quantity)
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := product.New(pool)

	_, err := repo.GetByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_Update_Partial(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := product.New(pool)
	ctx := context.Background()

	seeded := testhelper.SeedProduct(t, pool, "10.00", 7)

	updated, err := repo.Update(ctx, seeded.ID, domain.ProductUpdateParams{
		Name:     ptr("Renamed"),
		Quantity: ptr(42),
	})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Name)
	require.Equal(t, 42, updated.Quantity)
	// Untouched fields keep their previous values.
	require.Equal(t, seeded.SKU, updated.SKU)
	require.True(t, updated.Price.Equal(decimal.RequireFromString("10.00")))
	require.True(t, updated.UpdatedAt.After(seeded.UpdatedAt))
}

func TestRepo_Update_ClearsNullableField(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := product.New(pool)
	ctx := context.Background()

	in := newProduct("CLR-" + uuid.New().String()[:8])
	created, err := repo.Create(ctx, in)
	require.NoError(t, err)
	require.NotNil(t, created.Description)

	updated, err := repo.Update(ctx, created.ID, domain.ProductUpdateParams{
		Description: ptr(""),
	})
	require.NoError(t, err)
	require.Nil(t, updated.Description)
}

func TestRepo_Update_NotFound(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := product.New(pool)

	_, err := repo.Update(context.Background(), uuid.New(), domain.ProductUpdateParams{
		Name: ptr("ghost"),
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_Update_NegativeQuantityRejected(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := product.New(pool)
	ctx := context.Background()

	seeded := testhelper.SeedProduct(t, pool, "1.00", 1)

	_, err := repo.Update(ctx, seeded.ID, domain.ProductUpdateParams{
		Quantity: ptr(-1),
	})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestRepo_Delete(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := product.New(pool)
	ctx := context.Background()

	seeded := testhelper.SeedProduct(t, pool, "2.00", 1)

	require.NoError(t, repo.Delete(ctx, seeded.ID))

	_, err := repo.GetByID(ctx, seeded.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	err = repo.Delete(ctx, seeded.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_List_Filters(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := product.New(pool)
	ctx := context.Background()

	marker := uuid.New().String()[:8]

	cheap := newProduct("LSTA-" + marker)
	cheap.Name = "Alpha " + marker
	cheap.Category = ptr("cat-" + marker)
	cheap.Price = decimal.RequireFromString("1.00")
	_, err := repo.Create(ctx, cheap)
	require.NoError(t, err)

	pricey := newProduct("LSTB-" + marker)
	pricey.Name = "Beta " + marker
	pricey.Category = ptr("cat-" + marker)
	pricey.Price = decimal.RequireFromString("100.00")
	_, err = repo.Create(ctx, pricey)
	require.NoError(t, err)

	// Category filter narrows to this test's rows.
	got, err := repo.List(ctx, domain.ProductFilter{Category: cheap.Category})
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Ordered by name.
	require.Equal(t, cheap.ID, got[0].ID)
	require.Equal(t, pricey.ID, got[1].ID)

	// Case-insensitive substring search on name.
	got, err = repo.List(ctx, domain.ProductFilter{Search: ptr("alpha " + marker)})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, cheap.ID, got[0].ID)

	// Price bounds.
	minPrice := decimal.RequireFromString("50")
	got, err = repo.List(ctx, domain.ProductFilter{Category: cheap.Category, MinPrice: &minPrice})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, pricey.ID, got[0].ID)
}

func TestRepo_List_EmptyResultIsNotNil(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := product.New(pool)

	got, err := repo.List(context.Background(), domain.ProductFilter{
		Search: ptr("no-such-product-" + uuid.New().String()),
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestRepo_ListCategories(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := product.New(pool)
	ctx := context.Background()

	marker := uuid.New().String()[:8]

	a := newProduct("CATA-" + marker)
	a.Category = ptr("zzz-" + marker)
	_, err := repo.Create(ctx, a)
	require.NoError(t, err)

	b := newProduct("CATB-" + marker)
	b.Category = ptr("aaa-" + marker)
	_, err = repo.Create(ctx, b)
	require.NoError(t, err)

	// Same category twice must appear once.
	c := newProduct("CATC-" + marker)
	c.Category = ptr("aaa-" + marker)
	_, err = repo.Create(ctx, c)
	require.NoError(t, err)

	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	require.Contains(t, categories, "aaa-"+marker)
	require.Contains(t, categories, "zzz-"+marker)

	count := 0
	for _, cat := range categories {
		if cat == "aaa-"+marker {
			count++
		}
	}
	require.Equal(t, 1, count)
}

func TestRepo_Stats(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := product.New(pool)
	ctx := context.Background()

	before, err := repo.Stats(ctx)
	require.NoError(t, err)

	// quantity 0 -> out of stock; quantity 2 with min 10 -> low stock.
	testhelper.SeedProduct(t, pool, "10.00", 0)
	testhelper.SeedProduct(t, pool, "10.00", 2)
	testhelper.SeedProduct(t, pool, "10.00", 100)

	after, err := repo.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, before.TotalProducts+3, after.TotalProducts)
	require.Equal(t, before.OutOfStockItems+1, after.OutOfStockItems)
	require.Equal(t, before.LowStockItems+1, after.LowStockItems)

	wantDelta := decimal.RequireFromString("1020.00")
	require.True(t, after.TotalValue.Sub(before.TotalValue).Equal(wantDelta),
		"total value delta: got %s, want %s", after.TotalValue.Sub(before.TotalValue), wantDelta)
}

func TestRepo_CategoryStats_UncategorizedBucket(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := product.New(pool)
	ctx := context.Background()

	// SeedProduct leaves category NULL.
	testhelper.SeedProduct(t, pool, "4.00", 5)

	stats, err := repo.CategoryStats(ctx)
	require.NoError(t, err)

	var found bool
	for _, s := range stats {
		if s.Category == domain.UncategorizedBucket {
			found = true
			require.GreaterOrEqual(t, s.ProductCount, 1)
		}
	}
	require.True(t, found, "expected an %q bucket", domain.UncategorizedBucket)
}

func TestRepo_ListLowStock(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := product.New(pool)
	ctx := context.Background()

	out := testhelper.SeedProduct(t, pool, "1.00", 0)
	low := testhelper.SeedProduct(t, pool, "1.00", 3)
	testhelper.SeedProduct(t, pool, "1.00", 500)

	items, err := repo.ListLowStock(ctx)
	require.NoError(t, err)

	byID := map[uuid.UUID]domain.LowStockItem{}
	for _, item := range items {
		byID[item.ID] = item
	}

	require.Contains(t, byID, out.ID)
	require.Contains(t, byID, low.ID)
	require.Equal(t, 3, byID[low.ID].Quantity)

	for _, item := range items {
		require.LessOrEqual(t, item.Quantity, item.MinStockLevel)
	}
}
