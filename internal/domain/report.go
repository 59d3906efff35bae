package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryStats is the warehouse-wide aggregate snapshot.
type InventoryStats struct {
	TotalProducts   int
	TotalValue      decimal.Decimal
	LowStockItems   int
	OutOfStockItems int
	TotalCategories int
}

// CategoryStat aggregates product count and stock value for one category.
// Products without a category fall into the UncategorizedBucket.
type CategoryStat struct {
	Category     string
	ProductCount int
	TotalValue   decimal.Decimal
}

// UncategorizedBucket is the category label assigned to products with an
// empty or missing category in category reports.
const UncategorizedBucket = "Uncategorized"

// LowStockItem is the reduced product projection used by the low-stock
// report. Description and price are deliberately omitted.
type LowStockItem struct {
	ID            uuid.UUID
	Name          string
	SKU           string
	Category      *string
	Quantity      int
	MinStockLevel int
	Supplier      *string
}
