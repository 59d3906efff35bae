package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultMinStockLevel is applied when a product is created without an
// explicit low-stock threshold.
const DefaultMinStockLevel = 10

// Product is a catalog item tracked by the inventory.
// SKU is unique across the catalog and immutable after creation.
type Product struct {
	ID            uuid.UUID
	Name          string
	SKU           string
	Description   *string
	Category      *string
	Price         decimal.Decimal
	Quantity      int
	MinStockLevel int
	Supplier      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsOutOfStock returns true when the product has no stock at all.
func (p *Product) IsOutOfStock() bool {
	return p.Quantity == 0
}

// IsLowStock returns true when stock is positive but at or below the
// product's low-stock threshold. Out-of-stock products are not low-stock.
func (p *Product) IsLowStock() bool {
	return p.Quantity > 0 && p.Quantity <= p.MinStockLevel
}

// StockValue returns price × quantity for the product.
func (p *Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// ProductUpdateParams carries a partial update: nil means "leave the field
// untouched", a pointer to the zero value is an explicit assignment.
// For nullable text fields, ptr("") clears the column.
type ProductUpdateParams struct {
	Name          *string
	Description   *string
	Category      *string
	Price         *decimal.Decimal
	Quantity      *int
	MinStockLevel *int
	Supplier      *string
}

// IsEmpty returns true when no field is set.
func (p ProductUpdateParams) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Category == nil &&
		p.Price == nil && p.Quantity == nil && p.MinStockLevel == nil &&
		p.Supplier == nil
}
