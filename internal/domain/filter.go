package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductFilter contains optional catalog search criteria.
// All set fields are combined with logical AND.
type ProductFilter struct {
	// Search performs a case-insensitive substring match on name.
	Search *string

	// Category matches the category exactly.
	Category *string

	// MinPrice / MaxPrice are inclusive bounds.
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// RecordFilter contains optional inventory-history query criteria.
type RecordFilter struct {
	// ProductID limits records to a single product.
	ProductID *uuid.UUID

	// Since keeps only records created at or after the given instant.
	Since *time.Time

	// Limit caps the number of returned records. 0 means repository default.
	Limit int
}
