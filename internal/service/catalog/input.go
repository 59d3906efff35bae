package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wholestock/inventory-backend/internal/domain"
)

// CreateProductInput holds parameters for product creation.
// Description, Category, and Supplier are optional; empty strings are
// stored as NULL. MinStockLevel falls back to domain.DefaultMinStockLevel
// when nil.
type CreateProductInput struct {
	Name          string
	SKU           string
	Description   string
	Category      string
	Price         decimal.Decimal
	Quantity      int
	MinStockLevel *int
	Supplier      string
}

// Validate validates the create input.
func (i CreateProductInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.SKU == "" {
		errs = append(errs, domain.FieldError{Field: "sku", Message: "required"})
	}
	if i.Price.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "price", Message: "must not be negative"})
	}
	if i.Quantity < 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must not be negative"})
	}
	if i.MinStockLevel != nil && *i.MinStockLevel < 0 {
		errs = append(errs, domain.FieldError{Field: "min_stock_level", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// product builds the domain.Product to insert. Assigns a fresh ID.
func (i CreateProductInput) product() *domain.Product {
	minStock := domain.DefaultMinStockLevel
	if i.MinStockLevel != nil {
		minStock = *i.MinStockLevel
	}

	return &domain.Product{
		ID:            uuid.New(),
		Name:          i.Name,
		SKU:           i.SKU,
		Description:   textOrNil(i.Description),
		Category:      textOrNil(i.Category),
		Price:         i.Price,
		Quantity:      i.Quantity,
		MinStockLevel: minStock,
		Supplier:      textOrNil(i.Supplier),
	}
}

// UpdateProductInput holds parameters for a partial product update.
// Nil fields are left untouched; for nullable text fields a pointer to ""
// clears the column. SKU has no update path: it is immutable.
type UpdateProductInput struct {
	ID     uuid.UUID
	Params domain.ProductUpdateParams
}

// Validate validates the update input.
func (i UpdateProductInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Params.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "body", Message: "no fields to update"})
	}
	if i.Params.Name != nil && *i.Params.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if i.Params.Price != nil && i.Params.Price.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "price", Message: "must not be negative"})
	}
	if i.Params.Quantity != nil && *i.Params.Quantity < 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must not be negative"})
	}
	if i.Params.MinStockLevel != nil && *i.Params.MinStockLevel < 0 {
		errs = append(errs, domain.FieldError{Field: "min_stock_level", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// textOrNil maps an empty string to nil for optional text fields.
func textOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
