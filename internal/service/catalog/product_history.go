package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wholestock/inventory-backend/internal/domain"
)

// ProductHistory returns the audit trail for one product, most recent first.
// Admin-only. Unknown product ids yield an empty slice, not an error, since
// history legitimately outlives deleted products.
func (s *Service) ProductHistory(ctx context.Context, productID uuid.UUID) ([]domain.InventoryRecord, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	records, err := s.history.ListByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("catalog.ProductHistory: %w", err)
	}

	return records, nil
}
