package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wholestock/inventory-backend/internal/domain"
)

// UpdateProduct applies a partial update and appends an "updated" history
// record in the same transaction. Admin-only.
// quantity_change records the stock delta (0 when quantity is untouched).
// Returns ErrNotFound for an unknown product id.
func (s *Service) UpdateProduct(ctx context.Context, input UpdateProductInput) (*domain.Product, error) {
	actor, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Product

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Read the current row first: the stock delta needs the old quantity.
		before, err := s.products.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get product: %w", err)
		}

		updated, err = s.products.Update(txCtx, input.ID, input.Params)
		if err != nil {
			return fmt.Errorf("update product: %w", err)
		}

		note := "Product updated: " + updated.Name
		_, err = s.history.Append(txCtx, domain.InventoryRecord{
			ID:             uuid.New(),
			ProductID:      updated.ID,
			Action:         domain.ActionUpdated,
			QuantityChange: updated.Quantity - before.Quantity,
			PerformedBy:    actor.Username,
			Notes:          &note,
		})
		if err != nil {
			return fmt.Errorf("append history: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("catalog.UpdateProduct: %w", err)
	}

	s.log.Info("product updated",
		"product_id", updated.ID,
		"performed_by", actor.Username,
	)

	return updated, nil
}
