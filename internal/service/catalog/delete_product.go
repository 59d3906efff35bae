package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wholestock/inventory-backend/internal/domain"
)

// DeleteProduct removes a product and appends a "deleted" history record in
// the same transaction. Admin-only. The history record survives the product
// row: inventory_history carries no foreign key to products.
// Returns ErrNotFound for an unknown product id.
func (s *Service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	actor, err := requireAdmin(ctx)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		product, err := s.products.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get product: %w", err)
		}

		note := "Product deleted: " + product.Name
		_, err = s.history.Append(txCtx, domain.InventoryRecord{
			ID:          uuid.New(),
			ProductID:   product.ID,
			Action:      domain.ActionDeleted,
			PerformedBy: actor.Username,
			Notes:       &note,
		})
		if err != nil {
			return fmt.Errorf("append history: %w", err)
		}

		if err := s.products.Delete(txCtx, product.ID); err != nil {
			return fmt.Errorf("delete product: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("catalog.DeleteProduct: %w", err)
	}

	s.log.Info("product deleted",
		"product_id", id,
		"performed_by", actor.Username,
	)

	return nil
}
