package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wholestock/inventory-backend/internal/domain"
	"github.com/wholestock/inventory-backend/pkg/ctxutil"
)

// CreateProduct inserts a new product and appends an "added" history record
// in the same transaction. Admin-only.
// Returns ErrAlreadyExists when the SKU is already taken.
func (s *Service) CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	actor, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Product

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		created, err = s.products.Create(txCtx, input.product())
		if err != nil {
			return fmt.Errorf("create product: %w", err)
		}

		note := "Product added: " + created.Name
		_, err = s.history.Append(txCtx, domain.InventoryRecord{
			ID:             uuid.New(),
			ProductID:      created.ID,
			Action:         domain.ActionAdded,
			QuantityChange: created.Quantity,
			PerformedBy:    actor.Username,
			Notes:          &note,
		})
		if err != nil {
			return fmt.Errorf("append history: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("catalog.CreateProduct: %w", err)
	}

	s.log.Info("product created",
		"product_id", created.ID,
		"sku", created.SKU,
		"performed_by", actor.Username,
	)

	return created, nil
}

// requireAdmin extracts the context actor and checks the admin role.
func requireAdmin(ctx context.Context) (ctxutil.Actor, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return ctxutil.Actor{}, fmt.Errorf("no authenticated user: %w", domain.ErrUnauthorized)
	}
	if actor.Role != domain.UserRoleAdmin {
		return ctxutil.Actor{}, fmt.Errorf("admin role required: %w", domain.ErrForbidden)
	}
	return actor, nil
}
