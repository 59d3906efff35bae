package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wholestock/inventory-backend/internal/domain"
	"github.com/wholestock/inventory-backend/pkg/ctxutil"
)

// GetProduct returns a single product by id. Any authenticated user.
// Returns ErrNotFound for an unknown id.
func (s *Service) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return nil, fmt.Errorf("no authenticated user: %w", domain.ErrUnauthorized)
	}

	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetProduct: %w", err)
	}

	return product, nil
}
