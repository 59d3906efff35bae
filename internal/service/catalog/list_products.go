package catalog

import (
	"context"
	"fmt"

	"github.com/wholestock/inventory-backend/internal/domain"
	"github.com/wholestock/inventory-backend/pkg/ctxutil"
)

// ListProducts returns products matching the filter, ordered by name.
// Any authenticated user.
func (s *Service) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return nil, fmt.Errorf("no authenticated user: %w", domain.ErrUnauthorized)
	}

	products, err := s.products.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListProducts: %w", err)
	}

	return products, nil
}

// ListCategories returns all distinct non-empty category values, sorted.
// Any authenticated user.
func (s *Service) ListCategories(ctx context.Context) ([]string, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return nil, fmt.Errorf("no authenticated user: %w", domain.ErrUnauthorized)
	}

	categories, err := s.products.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListCategories: %w", err)
	}

	return categories, nil
}
