// Package catalog implements product catalog management. Every mutation
// (create, update, delete) appends exactly one inventory-history record in
// the same database transaction as the product write.
package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wholestock/inventory-backend/internal/domain"
)

// productRepo defines the product repository interface needed by catalog service.
type productRepo interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id uuid.UUID, params domain.ProductUpdateParams) (*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
}

// historyRepo defines the inventory history interface needed by catalog service.
type historyRepo interface {
	Append(ctx context.Context, record domain.InventoryRecord) (domain.InventoryRecord, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]domain.InventoryRecord, error)
}

// txManager defines the transaction manager interface needed by catalog service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements catalog operations.
type Service struct {
	log      *slog.Logger
	products productRepo
	history  historyRepo
	tx       txManager
}

// NewService creates a new catalog service instance.
func NewService(logger *slog.Logger, products productRepo, history historyRepo, tx txManager) *Service {
	return &Service{
		log:      logger.With("service", "catalog"),
		products: products,
		history:  history,
		tx:       tx,
	}
}
