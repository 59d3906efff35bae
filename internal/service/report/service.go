// Package report computes aggregate inventory reports. All aggregation runs
// in single SQL statements, so each report is consistent as of its read.
package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wholestock/inventory-backend/internal/domain"
	"github.com/wholestock/inventory-backend/pkg/ctxutil"
)

// productRepo defines the product repository interface needed by report service.
type productRepo interface {
	Stats(ctx context.Context) (domain.InventoryStats, error)
	CategoryStats(ctx context.Context) ([]domain.CategoryStat, error)
	ListLowStock(ctx context.Context) ([]domain.LowStockItem, error)
}

// Service implements reporting operations. Admin-only, read-only; nothing
// is cached, every call hits the database.
type Service struct {
	log      *slog.Logger
	products productRepo
}

// NewService creates a new report service instance.
func NewService(logger *slog.Logger, products productRepo) *Service {
	return &Service{
		log:      logger.With("service", "report"),
		products: products,
	}
}

// Stats returns the warehouse-wide aggregate snapshot.
func (s *Service) Stats(ctx context.Context) (domain.InventoryStats, error) {
	if err := requireAdmin(ctx); err != nil {
		return domain.InventoryStats{}, err
	}

	stats, err := s.products.Stats(ctx)
	if err != nil {
		return domain.InventoryStats{}, fmt.Errorf("report.Stats: %w", err)
	}

	return stats, nil
}

// CategoryStats returns product count and stock value per category.
func (s *Service) CategoryStats(ctx context.Context) ([]domain.CategoryStat, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	stats, err := s.products.CategoryStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("report.CategoryStats: %w", err)
	}

	return stats, nil
}

// LowStockReport returns all products at or below their low-stock threshold,
// lowest quantity first.
func (s *Service) LowStockReport(ctx context.Context) ([]domain.LowStockItem, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	items, err := s.products.ListLowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("report.LowStockReport: %w", err)
	}

	return items, nil
}

// requireAdmin checks that the context actor has the admin role.
func requireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return fmt.Errorf("no authenticated user: %w", domain.ErrUnauthorized)
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return fmt.Errorf("admin role required: %w", domain.ErrForbidden)
	}
	return nil
}
