// Package audit exposes read access to the inventory history. Records are
// written only by the catalog service; this service never mutates them.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wholestock/inventory-backend/internal/config"
	"github.com/wholestock/inventory-backend/internal/domain"
	"github.com/wholestock/inventory-backend/pkg/ctxutil"
)

// historyRepo defines the inventory history interface needed by audit service.
type historyRepo interface {
	Query(ctx context.Context, filter domain.RecordFilter) ([]domain.InventoryRecord, error)
}

// Service implements audit-trail read operations.
type Service struct {
	log     *slog.Logger
	history historyRepo
	cfg     config.ReportsConfig
}

// NewService creates a new audit service instance.
func NewService(logger *slog.Logger, history historyRepo, cfg config.ReportsConfig) *Service {
	return &Service{
		log:     logger.With("service", "audit"),
		history: history,
		cfg:     cfg,
	}
}

// RecentActivityInput holds the optional query parameters for RecentActivity.
type RecentActivityInput struct {
	// Since limits records to those created at or after the instant.
	// Nil falls back to the configured activity window (default 7 days).
	Since *time.Time

	// Limit caps the result size. 0 falls back to the configured maximum;
	// values above the maximum are clamped to it.
	Limit int
}

// RecentActivity returns inventory records across all products, most recent
// first. Admin-only.
func (s *Service) RecentActivity(ctx context.Context, input RecentActivityInput) ([]domain.InventoryRecord, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	since := time.Now().Add(-s.cfg.ActivityWindow)
	if input.Since != nil {
		since = *input.Since
	}

	limit := input.Limit
	if limit <= 0 || limit > s.cfg.ActivityMaxItems {
		limit = s.cfg.ActivityMaxItems
	}

	records, err := s.history.Query(ctx, domain.RecordFilter{
		Since: &since,
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("audit.RecentActivity: %w", err)
	}

	return records, nil
}

// ProductActivity returns inventory records for one product, most recent
// first. Admin-only. Unknown product ids yield an empty slice.
func (s *Service) ProductActivity(ctx context.Context, productID uuid.UUID, limit int) ([]domain.InventoryRecord, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	if limit <= 0 || limit > s.cfg.ActivityMaxItems {
		limit = s.cfg.ActivityMaxItems
	}

	records, err := s.history.Query(ctx, domain.RecordFilter{
		ProductID: &productID,
		Limit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("audit.ProductActivity: %w", err)
	}

	return records, nil
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
