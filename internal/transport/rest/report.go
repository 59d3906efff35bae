package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wholestock/inventory-backend/internal/domain"
	"github.com/wholestock/inventory-backend/internal/service/audit"
)

// reportService defines the minimal interface needed by ReportHandler.
type reportService interface {
	Stats(ctx context.Context) (domain.InventoryStats, error)
	CategoryStats(ctx context.Context) ([]domain.CategoryStat, error)
	LowStockReport(ctx context.Context) ([]domain.LowStockItem, error)
}

// auditService defines the audit-trail interface needed by ReportHandler.
type auditService interface {
	RecentActivity(ctx context.Context, input audit.RecentActivityInput) ([]domain.InventoryRecord, error)
}

// ReportHandler serves the reporting REST endpoints.
type ReportHandler struct {
	reports reportService
	audits  auditService
	log     *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(reports reportService, audits auditService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		reports: reports,
		audits:  audits,
		log:     logger.With("handler", "report"),
	}
}

type statsResponse struct {
	TotalProducts   int             `json:"total_products"`
	TotalValue      decimal.Decimal `json:"total_value"`
	LowStockItems   int             `json:"low_stock_items"`
	OutOfStockItems int             `json:"out_of_stock_items"`
	TotalCategories int             `json:"total_categories"`
}

type categoryStatsResponse struct {
	Category     string          `json:"category"`
	ProductCount int             `json:"product_count"`
	TotalValue   decimal.Decimal `json:"total_value"`
}

type lowStockResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	SKU           string  `json:"sku"`
	Category      *string `json:"category"`
	Quantity      int     `json:"quantity"`
	MinStockLevel int     `json:"min_stock_level"`
	Supplier      *string `json:"supplier"`
}

// Stats handles GET /api/reports/stats.
func (h *ReportHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reports.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		TotalProducts:   stats.TotalProducts,
		TotalValue:      stats.TotalValue,
		LowStockItems:   stats.LowStockItems,
		OutOfStockItems: stats.OutOfStockItems,
		TotalCategories: stats.TotalCategories,
	})
}

// CategoryStats handles GET /api/reports/category-stats.
func (h *ReportHandler) CategoryStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reports.CategoryStats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]categoryStatsResponse, 0, len(stats))
	for _, s := range stats {
		out = append(out, categoryStatsResponse{
			Category:     s.Category,
			ProductCount: s.ProductCount,
			TotalValue:   s.TotalValue,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// LowStock handles GET /api/reports/low-stock.
func (h *ReportHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.reports.LowStockReport(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]lowStockResponse, 0, len(items))
	for _, item := range items {
		out = append(out, lowStockResponse{
			ID:            item.ID.String(),
			Name:          item.Name,
			SKU:           item.SKU,
			Category:      item.Category,
			Quantity:      item.Quantity,
			MinStockLevel: item.MinStockLevel,
			Supplier:      item.Supplier,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// RecentActivity handles GET /api/reports/recent-activity?days=7&limit=50.
func (h *ReportHandler) RecentActivity(w http.ResponseWriter, r *http.Request) {
	var input audit.RecentActivityInput

	if raw := r.URL.Query().Get("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days <= 0 {
			writeError(w, http.StatusBadRequest, "invalid days parameter")
			return
		}
		since := time.Now().Add(-time.Duration(days) * 24 * time.Hour)
		input.Since = &since
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit parameter")
			return
		}
		input.Limit = limit
	}

	records, err := h.audits.RecentActivity(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]historyResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toHistoryResponse(rec))
	}
	writeJSON(w, http.StatusOK, out)
}
