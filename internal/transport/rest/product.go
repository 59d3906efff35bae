package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wholestock/inventory-backend/internal/domain"
	"github.com/wholestock/inventory-backend/internal/service/catalog"
)

// catalogService defines the minimal interface needed by ProductHandler.
type catalogService interface {
	CreateProduct(ctx context.Context, input catalog.CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, input catalog.UpdateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	ProductHistory(ctx context.Context, productID uuid.UUID) ([]domain.InventoryRecord, error)
}

// ProductHandler serves the product catalog REST endpoints.
type ProductHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewProductHandler creates a ProductHandler.
func NewProductHandler(svc catalogService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{svc: svc, log: logger.With("handler", "product")}
}

type createProductRequest struct {
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int             `json:"quantity"`
	MinStockLevel *int            `json:"min_stock_level"`
	Supplier      string          `json:"supplier"`
}

// updateProductRequest is a partial update: absent fields stay untouched,
// an explicit "" clears a nullable text field.
type updateProductRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Category      *string          `json:"category"`
	Price         *decimal.Decimal `json:"price"`
	Quantity      *int             `json:"quantity"`
	MinStockLevel *int             `json:"min_stock_level"`
	Supplier      *string          `json:"supplier"`
}

type productResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	Description   *string         `json:"description"`
	Category      *string         `json:"category"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int             `json:"quantity"`
	MinStockLevel int             `json:"min_stock_level"`
	Supplier      *string         `json:"supplier"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type historyResponse struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"product_id"`
	Action         string    `json:"action"`
	QuantityChange int       `json:"quantity_change"`
	PerformedBy    string    `json:"performed_by"`
	Notes          *string   `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.svc.CreateProduct(r.Context(), catalog.CreateProductInput{
		Name:          req.Name,
		SKU:           req.SKU,
		Description:   req.Description,
		Category:      req.Category,
		Price:         req.Price,
		Quantity:      req.Quantity,
		MinStockLevel: req.MinStockLevel,
		Supplier:      req.Supplier,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProductResponse(product))
}

// Update handles PUT /api/products/{id}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req updateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.svc.UpdateProduct(r.Context(), catalog.UpdateProductInput{
		ID: id,
		Params: domain.ProductUpdateParams{
			Name:          req.Name,
			Description:   req.Description,
			Category:      req.Category,
			Price:         req.Price,
			Quantity:      req.Quantity,
			MinStockLevel: req.MinStockLevel,
			Supplier:      req.Supplier,
		},
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(product))
}

// Delete handles DELETE /api/products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteProduct(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

// Get handles GET /api/products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	product, err := h.svc.GetProduct(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(product))
}

// List handles GET /api/products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseProductFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	products, err := h.svc.ListProducts(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]productResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Categories handles GET /api/products/categories.
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

// History handles GET /api/products/{id}/history.
func (h *ProductHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	records, err := h.svc.ProductHistory(r.Context(), id)
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

// parseID extracts the {id} path value. Writes a 400 and returns false on a
// malformed id.
func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return uuid.Nil, false
	}
	return id, true
}

func parseProductFilter(r *http.Request) (domain.ProductFilter, error) {
	var filter domain.ProductFilter
	q := r.URL.Query()

	if search := q.Get("search"); search != "" {
		filter.Search = &search
	}
	if category := q.Get("category"); category != "" {
		filter.Category = &category
	}
	if raw := q.Get("min_price"); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return domain.ProductFilter{}, domain.NewValidationError("min_price", "invalid number")
		}
		filter.MinPrice = &d
	}
	if raw := q.Get("max_price"); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return domain.ProductFilter{}, domain.NewValidationError("max_price", "invalid number")
		}
		filter.MaxPrice = &d
	}

	return filter, nil
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		SKU:           p.SKU,
		Description:   p.Description,
		Category:      p.Category,
		Price:         p.Price,
		Quantity:      p.Quantity,
		MinStockLevel: p.MinStockLevel,
		Supplier:      p.Supplier,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toHistoryResponse(rec domain.InventoryRecord) historyResponse {
	return historyResponse{
		ID:             rec.ID.String(),
		ProductID:      rec.ProductID.String(),
		Action:         rec.Action.String(),
		QuantityChange: rec.QuantityChange,
		PerformedBy:    rec.PerformedBy,
		Notes:          rec.Notes,
		CreatedAt:      rec.CreatedAt,
	}
}
