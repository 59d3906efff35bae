package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/wholestock/inventory-backend/internal/domain"
)

// productRepoMock implements productRepo with configurable funcs.
type productRepoMock struct {
	CreateFunc         func(ctx context.Context, p *domain.Product) (*domain.Product, error)
	UpdateFunc         func(ctx context.Context, id uuid.UUID, params domain.ProductUpdateParams) (*domain.Product, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	ListFunc           func(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	ListCategoriesFunc func(ctx context.Context) ([]string, error)
}

func (m *productRepoMock) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	return m.CreateFunc(ctx, p)
}

func (m *productRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.ProductUpdateParams) (*domain.Product, error) {
	return m.UpdateFunc(ctx, id, params)
}

func (m *productRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

func (m *productRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *productRepoMock) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	return m.ListFunc(ctx, filter)
}

func (m *productRepoMock) ListCategories(ctx context.Context) ([]string, error) {
	return m.ListCategoriesFunc(ctx)
}

// historyRepoMock implements historyRepo with configurable funcs.
type historyRepoMock struct {
	AppendFunc        func(ctx context.Context, record domain.InventoryRecord) (domain.InventoryRecord, error)
	ListByProductFunc func(ctx context.Context, productID uuid.UUID) ([]domain.InventoryRecord, error)
}

func (m *historyRepoMock) Append(ctx context.Context, record domain.InventoryRecord) (domain.InventoryRecord, error) {
	return m.AppendFunc(ctx, record)
}

func (m *historyRepoMock) ListByProduct(ctx context.Context, productID uuid.UUID) ([]domain.InventoryRecord, error) {
	return m.ListByProductFunc(ctx, productID)
}

// txManagerMock implements txManager. The default passes the context through,
// which is what the real manager does from the callback's point of view.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc != nil {
		return m.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
