package service

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockCatalogAPI is a mock type for the CatalogAPI type
type MockCatalogAPI struct {
	mock.Mock
}

func NewMockCatalogAPI(t TestingT) *MockCatalogAPI {
	m := &MockCatalogAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCatalogAPI) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	args := m.Called(ctx, filter)
	products, _ := args.Get(0).([]entity.Product)

	return products, args.Error(1)
}

func (m *MockCatalogAPI) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*entity.Product)

	return product, args.Error(1)
}

func (m *MockCatalogAPI) ListCategories(ctx context.Context) ([]entity.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]entity.Category)

	return categories, args.Error(1)
}

func (m *MockCatalogAPI) GetCategory(ctx context.Context, id string) (*entity.Category, error) {
	args := m.Called(ctx, id)
	category, _ := args.Get(0).(*entity.Category)

	return category, args.Error(1)
}

func (m *MockCatalogAPI) ListCategorySubCategories(ctx context.Context, categoryID string) ([]entity.SubCategory, error) {
	args := m.Called(ctx, categoryID)
	subs, _ := args.Get(0).([]entity.SubCategory)

	return subs, args.Error(1)
}

func (m *MockCatalogAPI) ListSubCategories(ctx context.Context) ([]entity.SubCategory, error) {
	args := m.Called(ctx)
	subs, _ := args.Get(0).([]entity.SubCategory)

	return subs, args.Error(1)
}

func (m *MockCatalogAPI) GetSubCategory(ctx context.Context, id string) (*entity.SubCategory, error) {
	args := m.Called(ctx, id)
	sub, _ := args.Get(0).(*entity.SubCategory)

	return sub, args.Error(1)
}

func (m *MockCatalogAPI) ListBrands(ctx context.Context) ([]entity.Brand, error) {
	args := m.Called(ctx)
	brands, _ := args.Get(0).([]entity.Brand)

	return brands, args.Error(1)
}

func (m *MockCatalogAPI) GetBrand(ctx context.Context, id string) (*entity.Brand, error) {
	args := m.Called(ctx, id)
	brand, _ := args.Get(0).(*entity.Brand)

	return brand, args.Error(1)
}
