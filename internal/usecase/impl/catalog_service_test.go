package impl

import (
	"context"
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogFixture(t *testing.T) (usecase.CatalogUsecase, *mockService.MockCatalogAPI) {
	t.Helper()

	api := mockService.NewMockCatalogAPI(t)

	return NewCatalogService(CatalogServiceParams{CatalogAPI: api, Logger: testLogger()}), api
}

func TestCatalogService_ListFailureDegradesToEmpty(t *testing.T) {
	srv, api := newCatalogFixture(t)
	ctx := context.Background()

	failure := domainerrors.NewUpstreamError(domainerrors.UpstreamTransport, "/products", 0, "", errors.New("dns"))
	api.On("ListProducts", mock.Anything, entity.ProductFilter{}).Return(nil, failure).Once()
	api.On("ListCategories", mock.Anything).Return(nil, failure).Once()
	api.On("ListBrands", mock.Anything).Return(nil, failure).Once()

	products := srv.ListProducts(ctx, entity.ProductFilter{})
	assert.NotNil(t, products)
	assert.Empty(t, products)
	assert.Empty(t, srv.ListCategories(ctx))
	assert.Empty(t, srv.ListBrands(ctx))
}

func TestCatalogService_ProductPage_RelatedExcludesSelf(t *testing.T) {
	srv, api := newCatalogFixture(t)

	product := &entity.Product{ID: "p1", Category: &entity.Category{ID: "c1"}}
	api.On("GetProduct", mock.Anything, "p1").Return(product, nil).Once()
	api.On("ListProducts", mock.Anything, entity.ProductFilter{Category: "c1", Limit: usecase.RelatedProductsLimit + 1}).
		Return([]entity.Product{{ID: "p2"}, {ID: "p1"}, {ID: "p3"}, {ID: "p4"}, {ID: "p5"}}, nil).
		Once()

	page, err := srv.ProductPage(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, product, page.Product)
	require.Len(t, page.Related, usecase.RelatedProductsLimit)
	for _, related := range page.Related {
		assert.NotEqual(t, "p1", related.ProductID())
	}
}

func TestCatalogService_ProductPage_NotFound(t *testing.T) {
	srv, api := newCatalogFixture(t)

	api.On("GetProduct", mock.Anything, "missing").
		Return(nil, domainerrors.NewUpstreamError(domainerrors.UpstreamHTTP, "/products/missing", http.StatusNotFound, "No product for this id", nil)).
		Once()

	_, err := srv.ProductPage(context.Background(), "missing")

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCatalogService_CategoryPage(t *testing.T) {
	srv, api := newCatalogFixture(t)

	api.On("GetCategory", mock.Anything, "c1").Return(&entity.Category{ID: "c1", Name: "Music"}, nil).Once()
	api.On("ListCategorySubCategories", mock.Anything, "c1").Return([]entity.SubCategory{{ID: "s1"}}, nil).Once()
	api.On("ListProducts", mock.Anything, entity.ProductFilter{Category: "c1", SubCategory: "s1"}).
		Return([]entity.Product{{ID: "p1"}}, nil).
		Once()

	page, err := srv.CategoryPage(context.Background(), "c1", "s1")

	require.NoError(t, err)
	assert.Equal(t, "Music", page.Category.Name)
	assert.Len(t, page.SubCategories, 1)
	assert.Len(t, page.Products, 1)
}

func TestCatalogService_BrandPage_NotFound(t *testing.T) {
	srv, api := newCatalogFixture(t)

	api.On("GetBrand", mock.Anything, "b1").
		Return(nil, domainerrors.NewUpstreamError(domainerrors.UpstreamBusiness, "/brands/b1", http.StatusOK, "", nil)).
		Once()
	api.On("ListProducts", mock.Anything, entity.ProductFilter{Brand: "b1"}).Return([]entity.Product{}, nil).Maybe()

	_, err := srv.BrandPage(context.Background(), "b1")

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCatalogService_GetSubCategory(t *testing.T) {
	srv, api := newCatalogFixture(t)

	api.On("GetSubCategory", mock.Anything, "s1").Return(&entity.SubCategory{ID: "s1", Category: "c1"}, nil).Once()
	api.On("ListSubCategories", mock.Anything).Return([]entity.SubCategory{{ID: "s1"}, {ID: "s2"}}, nil).Once()

	sub, err := srv.GetSubCategory(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "c1", sub.Category)
	assert.Len(t, srv.ListSubCategories(context.Background()), 2)
}
