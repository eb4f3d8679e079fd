package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// RelatedProductsLimit is how many same-category products a product page shows.
const RelatedProductsLimit = 4

// ProductPage is a product with its same-category neighbours.
type ProductPage struct {
	Product *entity.Product  `json:"product"`
	Related []entity.Product `json:"related"`
}

// CategoryPage is a category with its subcategories and matching products.
type CategoryPage struct {
	Category      *entity.Category     `json:"category"`
	SubCategories []entity.SubCategory `json:"subCategories"`
	Products      []entity.Product     `json:"products"`
}

// BrandPage is a brand with its products.
type BrandPage struct {
	Brand    *entity.Brand    `json:"brand"`
	Products []entity.Product `json:"products"`
}

// CatalogUsecase reads the public catalog. Listings degrade to empty on
// failure; single-record reads report ErrNotFound.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, filter entity.ProductFilter) []entity.Product
	ProductPage(ctx context.Context, id string) (*ProductPage, error)
	ListCategories(ctx context.Context) []entity.Category
	CategoryPage(ctx context.Context, id, subCategoryID string) (*CategoryPage, error)
	ListSubCategories(ctx context.Context) []entity.SubCategory
	GetSubCategory(ctx context.Context, id string) (*entity.SubCategory, error)
	ListBrands(ctx context.Context) []entity.Brand
	BrandPage(ctx context.Context, id string) (*BrandPage, error)
}
