package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"storefront/internal/domain/entity"
)

// ListProducts lists products narrowed by filter.
func (c *Client) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	env, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/products",
		query:  productQuery(filter),
		rule:   anyStatus,
	})
	if err != nil {
		return nil, err
	}

	return decodeData[[]entity.Product](env, "GET /products")
}

// GetProduct returns one product.
func (c *Client) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return getOne[entity.Product](ctx, c, "/products/"+pathEscape(id))
}

// ListCategories lists all categories.
func (c *Client) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return getList[entity.Category](ctx, c, "/categories")
}

// GetCategory returns one category.
func (c *Client) GetCategory(ctx context.Context, id string) (*entity.Category, error) {
	return getOne[entity.Category](ctx, c, "/categories/"+pathEscape(id))
}

// ListCategorySubCategories lists the subcategories of one category.
func (c *Client) ListCategorySubCategories(ctx context.Context, categoryID string) ([]entity.SubCategory, error) {
	return getList[entity.SubCategory](ctx, c, "/categories/"+pathEscape(categoryID)+"/subcategories")
}

// ListSubCategories lists every subcategory.
func (c *Client) ListSubCategories(ctx context.Context) ([]entity.SubCategory, error) {
	return getList[entity.SubCategory](ctx, c, "/subcategories")
}

// GetSubCategory returns one subcategory.
func (c *Client) GetSubCategory(ctx context.Context, id string) (*entity.SubCategory, error) {
	return getOne[entity.SubCategory](ctx, c, "/subcategories/"+pathEscape(id))
}

// ListBrands lists all brands.
func (c *Client) ListBrands(ctx context.Context) ([]entity.Brand, error) {
	return getList[entity.Brand](ctx, c, "/brands")
}

// GetBrand returns one brand.
func (c *Client) GetBrand(ctx context.Context, id string) (*entity.Brand, error) {
	return getOne[entity.Brand](ctx, c, "/brands/"+pathEscape(id))
}

func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	env, err := c.do(ctx, request{method: http.MethodGet, path: path, rule: anyStatus})
	if err != nil {
		return nil, err
	}

	return decodeData[[]T](env, "GET "+path)
}

func getOne[T any](ctx context.Context, c *Client, path string) (*T, error) {
	env, err := c.do(ctx, request{method: http.MethodGet, path: path, rule: hasData})
	if err != nil {
		return nil, err
	}

	out, err := decodeData[T](env, "GET "+path)
	if err != nil {
		return nil, err
	}

	return &out, nil
}

func productQuery(filter entity.ProductFilter) url.Values {
	query := url.Values{}
	if filter.Category != "" {
		query.Set("category[in]", filter.Category)
	}
	if filter.SubCategory != "" {
		query.Set("subcategory", filter.SubCategory)
	}
	if filter.Brand != "" {
		query.Set("brand", filter.Brand)
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Sort != "" {
		query.Set("sort", filter.Sort)
	}

	return query
}
