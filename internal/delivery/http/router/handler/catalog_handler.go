package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler serves the public catalog.
type CatalogHandler struct {
	catalog usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(catalog usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListProducts accepts category, subcategory, brand, limit, page and sort.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	var filter entity.ProductFilter
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &filter); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product filter")
	}

	return response.Success(c, http.StatusOK, h.catalog.ListProducts(c.Request().Context(), filter), "")
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	page, err := h.catalog.ProductPage(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalog.ListCategories(c.Request().Context()), "")
}

// GetCategory accepts ?subcategory= to narrow the products.
func (h *CatalogHandler) GetCategory(c echo.Context) error {
	page, err := h.catalog.CategoryPage(c.Request().Context(), c.Param("id"), c.QueryParam("subcategory"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

func (h *CatalogHandler) ListSubCategories(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalog.ListSubCategories(c.Request().Context()), "")
}

func (h *CatalogHandler) GetSubCategory(c echo.Context) error {
	sub, err := h.catalog.GetSubCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sub, "")
}

func (h *CatalogHandler) ListBrands(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalog.ListBrands(c.Request().Context()), "")
}

func (h *CatalogHandler) GetBrand(c echo.Context) error {
	page, err := h.catalog.BrandPage(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}
