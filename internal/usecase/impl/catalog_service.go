package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogAPI service.CatalogAPI
	Logger     *slog.Logger
}

type catalogService struct {
	api    service.CatalogAPI
	logger *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		api:    params.CatalogAPI,
		logger: params.Logger,
	}
}

// orEmpty degrades a failed listing to an empty one.
func orEmpty[T any](ctx context.Context, logger *slog.Logger, what string, items []T, err error) []T {
	if err != nil {
		loggerFor(ctx, logger).Warn("Catalog listing failed", slog.String("listing", what), slog.Any("error", err))

		return []T{}
	}
	if items == nil {
		return []T{}
	}

	return items
}

// notFound reports any single-record failure as ErrNotFound, keeping the
// transport case distinguishable.
func notFound(err error, what, id string) error {
	if domainerrors.IsUpstreamKind(err, domainerrors.UpstreamTransport) {
		return errors.WithStack(err)
	}

	return errors.WithStack(domainerrors.ErrNotFound.WithDetails(what + " " + id))
}

func (srv *catalogService) ListProducts(ctx context.Context, filter entity.ProductFilter) []entity.Product {
	products, err := srv.api.ListProducts(ctx, filter)

	return orEmpty(ctx, srv.logger, "products", products, err)
}

// ProductPage loads a product and up to four others from its category.
func (srv *catalogService) ProductPage(ctx context.Context, id string) (*usecase.ProductPage, error) {
	product, err := srv.api.GetProduct(ctx, id)
	if err != nil {
		return nil, notFound(err, "product", id)
	}

	page := &usecase.ProductPage{Product: product, Related: []entity.Product{}}

	categoryID := product.CategoryID()
	if categoryID == "" {
		return page, nil
	}

	// One extra so the limit holds after the product itself is excluded.
	candidates := srv.ListProducts(ctx, entity.ProductFilter{
		Category: categoryID,
		Limit:    usecase.RelatedProductsLimit + 1,
	})
	for _, candidate := range candidates {
		if candidate.ProductID() == product.ProductID() {
			continue
		}
		page.Related = append(page.Related, candidate)
		if len(page.Related) == usecase.RelatedProductsLimit {
			break
		}
	}

	return page, nil
}

func (srv *catalogService) ListCategories(ctx context.Context) []entity.Category {
	categories, err := srv.api.ListCategories(ctx)

	return orEmpty(ctx, srv.logger, "categories", categories, err)
}

// CategoryPage loads the category, its subcategories and its products
// concurrently. A subCategoryID narrows the products.
func (srv *catalogService) CategoryPage(ctx context.Context, id, subCategoryID string) (*usecase.CategoryPage, error) {
	page := &usecase.CategoryPage{}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		category, err := srv.api.GetCategory(groupCtx, id)
		if err != nil {
			return notFound(err, "category", id)
		}
		page.Category = category

		return nil
	})
	group.Go(func() error {
		subs, err := srv.api.ListCategorySubCategories(groupCtx, id)
		page.SubCategories = orEmpty(groupCtx, srv.logger, "subcategories", subs, err)

		return nil
	})
	group.Go(func() error {
		filter := entity.ProductFilter{Category: id, SubCategory: subCategoryID}
		page.Products = srv.ListProducts(groupCtx, filter)

		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return page, nil
}

func (srv *catalogService) ListSubCategories(ctx context.Context) []entity.SubCategory {
	subs, err := srv.api.ListSubCategories(ctx)

	return orEmpty(ctx, srv.logger, "subcategories", subs, err)
}

func (srv *catalogService) GetSubCategory(ctx context.Context, id string) (*entity.SubCategory, error) {
	sub, err := srv.api.GetSubCategory(ctx, id)
	if err != nil {
		return nil, notFound(err, "subcategory", id)
	}

	return sub, nil
}

func (srv *catalogService) ListBrands(ctx context.Context) []entity.Brand {
	brands, err := srv.api.ListBrands(ctx)

	return orEmpty(ctx, srv.logger, "brands", brands, err)
}

// BrandPage loads a brand and its products concurrently.
func (srv *catalogService) BrandPage(ctx context.Context, id string) (*usecase.BrandPage, error) {
	page := &usecase.BrandPage{}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		brand, err := srv.api.GetBrand(groupCtx, id)
		if err != nil {
			return notFound(err, "brand", id)
		}
		page.Brand = brand

		return nil
	})
	group.Go(func() error {
		page.Products = srv.ListProducts(groupCtx, entity.ProductFilter{Brand: id})

		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return page, nil
}
