package handler

import (
	"net/http"
	"strconv"

	"furniture-storefront/internal/model"
	"furniture-storefront/internal/repository"
	"furniture-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	filter, err := filterFromQuery(c)
	if err != nil {
		return err
	}

	products, err := h.catalogService.Products(ctx, filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, products)
}

func filterFromQuery(c echo.Context) (repository.ProductFilter, error) {
	filter := repository.ProductFilter{
		Search:       c.QueryParam("q"),
		CategorySlug: c.QueryParam("category"),
		Color:        c.QueryParam("color"),
		Material:     c.QueryParam("material"),
		Sort:         model.SortName,
	}

	if filter.Color != "" && !model.ValidColor(filter.Color) {
		return filter, echo.NewHTTPError(http.StatusBadRequest, "unknown color")
	}
	if filter.Material != "" && !model.ValidMaterial(filter.Material) {
		return filter, echo.NewHTTPError(http.StatusBadRequest, "unknown material")
	}

	if raw := c.QueryParam("min_price"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "invalid min_price")
		}
		filter.MinPricePence = v
	}
	if raw := c.QueryParam("max_price"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "invalid max_price")
		}
		filter.MaxPricePence = v
	}
	filter.InStock = c.QueryParam("in_stock") == "true"

	if raw := c.QueryParam("sort"); raw != "" {
		sort := model.SortOrder(raw)
		if !model.ValidSort(sort) {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "unknown sort order")
		}
		filter.Sort = sort
	}

	return filter, nil
}

func (h *CatalogHandler) FeaturedProducts(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.catalogService.Featured(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) ProductBySlug(c echo.Context) error {
	ctx := c.Request().Context()

	product, err := h.catalogService.ProductBySlug(ctx, c.Param("slug"))
	if err != nil {
		return err
	}
	if product == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Product not found")
	}

	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	ctx := c.Request().Context()

	categories, err := h.catalogService.Categories(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) LowStockProducts(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.catalogService.LowStock(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) OutOfStockProducts(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.catalogService.OutOfStock(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, products)
}
