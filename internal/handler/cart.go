package handler

import (
	"errors"
	"net/http"

	"furniture-storefront/internal/dto"
	"furniture-storefront/internal/middleware"
	"furniture-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartService  service.CartService
	stockService service.StockService
}

func NewCartHandler(cartService service.CartService, stockService service.StockService) *CartHandler {
	return &CartHandler{
		cartService:  cartService,
		stockService: stockService,
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()

	items, err := h.cartService.Items(ctx, middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CartHandler) AddItem(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if req.ProductID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing product_id")
	}

	item, err := h.cartService.Add(ctx, middleware.UserID(c), req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Product not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, item)
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	err := h.cartService.SetQuantity(ctx, middleware.UserID(c), c.Param("productId"), req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Product not in cart")
		}
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.cartService.Remove(ctx, middleware.UserID(c), c.Param("productId")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.cartService.Clear(ctx, middleware.UserID(c)); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) VerifyStock(c echo.Context) error {
	ctx := c.Request().Context()

	report, err := h.stockService.VerifyCart(ctx, middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, report)
}
