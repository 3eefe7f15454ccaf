package handler

import (
	"errors"
	"net/http"
	"time"

	"furniture-storefront/internal/dto"
	"furniture-storefront/internal/middleware"
	"furniture-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderService.ListByUser(ctx, middleware.UserID(c))
	if err != nil {
		return err
	}

	summaries := make([]*dto.OrderSummary, len(orders))
	for i, order := range orders {
		summaries[i] = &dto.OrderSummary{
			ID:          order.ID,
			OrderNumber: order.OrderNumber,
			TotalPence:  order.TotalPence,
			Status:      string(order.Status),
			ItemCount:   len(order.Items),
			CreatedAt:   order.CreatedAt.Format(time.RFC3339),
		}
	}

	return c.JSON(http.StatusOK, summaries)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	order, err := h.orderService.GetForUser(ctx, middleware.UserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Order not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, order)
}
