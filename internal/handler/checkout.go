package handler

import (
	"errors"
	"net/http"

	"furniture-storefront/internal/dto"
	"furniture-storefront/internal/middleware"
	"furniture-storefront/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	log             *logrus.Logger
}

func NewCheckoutHandler(checkoutService service.CheckoutService, log *logrus.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		log:             log,
	}
}

func (h *CheckoutHandler) CreateSession(c echo.Context) error {
	ctx := c.Request().Context()

	userID := middleware.UserID(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, &dto.CheckoutResponse{
			Error: "Please sign in to checkout",
		})
	}

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	url, err := h.checkoutService.CreateSession(ctx, userID, middleware.UserEmail(c), middleware.UserName(c), req.Items)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			return c.JSON(http.StatusBadRequest, &dto.CheckoutResponse{
				Error: validationErr.Error(),
			})
		}

		h.log.WithError(err).Error("checkout failed")
		return c.JSON(http.StatusInternalServerError, &dto.CheckoutResponse{
			Error: "Something went wrong. Please try again.",
		})
	}

	return c.JSON(http.StatusOK, &dto.CheckoutResponse{
		Success: true,
		URL:     url,
	})
}

func (h *CheckoutHandler) GetSession(c echo.Context) error {
	ctx := c.Request().Context()

	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing session id")
	}

	session, err := h.checkoutService.GetSession(ctx, middleware.UserID(c), sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"success": false,
				"error":   "Session not found",
			})
		}

		h.log.WithError(err).Error("get session failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"error":   "Could not retrieve order details",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"session": session,
	})
}
