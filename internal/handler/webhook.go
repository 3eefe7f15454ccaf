package handler

import (
	"errors"
	"io"
	"net/http"

	"furniture-storefront/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type WebhookHandler struct {
	webhookService service.WebhookService
	log            *logrus.Logger
}

func NewWebhookHandler(webhookService service.WebhookService, log *logrus.Logger) *WebhookHandler {
	return &WebhookHandler{
		webhookService: webhookService,
		log:            log,
	}
}

// HandleStripeWebhook answers 400 for anything unverifiable and 500 for
// processing failures so the provider redelivers.
func (h *WebhookHandler) HandleStripeWebhook(c echo.Context) error {
	ctx := c.Request().Context()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "could not read body"})
	}

	signature := c.Request().Header.Get("Stripe-Signature")
	if signature == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing stripe-signature header"})
	}

	if err := h.webhookService.HandleEvent(ctx, signature, body); err != nil {
		if errors.Is(err, service.ErrInvalidSignature) {
			h.log.WithError(err).Error("webhook signature verification failed")
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Webhook Error: " + err.Error()})
		}

		h.log.WithError(err).Error("webhook processing failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "webhook processing failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{"received": true})
}
