package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"furniture-storefront/internal/client"
	"furniture-storefront/internal/model"
	"furniture-storefront/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type WebhookService interface {
	// HandleEvent verifies and processes one provider callback. Returns
	// ErrInvalidSignature (wrapped) when the payload cannot be trusted;
	// any other error means processing failed and the provider should
	// redeliver.
	HandleEvent(ctx context.Context, signature string, payload []byte) error
}

type webhookServiceImpl struct {
	stripeClient     client.StripeClient
	orderRepo        repository.OrderRepository
	webhookEventRepo repository.WebhookEventRepository
	log              *logrus.Logger
}

func NewWebhookService(
	stripeClient client.StripeClient,
	orderRepo repository.OrderRepository,
	webhookEventRepo repository.WebhookEventRepository,
	log *logrus.Logger,
) WebhookService {
	return &webhookServiceImpl{
		stripeClient:     stripeClient,
		orderRepo:        orderRepo,
		webhookEventRepo: webhookEventRepo,
		log:              log,
	}
}

func (s *webhookServiceImpl) HandleEvent(ctx context.Context, signature string, payload []byte) error {
	event, err := s.stripeClient.VerifyWebhookSignature(payload, signature)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	switch event.Type {
	case client.EventCheckoutCompleted:
		return s.handleCheckoutCompleted(ctx, event)
	default:
		s.log.WithField("event_type", event.Type).Info("unhandled webhook event type")
		return nil
	}
}

func (s *webhookServiceImpl) handleCheckoutCompleted(ctx context.Context, event *client.WebhookEvent) error {
	session := event.Session
	if session == nil {
		return fmt.Errorf("event %s carries no checkout session", event.ID)
	}
	if session.PaymentIntentID == "" {
		return fmt.Errorf("session %s carries no payment intent id", session.ID)
	}

	// Idempotency guard: at-least-once delivery must not create a second
	// order for the same payment.
	existing, err := s.orderRepo.FindByStripePaymentID(ctx, session.PaymentIntentID)
	if err != nil {
		return fmt.Errorf("idempotency lookup: %w", err)
	}
	if existing != nil {
		s.log.WithFields(logrus.Fields{
			"payment_id": session.PaymentIntentID,
			"order_id":   existing.ID,
		}).Info("webhook already processed, skipping")
		return nil
	}

	userID := session.Metadata["userId"]
	userEmail := session.Metadata["userEmail"]
	customerID := session.Metadata["customerId"]
	productIDsRaw := session.Metadata["productIds"]
	quantitiesRaw := session.Metadata["quantities"]
	if userID == "" || productIDsRaw == "" || quantitiesRaw == "" {
		s.log.WithField("session_id", session.ID).Error("missing metadata in checkout session")
		return nil
	}

	productIDs := strings.Split(productIDsRaw, ",")
	quantityParts := strings.Split(quantitiesRaw, ",")
	if len(quantityParts) != len(productIDs) {
		return fmt.Errorf("session %s: %d product ids but %d quantities", session.ID, len(productIDs), len(quantityParts))
	}
	quantities := make([]int64, len(quantityParts))
	for i, part := range quantityParts {
		q, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return fmt.Errorf("session %s: bad quantity %q: %w", session.ID, part, err)
		}
		quantities[i] = q
	}

	// The amounts actually charged come from the provider, not the metadata.
	lineItems, err := s.stripeClient.ListLineItems(ctx, session.ID)
	if err != nil {
		return fmt.Errorf("list charged line items: %w", err)
	}

	email := userEmail
	if email == "" {
		email = session.CustomerEmail
	}

	order := &model.Order{
		ID:              uuid.NewString(),
		OrderNumber:     model.NewOrderNumber(),
		UserID:          userID,
		CustomerID:      customerID,
		Email:           email,
		TotalPence:      session.AmountTotal,
		Status:          model.StatusPaid,
		StripePaymentID: session.PaymentIntentID,
	}
	if session.Address != nil {
		order.Address = model.Address{
			Name:     session.CustomerName,
			Line1:    session.Address.Line1,
			Line2:    session.Address.Line2,
			City:     session.Address.City,
			Postcode: session.Address.Postcode,
			Country:  session.Address.Country,
		}
	}

	items := make([]*model.OrderItem, len(productIDs))
	decrements := make([]repository.StockDecrement, len(productIDs))
	for i, productID := range productIDs {
		item := &model.OrderItem{
			OrderID:   order.ID,
			ProductID: productID,
			Quantity:  quantities[i],
		}
		if i < len(lineItems) {
			item.ProductName = lineItems[i].Name
			if quantities[i] > 0 {
				item.PricePence = lineItems[i].AmountTotal / quantities[i]
			}
		}
		items[i] = item
		decrements[i] = repository.StockDecrement{ProductID: productID, Quantity: quantities[i]}
	}

	if err := s.orderRepo.Fulfill(ctx, order, items, decrements); err != nil {
		return fmt.Errorf("fulfill order: %w", err)
	}

	if err := s.webhookEventRepo.MarkProcessed(ctx, event.ID, event.Type); err != nil {
		// The order is committed; a failed audit row must not force redelivery.
		s.log.WithError(err).Warn("mark webhook event processed")
	}

	s.log.WithFields(logrus.Fields{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"products":     len(productIDs),
	}).Info("order created")

	return nil
}
