package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"furniture-storefront/internal/client"
	"furniture-storefront/internal/dto"
	"furniture-storefront/internal/model"
	"furniture-storefront/internal/repository"
)

type CheckoutService interface {
	// CreateSession validates the cart against live catalog data and creates
	// a payment session; returns the redirect URL.
	CreateSession(ctx context.Context, userID, email, name string, items []*dto.CartItemInput) (string, error)
	// GetSession returns confirmation data for a session owned by the user.
	GetSession(ctx context.Context, userID, sessionID string) (*dto.SessionResponse, error)
}

type checkoutServiceImpl struct {
	stripeClient    client.StripeClient
	productRepo     repository.ProductRepository
	customerService CustomerService
	baseURL         string
}

func NewCheckoutService(
	stripeClient client.StripeClient,
	productRepo repository.ProductRepository,
	customerService CustomerService,
	baseURL string,
) CheckoutService {
	return &checkoutServiceImpl{
		stripeClient:    stripeClient,
		productRepo:     productRepo,
		customerService: customerService,
		baseURL:         baseURL,
	}
}

type validatedItem struct {
	product  *model.Product
	quantity int64
}

func (s *checkoutServiceImpl) CreateSession(ctx context.Context, userID, email, name string, items []*dto.CartItemInput) (string, error) {
	if len(items) == 0 {
		return "", &ValidationError{Messages: []string{"Your cart is empty"}}
	}

	productIDs := make([]string, len(items))
	for i, item := range items {
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return "", fmt.Errorf("fetch products for cart: %w", err)
	}
	byID := make(map[string]*model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	// Accumulate validation failures instead of failing on the first one.
	var validationErrors []string
	var validated []validatedItem
	for _, item := range items {
		product, ok := byID[item.ProductID]

		switch {
		case !ok:
			validationErrors = append(validationErrors,
				fmt.Sprintf("Product %q is no longer available", item.Name))
		case item.Quantity <= 0:
			validationErrors = append(validationErrors,
				fmt.Sprintf("Invalid quantity for %q", product.Name))
		case product.Stock == 0:
			validationErrors = append(validationErrors,
				fmt.Sprintf("%q is out of stock", product.Name))
		case item.Quantity > product.Stock:
			validationErrors = append(validationErrors,
				fmt.Sprintf("Only %d of %q available", product.Stock, product.Name))
		default:
			validated = append(validated, validatedItem{product: product, quantity: item.Quantity})
		}
	}
	if len(validationErrors) > 0 {
		return "", &ValidationError{Messages: validationErrors}
	}

	// Line items use the catalog price, never the client-supplied one.
	lineItems := make([]*client.SessionLineItem, len(validated))
	for i, v := range validated {
		li := &client.SessionLineItem{
			Name:      v.product.Name,
			ProductID: v.product.ID,
			UnitPence: v.product.PricePence,
			Quantity:  v.quantity,
		}
		if len(v.product.Images) > 0 {
			li.ImageURL = v.product.Images[0].URL
		}
		lineItems[i] = li
	}

	stripeCustomerID, customerID, err := s.customerService.GetOrCreateStripeCustomer(ctx, email, name, userID)
	if err != nil {
		return "", fmt.Errorf("resolve stripe customer: %w", err)
	}

	// The session has no direct link to the local order schema; the webhook
	// rebuilds the order from this metadata.
	ids := make([]string, len(validated))
	quantities := make([]string, len(validated))
	for i, v := range validated {
		ids[i] = v.product.ID
		quantities[i] = strconv.FormatInt(v.quantity, 10)
	}
	metadata := map[string]string{
		"userId":     userID,
		"userEmail":  email,
		"customerId": customerID,
		"productIds": strings.Join(ids, ","),
		"quantities": strings.Join(quantities, ","),
	}

	session, err := s.stripeClient.CreateCheckoutSession(ctx, &client.CreateSessionParams{
		CustomerID: stripeCustomerID,
		LineItems:  lineItems,
		Metadata:   metadata,
		SuccessURL: s.baseURL + "/checkout/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  s.baseURL + "/checkout",
	})
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}

	return session.URL, nil
}

func (s *checkoutServiceImpl) GetSession(ctx context.Context, userID, sessionID string) (*dto.SessionResponse, error) {
	session, err := s.stripeClient.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("retrieve checkout session: %w", err)
	}

	// A session belonging to another user is reported as missing, not as
	// forbidden, so order details cannot leak.
	if session.Metadata["userId"] != userID {
		return nil, ErrSessionNotFound
	}

	resp := &dto.SessionResponse{
		ID:            session.ID,
		CustomerEmail: session.CustomerEmail,
		CustomerName:  session.CustomerName,
		AmountTotal:   session.AmountTotal,
		PaymentStatus: session.PaymentStatus,
	}
	if session.Address != nil {
		resp.ShippingAddress = &dto.SessionAddress{
			Line1:    session.Address.Line1,
			Line2:    session.Address.Line2,
			City:     session.Address.City,
			Postcode: session.Address.Postcode,
			Country:  session.Address.Country,
		}
	}
	for _, li := range session.LineItems {
		resp.LineItems = append(resp.LineItems, &dto.SessionLineItem{
			Name:        li.Name,
			Quantity:    li.Quantity,
			AmountPence: li.AmountTotal,
		})
	}

	return resp, nil
}
