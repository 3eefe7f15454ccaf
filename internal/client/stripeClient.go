package client

import (
	"context"
	"encoding/json"
	"fmt"

	"furniture-storefront/internal/config"

	stripe "github.com/stripe/stripe-go/v82"
	stripeapi "github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
)

const EventCheckoutCompleted = "checkout.session.completed"

// Shipping destinations offered at checkout.
var shippingCountries = []string{
	"GB", "US", "CA", "AU", "NZ", "IE",
	"DE", "FR", "ES", "IT", "NL", "BE", "AT", "CH",
	"SE", "NO", "DK", "FI", "PT", "PL", "CZ", "GR",
	"HU", "RO", "BG", "HR", "SI", "SK", "LT", "LV",
	"EE", "LU", "MT", "CY",
	"JP", "SG", "HK", "KR", "TW", "MY", "TH", "IN",
	"AE", "SA", "IL", "ZA",
	"BR", "MX", "AR", "CL", "CO", "KE",
}

type SessionLineItem struct {
	Name      string
	ImageURL  string
	ProductID string
	// unit amount in pence
	UnitPence int64
	Quantity  int64
}

type CreateSessionParams struct {
	CustomerID string
	LineItems  []*SessionLineItem
	Metadata   map[string]string
	SuccessURL string
	CancelURL  string
}

type ShippingAddress struct {
	Line1    string
	Line2    string
	City     string
	Postcode string
	Country  string
}

type CheckoutSession struct {
	ID              string
	URL             string
	PaymentIntentID string
	PaymentStatus   string
	AmountTotal     int64
	Metadata        map[string]string
	CustomerEmail   string
	CustomerName    string
	Address         *ShippingAddress
	LineItems       []*ChargedLineItem
}

type ChargedLineItem struct {
	Name        string
	Quantity    int64
	AmountTotal int64
}

type WebhookEvent struct {
	ID      string
	Type    string
	Session *CheckoutSession
}

type StripeClient interface {
	CreateCheckoutSession(ctx context.Context, params *CreateSessionParams) (*CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
	ListLineItems(ctx context.Context, sessionID string) ([]*ChargedLineItem, error)
	FindCustomerByEmail(ctx context.Context, email string) (string, error)
	CreateCustomer(ctx context.Context, email, name, userID string) (string, error)
	VerifyWebhookSignature(payload []byte, signature string) (*WebhookEvent, error)
}

type stripeClientImpl struct {
	api           *stripeapi.API
	webhookSecret string
}

func NewStripeClient(stripeCfg *config.Stripe) StripeClient {
	api := &stripeapi.API{}
	api.Init(stripeCfg.SecretKey, nil)

	return &stripeClientImpl{
		api:           api,
		webhookSecret: stripeCfg.WebhookSecret,
	}
}

func (c *stripeClientImpl) CreateCheckoutSession(ctx context.Context, params *CreateSessionParams) (*CheckoutSession, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, len(params.LineItems))
	for i, item := range params.LineItems {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name:     stripe.String(item.Name),
			Metadata: map[string]string{"productId": item.ProductID},
		}
		if item.ImageURL != "" {
			productData.Images = stripe.StringSlice([]string{item.ImageURL})
		}

		lineItems[i] = &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(string(stripe.CurrencyGBP)),
				ProductData: productData,
				UnitAmount:  stripe.Int64(item.UnitPence),
			},
			Quantity: stripe.Int64(item.Quantity),
		}
	}

	sessionParams := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		Customer:           stripe.String(params.CustomerID),
		ShippingAddressCollection: &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(shippingCountries),
		},
		SuccessURL: stripe.String(params.SuccessURL),
		CancelURL:  stripe.String(params.CancelURL),
	}
	sessionParams.Context = ctx
	for k, v := range params.Metadata {
		sessionParams.AddMetadata(k, v)
	}

	session, err := c.api.CheckoutSessions.New(sessionParams)
	if err != nil {
		return nil, fmt.Errorf("stripe create checkout session: %w", err)
	}

	return fromStripeSession(session), nil
}

func (c *stripeClientImpl) GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("line_items")
	params.AddExpand("customer_details")

	session, err := c.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, fmt.Errorf("stripe get checkout session: %w", err)
	}

	return fromStripeSession(session), nil
}

func (c *stripeClientImpl) ListLineItems(ctx context.Context, sessionID string) ([]*ChargedLineItem, error) {
	params := &stripe.CheckoutSessionListLineItemsParams{
		Session: stripe.String(sessionID),
	}
	params.Context = ctx

	var items []*ChargedLineItem
	iter := c.api.CheckoutSessions.ListLineItems(params)
	for iter.Next() {
		li := iter.LineItem()
		items = append(items, &ChargedLineItem{
			Name:        li.Description,
			Quantity:    li.Quantity,
			AmountTotal: li.AmountTotal,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("stripe list line items: %w", err)
	}

	return items, nil
}

func (c *stripeClientImpl) FindCustomerByEmail(ctx context.Context, email string) (string, error) {
	params := &stripe.CustomerListParams{
		Email: stripe.String(email),
	}
	params.Context = ctx
	params.Limit = stripe.Int64(1)

	iter := c.api.Customers.List(params)
	for iter.Next() {
		return iter.Customer().ID, nil
	}
	if err := iter.Err(); err != nil {
		return "", fmt.Errorf("stripe list customers: %w", err)
	}

	return "", nil
}

func (c *stripeClientImpl) CreateCustomer(ctx context.Context, email, name, userID string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}
	params.Context = ctx
	params.AddMetadata("userId", userID)

	customer, err := c.api.Customers.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe create customer: %w", err)
	}

	return customer.ID, nil
}

func (c *stripeClientImpl) VerifyWebhookSignature(payload []byte, signature string) (*WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, c.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("construct webhook event: %w", err)
	}

	out := &WebhookEvent{
		ID:   event.ID,
		Type: string(event.Type),
	}

	if out.Type == EventCheckoutCompleted {
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, fmt.Errorf("decode checkout session payload: %w", err)
		}
		out.Session = fromStripeSession(&session)
	}

	return out, nil
}

func fromStripeSession(s *stripe.CheckoutSession) *CheckoutSession {
	out := &CheckoutSession{
		ID:            s.ID,
		URL:           s.URL,
		PaymentStatus: string(s.PaymentStatus),
		AmountTotal:   s.AmountTotal,
		Metadata:      s.Metadata,
	}

	if s.PaymentIntent != nil {
		out.PaymentIntentID = s.PaymentIntent.ID
	}

	if cd := s.CustomerDetails; cd != nil {
		out.CustomerEmail = cd.Email
		out.CustomerName = cd.Name
		if cd.Address != nil {
			out.Address = &ShippingAddress{
				Line1:    cd.Address.Line1,
				Line2:    cd.Address.Line2,
				City:     cd.Address.City,
				Postcode: cd.Address.PostalCode,
				Country:  cd.Address.Country,
			}
		}
	}

	if s.LineItems != nil {
		for _, li := range s.LineItems.Data {
			out.LineItems = append(out.LineItems, &ChargedLineItem{
				Name:        li.Description,
				Quantity:    li.Quantity,
				AmountTotal: li.AmountTotal,
			})
		}
	}

	return out
}
