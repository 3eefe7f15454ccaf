package service

import (
	"context"
	"sort"

	"furniture-storefront/internal/client"
	"furniture-storefront/internal/model"
	"furniture-storefront/internal/repository"

	"gorm.io/gorm"
)

type mockProductRepo struct {
	products map[string]*model.Product
}

func newMockProductRepo(products ...*model.Product) *mockProductRepo {
	m := &mockProductRepo{products: make(map[string]*model.Product)}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *mockProductRepo) sorted() []*model.Product {
	out := make([]*model.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (m *mockProductRepo) All(ctx context.Context) ([]*model.Product, error) {
	return m.sorted(), nil
}

func (m *mockProductRepo) Featured(ctx context.Context) ([]*model.Product, error) {
	var out []*model.Product
	for _, p := range m.sorted() {
		if p.Featured && p.Stock > 0 {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockProductRepo) FindBySlug(ctx context.Context, slug string) (*model.Product, error) {
	for _, p := range m.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockProductRepo) FindByIDs(ctx context.Context, productIDs []string) ([]*model.Product, error) {
	var out []*model.Product
	for _, id := range productIDs {
		if p, ok := m.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockProductRepo) Filter(ctx context.Context, filter repository.ProductFilter) ([]*model.Product, error) {
	return m.sorted(), nil
}

func (m *mockProductRepo) LowStock(ctx context.Context) ([]*model.Product, error) {
	var out []*model.Product
	for _, p := range m.sorted() {
		if model.IsLowStock(p.Stock) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockProductRepo) OutOfStock(ctx context.Context) ([]*model.Product, error) {
	var out []*model.Product
	for _, p := range m.sorted() {
		if p.Stock == 0 {
			out = append(out, p)
		}
	}
	return out, nil
}

type mockCartRepo struct {
	items map[string][]*model.CartItem // keyed by user id, insertion order
}

func newMockCartRepo() *mockCartRepo {
	return &mockCartRepo{items: make(map[string][]*model.CartItem)}
}

func (m *mockCartRepo) Items(ctx context.Context, userID string) ([]*model.CartItem, error) {
	return m.items[userID], nil
}

func (m *mockCartRepo) Create(ctx context.Context, item *model.CartItem) error {
	m.items[item.UserID] = append(m.items[item.UserID], item)
	return nil
}

func (m *mockCartRepo) SetQuantity(ctx context.Context, userID, productID string, quantity int64) error {
	for _, item := range m.items[userID] {
		if item.ProductID == productID {
			item.Quantity = quantity
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockCartRepo) Remove(ctx context.Context, userID, productID string) error {
	items := m.items[userID]
	for i, item := range items {
		if item.ProductID == productID {
			m.items[userID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockCartRepo) Clear(ctx context.Context, userID string) error {
	delete(m.items, userID)
	return nil
}

type mockOrderRepo struct {
	// shared with the product mock so fulfilment decrements are observable
	products map[string]*model.Product
	orders   []*model.Order
	items    map[string][]*model.OrderItem
	carts    *mockCartRepo
}

func newMockOrderRepo(products *mockProductRepo, carts *mockCartRepo) *mockOrderRepo {
	m := &mockOrderRepo{
		items: make(map[string][]*model.OrderItem),
		carts: carts,
	}
	if products != nil {
		m.products = products.products
	}
	return m
}

func (m *mockOrderRepo) FindByStripePaymentID(ctx context.Context, stripePaymentID string) (*model.Order, error) {
	for _, o := range m.orders {
		if o.StripePaymentID == stripePaymentID {
			return o, nil
		}
	}
	return nil, nil
}

func (m *mockOrderRepo) Fulfill(ctx context.Context, order *model.Order, items []*model.OrderItem, decrements []repository.StockDecrement) error {
	m.orders = append(m.orders, order)
	m.items[order.ID] = items
	for _, dec := range decrements {
		if p, ok := m.products[dec.ProductID]; ok {
			p.Stock -= dec.Quantity
		}
	}
	if m.carts != nil {
		_ = m.carts.Clear(ctx, order.UserID)
	}
	return nil
}

func (m *mockOrderRepo) ListByUser(ctx context.Context, userID string) ([]*model.Order, error) {
	var out []*model.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) FindByID(ctx context.Context, orderID string) (*model.Order, error) {
	for _, o := range m.orders {
		if o.ID == orderID {
			return o, nil
		}
	}
	return nil, nil
}

type mockCustomerRepo struct {
	customers map[string]*model.Customer // keyed by email
}

func newMockCustomerRepo() *mockCustomerRepo {
	return &mockCustomerRepo{customers: make(map[string]*model.Customer)}
}

func (m *mockCustomerRepo) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	return m.customers[email], nil
}

func (m *mockCustomerRepo) Create(ctx context.Context, customer *model.Customer) error {
	m.customers[customer.Email] = customer
	return nil
}

func (m *mockCustomerRepo) SetStripeCustomerID(ctx context.Context, customerID, stripeCustomerID, userID, name string) error {
	for _, c := range m.customers {
		if c.ID == customerID {
			c.StripeCustomerID = stripeCustomerID
			c.UserID = userID
			c.Name = name
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type mockWebhookEventRepo struct {
	processed map[string]string
}

func newMockWebhookEventRepo() *mockWebhookEventRepo {
	return &mockWebhookEventRepo{processed: make(map[string]string)}
}

func (m *mockWebhookEventRepo) Exists(ctx context.Context, eventID string) (bool, error) {
	_, ok := m.processed[eventID]
	return ok, nil
}

func (m *mockWebhookEventRepo) MarkProcessed(ctx context.Context, eventID, eventType string) error {
	m.processed[eventID] = eventType
	return nil
}

type mockStripeClient struct {
	createSessionCalls []*client.CreateSessionParams
	createdSession     *client.CheckoutSession
	createSessionErr   error

	getSession    *client.CheckoutSession
	getSessionErr error

	lineItems    []*client.ChargedLineItem
	lineItemsErr error

	stripeCustomersByEmail map[string]string
	createdCustomers       []string

	verifyEvent *client.WebhookEvent
	verifyErr   error
}

func newMockStripeClient() *mockStripeClient {
	return &mockStripeClient{
		stripeCustomersByEmail: make(map[string]string),
	}
}

func (m *mockStripeClient) CreateCheckoutSession(ctx context.Context, params *client.CreateSessionParams) (*client.CheckoutSession, error) {
	m.createSessionCalls = append(m.createSessionCalls, params)
	if m.createSessionErr != nil {
		return nil, m.createSessionErr
	}
	if m.createdSession != nil {
		return m.createdSession, nil
	}
	return &client.CheckoutSession{ID: "cs_test", URL: "https://checkout.stripe.test/cs_test"}, nil
}

func (m *mockStripeClient) GetCheckoutSession(ctx context.Context, sessionID string) (*client.CheckoutSession, error) {
	if m.getSessionErr != nil {
		return nil, m.getSessionErr
	}
	return m.getSession, nil
}

func (m *mockStripeClient) ListLineItems(ctx context.Context, sessionID string) ([]*client.ChargedLineItem, error) {
	if m.lineItemsErr != nil {
		return nil, m.lineItemsErr
	}
	return m.lineItems, nil
}

func (m *mockStripeClient) FindCustomerByEmail(ctx context.Context, email string) (string, error) {
	return m.stripeCustomersByEmail[email], nil
}

func (m *mockStripeClient) CreateCustomer(ctx context.Context, email, name, userID string) (string, error) {
	id := "cus_" + email
	m.createdCustomers = append(m.createdCustomers, id)
	m.stripeCustomersByEmail[email] = id
	return id, nil
}

func (m *mockStripeClient) VerifyWebhookSignature(payload []byte, signature string) (*client.WebhookEvent, error) {
	if m.verifyErr != nil {
		return nil, m.verifyErr
	}
	return m.verifyEvent, nil
}
