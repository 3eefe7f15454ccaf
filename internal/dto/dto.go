package dto

type CartItemInput struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	PricePence int64  `json:"price_pence"`
	Quantity   int64  `json:"quantity"`
	ImageURL   string `json:"image_url,omitempty"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type UpdateQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

type CheckoutRequest struct {
	Items []*CartItemInput `json:"items"`
}

type CheckoutResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url,omitempty"`
	Error   string `json:"error,omitempty"`
}

type SessionLineItem struct {
	Name        string `json:"name"`
	Quantity    int64  `json:"quantity"`
	AmountPence int64  `json:"amount_pence"`
}

type SessionAddress struct {
	Line1    string `json:"line1,omitempty"`
	Line2    string `json:"line2,omitempty"`
	City     string `json:"city,omitempty"`
	Postcode string `json:"postcode,omitempty"`
	Country  string `json:"country,omitempty"`
}

type SessionResponse struct {
	ID              string             `json:"id"`
	CustomerEmail   string             `json:"customer_email,omitempty"`
	CustomerName    string             `json:"customer_name,omitempty"`
	AmountTotal     int64              `json:"amount_total"`
	PaymentStatus   string             `json:"payment_status"`
	ShippingAddress *SessionAddress    `json:"shipping_address,omitempty"`
	LineItems       []*SessionLineItem `json:"line_items"`
}

type StockInfo struct {
	ProductID         string `json:"product_id"`
	CurrentStock      int64  `json:"current_stock"`
	IsOutOfStock      bool   `json:"is_out_of_stock"`
	ExceedsStock      bool   `json:"exceeds_stock"`
	AvailableQuantity int64  `json:"available_quantity"`
}

type CartStockReport struct {
	Items          []*StockInfo `json:"items"`
	HasStockIssues bool         `json:"has_stock_issues"`
}

type OrderSummary struct {
	ID          string `json:"id"`
	OrderNumber string `json:"order_number"`
	TotalPence  int64  `json:"total_pence"`
	Status      string `json:"status"`
	ItemCount   int    `json:"item_count"`
	CreatedAt   string `json:"created_at"`
}
