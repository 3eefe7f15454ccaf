package model

import "time"

type Category struct {
	ID        string `gorm:"primaryKey;size:64;not null"`
	Title     string `gorm:"size:128;not null"`
	Slug      string `gorm:"size:128;uniqueIndex;not null"`
	CreatedAt time.Time
}

type Product struct {
	ID               string `gorm:"primaryKey;size:64;not null"`
	Name             string `gorm:"size:256;not null"`
	Slug             string `gorm:"size:256;uniqueIndex;not null"`
	Description      string
	PricePence       int64  `gorm:"not null"` // unit price in pence
	Stock            int64  `gorm:"not null"`
	CategoryID       string `gorm:"size:64;index"`
	Category         *Category
	Material         string `gorm:"size:32;index"`
	Color            string `gorm:"size:32;index"`
	Dimensions       string `gorm:"size:128"`
	Featured         bool   `gorm:"index"`
	AssemblyRequired bool
	Images           []ProductImage `gorm:"foreignKey:ProductID"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type ProductImage struct {
	ID        uint   `gorm:"primaryKey"`
	ProductID string `gorm:"size:64;uniqueIndex:idx_product_image_position;not null"`
	URL       string `gorm:"size:512;not null"`
	Position  int    `gorm:"uniqueIndex:idx_product_image_position;not null"`
}

type Order struct {
	ID          string `gorm:"primaryKey;size:64;not null"`
	OrderNumber string `gorm:"size:64;uniqueIndex;not null"`
	UserID      string `gorm:"size:64;index;not null"`
	CustomerID  string `gorm:"size:64;index"`
	Email       string `gorm:"size:256"`
	TotalPence  int64  `gorm:"not null"`
	Status      OrderStatus `gorm:"size:32;index;not null"`
	// Stripe payment intent id; webhook idempotency key.
	StripePaymentID string      `gorm:"size:128;uniqueIndex;not null"`
	Address         Address     `gorm:"embedded;embeddedPrefix:address_"`
	Items           []OrderItem `gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderItem struct {
	ID          uint   `gorm:"primaryKey"`
	OrderID     string `gorm:"size:64;index;not null"`
	ProductID   string `gorm:"size:64;index;not null"`
	ProductName string `gorm:"size:256"`
	Quantity    int64  `gorm:"not null"`
	// unit price actually charged, in pence
	PricePence int64 `gorm:"not null"`
	CreatedAt  time.Time
}

type Address struct {
	Name     string `gorm:"size:256"`
	Line1    string `gorm:"size:256"`
	Line2    string `gorm:"size:256"`
	City     string `gorm:"size:128"`
	Postcode string `gorm:"size:32"`
	Country  string `gorm:"size:8"`
}

type Customer struct {
	ID               string `gorm:"primaryKey;size:64;not null"`
	Email            string `gorm:"size:256;uniqueIndex;not null"`
	Name             string `gorm:"size:256"`
	UserID           string `gorm:"size:64;index;not null"`
	StripeCustomerID string `gorm:"size:128;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type CartItem struct {
	UserID     string `gorm:"primaryKey;size:64;not null"`
	ProductID  string `gorm:"primaryKey;size:64;not null"`
	Name       string `gorm:"size:256;not null"`
	PricePence int64  `gorm:"not null"`
	Quantity   int64  `gorm:"not null"`
	ImageURL   string `gorm:"size:512"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type WebhookEvent struct {
	EventID     string `gorm:"primaryKey;size:128;not null"`
	EventType   string `gorm:"size:64;index"`
	ProcessedAt time.Time
	CreatedAt   time.Time
}
