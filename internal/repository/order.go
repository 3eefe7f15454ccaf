package repository

import (
	"context"
	"errors"

	"furniture-storefront/internal/model"

	"gorm.io/gorm"
)

type StockDecrement struct {
	ProductID string
	Quantity  int64
}

type OrderRepository interface {
	// FindByStripePaymentID returns (nil, nil) when no order exists for the
	// payment id; this is the webhook idempotency lookup.
	FindByStripePaymentID(ctx context.Context, stripePaymentID string) (*model.Order, error)
	// Fulfill persists the order with its items, applies the stock
	// decrements, and clears the buyer's cart in a single transaction.
	Fulfill(ctx context.Context, order *model.Order, items []*model.OrderItem, decrements []StockDecrement) error
	ListByUser(ctx context.Context, userID string) ([]*model.Order, error)
	FindByID(ctx context.Context, orderID string) (*model.Order, error)
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) FindByStripePaymentID(ctx context.Context, stripePaymentID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where("stripe_payment_id = ?", stripePaymentID).
		First(&order).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) Fulfill(ctx context.Context, order *model.Order, items []*model.OrderItem, decrements []StockDecrement) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}

		// Delta update, not read-modify-write; no floor check.
		for _, dec := range decrements {
			err := tx.Model(&model.Product{}).
				Where("id = ?", dec.ProductID).
				UpdateColumn("stock", gorm.Expr("stock - ?", dec.Quantity)).
				Error
			if err != nil {
				return err
			}
		}

		return tx.Where("user_id = ?", order.UserID).
			Delete(&model.CartItem{}).Error
	})
}

func (r *orderRepoImpl) ListByUser(ctx context.Context, userID string) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepoImpl) FindByID(ctx context.Context, orderID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", orderID).
		First(&order).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &order, nil
}
