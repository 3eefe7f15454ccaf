package repository

import (
	"context"
	"errors"
	"time"

	"furniture-storefront/internal/model"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	// FindByEmail returns (nil, nil) when no customer exists for the email.
	FindByEmail(ctx context.Context, email string) (*model.Customer, error)
	Create(ctx context.Context, customer *model.Customer) error
	SetStripeCustomerID(ctx context.Context, customerID, stripeCustomerID, userID, name string) error
}

type customerRepoImpl struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepoImpl{
		db: db,
	}
}

func (r *customerRepoImpl) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&customer).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &customer, nil
}

func (r *customerRepoImpl) Create(ctx context.Context, customer *model.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepoImpl) SetStripeCustomerID(ctx context.Context, customerID, stripeCustomerID, userID, name string) error {
	result := r.db.WithContext(ctx).
		Model(&model.Customer{}).
		Where("id = ?", customerID).
		Updates(map[string]interface{}{
			"stripe_customer_id": stripeCustomerID,
			"user_id":            userID,
			"name":               name,
			"updated_at":         time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
