package service

import (
	"context"
	"fmt"

	"furniture-storefront/internal/client"
	"furniture-storefront/internal/model"
	"furniture-storefront/internal/repository"

	"github.com/google/uuid"
)

type CustomerService interface {
	// GetOrCreateStripeCustomer resolves the Stripe customer for an email,
	// creating and syncing the local customer row as needed.
	GetOrCreateStripeCustomer(ctx context.Context, email, name, userID string) (stripeCustomerID, customerID string, err error)
}

type customerServiceImpl struct {
	customerRepo repository.CustomerRepository
	stripeClient client.StripeClient
}

func NewCustomerService(
	customerRepo repository.CustomerRepository,
	stripeClient client.StripeClient,
) CustomerService {
	return &customerServiceImpl{
		customerRepo: customerRepo,
		stripeClient: stripeClient,
	}
}

func (s *customerServiceImpl) GetOrCreateStripeCustomer(ctx context.Context, email, name, userID string) (string, string, error) {
	existing, err := s.customerRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", "", fmt.Errorf("find customer by email: %w", err)
	}

	if existing != nil && existing.StripeCustomerID != "" {
		return existing.StripeCustomerID, existing.ID, nil
	}

	stripeCustomerID, err := s.stripeClient.FindCustomerByEmail(ctx, email)
	if err != nil {
		return "", "", fmt.Errorf("find stripe customer: %w", err)
	}
	if stripeCustomerID == "" {
		stripeCustomerID, err = s.stripeClient.CreateCustomer(ctx, email, name, userID)
		if err != nil {
			return "", "", fmt.Errorf("create stripe customer: %w", err)
		}
	}

	if existing != nil {
		if err := s.customerRepo.SetStripeCustomerID(ctx, existing.ID, stripeCustomerID, userID, name); err != nil {
			return "", "", fmt.Errorf("sync customer stripe id: %w", err)
		}
		return stripeCustomerID, existing.ID, nil
	}

	customer := &model.Customer{
		ID:               uuid.NewString(),
		Email:            email,
		Name:             name,
		UserID:           userID,
		StripeCustomerID: stripeCustomerID,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return "", "", fmt.Errorf("store customer: %w", err)
	}

	return stripeCustomerID, customer.ID, nil
}
