package service

import (
	"context"
	"fmt"

	"furniture-storefront/internal/model"
	"furniture-storefront/internal/repository"
)

type OrderService interface {
	ListByUser(ctx context.Context, userID string) ([]*model.Order, error)
	// GetForUser returns ErrOrderNotFound for unknown ids and for orders
	// belonging to another user.
	GetForUser(ctx context.Context, userID, orderID string) (*model.Order, error)
}

type orderServiceImpl struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderServiceImpl{
		orderRepo: orderRepo,
	}
}

func (s *orderServiceImpl) ListByUser(ctx context.Context, userID string) ([]*model.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

func (s *orderServiceImpl) GetForUser(ctx context.Context, userID, orderID string) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}
	if order == nil || order.UserID != userID {
		return nil, ErrOrderNotFound
	}

	return order, nil
}
