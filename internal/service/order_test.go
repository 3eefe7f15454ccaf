package service

import (
	"context"
	"testing"

	"furniture-storefront/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetForUser(t *testing.T) {
	orderRepo := newMockOrderRepo(nil, nil)
	orderRepo.orders = []*model.Order{
		{ID: "ord-1", UserID: "user-1", OrderNumber: "ORD-TEST-0001"},
	}
	orderService := NewOrderService(orderRepo)
	ctx := context.Background()

	t.Run("owner", func(t *testing.T) {
		order, err := orderService.GetForUser(ctx, "user-1", "ord-1")
		require.NoError(t, err)
		assert.Equal(t, "ORD-TEST-0001", order.OrderNumber)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := orderService.GetForUser(ctx, "user-1", "missing")
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("someone else's order", func(t *testing.T) {
		_, err := orderService.GetForUser(ctx, "user-2", "ord-1")
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestListByUserFiltersOwner(t *testing.T) {
	orderRepo := newMockOrderRepo(nil, nil)
	orderRepo.orders = []*model.Order{
		{ID: "ord-1", UserID: "user-1"},
		{ID: "ord-2", UserID: "user-2"},
		{ID: "ord-3", UserID: "user-1"},
	}
	orderService := NewOrderService(orderRepo)

	orders, err := orderService.ListByUser(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, "user-1", o.UserID)
	}
}
