package service

import (
	"context"
	"testing"

	"furniture-storefront/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCart(products ...*model.Product) (CartService, *mockCartRepo) {
	cartRepo := newMockCartRepo()
	return NewCartService(cartRepo, newMockProductRepo(products...)), cartRepo
}

func TestAddUnknownProduct(t *testing.T) {
	cartService, _ := setupCart()

	_, err := cartService.Add(context.Background(), "user-1", "nope", 1)

	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestAddSnapshotsProduct(t *testing.T) {
	sofa := &model.Product{
		ID:         "p1",
		Name:       "Aldon Sofa",
		PricePence: 89900,
		Stock:      4,
		Images:     []model.ProductImage{{URL: "https://img.test/sofa.jpg"}},
	}
	cartService, _ := setupCart(sofa)

	item, err := cartService.Add(context.Background(), "user-1", "p1", 2)

	require.NoError(t, err)
	assert.Equal(t, "Aldon Sofa", item.Name)
	assert.Equal(t, int64(89900), item.PricePence)
	assert.Equal(t, int64(2), item.Quantity)
	assert.Equal(t, "https://img.test/sofa.jpg", item.ImageURL)
}

func TestAddMergesByProduct(t *testing.T) {
	sofa := &model.Product{ID: "p1", Name: "Aldon Sofa", PricePence: 89900, Stock: 10}
	cartService, cartRepo := setupCart(sofa)
	ctx := context.Background()

	_, err := cartService.Add(ctx, "user-1", "p1", 2)
	require.NoError(t, err)
	_, err = cartService.Add(ctx, "user-1", "p1", 3)
	require.NoError(t, err)

	items, _ := cartRepo.Items(ctx, "user-1")
	require.Len(t, items, 1)
	assert.Equal(t, int64(5), items[0].Quantity)
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	sofa := &model.Product{ID: "p1", Name: "Aldon Sofa", PricePence: 89900, Stock: 10}
	cartService, _ := setupCart(sofa)

	item, err := cartService.Add(context.Background(), "user-1", "p1", 0)

	require.NoError(t, err)
	assert.Equal(t, int64(1), item.Quantity)
}

func TestSetQuantity(t *testing.T) {
	sofa := &model.Product{ID: "p1", Name: "Aldon Sofa", PricePence: 89900, Stock: 10}
	cartService, cartRepo := setupCart(sofa)
	ctx := context.Background()

	_, err := cartService.Add(ctx, "user-1", "p1", 2)
	require.NoError(t, err)

	t.Run("updates row", func(t *testing.T) {
		require.NoError(t, cartService.SetQuantity(ctx, "user-1", "p1", 4))
		items, _ := cartRepo.Items(ctx, "user-1")
		require.Len(t, items, 1)
		assert.Equal(t, int64(4), items[0].Quantity)
	})

	t.Run("zero removes the row", func(t *testing.T) {
		require.NoError(t, cartService.SetQuantity(ctx, "user-1", "p1", 0))
		items, _ := cartRepo.Items(ctx, "user-1")
		assert.Empty(t, items)
	})

	t.Run("unknown product", func(t *testing.T) {
		err := cartService.SetQuantity(ctx, "user-1", "p1", 2)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestClear(t *testing.T) {
	sofa := &model.Product{ID: "p1", Name: "Aldon Sofa", PricePence: 89900, Stock: 10}
	table := &model.Product{ID: "p2", Name: "Fenwick Table", PricePence: 64900, Stock: 6}
	cartService, cartRepo := setupCart(sofa, table)
	ctx := context.Background()

	_, err := cartService.Add(ctx, "user-1", "p1", 1)
	require.NoError(t, err)
	_, err = cartService.Add(ctx, "user-1", "p2", 1)
	require.NoError(t, err)

	require.NoError(t, cartService.Clear(ctx, "user-1"))

	items, _ := cartRepo.Items(ctx, "user-1")
	assert.Empty(t, items)
}
