package service

import (
	"context"
	"errors"
	"testing"

	"furniture-storefront/internal/client"
	"furniture-storefront/internal/dto"
	"furniture-storefront/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://shop.example.com"

func setupCheckout(t *testing.T, products ...*model.Product) (CheckoutService, *mockStripeClient, *mockCustomerRepo) {
	productRepo := newMockProductRepo(products...)
	customerRepo := newMockCustomerRepo()
	stripeClient := newMockStripeClient()
	customerService := NewCustomerService(customerRepo, stripeClient)
	checkoutService := NewCheckoutService(stripeClient, productRepo, customerService, testBaseURL)
	return checkoutService, stripeClient, customerRepo
}

func cartItem(productID, name string, quantity int64) *dto.CartItemInput {
	return &dto.CartItemInput{ProductID: productID, Name: name, Quantity: quantity}
}

func TestCreateSessionEmptyCart(t *testing.T) {
	checkoutService, stripeClient, _ := setupCheckout(t)

	_, err := checkoutService.CreateSession(context.Background(), "user-1", "a@b.com", "Ann", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Your cart is empty", validationErr.Error())
	// fails before any provider call
	assert.Empty(t, stripeClient.createSessionCalls)
}

func TestCreateSessionValidation(t *testing.T) {
	sofa := &model.Product{ID: "p1", Name: "Aldon Sofa", PricePence: 89900, Stock: 3}
	stool := &model.Product{ID: "p2", Name: "Stour Stool", PricePence: 7900, Stock: 0}
	checkoutService, stripeClient, _ := setupCheckout(t, sofa, stool)

	t.Run("quantity exceeds stock names the product", func(t *testing.T) {
		_, err := checkoutService.CreateSession(context.Background(), "user-1", "a@b.com", "Ann",
			[]*dto.CartItemInput{cartItem("p1", "Aldon Sofa", 5)})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Error(), `Only 3 of "Aldon Sofa" available`)
		assert.Empty(t, stripeClient.createSessionCalls)
	})

	t.Run("out of stock", func(t *testing.T) {
		_, err := checkoutService.CreateSession(context.Background(), "user-1", "a@b.com", "Ann",
			[]*dto.CartItemInput{cartItem("p2", "Stour Stool", 1)})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Error(), `"Stour Stool" is out of stock`)
	})

	t.Run("missing product", func(t *testing.T) {
		_, err := checkoutService.CreateSession(context.Background(), "user-1", "a@b.com", "Ann",
			[]*dto.CartItemInput{cartItem("gone", "Old Lamp", 1)})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Error(), `Product "Old Lamp" is no longer available`)
	})

	t.Run("errors accumulate across items", func(t *testing.T) {
		_, err := checkoutService.CreateSession(context.Background(), "user-1", "a@b.com", "Ann",
			[]*dto.CartItemInput{
				cartItem("p1", "Aldon Sofa", 5),
				cartItem("p2", "Stour Stool", 1),
			})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.Len(t, validationErr.Messages, 2)
		assert.Contains(t, validationErr.Error(), "Aldon Sofa")
		assert.Contains(t, validationErr.Error(), "Stour Stool")
	})
}

func TestCreateSessionUsesCatalogPrices(t *testing.T) {
	sofa := &model.Product{
		ID: "p1", Name: "Aldon Sofa", PricePence: 89900, Stock: 3,
		Images: []model.ProductImage{{URL: "https://img.example.com/sofa.jpg"}},
	}
	checkoutService, stripeClient, _ := setupCheckout(t, sofa)

	// client lies about the price
	item := cartItem("p1", "Aldon Sofa", 2)
	item.PricePence = 100

	url, err := checkoutService.CreateSession(context.Background(), "user-1", "ann@example.com", "Ann", []*dto.CartItemInput{item})
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.test/cs_test", url)

	require.Len(t, stripeClient.createSessionCalls, 1)
	params := stripeClient.createSessionCalls[0]
	require.Len(t, params.LineItems, 1)
	assert.Equal(t, int64(89900), params.LineItems[0].UnitPence)
	assert.Equal(t, int64(2), params.LineItems[0].Quantity)
	assert.Equal(t, "https://img.example.com/sofa.jpg", params.LineItems[0].ImageURL)

	assert.Equal(t, "user-1", params.Metadata["userId"])
	assert.Equal(t, "ann@example.com", params.Metadata["userEmail"])
	assert.Equal(t, "p1", params.Metadata["productIds"])
	assert.Equal(t, "2", params.Metadata["quantities"])
	assert.NotEmpty(t, params.Metadata["customerId"])

	assert.Equal(t, testBaseURL+"/checkout/success?session_id={CHECKOUT_SESSION_ID}", params.SuccessURL)
	assert.Equal(t, testBaseURL+"/checkout", params.CancelURL)
}

func TestCreateSessionMetadataJoinsItems(t *testing.T) {
	sofa := &model.Product{ID: "p1", Name: "Aldon Sofa", PricePence: 89900, Stock: 5}
	chair := &model.Product{ID: "p2", Name: "Hove Armchair", PricePence: 44900, Stock: 5}
	checkoutService, stripeClient, _ := setupCheckout(t, sofa, chair)

	_, err := checkoutService.CreateSession(context.Background(), "user-1", "ann@example.com", "Ann",
		[]*dto.CartItemInput{
			cartItem("p1", "Aldon Sofa", 1),
			cartItem("p2", "Hove Armchair", 3),
		})
	require.NoError(t, err)

	params := stripeClient.createSessionCalls[0]
	assert.Equal(t, "p1,p2", params.Metadata["productIds"])
	assert.Equal(t, "1,3", params.Metadata["quantities"])
}

func TestGetSession(t *testing.T) {
	checkoutService, stripeClient, _ := setupCheckout(t)

	stripeClient.getSession = &client.CheckoutSession{
		ID:            "cs_1",
		AmountTotal:   89900,
		PaymentStatus: "paid",
		Metadata:      map[string]string{"userId": "user-1"},
		CustomerEmail: "ann@example.com",
		CustomerName:  "Ann",
		LineItems: []*client.ChargedLineItem{
			{Name: "Aldon Sofa", Quantity: 1, AmountTotal: 89900},
		},
	}

	t.Run("owner sees the session", func(t *testing.T) {
		resp, err := checkoutService.GetSession(context.Background(), "user-1", "cs_1")
		require.NoError(t, err)
		assert.Equal(t, "cs_1", resp.ID)
		assert.Equal(t, int64(89900), resp.AmountTotal)
		require.Len(t, resp.LineItems, 1)
		assert.Equal(t, "Aldon Sofa", resp.LineItems[0].Name)
	})

	t.Run("foreign user gets not found", func(t *testing.T) {
		_, err := checkoutService.GetSession(context.Background(), "user-2", "cs_1")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestCreateSessionProviderFailure(t *testing.T) {
	sofa := &model.Product{ID: "p1", Name: "Aldon Sofa", PricePence: 89900, Stock: 3}
	checkoutService, stripeClient, _ := setupCheckout(t, sofa)
	stripeClient.createSessionErr = errors.New("stripe down")

	_, err := checkoutService.CreateSession(context.Background(), "user-1", "a@b.com", "Ann",
		[]*dto.CartItemInput{cartItem("p1", "Aldon Sofa", 1)})

	require.Error(t, err)
	var validationErr *ValidationError
	assert.False(t, errors.As(err, &validationErr))
}
