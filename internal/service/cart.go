package service

import (
	"context"
	"errors"
	"fmt"

	"furniture-storefront/internal/model"
	"furniture-storefront/internal/repository"

	"gorm.io/gorm"
)

// CartService owns the cart reducer semantics: add merges by product id,
// setting a quantity at or below zero removes the row.
type CartService interface {
	Items(ctx context.Context, userID string) ([]*model.CartItem, error)
	Add(ctx context.Context, userID, productID string, quantity int64) (*model.CartItem, error)
	SetQuantity(ctx context.Context, userID, productID string, quantity int64) error
	Remove(ctx context.Context, userID, productID string) error
	Clear(ctx context.Context, userID string) error
}

type cartServiceImpl struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
) CartService {
	return &cartServiceImpl{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (s *cartServiceImpl) Items(ctx context.Context, userID string) ([]*model.CartItem, error) {
	return s.cartRepo.Items(ctx, userID)
}

func (s *cartServiceImpl) Add(ctx context.Context, userID, productID string, quantity int64) (*model.CartItem, error) {
	if quantity <= 0 {
		quantity = 1
	}

	products, err := s.productRepo.FindByIDs(ctx, []string{productID})
	if err != nil {
		return nil, fmt.Errorf("fetch product: %w", err)
	}
	if len(products) == 0 {
		return nil, ErrProductNotFound
	}
	product := products[0]

	items, err := s.cartRepo.Items(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	for _, existing := range items {
		if existing.ProductID == productID {
			existing.Quantity += quantity
			if err := s.cartRepo.SetQuantity(ctx, userID, productID, existing.Quantity); err != nil {
				return nil, fmt.Errorf("merge cart item: %w", err)
			}
			return existing, nil
		}
	}

	item := &model.CartItem{
		UserID:     userID,
		ProductID:  product.ID,
		Name:       product.Name,
		PricePence: product.PricePence,
		Quantity:   quantity,
	}
	if len(product.Images) > 0 {
		item.ImageURL = product.Images[0].URL
	}
	if err := s.cartRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("store cart item: %w", err)
	}

	return item, nil
}

func (s *cartServiceImpl) SetQuantity(ctx context.Context, userID, productID string, quantity int64) error {
	if quantity <= 0 {
		return s.cartRepo.Remove(ctx, userID, productID)
	}
	if err := s.cartRepo.SetQuantity(ctx, userID, productID, quantity); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return nil
}

func (s *cartServiceImpl) Remove(ctx context.Context, userID, productID string) error {
	return s.cartRepo.Remove(ctx, userID, productID)
}

func (s *cartServiceImpl) Clear(ctx context.Context, userID string) error {
	return s.cartRepo.Clear(ctx, userID)
}
