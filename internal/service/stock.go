package service

import (
	"context"
	"fmt"

	"furniture-storefront/internal/dto"
	"furniture-storefront/internal/model"
	"furniture-storefront/internal/repository"
)

// StockService reconciles cart quantities against live inventory. Read-only;
// safe to call repeatedly.
type StockService interface {
	VerifyCart(ctx context.Context, userID string) (*dto.CartStockReport, error)
}

type stockServiceImpl struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewStockService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
) StockService {
	return &stockServiceImpl{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (s *stockServiceImpl) VerifyCart(ctx context.Context, userID string) (*dto.CartStockReport, error) {
	items, err := s.cartRepo.Items(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	report := &dto.CartStockReport{Items: []*dto.StockInfo{}}
	if len(items) == 0 {
		return report, nil
	}

	productIDs := make([]string, len(items))
	for i, item := range items {
		productIDs[i] = item.ProductID
	}
	products, err := s.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch live stock: %w", err)
	}
	stockByID := make(map[string]int64, len(products))
	for _, p := range products {
		stockByID[p.ID] = p.Stock
	}

	for _, item := range items {
		// A product missing from the catalog counts as zero stock.
		currentStock := stockByID[item.ProductID]

		info := &dto.StockInfo{
			ProductID:         item.ProductID,
			CurrentStock:      currentStock,
			IsOutOfStock:      model.IsOutOfStock(currentStock),
			ExceedsStock:      item.Quantity > currentStock,
			AvailableQuantity: min(item.Quantity, currentStock),
		}
		if info.IsOutOfStock || info.ExceedsStock {
			report.HasStockIssues = true
		}
		report.Items = append(report.Items, info)
	}

	return report, nil
}
