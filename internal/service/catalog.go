package service

import (
	"context"

	"furniture-storefront/internal/model"
	"furniture-storefront/internal/repository"
)

type CatalogService interface {
	Products(ctx context.Context, filter repository.ProductFilter) ([]*model.Product, error)
	Featured(ctx context.Context) ([]*model.Product, error)
	// ProductBySlug returns nil when no product matches.
	ProductBySlug(ctx context.Context, slug string) (*model.Product, error)
	Categories(ctx context.Context) ([]*model.Category, error)
	LowStock(ctx context.Context) ([]*model.Product, error)
	OutOfStock(ctx context.Context) ([]*model.Product, error)
}

type catalogServiceImpl struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewCatalogService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
) CatalogService {
	return &catalogServiceImpl{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *catalogServiceImpl) Products(ctx context.Context, filter repository.ProductFilter) ([]*model.Product, error) {
	return s.productRepo.Filter(ctx, filter)
}

func (s *catalogServiceImpl) Featured(ctx context.Context) ([]*model.Product, error) {
	return s.productRepo.Featured(ctx)
}

func (s *catalogServiceImpl) ProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	return s.productRepo.FindBySlug(ctx, slug)
}

func (s *catalogServiceImpl) Categories(ctx context.Context) ([]*model.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *catalogServiceImpl) LowStock(ctx context.Context) ([]*model.Product, error) {
	return s.productRepo.LowStock(ctx)
}

func (s *catalogServiceImpl) OutOfStock(ctx context.Context) ([]*model.Product, error) {
	return s.productRepo.OutOfStock(ctx)
}
