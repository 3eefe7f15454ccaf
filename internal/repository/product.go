package repository

import (
	"context"
	"errors"

	"furniture-storefront/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductFilter struct {
	Search        string
	CategorySlug  string
	Color         string
	Material      string
	MinPricePence int64
	MaxPricePence int64
	InStock       bool
	Sort          model.SortOrder
}

type ProductRepository interface {
	All(ctx context.Context) ([]*model.Product, error)
	Featured(ctx context.Context) ([]*model.Product, error)
	FindBySlug(ctx context.Context, slug string) (*model.Product, error)
	FindByIDs(ctx context.Context, productIDs []string) ([]*model.Product, error)
	Filter(ctx context.Context, filter ProductFilter) ([]*model.Product, error)
	LowStock(ctx context.Context) ([]*model.Product, error)
	OutOfStock(ctx context.Context) ([]*model.Product, error)
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{
		db: db,
	}
}

func (r *productRepoImpl) base(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Category")
}

func (r *productRepoImpl) All(ctx context.Context) ([]*model.Product, error) {
	var products []*model.Product
	err := r.base(ctx).
		Order("name ASC").
		Find(&products).Error

	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) Featured(ctx context.Context) ([]*model.Product, error) {
	var products []*model.Product
	err := r.base(ctx).
		Where("featured = ?", true).
		Where("stock > 0").
		Order("name ASC").
		Limit(6).
		Find(&products).Error

	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) FindBySlug(ctx context.Context, slug string) (*model.Product, error) {
	var product model.Product
	err := r.base(ctx).
		Where("slug = ?", slug).
		First(&product).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &product, nil
}

func (r *productRepoImpl) FindByIDs(ctx context.Context, productIDs []string) ([]*model.Product, error) {
	var products []*model.Product
	err := r.base(ctx).
		Where("id IN ?", productIDs).
		Find(&products).Error

	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) Filter(ctx context.Context, filter ProductFilter) ([]*model.Product, error) {
	q := r.base(ctx).
		Joins("LEFT JOIN categories ON categories.id = products.category_id")

	if filter.CategorySlug != "" {
		q = q.Where("categories.slug = ?", filter.CategorySlug)
	}
	if filter.Color != "" {
		q = q.Where("products.color = ?", filter.Color)
	}
	if filter.Material != "" {
		q = q.Where("products.material = ?", filter.Material)
	}
	if filter.MinPricePence > 0 {
		q = q.Where("products.price_pence >= ?", filter.MinPricePence)
	}
	if filter.MaxPricePence > 0 {
		q = q.Where("products.price_pence <= ?", filter.MaxPricePence)
	}
	if filter.InStock {
		q = q.Where("products.stock > 0")
	}

	pattern := "%" + filter.Search + "%"
	if filter.Search != "" {
		q = q.Where("products.name LIKE ? OR products.description LIKE ?", pattern, pattern)
	}

	switch filter.Sort {
	case model.SortPriceAsc:
		q = q.Order("products.price_pence ASC")
	case model.SortPriceDesc:
		q = q.Order("products.price_pence DESC")
	case model.SortRelevance:
		if filter.Search != "" {
			// name matches rank above description-only matches
			q = q.Clauses(clause.OrderBy{
				Expression: clause.Expr{
					SQL:                "CASE WHEN products.name LIKE ? THEN 0 ELSE 1 END, products.name ASC",
					Vars:               []interface{}{pattern},
					WithoutParentheses: true,
				},
			})
		} else {
			q = q.Order("products.name ASC")
		}
	default:
		q = q.Order("products.name ASC")
	}

	var products []*model.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) LowStock(ctx context.Context) ([]*model.Product, error) {
	var products []*model.Product
	err := r.base(ctx).
		Where("stock > 0").
		Where("stock <= ?", model.LowStockThreshold).
		Order("stock ASC").
		Find(&products).Error

	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) OutOfStock(ctx context.Context) ([]*model.Product, error) {
	var products []*model.Product
	err := r.base(ctx).
		Where("stock = 0").
		Order("name ASC").
		Find(&products).Error

	if err != nil {
		return nil, err
	}

	return products, nil
}
