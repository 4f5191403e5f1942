package postgrestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/SeaCloudHub/storefront/domain/product"
	"github.com/SeaCloudHub/storefront/pkg/pagination"
	"gorm.io/gorm"
)

type ProductStore struct {
	db *gorm.DB
}

func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{db: db}
}

func (s *ProductStore) Create(ctx context.Context, p *product.Product) error {
	productSchema := NewProductSchema(p)

	if err := s.db.WithContext(ctx).Create(&productSchema).Error; err != nil {
		if isDuplicateKey(err) {
			return product.ErrAlreadyExists
		}

		return fmt.Errorf("unexpected error: %w", err)
	}

	return nil
}

func (s *ProductStore) Update(ctx context.Context, p *product.Product) error {
	result := s.db.WithContext(ctx).Model(&ProductSchema{}).
		Where("id = ?", p.ID()).
		Updates(map[string]interface{}{
			"name":  p.Name(),
			"price": p.BasePrice(),
			"kind":  string(p.Kind()),
		})
	if result.Error != nil {
		return fmt.Errorf("unexpected error: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return product.ErrNotFound
	}

	return nil
}

func (s *ProductStore) GetByID(ctx context.Context, id string) (*product.Product, error) {
	var productSchema ProductSchema

	err := s.db.WithContext(ctx).Where("id = ?", id).First(&productSchema).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, product.ErrNotFound
		}

		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	return productSchema.ToDomainProduct(), nil
}

func (s *ProductStore) List(ctx context.Context, pager *pagination.Pager) ([]product.Product, error) {
	var (
		productSchemas []ProductSchema
		total          int64
	)

	if err := s.db.WithContext(ctx).Model(&ProductSchema{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	pager.SetTotal(total)

	offset, limit := pager.Do()
	if err := s.db.WithContext(ctx).
		Order("name").Order("id").
		Limit(limit).Offset(offset).
		Find(&productSchemas).Error; err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	products := make([]product.Product, 0, len(productSchemas))
	for _, productSchema := range productSchemas {
		products = append(products, *productSchema.ToDomainProduct())
	}

	return products, nil
}
