package postgrestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/SeaCloudHub/storefront/domain/checkout"
	"github.com/SeaCloudHub/storefront/domain/customer"
	"github.com/SeaCloudHub/storefront/pkg/pagination"
	"gorm.io/gorm"
)

type OrderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

// Create inserts the order together with its items.
func (s *OrderStore) Create(ctx context.Context, o *checkout.Order) error {
	orderSchema := NewOrderSchema(o)

	if err := s.db.WithContext(ctx).Create(&orderSchema).Error; err != nil {
		if isDuplicateKey(err) {
			return checkout.ErrAlreadyExists
		}

		return fmt.Errorf("unexpected error: %w", err)
	}

	return nil
}

// Place inserts the order with its items and credits the customer's reward
// points in one transaction.
func (s *OrderStore) Place(ctx context.Context, o *checkout.Order, c *customer.Customer) error {
	orderSchema := NewOrderSchema(o)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&orderSchema).Error; err != nil {
			if isDuplicateKey(err) {
				return checkout.ErrAlreadyExists
			}

			return fmt.Errorf("unexpected error: %w", err)
		}

		result := tx.Model(&CustomerSchema{}).
			Where("id = ?", c.ID()).
			Update("reward_points", c.RewardPoints())
		if result.Error != nil {
			return fmt.Errorf("update reward points: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			return customer.ErrNotFound
		}

		return nil
	})
}

// Update rewrites the order row and replaces its items atomically.
func (s *OrderStore) Update(ctx context.Context, o *checkout.Order) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&OrderSchema{}).
			Where("id = ?", o.ID()).
			Updates(map[string]interface{}{
				"customer_id": o.CustomerID(),
				"total":       o.Total(),
			})
		if result.Error != nil {
			return fmt.Errorf("unexpected error: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			return checkout.ErrNotFound
		}

		if err := tx.Where("order_id = ?", o.ID()).Delete(&OrderItemSchema{}).Error; err != nil {
			return fmt.Errorf("delete order items: %w", err)
		}

		items := newOrderItemSchemas(o)
		if len(items) == 0 {
			return nil
		}

		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("insert order items: %w", err)
		}

		return nil
	})
}

func (s *OrderStore) GetByID(ctx context.Context, id string) (*checkout.Order, error) {
	var orderSchema OrderSchema

	err := s.db.WithContext(ctx).
		Preload("Items", orderItemsByID).
		Where("id = ?", id).
		First(&orderSchema).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, checkout.ErrNotFound
		}

		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	return orderSchema.ToDomainOrder()
}

func (s *OrderStore) List(ctx context.Context, pager *pagination.Pager) ([]checkout.Order, error) {
	var (
		orderSchemas []OrderSchema
		total        int64
	)

	if err := s.db.WithContext(ctx).Model(&OrderSchema{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	pager.SetTotal(total)

	offset, limit := pager.Do()
	if err := s.db.WithContext(ctx).
		Preload("Items", orderItemsByID).
		Order("id").
		Limit(limit).Offset(offset).
		Find(&orderSchemas).Error; err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	orders := make([]checkout.Order, 0, len(orderSchemas))
	for _, orderSchema := range orderSchemas {
		o, err := orderSchema.ToDomainOrder()
		if err != nil {
			return nil, fmt.Errorf("order %s: %w", orderSchema.ID, err)
		}

		orders = append(orders, *o)
	}

	return orders, nil
}

func orderItemsByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
