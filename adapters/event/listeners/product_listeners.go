package listeners

import (
	"context"
	"fmt"

	"github.com/SeaCloudHub/storefront/domain"
	"github.com/SeaCloudHub/storefront/domain/notification"
	"github.com/SeaCloudHub/storefront/domain/product"
)

const ProductCreatedTopic = "product-created"

type ProductCreatedNotifyListener struct {
	notificationService notification.Service
}

func NewProductCreatedNotifyListener(notificationService notification.Service) *ProductCreatedNotifyListener {
	return &ProductCreatedNotifyListener{notificationService: notificationService}
}

func (l *ProductCreatedNotifyListener) Handle(ctx context.Context, event domain.Event) error {
	productCreatedEvent, ok := event.(product.CreatedEvent)
	if !ok {
		return nil
	}

	p := productCreatedEvent.Product
	err := l.notificationService.SendNotification(ctx, []notification.Notification{{
		Topic:   ProductCreatedTopic,
		Subject: "New product: " + p.Name(),
		Content: fmt.Sprintf("%s (%s) is now available for %.2f", p.Name(), p.ID(), p.Price()),
	}})
	if err != nil {
		return fmt.Errorf("notify product %s created: %w", p.ID(), err)
	}

	return nil
}
