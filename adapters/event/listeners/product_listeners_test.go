package listeners_test

import (
	"context"
	"testing"

	"github.com/SeaCloudHub/storefront/adapters/event/listeners"
	"github.com/SeaCloudHub/storefront/domain/notification"
	"github.com/SeaCloudHub/storefront/domain/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductCreatedNotifyListener(t *testing.T) {
	ctx := context.Background()

	t.Run("it should push one notification per product", func(t *testing.T) {
		svc := new(mockNotificationService)
		listener := listeners.NewProductCreatedNotifyListener(svc)
		p := newProduct(t, product.KindB)

		svc.On("SendNotification", ctx, mock.MatchedBy(func(ns []notification.Notification) bool {
			return len(ns) == 1 &&
				ns[0].Topic == listeners.ProductCreatedTopic &&
				ns[0].Subject == "New product: Product 1" &&
				ns[0].Content == "Product 1 ("+p.ID()+") is now available for 20.00"
		})).Return(nil).Once()

		require.NoError(t, listener.Handle(ctx, product.NewCreatedEvent(p)))
		svc.AssertExpectations(t)
	})

	t.Run("it should wrap notification errors", func(t *testing.T) {
		svc := new(mockNotificationService)
		listener := listeners.NewProductCreatedNotifyListener(svc)
		svc.On("SendNotification", ctx, mock.Anything).Return(errBoom)

		err := listener.Handle(ctx, product.NewCreatedEvent(newProduct(t, product.KindA)))
		assert.ErrorIs(t, err, errBoom)
	})

	t.Run("it should ignore foreign events", func(t *testing.T) {
		svc := new(mockNotificationService)
		listener := listeners.NewProductCreatedNotifyListener(svc)

		require.NoError(t, listener.Handle(ctx, otherEvent{name: product.CreatedEventName}))
		svc.AssertNotCalled(t, "SendNotification", mock.Anything, mock.Anything)
	})
}
