package listeners

import (
	"context"

	"github.com/SeaCloudHub/storefront/adapters/event"
	"github.com/SeaCloudHub/storefront/domain/checkout"
	"go.uber.org/zap"
)

func NewOrderPlacedLogListener(logger *zap.SugaredLogger) *event.TypedHandler[checkout.PlacedEvent] {
	return event.NewTypedHandler(func(_ context.Context, e checkout.PlacedEvent) error {
		logger.Infow("order placed",
			"event", e.EventName(),
			"order_id", e.Order.ID(),
			"customer_id", e.Order.CustomerID(),
			"total", e.Order.Total(),
		)

		return nil
	})
}
