package listeners_test

import (
	"context"
	"testing"

	"github.com/SeaCloudHub/storefront/adapters/event"
	"github.com/SeaCloudHub/storefront/adapters/event/listeners"
	"github.com/SeaCloudHub/storefront/domain"
	"github.com/SeaCloudHub/storefront/domain/checkout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderPlacedLogListener(t *testing.T) {
	ctx := context.Background()

	t.Run("it should log the placed order", func(t *testing.T) {
		logger, logs := newObservedLogger()
		dispatcher := event.NewEventDispatcher()
		dispatcher.Register(checkout.PlacedEventName, listeners.NewOrderPlacedLogListener(logger))

		o, err := checkout.NewOrder("o1", "c1", []checkout.OrderItem{
			checkout.NewOrderItem("1", "Product 1", 10, "p1", 3),
		})
		require.NoError(t, err)

		require.NoError(t, dispatcher.Notify(ctx, checkout.NewPlacedEvent(o)))

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, "order placed", entry.Message)
		assert.Equal(t, "o1", entry.ContextMap()["order_id"])
		assert.Equal(t, "c1", entry.ContextMap()["customer_id"])
		assert.Equal(t, 30.0, entry.ContextMap()["total"])
	})

	t.Run("it should ignore foreign events and let later handlers run", func(t *testing.T) {
		logger, logs := newObservedLogger()
		later := &countingHandler{}
		dispatcher := event.NewEventDispatcher()
		dispatcher.Register(checkout.PlacedEventName, listeners.NewOrderPlacedLogListener(logger))
		dispatcher.Register(checkout.PlacedEventName, later)

		require.NoError(t, dispatcher.Notify(ctx, otherEvent{name: checkout.PlacedEventName}))
		assert.Zero(t, logs.Len())
		assert.Equal(t, 1, later.calls)
	})
}

type countingHandler struct {
	calls int
}

func (h *countingHandler) Handle(context.Context, domain.Event) error {
	h.calls++
	return nil
}
