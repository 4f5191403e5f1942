package listeners_test

import (
	"context"
	"strings"
	"testing"

	"github.com/SeaCloudHub/storefront/adapters/event"
	"github.com/SeaCloudHub/storefront/adapters/event/listeners"
	"github.com/SeaCloudHub/storefront/domain/customer"
	"github.com/SeaCloudHub/storefront/domain/product"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsListener(t *testing.T) {
	ctx := context.Background()

	t.Run("it should count events by name", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		listener, err := listeners.NewMetricsListener(reg)
		require.NoError(t, err)

		dispatcher := event.NewEventDispatcher()
		dispatcher.Register(customer.CreatedEventName, listener)
		dispatcher.Register(product.CreatedEventName, listener)

		require.NoError(t, dispatcher.Notify(ctx, customer.NewCreatedEvent(newCustomer(t))))
		require.NoError(t, dispatcher.Notify(ctx, customer.NewCreatedEvent(newCustomer(t))))
		require.NoError(t, dispatcher.Notify(ctx, product.NewCreatedEvent(newProduct(t, product.KindA))))

		expected := `
# HELP storefront_domain_events_total Total number of domain events notified
# TYPE storefront_domain_events_total counter
storefront_domain_events_total{event="CustomerCreatedEvent"} 2
storefront_domain_events_total{event="ProductCreatedEvent"} 1
`
		assert.Equal(t, 2, testutil.CollectAndCount(reg, "storefront_domain_events_total"))
		assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "storefront_domain_events_total"))
	})

	t.Run("it should fail on double registration", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		_, err := listeners.NewMetricsListener(reg)
		require.NoError(t, err)

		_, err = listeners.NewMetricsListener(reg)
		assert.Error(t, err)
	})
}
