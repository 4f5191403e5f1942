package listeners_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SeaCloudHub/storefront/domain/customer"
	"github.com/SeaCloudHub/storefront/domain/notification"
	"github.com/SeaCloudHub/storefront/domain/product"
	"github.com/SeaCloudHub/storefront/domain/pubsub"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type mockNotificationService struct {
	mock.Mock
}

func (m *mockNotificationService) SendNotification(ctx context.Context, notifications []notification.Notification) error {
	return m.Called(ctx, notifications).Error(0)
}

type mockPubSubService struct {
	mock.Mock
}

func (m *mockPubSubService) Publish(ctx context.Context, channel string, message interface{}) error {
	return m.Called(ctx, channel, message).Error(0)
}

func (m *mockPubSubService) Subscribe(ctx context.Context, channel string) (pubsub.PubSub, error) {
	args := m.Called(ctx, channel)
	ps, _ := args.Get(0).(pubsub.PubSub)

	return ps, args.Error(1)
}

// otherEvent reports a known name but carries no payload.
type otherEvent struct {
	name string
}

func (e otherEvent) EventName() string     { return e.name }
func (e otherEvent) OccurredAt() time.Time { return time.Time{} }

func newObservedLogger() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return zap.New(core).Sugar(), logs
}

func newCustomer(t *testing.T) *customer.Customer {
	t.Helper()

	c, err := customer.NewCustomer("c1", "Customer X")
	require.NoError(t, err)

	return c
}

func newProduct(t *testing.T, kind product.Kind) *product.Product {
	t.Helper()

	p, err := product.New(kind, "Product 1", 10)
	require.NoError(t, err)

	return p
}

var errBoom = errors.New("boom")
