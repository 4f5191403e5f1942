package event_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SeaCloudHub/storefront/adapters/event"
	"github.com/SeaCloudHub/storefront/domain"
	"github.com/SeaCloudHub/storefront/domain/customer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	name   string
	calls  *[]string
	events []domain.Event
	err    error
}

func newRecordingHandler(name string, calls *[]string) *recordingHandler {
	return &recordingHandler{name: name, calls: calls}
}

func (h *recordingHandler) Handle(_ context.Context, e domain.Event) error {
	*h.calls = append(*h.calls, h.name)
	h.events = append(h.events, e)

	return h.err
}

type mockHandler struct {
	mock.Mock
}

func (m *mockHandler) Handle(ctx context.Context, e domain.Event) error {
	return m.Called(ctx, e).Error(0)
}

type handlerFunc func(ctx context.Context, e domain.Event) error

func (f handlerFunc) Handle(ctx context.Context, e domain.Event) error {
	return f(ctx, e)
}

type testEvent struct {
	name string
}

func (e testEvent) EventName() string     { return e.name }
func (e testEvent) OccurredAt() time.Time { return time.Time{} }

func newCustomer(t *testing.T, name string) *customer.Customer {
	t.Helper()

	c, err := customer.New(name)
	require.NoError(t, err)

	return c
}

func TestRegister(t *testing.T) {
	t.Run("it should keep handlers in registration order", func(t *testing.T) {
		var calls []string
		dispatcher := event.NewEventDispatcher()
		first := newRecordingHandler("first", &calls)
		second := newRecordingHandler("second", &calls)

		dispatcher.Register(customer.CreatedEventName, first)
		dispatcher.Register(customer.CreatedEventName, second)

		handlers := dispatcher.EventHandlers()[customer.CreatedEventName]
		require.Len(t, handlers, 2)
		assert.Same(t, first, handlers[0])
		assert.Same(t, second, handlers[1])
	})

	t.Run("it should work on a zero value dispatcher", func(t *testing.T) {
		var calls []string
		var dispatcher event.EventDispatcher

		dispatcher.Register("E", newRecordingHandler("a", &calls))

		require.NoError(t, dispatcher.Notify(context.Background(), testEvent{name: "E"}))
		assert.Equal(t, []string{"a"}, calls)
	})
}

func TestNotify(t *testing.T) {
	ctx := context.Background()

	t.Run("it should call handlers in registration order", func(t *testing.T) {
		var calls []string
		dispatcher := event.NewEventDispatcher()
		dispatcher.Register("E", newRecordingHandler("h1", &calls))
		dispatcher.Register("E", newRecordingHandler("h2", &calls))
		dispatcher.Register("E", newRecordingHandler("h3", &calls))

		require.NoError(t, dispatcher.Notify(ctx, testEvent{name: "E"}))
		assert.Equal(t, []string{"h1", "h2", "h3"}, calls)
	})

	t.Run("it should call a handler registered twice twice", func(t *testing.T) {
		var calls []string
		dispatcher := event.NewEventDispatcher()
		h := newRecordingHandler("h", &calls)
		dispatcher.Register("E", h)
		dispatcher.Register("E", h)

		require.NoError(t, dispatcher.Notify(ctx, testEvent{name: "E"}))
		assert.Equal(t, []string{"h", "h"}, calls)
	})

	t.Run("it should only call handlers of the event name", func(t *testing.T) {
		var calls []string
		dispatcher := event.NewEventDispatcher()
		dispatcher.Register("E", newRecordingHandler("e", &calls))
		dispatcher.Register("F", newRecordingHandler("f", &calls))

		require.NoError(t, dispatcher.Notify(ctx, testEvent{name: "F"}))
		assert.Equal(t, []string{"f"}, calls)
	})

	t.Run("it should do nothing without handlers", func(t *testing.T) {
		dispatcher := event.NewEventDispatcher()

		assert.NoError(t, dispatcher.Notify(ctx, testEvent{name: "Nobody"}))
		assert.Empty(t, dispatcher.EventHandlers())
	})

	t.Run("it should stop at the first failing handler", func(t *testing.T) {
		var calls []string
		boom := errors.New("boom")
		dispatcher := event.NewEventDispatcher()
		failing := newRecordingHandler("h2", &calls)
		failing.err = boom

		dispatcher.Register("E", newRecordingHandler("h1", &calls))
		dispatcher.Register("E", failing)
		dispatcher.Register("E", newRecordingHandler("h3", &calls))

		err := dispatcher.Notify(ctx, testEvent{name: "E"})

		assert.Equal(t, boom, err)
		assert.Equal(t, []string{"h1", "h2"}, calls)
	})

	t.Run("it should pass the context through", func(t *testing.T) {
		type key struct{}
		ctx := context.WithValue(context.Background(), key{}, "value")
		h := new(mockHandler)
		h.On("Handle", mock.MatchedBy(func(c context.Context) bool {
			return c.Value(key{}) == "value"
		}), mock.Anything).Return(nil).Once()

		dispatcher := event.NewEventDispatcher()
		dispatcher.Register("E", h)

		require.NoError(t, dispatcher.Notify(ctx, testEvent{name: "E"}))
		h.AssertExpectations(t)
	})

	t.Run("it should finish the current round when a handler is unregistered during it", func(t *testing.T) {
		var calls []string
		dispatcher := event.NewEventDispatcher()
		leaving := newRecordingHandler("leaving", &calls)
		remover := handlerFunc(func(ctx context.Context, e domain.Event) error {
			calls = append(calls, "remover")
			dispatcher.Unregister("E", leaving)
			return nil
		})
		last := newRecordingHandler("last", &calls)

		dispatcher.Register("E", leaving)
		dispatcher.Register("E", remover)
		dispatcher.Register("E", last)

		require.NoError(t, dispatcher.Notify(ctx, testEvent{name: "E"}))
		assert.Equal(t, []string{"leaving", "remover", "last"}, calls)

		calls = nil
		require.NoError(t, dispatcher.Notify(ctx, testEvent{name: "E"}))
		assert.Equal(t, []string{"remover", "last"}, calls)
	})
}

func TestUnregister(t *testing.T) {
	ctx := context.Background()

	t.Run("it should remove only the first matching registration", func(t *testing.T) {
		var calls []string
		dispatcher := event.NewEventDispatcher()
		a := newRecordingHandler("a", &calls)
		b := newRecordingHandler("b", &calls)
		dispatcher.Register("E", a)
		dispatcher.Register("E", b)
		dispatcher.Register("E", a)

		dispatcher.Unregister("E", a)

		require.NoError(t, dispatcher.Notify(ctx, testEvent{name: "E"}))
		assert.Equal(t, []string{"b", "a"}, calls)
	})

	t.Run("it should match by identity, not by value", func(t *testing.T) {
		var calls []string
		dispatcher := event.NewEventDispatcher()
		dispatcher.Register("E", newRecordingHandler("a", &calls))

		dispatcher.Unregister("E", newRecordingHandler("a", &calls))

		assert.Len(t, dispatcher.EventHandlers()["E"], 1)
	})

	t.Run("it should ignore unknown names and handlers", func(t *testing.T) {
		var calls []string
		dispatcher := event.NewEventDispatcher()
		a := newRecordingHandler("a", &calls)
		dispatcher.Register("E", a)

		assert.NotPanics(t, func() {
			dispatcher.Unregister("Unknown", a)
			dispatcher.Unregister("E", newRecordingHandler("b", &calls))
			dispatcher.Unregister("E", nil)
		})
		assert.Len(t, dispatcher.EventHandlers()["E"], 1)
	})

	t.Run("it should not panic on non comparable handlers", func(t *testing.T) {
		var calls []string
		dispatcher := event.NewEventDispatcher()
		fn := handlerFunc(func(context.Context, domain.Event) error {
			calls = append(calls, "fn")
			return nil
		})
		dispatcher.Register("E", fn)

		assert.NotPanics(t, func() { dispatcher.Unregister("E", fn) })

		require.NoError(t, dispatcher.Notify(ctx, testEvent{name: "E"}))
		assert.Equal(t, []string{"fn"}, calls)
	})

	t.Run("it should unregister all handlers", func(t *testing.T) {
		var calls []string
		dispatcher := event.NewEventDispatcher()
		dispatcher.Register("E", newRecordingHandler("a", &calls))
		dispatcher.Register("F", newRecordingHandler("b", &calls))

		dispatcher.UnregisterAll()

		assert.Empty(t, dispatcher.EventHandlers())
		require.NoError(t, dispatcher.Notify(ctx, testEvent{name: "E"}))
		require.NoError(t, dispatcher.Notify(ctx, testEvent{name: "F"}))
		assert.Empty(t, calls)
	})
}

func TestCustomerEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("it should notify the handler when a customer is created", func(t *testing.T) {
		dispatcher := event.NewEventDispatcher()
		h := new(mockHandler)
		dispatcher.Register("CustomerCreatedEvent", h)

		createdEvent := customer.NewCreatedEvent(newCustomer(t, "Customer X"))
		h.On("Handle", ctx, createdEvent).Return(nil).Once()

		require.NoError(t, dispatcher.Notify(ctx, createdEvent))

		h.AssertExpectations(t)
		h.AssertNumberOfCalls(t, "Handle", 1)
		assert.Equal(t, "Customer X", createdEvent.Customer.Name())
	})

	t.Run("it should notify all handlers when an address has changed", func(t *testing.T) {
		var calls []string
		dispatcher := event.NewEventDispatcher()
		a := newRecordingHandler("A", &calls)
		b := newRecordingHandler("B", &calls)
		dispatcher.Register("AddressChangedEvent", a)
		dispatcher.Register("AddressChangedEvent", b)

		c := newCustomer(t, "Customer X")
		address, err := customer.NewAddress("Street 1", 1, "Zipcode 1", "City 1")
		require.NoError(t, err)
		require.NoError(t, c.ChangeAddress(address))

		changedEvent := customer.NewAddressChangedEvent(c)
		require.NoError(t, dispatcher.Notify(ctx, changedEvent))

		assert.Equal(t, []string{"A", "B"}, calls)
		require.Len(t, a.events, 1)
		require.Len(t, b.events, 1)
		assert.Equal(t, a.events[0], b.events[0])

		got := b.events[0].(customer.AddressChangedEvent)
		assert.Same(t, c, got.Customer)
		assert.Equal(t, address, got.Customer.Address())
	})
}

// legacyCustomerCreated shares its name with customer.CreatedEvent but is
// an unrelated type.
type legacyCustomerCreated struct{}

func (legacyCustomerCreated) EventName() string     { return customer.CreatedEventName }
func (legacyCustomerCreated) OccurredAt() time.Time { return time.Time{} }

func TestNameBasedLookup(t *testing.T) {
	ctx := context.Background()

	t.Run("it should route unrelated types sharing a name to the same handlers", func(t *testing.T) {
		var calls []string
		dispatcher := event.NewEventDispatcher()
		h := newRecordingHandler("h", &calls)
		dispatcher.Register(customer.CreatedEventName, h)

		require.NoError(t, dispatcher.Notify(ctx, customer.NewCreatedEvent(newCustomer(t, "Customer X"))))
		require.NoError(t, dispatcher.Notify(ctx, legacyCustomerCreated{}))

		require.Len(t, h.events, 2)
		assert.IsType(t, customer.CreatedEvent{}, h.events[0])
		assert.IsType(t, legacyCustomerCreated{}, h.events[1])
	})

	t.Run("it should skip a foreign type in a typed handler", func(t *testing.T) {
		var names, calls []string
		dispatcher := event.NewEventDispatcher()
		dispatcher.Register(customer.CreatedEventName, event.NewTypedHandler(
			func(_ context.Context, e customer.CreatedEvent) error {
				names = append(names, e.Customer.Name())
				return nil
			}))
		after := newRecordingHandler("after", &calls)
		dispatcher.Register(customer.CreatedEventName, after)

		require.NoError(t, dispatcher.Notify(ctx, customer.NewCreatedEvent(newCustomer(t, "Customer X"))))
		assert.Equal(t, []string{"Customer X"}, names)

		require.NoError(t, dispatcher.Notify(ctx, legacyCustomerCreated{}))
		assert.Len(t, names, 1)
		assert.Equal(t, []string{"after", "after"}, calls)
		assert.IsType(t, legacyCustomerCreated{}, after.events[1])
	})
}
