package event

import (
	"context"
	"reflect"

	"github.com/SeaCloudHub/storefront/domain"
)

// EventDispatcher keeps an ordered list of handlers per event name and calls
// them synchronously on Notify. It is not safe for concurrent mutation;
// register everything before sharing it between goroutines.
type EventDispatcher struct {
	handlers map[string][]domain.EventHandler
}

func NewEventDispatcher() *EventDispatcher {
	return &EventDispatcher{
		handlers: make(map[string][]domain.EventHandler),
	}
}

// Register appends handler to the list for eventName. Registering the same
// handler twice makes it run twice per notification.
func (ed *EventDispatcher) Register(eventName string, handler domain.EventHandler) {
	if ed.handlers == nil {
		ed.handlers = make(map[string][]domain.EventHandler)
	}
	ed.handlers[eventName] = append(ed.handlers[eventName], handler)
}

// Unregister removes the first registration of handler for eventName.
func (ed *EventDispatcher) Unregister(eventName string, handler domain.EventHandler) {
	handlers, ok := ed.handlers[eventName]
	if !ok {
		return
	}

	for i, h := range handlers {
		if sameHandler(h, handler) {
			ed.handlers[eventName] = append(handlers[:i:i], handlers[i+1:]...)
			return
		}
	}
}

func (ed *EventDispatcher) UnregisterAll() {
	ed.handlers = make(map[string][]domain.EventHandler)
}

// Notify calls every handler registered under event.EventName() in
// registration order. The first handler error stops the chain and is
// returned as is.
func (ed *EventDispatcher) Notify(ctx context.Context, event domain.Event) error {
	handlers, ok := ed.handlers[event.EventName()]
	if !ok {
		return nil
	}

	for _, handler := range handlers {
		if err := handler.Handle(ctx, event); err != nil {
			return err
		}
	}

	return nil
}

// EventHandlers exposes the live registry. Do not mutate the returned map.
func (ed *EventDispatcher) EventHandlers() map[string][]domain.EventHandler {
	return ed.handlers
}

// comparing interfaces holding funcs or maps panics
func sameHandler(a, b domain.EventHandler) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}

	return a == b
}
