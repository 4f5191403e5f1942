package domain

import (
	"context"
	"time"
)

// Event is something that happened in the domain. Handlers are looked up by
// EventName, not by the Go type of the event.
type Event interface {
	EventName() string
	OccurredAt() time.Time
}

type EventHandler interface {
	Handle(ctx context.Context, event Event) error
}

type EventDispatcher interface {
	Register(eventName string, handler EventHandler)
	Unregister(eventName string, handler EventHandler)
	UnregisterAll()
	Notify(ctx context.Context, event Event) error
}
