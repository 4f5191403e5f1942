package event

import (
	"context"

	"github.com/SeaCloudHub/storefront/domain"
)

// TypedHandler adapts a callback over a concrete event type to
// domain.EventHandler. Registration is by name, so another type sharing that
// name can still reach it; such events are ignored.
type TypedHandler[T domain.Event] struct {
	fn func(ctx context.Context, event T) error
}

func NewTypedHandler[T domain.Event](fn func(ctx context.Context, event T) error) *TypedHandler[T] {
	return &TypedHandler[T]{fn: fn}
}

func (h *TypedHandler[T]) Handle(ctx context.Context, event domain.Event) error {
	typed, ok := event.(T)
	if !ok {
		return nil
	}

	return h.fn(ctx, typed)
}
