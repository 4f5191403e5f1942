package listeners

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SeaCloudHub/storefront/domain"
	"github.com/SeaCloudHub/storefront/domain/pubsub"
)

// PublishListener forwards any event it is registered for to a pub/sub
// channel as a JSON envelope.
type PublishListener struct {
	pubsubService pubsub.Service
	channel       string
}

func NewPublishListener(pubsubService pubsub.Service, channel string) *PublishListener {
	return &PublishListener{pubsubService: pubsubService, channel: channel}
}

func (l *PublishListener) Handle(ctx context.Context, event domain.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode %s: %w", event.EventName(), err)
	}

	payload, err := json.Marshal(pubsub.Envelope{
		Name:       event.EventName(),
		OccurredAt: event.OccurredAt(),
		Data:       data,
	})
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}

	if err := l.pubsubService.Publish(ctx, l.channel, string(payload)); err != nil {
		return fmt.Errorf("publish %s: %w", event.EventName(), err)
	}

	return nil
}
