package pubsub

import (
	"context"
	"encoding/json"
	"time"
)

type Message struct {
	Channel string
	Payload string
}

// Envelope is the wire form of a domain event published on a channel.
type Envelope struct {
	Name       string          `json:"name"`
	OccurredAt time.Time       `json:"occurred_at"`
	Data       json.RawMessage `json:"data"`
}

type PubSub interface {
	ReceiveMessage(ctx context.Context) (Message, error)
	Close() error
}

type Service interface {
	Publish(ctx context.Context, channel string, message interface{}) error
	Subscribe(ctx context.Context, channel string) (PubSub, error)
}
