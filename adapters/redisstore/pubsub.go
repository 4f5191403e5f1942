package redisstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SeaCloudHub/storefront/domain/pubsub"
	"github.com/redis/go-redis/v9"
)

type RedisClient struct {
	rdb *redis.Client
}

type RedisPubSub struct {
	rps *redis.PubSub
}

func NewRedisClient(rdb *redis.Client) *RedisClient {
	return &RedisClient{rdb: rdb}
}

func (r *RedisClient) Publish(ctx context.Context, channel string, message interface{}) error {
	return r.rdb.Publish(ctx, channel, message).Err()
}

// Subscribe waits for the subscription to be confirmed, so messages
// published after it returns are not missed.
func (r *RedisClient) Subscribe(ctx context.Context, channel string) (pubsub.PubSub, error) {
	rps := r.rdb.Subscribe(ctx, channel)
	if _, err := rps.Receive(ctx); err != nil {
		_ = rps.Close()
		return nil, fmt.Errorf("subscribe %s: %w", channel, err)
	}

	return &RedisPubSub{rps: rps}, nil
}

func (r *RedisPubSub) ReceiveMessage(ctx context.Context) (pubsub.Message, error) {
	msg, err := r.rps.ReceiveMessage(ctx)
	if err != nil {
		return pubsub.Message{}, err
	}

	return pubsub.Message{
		Channel: msg.Channel,
		Payload: msg.Payload,
	}, nil
}

func (r *RedisPubSub) Close() error {
	return r.rps.Close()
}

// ReceiveEnvelope blocks for the next message on ps and decodes it as a
// published domain event.
func ReceiveEnvelope(ctx context.Context, ps pubsub.PubSub) (pubsub.Envelope, error) {
	msg, err := ps.ReceiveMessage(ctx)
	if err != nil {
		return pubsub.Envelope{}, err
	}

	var envelope pubsub.Envelope
	if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
		return pubsub.Envelope{}, fmt.Errorf("decode envelope from %s: %w", msg.Channel, err)
	}

	return envelope, nil
}
