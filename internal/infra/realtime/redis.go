package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"reservas/internal/domain/reservation"

	"github.com/go-redis/redis/v8"
)

type redisPublishClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisPublisher mirrors new reservations on a pub/sub channel.
type RedisPublisher struct {
	client  redisPublishClient
	closer  func() error
	channel string
}

func NewRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
}

func NewRedisPublisher(client redisPublishClient, channel string) *RedisPublisher {
	p := &RedisPublisher{client: client, channel: channel}
	if c, ok := client.(interface{ Close() error }); ok {
		p.closer = c.Close
	}
	return p
}

func (p *RedisPublisher) Name() string {
	return "redis"
}

func (p *RedisPublisher) Send(ctx context.Context, created reservation.Created) error {
	body, err := json.Marshal(created)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.client.Publish(ctx, p.channel, body).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", p.channel, err)
	}
	return nil
}

func (p *RedisPublisher) Close() {
	if p.closer != nil {
		_ = p.closer()
	}
}
