package notify

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// RedisPublisher публикует сообщения в redis pub/sub канал
// Внешние подписчики получают room, event и data в одном JSON документе
type RedisPublisher struct {
	client  goredis.UniversalClient
	channel string
}

// NewRedisPublisher создает publisher для канала channel
func NewRedisPublisher(client goredis.UniversalClient, channel string) *RedisPublisher {
	return &RedisPublisher{
		client:  client,
		channel: channel,
	}
}

func (p *RedisPublisher) Name() string {
	return "redis"
}

// Publish отправляет сообщение в канал
func (p *RedisPublisher) Publish(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, msg.Event, err)
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("%w: channel=%s: %v", ErrPublish, p.channel, err)
	}

	return nil
}
