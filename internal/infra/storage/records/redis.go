package records

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisBackend хранит документы коллекций как строковые ключи redis
// Save выполняется через MULTI/EXEC. Клиент принадлежит вызывающему коду.
type RedisBackend struct {
	client *redis.Client
	prefix string
}

// NewRedisBackend создает новый экземпляр backend
func NewRedisBackend(client *redis.Client, prefix string) *RedisBackend {
	return &RedisBackend{
		client: client,
		prefix: prefix,
	}
}

func (b *RedisBackend) key(name string) string {
	return b.prefix + name
}

// Load читает документ коллекции
func (b *RedisBackend) Load(ctx context.Context, name string) ([]byte, error) {
	data, err := b.client.Get(ctx, b.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Save записывает все документы одной транзакцией MULTI/EXEC
func (b *RedisBackend) Save(ctx context.Context, docs map[string][]byte) error {
	_, err := b.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for name, doc := range docs {
			pipe.Set(ctx, b.key(name), doc, 0)
		}
		return nil
	})
	return err
}

// Close ничего не делает: клиента закрывает владелец
func (b *RedisBackend) Close() error {
	return nil
}
