package notify

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisPublisher_UnreachableServer(t *testing.T) {
	client := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	pub := NewRedisPublisher(client, "parking-events")
	assert.Equal(t, "redis", pub.Name())

	err := pub.Publish(context.Background(), Message{Room: "zone-Z1", Event: EventSlotUpdate, Data: "x"})
	assert.ErrorIs(t, err, ErrPublish)
}

func TestRedisPublisher_EncodeError(t *testing.T) {
	pub := NewRedisPublisher(goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1"}), "parking-events")

	err := pub.Publish(context.Background(), Message{Event: EventSlotUpdate, Data: make(chan int)})
	assert.ErrorIs(t, err, ErrEncode)
}
