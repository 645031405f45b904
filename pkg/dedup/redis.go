package dedup

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "dedup:"

// RedisDeduper shares the dedup window across replicas via SET NX EX.
type RedisDeduper struct {
	client *redis.Client
	window time.Duration
}

var _ Deduper = (*RedisDeduper)(nil)

// NewRedisDeduper wraps an existing client. window <= 0 uses DefaultWindow.
func NewRedisDeduper(client *redis.Client, window time.Duration) *RedisDeduper {
	if window <= 0 {
		window = DefaultWindow
	}
	return &RedisDeduper{client: client, window: window}
}

// DialRedis connects to redis and verifies the connection.
func DialRedis(addr string, window time.Duration) (*RedisDeduper, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return NewRedisDeduper(client, window), nil
}

// Seen atomically marks the key and reports whether it already existed.
func (d *RedisDeduper) Seen(ctx context.Context, key string) (bool, error) {
	set, err := d.client.SetNX(ctx, keyPrefix+key, 1, d.window).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark dedup key: %w", err)
	}
	return !set, nil
}

// Close closes the underlying connection.
func (d *RedisDeduper) Close() error {
	return d.client.Close()
}
