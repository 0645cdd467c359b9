package bag

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStorage keeps the bag in Redis so the same bag can follow a user
// across machines. The payload is the same JSON array FileStorage writes.
type RedisStorage struct {
	client *redis.Client
	key    string
}

// NewRedisStorage scopes the bag under the given owner, typically a user or
// session id.
func NewRedisStorage(client *redis.Client, scope string) *RedisStorage {
	return &RedisStorage{
		client: client,
		key:    fmt.Sprintf("bag:%s:%s", scope, StorageKey),
	}
}

func (r *RedisStorage) Load(ctx context.Context) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return data, nil
}

func (r *RedisStorage) Save(ctx context.Context, data []byte) error {
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}
