// Package session resolves opaque session tokens to user identities. Token
// issuance and credential checks live in an external identity service; this
// package only reads what that service wrote.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is the identity attached to a validated token.
type Session struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Store looks sessions up by token.
type Store interface {
	Get(ctx context.Context, token string) (*Session, error)
}

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	data, err := r.client.Get(ctx, sessionKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session failed: %w", err)
	}
	return &sess, nil
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}
