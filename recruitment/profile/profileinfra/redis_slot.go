package profileinfra

import (
	"context"
	"errors"

	"github.com/Abraxas-365/medjobb/recruitment/profile"
	"github.com/redis/go-redis/v9"
)

// RedisSlot keeps the profile under one Redis key
type RedisSlot struct {
	client *redis.Client
	key    string
}

// NewRedisSlot creates a slot over an existing client
func NewRedisSlot(client *redis.Client, key string) *RedisSlot {
	return &RedisSlot{
		client: client,
		key:    key,
	}
}

// Read gets the key
func (s *RedisSlot) Read(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, profile.ErrSlotEmpty()
		}
		return nil, s.unavailable(err)
	}
	return data, nil
}

// Write sets the key without expiry
func (s *RedisSlot) Write(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return s.unavailable(err)
	}
	return nil
}

// Clear deletes the key
func (s *RedisSlot) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return s.unavailable(err)
	}
	return nil
}

func (s *RedisSlot) unavailable(err error) error {
	return profile.ErrSlotUnavailable().
		WithDetail("key", s.key).
		WithCause(err)
}
