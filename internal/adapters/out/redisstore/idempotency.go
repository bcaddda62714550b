// Package redisstore implements the idempotency store port on top of Redis.
package redisstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "idempotency:"

// IdempotencyStore reserves checkout idempotency keys in Redis.
// SET NX gives exactly one winner per key across all API instances.
type IdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore creates a store backed by the given Redis client.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Reserve attempts to claim the key for the given time-to-live.
// Returns false when the key was already claimed by an earlier request.
func (s *IdempotencyStore) Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return s.client.SetNX(ctx, keyPrefix+key, 1, ttl).Result()
}

// Release frees a claimed key so a failed checkout can be retried.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, keyPrefix+key).Err()
}
