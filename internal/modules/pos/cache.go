package pos

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyKeyTTL = 24 * time.Hour

// IdempotencyStore remembers checkout request IDs so a resubmitted request
// cannot sell the same cart twice.
type IdempotencyStore interface {
	// SetIdempotency claims a key, returning false if it was already claimed.
	SetIdempotency(ctx context.Context, key string) (bool, error)
}

type redisIdempotencyStore struct{ client *redis.Client }

// NewRedisIdempotencyStore creates a Redis-backed idempotency store.
func NewRedisIdempotencyStore(client *redis.Client) IdempotencyStore {
	return &redisIdempotencyStore{client: client}
}

func (s *redisIdempotencyStore) SetIdempotency(ctx context.Context, key string) (bool, error) {
	return s.client.SetNX(ctx, "idempotency:"+key, 1, idempotencyKeyTTL).Result()
}

type nopIdempotencyStore struct{}

// NewNopIdempotencyStore creates a store that claims every key. Used when
// Redis is not configured.
func NewNopIdempotencyStore() IdempotencyStore { return nopIdempotencyStore{} }

func (nopIdempotencyStore) SetIdempotency(ctx context.Context, key string) (bool, error) {
	return true, nil
}
