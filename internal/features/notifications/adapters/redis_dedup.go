package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisDedupStore implements the DedupStore interface using Redis SETNX
// with a TTL, so replayed webhook deliveries are suppressed without any
// long-term persistence.
type RedisDedupStore struct {
	client *redis.Client
}

// NewRedisDedupStore creates a new Redis-backed dedup store.
// The redisURL should be in the format: redis://[:password@]host[:port][/database]
func NewRedisDedupStore(redisURL string) (*RedisDedupStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	return &RedisDedupStore{client: redis.NewClient(opts)}, nil
}

// MarkSeen records the delivery id and reports whether it was new.
func (r *RedisDedupStore) MarkSeen(ctx context.Context, id string, ttl time.Duration) (bool, error) {
	key := "riskgate:notification:" + id
	first, err := r.client.SetNX(ctx, key, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark notification %s: %w", id, err)
	}
	return first, nil
}

// Close closes the Redis connection.
func (r *RedisDedupStore) Close() error {
	return r.client.Close()
}
