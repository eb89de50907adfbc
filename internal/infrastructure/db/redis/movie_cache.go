package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultCacheTTL = 5 * time.Minute
	moviePattern    = "movies:*"
	scanBatch       = 100
)

// MovieCache is a JSON cache-aside store for movie reads.
// Key format: movies:<kind>[:<name>]
type MovieCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMovieCache wraps client. A non-positive ttl selects DefaultCacheTTL.
func NewMovieCache(client *redis.Client, ttl time.Duration) *MovieCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &MovieCache{client: client, ttl: ttl}
}

// Get decodes the value at key into dst. It reports false on a miss.
func (c *MovieCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return true, nil
}

func (c *MovieCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

// Flush deletes every movies:* key.
func (c *MovieCache) Flush(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, moviePattern, scanBatch).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
