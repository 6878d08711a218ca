package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache is a best-effort byte cache in front of the dashboard reads.
// A nil *Cache is valid and disables caching, so callers never branch
// on configuration.
type Cache struct {
	rdb *redis.Client
}

func New(addr string) *Cache {
	if addr == "" {
		return nil
	}
	return &Cache{rdb: redis.NewClient(&redis.Options{Addr: addr})}
}

func (c *Cache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.rdb.Ping(ctx).Err()
}

// Get returns the cached value, or false on miss or any redis error.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (c *Cache) Set(ctx context.Context, key string, val []byte, ttl time.Duration) {
	if c == nil {
		return
	}
	c.rdb.Set(ctx, key, val, ttl)
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	c.rdb.Del(ctx, keys...)
}
