package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Keys for the read views that are expensive enough to cache. Writes that
// touch sessions or approved talks invalidate them; everything else reads
// straight through to the database.
const (
	KeyAvailableSessions    = "available-sessions:upcoming"
	KeyAvailableSessionsAll = "available-sessions:all"
	KeyScheduleDates        = "schedule-dates"
)

// Cache is a short-TTL JSON cache over Redis. A nil *Cache is a valid no-op
// cache, so callers never branch on whether caching is configured.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(addr string, ttl time.Duration) *Cache {
	if addr == "" {
		return nil
	}
	return &Cache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: ttl,
	}
}

// NewWithClient wraps an existing client; used by tests running miniredis.
func NewWithClient(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: client, ttl: ttl}
}

// Get unmarshals the cached value for key into dest and reports whether a
// value was present. Cache failures are treated as misses.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil {
		return false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("cache get %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		log.Printf("cache decode %s: %v", key, err)
		return false
	}
	return true
}

// Set stores value under key for the configured TTL, best-effort.
func (c *Cache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("cache encode %s: %v", key, err)
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
}

// Invalidate drops the given keys, best-effort.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("cache invalidate %v: %v", keys, err)
	}
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
