package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores entries in Redis, for deployments where several serve
// instances share one result cache. Expiration is delegated to Redis TTLs.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// RedisOption customizes a RedisCache.
type RedisOption func(*RedisCache)

// WithPrefix sets the key prefix. The default is "lexway:".
func WithPrefix(prefix string) RedisOption {
	return func(c *RedisCache) { c.prefix = prefix }
}

// NewRedisCache connects to Redis at addr and verifies the connection with
// a ping before returning.
func NewRedisCache(ctx context.Context, addr, password string, db int, opts ...RedisOption) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	c := &RedisCache{client: client, prefix: "lexway:"}
	for _, opt := range opts {
		opt(c)
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return c, nil
}

// NewRedisCacheFromClient wraps an existing client, mainly for tests.
func NewRedisCacheFromClient(client *redis.Client, opts ...RedisOption) Cache {
	c := &RedisCache{client: client, prefix: "lexway:"}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get retrieves a value from Redis.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores a value in Redis. A ttl of zero stores it without expiration.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.client.Set(ctx, c.prefix+key, data, ttl).Err()
}

// Delete removes a key from Redis.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.prefix+key).Err()
}

// Close closes the underlying client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Ensure RedisCache implements Cache.
var _ Cache = (*RedisCache)(nil)
