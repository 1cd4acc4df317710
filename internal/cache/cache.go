// Package cache provides the best-effort key/value cache used for post
// snapshots.
//
// The cache is advisory only: the store remains the sole source of truth,
// and every caller is expected to swallow cache errors and fall back to
// store-only behavior. Entries carry no TTL; posts are immutable in this
// API, so a stale entry cannot exist; any future post-update feature must
// add explicit invalidation here first.
package cache

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// ErrMiss indicates the key is not present in the cache.
var ErrMiss = errors.New("cache miss")

// Cache is the minimal key/value surface the services need. Implemented by
// Redis in production and by in-memory fakes in tests.
type Cache interface {
	// Get returns the value for key, or ErrMiss if absent.
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key with no expiry.
	Set(ctx context.Context, key, value string) error
	Ping(ctx context.Context) error
	Close() error
}

// Config holds Redis connection settings
type Config struct {
	Addr     string
	Password string
	DB       int
}

type redisCache struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed Cache. The connection is lazy; use Ping
// to verify reachability at startup. An unreachable cache is not fatal;
// callers degrade to store-only reads.
func NewRedis(cfg Config) Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrMiss
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (c *redisCache) Set(ctx context.Context, key, value string) error {
	return c.client.Set(ctx, key, value, 0).Err()
}

func (c *redisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
