// Package ratecache is an optional go-redis v9 cache for the
// rating-search engine's percentile-initialization path (spec.md
// §4.9): percentile init is a deterministic function of the baseline
// league's season-end stats, so repeated search restarts against the
// same baseline can skip recomputing the empirical CDF. Mirrors the
// teacher's internal/services.CacheService Get/Set/JSON pattern.
package ratecache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Cache wraps a redis client. A nil *Cache (returned by Connect when no
// URL is configured, or when the initial ping fails) is safe to call
// Get/Set on: every method is a no-op cache miss in that case, so
// callers fall back to computing percentile init directly.
type Cache struct {
	client *redis.Client
}

// Connect parses redisURL and pings it once. If redisURL is empty it
// returns a nil *Cache silently; if the URL does not parse or the ping
// fails, it returns a nil *Cache and logs a warning instead of an
// error: Redis is an optional speedup here, not a dependency
// (spec.md §4.9's percentile init works, just slower, without it).
func Connect(redisURL string) *Cache {
	if redisURL == "" {
		return nil
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		logrus.WithError(err).Warn("ratecache: invalid REDIS_URL, running uncached")
		return nil
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logrus.WithError(err).Warn("ratecache: redis ping failed, running uncached")
		return nil
	}
	return &Cache{client: client}
}

// Get unmarshals the cached value for key into dest, reporting whether
// it was found.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if c == nil {
		return false, nil
	}
	data, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("ratecache: get %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, fmt.Errorf("ratecache: unmarshal %q: %w", key, err)
	}
	return true, nil
}

// Set stores value under key with the given expiration; a zero
// expiration means no expiry.
func (c *Cache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if c == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("ratecache: marshal %q: %w", key, err)
	}
	if err := c.client.Set(ctx, key, data, expiration).Err(); err != nil {
		return fmt.Errorf("ratecache: set %q: %w", key, err)
	}
	return nil
}

// PercentileInitKey derives a cache key from a hash of the baseline's
// season-end stats, so the same baseline always hits the same key.
func PercentileInitKey(baselineStatsHash uint64) string {
	return fmt.Sprintf("percentile_init:%x", baselineStatsHash)
}

// Close releases the underlying connection, if any.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
