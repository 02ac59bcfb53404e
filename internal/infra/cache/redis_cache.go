// Package cache holds the read-through response cache in front of the
// serving path and the tag invalidators that clear it.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"pagecast/internal/domain/service"
	"pagecast/internal/errors"

	"github.com/redis/go-redis/v9"
)

const (
	responseKeyPrefix = "pagecast:response:"
	tagKeyPrefix      = "pagecast:tag:"
)

// invalidateTagScript deletes a tag set and every key in it as one atomic step.
var invalidateTagScript = redis.NewScript(`
local keys = redis.call('SMEMBERS', KEYS[1])
for i = 1, #keys, 500 do
	redis.call('DEL', unpack(keys, i, math.min(i + 499, #keys)))
end
redis.call('DEL', KEYS[1])
return #keys
`)

// RedisCache stores serving-path responses in Redis. Each tag is a set of the
// response keys cached under it.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
	now func() time.Time
}

// NewRedisCache wraps an existing client.
func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, ttl: ttl, now: time.Now}
}

// Get returns the cached response for path, or nil on a miss.
func (c *RedisCache) Get(ctx context.Context, path string) (*service.CachedResponse, error) {
	raw, err := c.rdb.Get(ctx, responseKeyPrefix+path).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "redis get")
	}

	var resp service.CachedResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		// A corrupt entry is a miss; drop it.
		c.rdb.Del(ctx, responseKeyPrefix+path)

		return nil, nil
	}

	return &resp, nil
}

// Set caches resp for path and records the key under every tag. The entry
// lives for the configured TTL, cut short by resp.ExpiresAt.
func (c *RedisCache) Set(ctx context.Context, path string, resp *service.CachedResponse, tags ...string) error {
	ttl := c.ttl
	if resp.ExpiresAt != nil {
		remaining := resp.ExpiresAt.Sub(c.now())
		if remaining <= 0 {
			return nil
		}
		if ttl <= 0 || remaining < ttl {
			ttl = remaining
		}
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return errors.Wrap(err, "encode cached response")
	}

	key := responseKeyPrefix + path
	_, err = c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, raw, ttl)
		for _, tag := range tags {
			pipe.SAdd(ctx, tagKeyPrefix+tag, key)
			if c.ttl > 0 {
				pipe.Expire(ctx, tagKeyPrefix+tag, c.ttl)
			}
		}

		return nil
	})

	return errors.Wrap(err, "redis set")
}

// InvalidateTag atomically deletes every response cached under tag, and the
// tag itself.
func (c *RedisCache) InvalidateTag(ctx context.Context, tag string) error {
	err := invalidateTagScript.Run(ctx, c.rdb, []string{tagKeyPrefix + tag}).Err()

	return errors.Wrap(err, "redis invalidate tag")
}

// NoopCache is used when no Redis address is configured. Every lookup misses.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string) (*service.CachedResponse, error) { return nil, nil }

func (NoopCache) Set(context.Context, string, *service.CachedResponse, ...string) error { return nil }

func (NoopCache) InvalidateTag(context.Context, string) error { return nil }
