// Copyright (c) 2026 Apollo. All rights reserved.

package redis

import (
	stdctx "context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by [Cache.GetJSON] when the key is absent or expired.
var ErrCacheMiss = errors.New("redis: cache miss")

// Cache stores JSON documents under prefixed keys with a fixed TTL.
type Cache struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewCache wraps a client (or any [redis.Cmdable]) as a JSON cache.
func NewCache(client redis.Cmdable, prefix string, ttl time.Duration) *Cache {
	return &Cache{client: client, prefix: prefix, ttl: ttl}
}

// GetJSON decodes the cached document for key into target.
func (cache *Cache) GetJSON(context stdctx.Context, key string, target any) error {
	raw, err := cache.client.Get(context, cache.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return fmt.Errorf("redis_cache_get_failed: %w", err)
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("redis_cache_decode_failed: %w", err)
	}
	return nil
}

// SetJSON encodes value and stores it under key with the cache TTL.
func (cache *Cache) SetJSON(context stdctx.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("redis_cache_encode_failed: %w", err)
	}

	if err := cache.client.Set(context, cache.prefix+key, raw, cache.ttl).Err(); err != nil {
		return fmt.Errorf("redis_cache_set_failed: %w", err)
	}
	return nil
}
