package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/paywise/paywise-api/internal/domain/port/core"
)

// ViewCache is a JSON-backed Redis cache for read views.
// Every failure is logged and treated as a miss.
type ViewCache struct {
	client goredis.Cmdable
	ttl    time.Duration
	logger core.Logger
}

// NewViewCache creates a ViewCache; a zero ttl keeps keys until they are deleted
func NewViewCache(client goredis.Cmdable, ttl time.Duration, logger core.Logger) *ViewCache {
	return &ViewCache{client: client, ttl: ttl, logger: logger}
}

var _ core.Cache = (*ViewCache)(nil)

// Get loads the JSON stored under key into dest
func (c *ViewCache) Get(ctx context.Context, key string, dest any) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			c.logger.Warn("Cache read failed", map[string]any{"key": key, "error": err.Error()})
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.Warn("Cache entry could not be decoded", map[string]any{"key": key, "error": err.Error()})
		return false
	}
	return true
}

// Set stores value under key as JSON
func (c *ViewCache) Set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("Cache marshal failed", map[string]any{"key": key, "error": err.Error()})
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("Cache write failed", map[string]any{"key": key, "error": err.Error()})
	}
}

// Delete removes the given keys
func (c *ViewCache) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("Cache delete failed", map[string]any{"keys": keys, "error": err.Error()})
	}
}
