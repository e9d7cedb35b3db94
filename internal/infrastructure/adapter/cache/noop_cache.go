package cache

import (
	"context"

	"github.com/paywise/paywise-api/internal/domain/port/core"
)

// NoopCache never stores anything; used when Redis is disabled
type NoopCache struct{}

// NewNoopCache creates a cache that always misses
func NewNoopCache() core.Cache { return NoopCache{} }

func (NoopCache) Get(context.Context, string, any) bool { return false }
func (NoopCache) Set(context.Context, string, any)      {}
func (NoopCache) Delete(context.Context, ...string)     {}
