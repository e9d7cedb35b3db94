package events

import (
	"context"

	"github.com/paywise/paywise-api/internal/domain/port/core"
)

// NoopPublisher drops every event; used when Redis is disabled
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that discards events
func NewNoopPublisher() core.EventPublisher { return NoopPublisher{} }

// Publish does nothing
func (NoopPublisher) Publish(context.Context, string, string, any) error { return nil }
