package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/paywise/paywise-api/internal/domain/port/core"
)

// Event is the envelope written to a stream entry
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// Publisher appends events to Redis streams
type Publisher struct {
	client       redis.Cmdable
	maxLen       int64
	timeProvider core.TimeProvider
}

// NewPublisher creates a stream publisher; maxLen > 0 caps each stream approximately
func NewPublisher(client redis.Cmdable, maxLen int64, timeProvider core.TimeProvider) *Publisher {
	return &Publisher{client: client, maxLen: maxLen, timeProvider: timeProvider}
}

var _ core.EventPublisher = (*Publisher)(nil)

// Publish appends one event to stream
func (p *Publisher) Publish(ctx context.Context, stream, eventType string, data any) error {
	event := Event{
		Type:      eventType,
		Timestamp: p.timeProvider.Now(),
		Data:      data,
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{
			"type":  eventType,
			"event": eventJSON,
		},
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}

	if _, err := p.client.XAdd(ctx, args).Result(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}
