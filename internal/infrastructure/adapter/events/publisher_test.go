package events

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paywise/paywise-api/internal/domain/port/core"
	coremocks "github.com/paywise/paywise-api/mocks/port/core"
)

func fixedClock(t *testing.T, now time.Time) core.TimeProvider {
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(now).Maybe()
	return clock
}

func TestPublisher_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	p := NewPublisher(client, 100, fixedClock(t, time.Now()))
	err := p.Publish(context.Background(), core.TransactionEventsStream, core.EventTransactionCreated, map[string]any{"id": "t-1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish event")
}

func TestPublisher_MarshalFailure(t *testing.T) {
	p := NewPublisher(nil, 0, fixedClock(t, time.Now()))

	err := p.Publish(context.Background(), "s", "e", make(chan int))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal event")
}

func TestPublisher_Redis(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set, skipping redis test")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	ctx := context.Background()
	stream := "test.events"
	require.NoError(t, client.Del(ctx, stream).Err())

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	p := NewPublisher(client, 10, fixedClock(t, now))
	require.NoError(t, p.Publish(ctx, stream, "thing.happened", map[string]any{"id": "x"}))

	entries, err := client.XRange(ctx, stream, "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "thing.happened", entries[0].Values["type"])

	var event Event
	require.NoError(t, json.Unmarshal([]byte(entries[0].Values["event"].(string)), &event))
	assert.Equal(t, "thing.happened", event.Type)
	assert.True(t, now.Equal(event.Timestamp))
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NewNoopPublisher().Publish(context.Background(), "s", "e", nil))
}
