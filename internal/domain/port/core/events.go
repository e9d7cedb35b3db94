package core

import "context"

// Event streams and types published by the service
const (
	TransactionEventsStream = "transaction.events"
	UserEventsStream        = "user.events"

	EventTransactionCreated = "transaction.created"
	EventUserRegistered     = "user.registered"
)

// EventPublisher publishes domain events to an external stream
type EventPublisher interface {
	Publish(ctx context.Context, stream, eventType string, data any) error
}
