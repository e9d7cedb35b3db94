package security

import (
	"github.com/google/uuid"

	"github.com/paywise/paywise-api/internal/domain/port/core"
)

// UUIDGenerator produces random (v4) UUIDs
type UUIDGenerator struct{}

// NewUUIDGenerator creates an id generator
func NewUUIDGenerator() core.IDGenerator {
	return UUIDGenerator{}
}

// NewID returns a new UUID string
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
