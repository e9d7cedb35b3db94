package core

import "context"

// Cache stores JSON-serialisable read views.
// Implementations treat every failure as a miss; callers never see cache errors.
type Cache interface {
	// Get loads the value stored under key into dest and reports whether it was found
	Get(ctx context.Context, key string, dest any) bool
	// Set stores value under key
	Set(ctx context.Context, key string, value any)
	// Delete removes the given keys
	Delete(ctx context.Context, keys ...string)
}
