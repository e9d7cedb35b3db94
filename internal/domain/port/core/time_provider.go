package core

import (
	"time"
)

// Duration is elapsed time as seen by the domain
type Duration time.Duration

// Std converts to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// TimeProvider is the clock used for ledger timestamps and query timings.
// Implementations return UTC so monthly spending buckets do not depend on the host zone.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) Duration
}
