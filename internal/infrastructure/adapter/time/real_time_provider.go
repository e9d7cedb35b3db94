package time

import (
	"time"

	"github.com/paywise/paywise-api/internal/domain/port/core"
)

// RealTimeProvider reads the wall clock, normalised to UTC
type RealTimeProvider struct{}

func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{}
}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

func (p *RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}
