package engine

import "time"

// TimeProvider abstracts the wall clock so the time controller can be
// driven by a controllable source in tests.
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock with monotonic readings.
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates the production time provider.
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading.
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
