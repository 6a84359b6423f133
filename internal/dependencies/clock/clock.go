// Package clock abstracts wall time so game durations and result
// timestamps can be pinned in tests.
package clock

import "time"

// Clock reports the current time
type Clock interface {
	Now() time.Time
}

// SystemClock reads the host clock, normalised to UTC
type SystemClock struct{}

// New creates a new SystemClock
func New() SystemClock {
	return SystemClock{}
}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
