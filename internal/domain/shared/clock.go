package shared

import "time"

// Clock is an abstraction for time operations, allowing time to be mocked in tests
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the actual system time
type RealClock struct{}

// Now returns the current system time in UTC
func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// NewRealClock creates a RealClock instance
func NewRealClock() Clock {
	return RealClock{}
}

// FixedClock always reports the same instant until moved with Advance
type FixedClock struct {
	CurrentTime time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{CurrentTime: t}
}

func (c *FixedClock) Now() time.Time {
	return c.CurrentTime
}

func (c *FixedClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}
