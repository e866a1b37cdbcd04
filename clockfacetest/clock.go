// Package clockfacetest provides controllable time for deterministic clock
// tests.
package clockfacetest

import (
	"sync"
	"time"
)

// FakeClock provides controllable time. All methods are safe for concurrent
// use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at t.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{now: t}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Date is shorthand for a UTC instant on 2024-01-01.
func Date(hour, min, sec int, d time.Duration) time.Time {
	return time.Date(2024, 1, 1, hour, min, sec, 0, time.UTC).Add(d)
}
