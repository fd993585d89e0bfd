package core

import "time"

// Clock tracks wall-clock elapsed time and per-frame deltas for animation.
// It relies on Go's monotonic clock reading inside time.Time, so deltas never
// go negative even if the system clock is adjusted.
type Clock struct {
	start time.Time
	last  time.Time
}

// NewClock creates a clock anchored at the current instant.
func NewClock() *Clock {
	now := time.Now()
	return &Clock{start: now, last: now}
}

// Elapsed returns the time since the clock was created or last reset.
func (c *Clock) Elapsed() time.Duration {
	return time.Since(c.start)
}

// Tick returns the time since the previous Tick (or NewClock/Reset) and
// advances the reference point. Successive calls partition wall-clock time
// into contiguous, non-overlapping deltas.
func (c *Clock) Tick() time.Duration {
	now := time.Now()
	delta := now.Sub(c.last)
	c.last = now
	return delta
}

// Reset re-anchors the clock so Elapsed starts from zero again.
func (c *Clock) Reset() {
	now := time.Now()
	c.start = now
	c.last = now
}
