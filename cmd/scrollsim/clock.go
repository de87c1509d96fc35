package main

import "time"

// tickClock yields the elapsed time handed to the scheduler each frame. It
// measures the monotonic time since the previous frame, or returns the
// configured tick every time when fixed.
type tickClock struct {
	tick  time.Duration
	fixed bool
	now   func() time.Time
	last  time.Time
}

func newTickClock(tick time.Duration, fixed bool, now func() time.Time) *tickClock {
	if now == nil {
		now = time.Now
	}
	return &tickClock{tick: tick, fixed: fixed, now: now}
}

func (c *tickClock) Elapsed() time.Duration {
	if c.fixed {
		return c.tick
	}
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return c.tick
	}
	dt := now.Sub(c.last)
	c.last = now
	return dt
}
