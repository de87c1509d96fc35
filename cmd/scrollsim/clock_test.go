package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickClock(t *testing.T) {
	base := time.Unix(100, 0)
	offsets := []time.Duration{0, 17 * time.Millisecond, 55 * time.Millisecond, 55 * time.Millisecond}
	i := 0
	now := func() time.Time {
		at := base.Add(offsets[i])
		i++
		return at
	}

	t.Run("measured", func(t *testing.T) {
		c := newTickClock(20*time.Millisecond, false, now)
		assert.Equal(t, 20*time.Millisecond, c.Elapsed(), "first frame has nothing to measure against")
		assert.Equal(t, 17*time.Millisecond, c.Elapsed())
		assert.Equal(t, 38*time.Millisecond, c.Elapsed())
		assert.Zero(t, c.Elapsed())
	})

	t.Run("deterministic", func(t *testing.T) {
		c := newTickClock(20*time.Millisecond, true, func() time.Time {
			t.Fatal("a fixed clock does not read the time")
			return time.Time{}
		})
		for range 3 {
			assert.Equal(t, 20*time.Millisecond, c.Elapsed())
		}
	})
}
