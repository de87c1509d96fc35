package input

import (
	"sync"
	"time"
)

// Latch turns press-only key events, such as those of a terminal, into a
// held/released sample. A button reads as held until Hold has passed since
// its last Press; keyboard auto-repeat keeps refreshing it while the key is
// down. Press may be called from another goroutine than Sample.
type Latch struct {
	Hold time.Duration

	mu    sync.Mutex
	now   func() time.Time
	until [4]time.Time
}

func NewLatch(hold time.Duration, now func() time.Time) *Latch {
	if now == nil {
		now = time.Now
	}
	return &Latch{Hold: hold, now: now}
}

// Press marks btn as held from now on.
func (l *Latch) Press(btn Button) {
	if int(btn) >= len(l.until) {
		return
	}
	l.mu.Lock()
	l.until[btn] = l.now().Add(l.Hold)
	l.mu.Unlock()
}

// Release drops btn right away.
func (l *Latch) Release(btn Button) {
	if int(btn) >= len(l.until) {
		return
	}
	l.mu.Lock()
	l.until[btn] = time.Time{}
	l.mu.Unlock()
}

func (l *Latch) Sample() Buttons {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	var b Buttons
	for i, until := range l.until {
		b = b.Set(Button(i), now.Before(until))
	}
	return b
}
