package input

import "time"

// DefaultDoubleClick is the longest gap between two presses of the click
// button that still counts as a double click.
const DefaultDoubleClick = 350 * time.Millisecond

// Events are derived once per tick from the current and previous snapshot.
type Events struct {
	// Pressed holds the rising edges of this tick.
	Pressed Buttons

	// SingleClick and DoubleClick refer to the click button (X). A single
	// click is only reported once the double click window has passed.
	SingleClick bool
	DoubleClick bool
}

// Gestures tells single from double clicks on the X button. Timestamps are
// durations on a monotonic clock owned by the caller, so both decisions
// depend on elapsed time and not on the number of ticks.
type Gestures struct {
	Window time.Duration

	last    time.Duration
	hasLast bool
	pending bool
}

func NewGestures(window time.Duration) *Gestures {
	if window <= 0 {
		window = DefaultDoubleClick
	}
	return &Gestures{Window: window}
}

// Detect returns the events for one tick.
func (g *Gestures) Detect(now time.Duration, cur, prev Buttons) Events {
	ev := Events{Pressed: Edges(cur, prev)}

	// an expired click is reported before a new press is looked at
	if g.pending && g.hasLast && now-g.last > g.Window {
		g.pending = false
		g.hasLast = false
		ev.SingleClick = true
	}

	if ev.Pressed.X {
		if g.hasLast && now-g.last <= g.Window {
			g.pending = false
			g.hasLast = false
			ev.DoubleClick = true
		} else {
			g.last = now
			g.hasLast = true
			g.pending = true
		}
	}

	return ev
}

// Reset forgets any pending click.
func (g *Gestures) Reset() {
	g.last = 0
	g.hasLast = false
	g.pending = false
}
