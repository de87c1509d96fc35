// Package launcher runs a fixed set of panel apps from a single polling
// loop and switches between them on a double click.
package launcher

import (
	"time"

	"github.com/plus3/scrollpack/input"
)

// App is one program shown on the panel. Apps keep all their progress as
// state plus counters and must return from Update quickly; waiting is done
// by comparing accumulated Frame.Elapsed against a deadline, never by
// sleeping.
type App interface {
	// Name identifies the app in stats and logs.
	Name() string

	// Init resets the app completely. It is called on first activation and
	// every time the app is switched to, whatever state it was left in.
	Init()

	// Update is called exactly once per tick while the app is active.
	Update(frame *Frame)
}

// Frame is what an app gets on each tick.
type Frame struct {
	// Elapsed is the time since the previous tick. It is never negative
	// and not assumed to be regular.
	Elapsed time.Duration

	Buttons input.Buttons
	Events  input.Events
}

func newFrame(elapsed time.Duration, buttons input.Buttons, events input.Events) *Frame {
	if elapsed < 0 {
		elapsed = 0
	}
	return &Frame{
		Elapsed: elapsed,
		Buttons: buttons,
		Events:  events,
	}
}
