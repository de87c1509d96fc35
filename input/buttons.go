// Package input samples the four panel buttons and derives edge and
// click events from consecutive samples.
package input

// Button names one of the four panel buttons.
type Button uint8

const (
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY
)

func (b Button) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonX:
		return "X"
	case ButtonY:
		return "Y"
	default:
		return "INVALID"
	}
}

// Buttons is a snapshot of all four buttons, true meaning held down.
type Buttons struct {
	A, B, X, Y bool
}

// Get returns the state of a single button.
func (b Buttons) Get(btn Button) bool {
	switch btn {
	case ButtonA:
		return b.A
	case ButtonB:
		return b.B
	case ButtonX:
		return b.X
	case ButtonY:
		return b.Y
	}
	return false
}

// Set returns a copy of b with btn set to down.
func (b Buttons) Set(btn Button, down bool) Buttons {
	switch btn {
	case ButtonA:
		b.A = down
	case ButtonB:
		b.B = down
	case ButtonX:
		b.X = down
	case ButtonY:
		b.Y = down
	}
	return b
}

// Any reports whether at least one button is down.
func (b Buttons) Any() bool {
	return b.A || b.B || b.X || b.Y
}

// Edges returns the buttons that are down in cur but were up in prev.
func Edges(cur, prev Buttons) Buttons {
	return Buttons{
		A: cur.A && !prev.A,
		B: cur.B && !prev.B,
		X: cur.X && !prev.X,
		Y: cur.Y && !prev.Y,
	}
}

// Sampler reads the current button state. It is called once per tick.
type Sampler interface {
	Sample() Buttons
}

// SamplerFunc adapts a function to the Sampler interface.
type SamplerFunc func() Buttons

func (f SamplerFunc) Sample() Buttons {
	return f()
}
