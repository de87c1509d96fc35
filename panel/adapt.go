package panel

// Device is a pixel sink that may or may not know how to flush itself.
// Hardware drivers disagree on the name of the flush call, so Adapt looks
// for one once and remembers it.
type Device interface {
	SetPixel(x, y int, brightness uint8)
	Clear()
}

type (
	showErrCommitter    interface{ Show() error }
	showCommitter       interface{ Show() }
	displayErrCommitter interface{ Display() error }
	updateErrCommitter  interface{ Update() error }
)

type adapted struct {
	Device
	commit func() error
}

func (a *adapted) Commit() error {
	return a.commit()
}

// Adapt wraps dev into a Display. The commit call is resolved here, in the
// order Show() error, Show(), Display() error, Update() error. A device
// with none of them gets a commit that does nothing. A dev that already
// implements Display is returned unchanged.
func Adapt(dev Device) Display {
	if d, ok := dev.(Display); ok {
		return d
	}
	return &adapted{Device: dev, commit: CommitFunc(dev)}
}

// CommitFunc returns the flush function Adapt would use for dev.
func CommitFunc(dev any) func() error {
	switch d := dev.(type) {
	case showErrCommitter:
		return d.Show
	case showCommitter:
		return func() error {
			d.Show()
			return nil
		}
	case displayErrCommitter:
		return d.Display
	case updateErrCommitter:
		return d.Update
	default:
		return func() error { return nil }
	}
}
