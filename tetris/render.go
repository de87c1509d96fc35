package tetris

import "github.com/plus3/scrollpack/panel"

// ToPanel maps a field cell onto the panel. The field stands upright with
// its bottom row on the left edge of the panel.
func ToPanel(x, y int) (px, py int) {
	return y, panel.Height - 1 - x
}

func plot(d panel.Display, x, y int, v uint8) {
	px, py := ToPanel(x, y)
	if px < 0 || px >= panel.Width || py < 0 || py >= panel.Height {
		return
	}
	d.SetPixel(px, py, v)
}

// render redraws the field and, when withPiece is set, the ghost and the
// active piece. Commit failures are logged and otherwise ignored.
func (e *Engine) render(withPiece bool) {
	d := e.display
	d.Clear()

	for x := range e.field {
		for y, v := range e.field[x] {
			if v != 0 {
				plot(d, x, y, v)
			}
		}
	}

	if withPiece {
		for _, c := range e.field.Drop(e.cur).Cells() {
			plot(d, c.X, c.Y, e.timing.GhostBrightness)
		}
		for _, c := range e.cur.Cells() {
			plot(d, c.X, c.Y, e.timing.Brightness)
		}
	}

	if err := d.Commit(); err != nil {
		e.logger.Debug("tetris: commit failed", "err", err)
	}
}
