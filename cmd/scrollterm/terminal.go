package main

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/scrollpack/panel"
)

const (
	cellWidth = 2
	originX   = 2
	originY   = 1
)

// terminal draws panel frames on a tcell screen. It has no Commit of its
// own; panel.Adapt finds Show.
type terminal struct {
	screen tcell.Screen

	mu    sync.Mutex
	frame panel.Frame
}

func newTerminal(screen tcell.Screen) *terminal {
	return &terminal{screen: screen}
}

func (t *terminal) SetPixel(x, y int, brightness uint8) {
	if x < 0 || x >= panel.Width || y < 0 || y >= panel.Height {
		return
	}
	t.mu.Lock()
	t.frame[x][y] = brightness
	t.mu.Unlock()
}

func (t *terminal) Clear() {
	t.mu.Lock()
	t.frame = panel.Frame{}
	t.mu.Unlock()
}

// ledStyle maps a brightness to a grey between the unlit base and white.
func ledStyle(brightness uint8) tcell.Style {
	const base = 40
	if brightness == 0 {
		return tcell.StyleDefault.Foreground(tcell.NewRGBColor(base, base, base))
	}
	v := int32(base + (255-base)*int(brightness)/255)
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(v, v, v))
}

func (t *terminal) Show() {
	t.mu.Lock()
	frame := t.frame
	t.mu.Unlock()

	for x := 0; x < panel.Width; x++ {
		for y := 0; y < panel.Height; y++ {
			style := ledStyle(frame[x][y])
			for i := 0; i < cellWidth; i++ {
				t.screen.SetContent(originX+x*cellWidth+i, originY+y, '█', nil, style)
			}
		}
	}
	t.screen.Show()
}
