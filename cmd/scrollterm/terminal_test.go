package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/scrollpack/input"
	"github.com/plus3/scrollpack/panel"
)

func simScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func grey(t *testing.T, screen tcell.Screen, x, y int) int32 {
	t.Helper()
	r, _, style, _ := screen.GetContent(x, y)
	require.Equal(t, '█', r)
	fg, _, _ := style.Decompose()
	red, _, _ := fg.RGB()
	return red
}

func TestTerminalShow(t *testing.T) {
	screen := simScreen(t)
	term := newTerminal(screen)
	display := panel.Adapt(term)

	display.SetPixel(3, 2, 255)
	display.SetPixel(panel.Width, 0, 255)
	require.NoError(t, display.Commit())

	lit := grey(t, screen, originX+3*cellWidth, originY+2)
	litRight := grey(t, screen, originX+3*cellWidth+1, originY+2)
	off := grey(t, screen, originX, originY)
	assert.Equal(t, int32(255), lit)
	assert.Equal(t, lit, litRight, "an LED spans two cells")
	assert.Equal(t, int32(40), off)

	display.Clear()
	require.NoError(t, display.Commit())
	assert.Equal(t, int32(40), grey(t, screen, originX+3*cellWidth, originY+2))
}

func TestPumpEvents(t *testing.T) {
	screen := simScreen(t)
	latch := input.NewLatch(time.Hour, nil)

	quit := make(chan struct{})
	done := make(chan struct{})
	go func() {
		pumpEvents(screen, latch, func() { close(quit) })
		close(done)
	}()

	screen.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	screen.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("pump did not stop on escape")
	}
	select {
	case <-quit:
	default:
		t.Fatal("quit was not called")
	}
	assert.Equal(t, input.Buttons{A: true, Y: true}, latch.Sample())
}
