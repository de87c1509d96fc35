package panel_test

import (
	"errors"
	"image/color"
	"testing"

	"github.com/plus3/scrollpack/panel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferCommit(t *testing.T) {
	buf := panel.NewBuffer()

	buf.SetPixel(3, 4, 80)
	assert.Equal(t, 0, buf.Front().Lit(), "drawing must not be visible before commit")

	require.NoError(t, buf.Commit())
	front := buf.Front()
	assert.Equal(t, uint8(80), front[3][4])
	assert.Equal(t, 1, front.Lit())
	assert.Equal(t, uint64(1), buf.Commits())

	buf.Clear()
	assert.Equal(t, 1, buf.Front().Lit(), "clear is not visible before commit")
	require.NoError(t, buf.Commit())
	assert.Equal(t, 0, buf.Front().Lit())
}

func TestBufferIgnoresOutOfRange(t *testing.T) {
	buf := panel.NewBuffer()
	buf.SetPixel(-1, 0, 10)
	buf.SetPixel(panel.Width, 0, 10)
	buf.SetPixel(0, panel.Height, 10)
	buf.SetPixel(0, -3, 10)
	require.NoError(t, buf.Commit())
	assert.Equal(t, 0, buf.Front().Lit())
}

func TestBufferImage(t *testing.T) {
	buf := panel.NewBuffer()
	buf.SetPixel(16, 6, 200)
	require.NoError(t, buf.Commit())

	assert.Equal(t, panel.Width, buf.Bounds().Dx())
	assert.Equal(t, panel.Height, buf.Bounds().Dy())
	assert.Equal(t, color.Gray{Y: 200}, buf.At(16, 6))
	assert.Equal(t, color.Gray{}, buf.At(0, 0))
	assert.Equal(t, color.Gray{}, buf.At(40, 40))
}

type pixelSink struct {
	pixels int
}

func (p *pixelSink) SetPixel(x, y int, brightness uint8) { p.pixels++ }
func (p *pixelSink) Clear()                              { p.pixels = 0 }

type showErrDevice struct {
	pixelSink
	shows   int
	updates int
}

func (d *showErrDevice) Show() error   { d.shows++; return nil }
func (d *showErrDevice) Update() error { d.updates++; return nil }

type showDevice struct {
	pixelSink
	shows int
}

func (d *showDevice) Show() { d.shows++ }

type updateDevice struct {
	pixelSink
	err error
}

func (d *updateDevice) Update() error { return d.err }

func TestAdapt(t *testing.T) {
	t.Run("prefers Show with error", func(t *testing.T) {
		dev := &showErrDevice{}
		disp := panel.Adapt(dev)
		require.NoError(t, disp.Commit())
		require.NoError(t, disp.Commit())
		assert.Equal(t, 2, dev.shows)
		assert.Equal(t, 0, dev.updates)
	})

	t.Run("plain Show", func(t *testing.T) {
		dev := &showDevice{}
		disp := panel.Adapt(dev)
		disp.SetPixel(1, 1, 1)
		require.NoError(t, disp.Commit())
		assert.Equal(t, 1, dev.shows)
		assert.Equal(t, 1, dev.pixels)
	})

	t.Run("update error is passed through", func(t *testing.T) {
		boom := errors.New("bus timeout")
		disp := panel.Adapt(&updateDevice{err: boom})
		assert.ErrorIs(t, disp.Commit(), boom)
	})

	t.Run("no flush call", func(t *testing.T) {
		disp := panel.Adapt(&pixelSink{})
		assert.NoError(t, disp.Commit())
	})

	t.Run("displays pass through", func(t *testing.T) {
		buf := panel.NewBuffer()
		assert.Same(t, buf, panel.Adapt(buf))
	})
}
