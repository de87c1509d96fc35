// Package panel defines the drawing surface of the LED matrix and an
// in-memory, double buffered implementation of it.
package panel

import (
	"image"
	"image/color"
)

// Physical panel size in pixels.
const (
	Width  = 17
	Height = 7
)

// Display is the rendering primitive every app draws through. Nothing drawn
// with SetPixel or Clear is visible until Commit is called.
type Display interface {
	SetPixel(x, y int, brightness uint8)
	Clear()
	Commit() error
}

// Frame is one full panel image, indexed [x][y].
type Frame [Width][Height]uint8

// Lit returns the number of pixels with a non-zero brightness.
func (f Frame) Lit() int {
	n := 0
	for x := range f {
		for y := range f[x] {
			if f[x][y] != 0 {
				n++
			}
		}
	}
	return n
}

// Buffer implements Display with separate back and front frames. Drawing
// goes to the back frame; Commit copies it to the front, which is what
// front-ends read. Buffer also implements image.Image over the front frame.
type Buffer struct {
	back, front Frame
	commits     uint64
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

// SetPixel sets a pixel of the back frame. Coordinates outside the panel
// are ignored.
func (b *Buffer) SetPixel(x, y int, brightness uint8) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	b.back[x][y] = brightness
}

func (b *Buffer) Clear() {
	b.back = Frame{}
}

// Commit publishes the back frame. It never fails.
func (b *Buffer) Commit() error {
	b.front = b.back
	b.commits++
	return nil
}

// Front returns a copy of the last committed frame.
func (b *Buffer) Front() Frame {
	return b.front
}

// Commits returns how many times Commit has been called.
func (b *Buffer) Commits() uint64 {
	return b.commits
}

func (b *Buffer) ColorModel() color.Model {
	return color.GrayModel
}

func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, Width, Height)
}

func (b *Buffer) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(b.Bounds())) {
		return color.Gray{}
	}
	return color.Gray{Y: b.front[x][y]}
}
