// Package glyph holds the bitmap fonts and icons used on the panel.
//
// Bitmaps are stored column-major: a Glyph is a slice of columns, and bit
// y of a column is set when row y (counted from the top) is lit.
package glyph

import (
	"github.com/kamstrup/intmap"
)

// Glyph is a bitmap as a list of columns.
type Glyph []uint8

// Width returns the number of columns.
func (g Glyph) Width() int {
	return len(g)
}

// Lit reports whether the pixel at column x, row y is set.
func (g Glyph) Lit(x, y int) bool {
	if x < 0 || x >= len(g) || y < 0 || y > 7 {
		return false
	}
	return g[x]&(1<<y) != 0
}

// Shift returns a copy of g moved down by n rows.
func (g Glyph) Shift(n int) Glyph {
	out := make(Glyph, len(g))
	for i, col := range g {
		out[i] = col << n
	}
	return out
}

// parse converts rows of '0'/'1' characters into columns. Short rows are
// padded with unlit pixels.
func parse(rows []string) Glyph {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	g := make(Glyph, width)
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if row[x] == '1' {
				g[x] |= 1 << y
			}
		}
	}
	return g
}

type entry struct {
	r    rune
	rows []string
}

// Font maps runes to glyphs of a fixed height.
type Font struct {
	height int
	glyphs *intmap.Map[rune, Glyph]
}

func newFont(height int, entries []entry) *Font {
	f := &Font{
		height: height,
		glyphs: intmap.New[rune, Glyph](len(entries)),
	}
	for _, e := range entries {
		f.glyphs.Put(e.r, parse(e.rows))
	}
	return f
}

// Height returns the number of rows of every glyph.
func (f *Font) Height() int {
	return f.height
}

// Len returns the number of runes the font knows.
func (f *Font) Len() int {
	return f.glyphs.Len()
}

// Glyph returns the bitmap for r.
func (f *Font) Glyph(r rune) (Glyph, bool) {
	return f.glyphs.Get(r)
}

// Columns renders text into a column strip. Each glyph is followed by gap
// blank columns. Runes the font does not know render as a space, or are
// skipped when the font has no space.
func (f *Font) Columns(text string, gap int) []uint8 {
	space, _ := f.glyphs.Get(' ')
	var cols []uint8
	for _, r := range text {
		g, ok := f.glyphs.Get(r)
		if !ok {
			g = space
		}
		cols = append(cols, g...)
		for i := 0; i < gap; i++ {
			cols = append(cols, 0)
		}
	}
	return cols
}
