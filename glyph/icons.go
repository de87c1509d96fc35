package glyph

import (
	"github.com/kamstrup/intmap"
)

// Icon names one of the 7x7 weather pictograms.
type Icon uint8

const (
	IconSun Icon = iota
	IconCloud
	IconRain
	IconSnow
	IconStorm
	IconFog
)

func (i Icon) String() string {
	switch i {
	case IconSun:
		return "sun"
	case IconCloud:
		return "cloud"
	case IconRain:
		return "rain"
	case IconSnow:
		return "snow"
	case IconStorm:
		return "storm"
	case IconFog:
		return "fog"
	default:
		return "INVALID"
	}
}

var icons = func() *intmap.Map[Icon, Glyph] {
	m := intmap.New[Icon, Glyph](6)
	m.Put(IconSun, parse([]string{"0011100", "0100100", "1011101", "0111110", "1011101", "0100100", "0011100"}))
	m.Put(IconCloud, parse([]string{"0000000", "0011100", "0111110", "1111111", "1111111", "0111110", "0011100"}))
	m.Put(IconRain, parse([]string{"0011100", "0111110", "1111111", "1111111", "0010010", "0100100", "1001000"}))
	m.Put(IconSnow, parse([]string{"0010000", "1010100", "0111100", "0010000", "0111100", "1010100", "0010000"}))
	m.Put(IconStorm, parse([]string{"0001000", "0011100", "0111110", "1111111", "0001100", "0011000", "0110000"}))
	m.Put(IconFog, parse([]string{"0000000", "1111111", "0000000", "1111111", "0000000", "1111111", "0000000"}))
	return m
}()

// IconGlyph returns the bitmap of icon. Unknown icons fall back to the sun.
func IconGlyph(icon Icon) Glyph {
	if g, ok := icons.Get(icon); ok {
		return g
	}
	g, _ := icons.Get(IconSun)
	return g
}
