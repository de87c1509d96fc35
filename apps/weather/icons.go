package weather

import (
	"github.com/kamstrup/intmap"

	"github.com/plus3/scrollpack/glyph"
)

// codeCloud stands in for a missing weather code.
const codeCloud = 3

var codeIcons = func() *intmap.Map[int, glyph.Icon] {
	m := intmap.New[int, glyph.Icon](32)
	for icon, codes := range map[glyph.Icon][]int{
		glyph.IconSun:   {0, 1, 2},
		glyph.IconCloud: {3},
		glyph.IconFog:   {45, 48},
		glyph.IconRain:  {51, 53, 55, 61, 63, 65, 80, 81, 82},
		glyph.IconSnow:  {71, 73, 75, 77, 85, 86},
		glyph.IconStorm: {95, 96, 99},
	} {
		for _, code := range codes {
			m.Put(code, icon)
		}
	}
	return m
}()

// IconFor maps a WMO weather code to an icon. Unknown codes show a cloud.
func IconFor(code int) glyph.Icon {
	if icon, ok := codeIcons.Get(code); ok {
		return icon
	}
	return glyph.IconCloud
}

// Label is a short German description of a weather code.
func Label(code int) string {
	switch code {
	case 0:
		return "klar"
	case 1, 2:
		return "heiter"
	}
	switch IconFor(code) {
	case glyph.IconCloud:
		if code == codeCloud {
			return "bedeckt"
		}
		return "Wetter"
	case glyph.IconFog:
		return "Nebel"
	case glyph.IconRain:
		return "Regen"
	case glyph.IconSnow:
		return "Schnee"
	case glyph.IconStorm:
		return "Gewitter"
	default:
		return "Wetter"
	}
}
