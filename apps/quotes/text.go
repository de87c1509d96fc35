package quotes

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/plus3/scrollpack/glyph"
	"github.com/plus3/scrollpack/panel"
)

// Fallback is shown when the quote file cannot be read or holds no lines.
var Fallback = []string{
	"SPRUECHE.TXT FEHLT",
	"EINE ZEILE = EIN SPRUCH",
}

// LoadLines reads the non-blank lines of path, trimmed.
func LoadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quotes: %w", err)
	}

	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan quotes: %w", err)
	}
	return lines, nil
}

var replacer = strings.NewReplacer(
	"–", "-", "—", "-",
	"„", " ", "“", " ", "”", " ",
	"’", "'",
	"\u00a0", " ", "\u2009", " ", "\u202f", " ",
	"ä", "Ä", "ö", "Ö", "ü", "Ü",
	"ß", "SS",
)

// Normalize maps typographic punctuation and spaces to plain ones and
// upper-cases the text for the quote font.
func Normalize(text string) string {
	return strings.ToUpper(replacer.Replace(text))
}

// Columns renders text as a scroll strip: a blank panel width, the glyphs
// one row below the top with a one column gap, and another blank panel
// width so the text can scroll out.
func Columns(text string) []uint8 {
	text = strings.TrimSpace(text)
	if text == "" {
		text = "..."
	}

	cols := make([]uint8, panel.Width)
	cols = append(cols, glyph.Glyph(glyph.Quote.Columns(Normalize(text), 1)).Shift(1)...)
	return append(cols, make([]uint8, panel.Width)...)
}
