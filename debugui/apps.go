package debugui

import (
	"fmt"
	"strings"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/scrollpack/apps/quotes"
	"github.com/plus3/scrollpack/apps/weather"
	"github.com/plus3/scrollpack/tetris"
)

// FieldRows draws the playfield as text, top row first. Locked cells are
// '#', the falling piece '@' and its ghost '+'.
func FieldRows(s tetris.Snapshot) []string {
	var grid [tetris.FieldHeight][tetris.FieldWidth]byte
	for y := 0; y < tetris.FieldHeight; y++ {
		for x := 0; x < tetris.FieldWidth; x++ {
			grid[y][x] = '.'
			if s.Field[x][y] != 0 {
				grid[y][x] = '#'
			}
		}
	}
	if s.State == tetris.Play {
		for _, c := range s.Ghost.Cells() {
			if tetris.InBounds(c.X, c.Y) && grid[c.Y][c.X] == '.' {
				grid[c.Y][c.X] = '+'
			}
		}
		for _, c := range s.Piece.Cells() {
			if tetris.InBounds(c.X, c.Y) {
				grid[c.Y][c.X] = '@'
			}
		}
	}

	rows := make([]string, 0, tetris.FieldHeight)
	for y := tetris.FieldHeight - 1; y >= 0; y-- {
		rows = append(rows, string(grid[y][:]))
	}
	return rows
}

func TetrisWindow(e *tetris.Engine) func() {
	return func() {
		if !imgui.BeginV("Tetris", nil, imgui.WindowFlagsNone) {
			imgui.End()
			return
		}
		s := e.Snapshot()
		imgui.Text(fmt.Sprintf("State: %s", s.State))
		imgui.Text(fmt.Sprintf("Piece: %s rot %d at %d,%d", s.Piece.Kind, s.Piece.Rot, s.Piece.X, s.Piece.Y))
		imgui.Text(fmt.Sprintf("Drop Interval: %s", s.DropInterval))
		imgui.Text(fmt.Sprintf("Lines: %d  Pieces: %d  Games: %d", s.Lines, s.Pieces, s.Games))
		imgui.Text(fmt.Sprintf("Bag: %d left", s.BagLeft))
		if s.State != tetris.Play {
			imgui.Text(fmt.Sprintf("Animation Row: %d", s.Row))
		}
		imgui.Separator()
		imgui.Text(strings.Join(FieldRows(s), "\n"))
		imgui.End()
	}
}

func QuotesWindow(a *quotes.App) func() {
	return func() {
		if !imgui.BeginV("Quotes", nil, imgui.WindowFlagsNone) {
			imgui.End()
			return
		}
		s := a.Status()
		imgui.Text(fmt.Sprintf("Lines: %d", s.Lines))
		imgui.Text(fmt.Sprintf("Brightness: %d", s.Brightness))
		imgui.Text(fmt.Sprintf("Scroll: %d / %d", s.Offset, s.Columns))
		if s.Pending != "" {
			imgui.BulletText("pending: " + s.Pending)
		}
		imgui.End()
	}
}

func WeatherWindow(a *weather.App) func() {
	return func() {
		if !imgui.BeginV("Weather", nil, imgui.WindowFlagsNone) {
			imgui.End()
			return
		}
		s := a.Status()
		imgui.Text(fmt.Sprintf("Mode: %s step %d", s.Mode, s.Step))
		imgui.Text(fmt.Sprintf("Day: +%d", s.Day))
		if !s.HasData {
			imgui.Text("No data yet")
		} else {
			imgui.Text(fmt.Sprintf("City: %s", s.City))
			imgui.Text(fmt.Sprintf("Fetched: %s ago", time.Since(s.Fetched).Truncate(time.Second)))
		}
		imgui.End()
	}
}
