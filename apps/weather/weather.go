// Package weather shows the current weather and a seven day forecast as
// icons and small text. Network access happens on a Fetcher goroutine; the
// app only ever polls its result channel.
package weather

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/plus3/scrollpack/glyph"
	"github.com/plus3/scrollpack/input"
	"github.com/plus3/scrollpack/launcher"
	"github.com/plus3/scrollpack/panel"
)

type Config struct {
	// Latitude and Longitude pin the location. When either is unset the
	// location is looked up from the public IP address.
	Latitude  *float64 `yaml:"latitude"`
	Longitude *float64 `yaml:"longitude"`
	City      string   `yaml:"city"`

	Refresh time.Duration `yaml:"refresh"`
	Retry   time.Duration `yaml:"retry"`
	Timeout time.Duration `yaml:"timeout"`

	ForecastURL string `yaml:"forecast_url"`
	LocateURL   string `yaml:"locate_url"`

	Brightness uint8 `yaml:"brightness"`
}

func DefaultConfig() Config {
	return Config{
		City:        "Ort",
		Refresh:     30 * time.Minute,
		Retry:       10 * time.Second,
		Timeout:     15 * time.Second,
		ForecastURL: DefaultForecastURL,
		LocateURL:   DefaultLocateURL,
		Brightness:  70,
	}
}

// Mode is what the app is currently presenting.
type Mode uint8

const (
	Idle Mode = iota
	One
	Icons
	Week
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case One:
		return "one"
	case Icons:
		return "icons"
	case Week:
		return "week"
	default:
		return "INVALID"
	}
}

const (
	iconX      = 5
	textY      = 1
	charWidth  = 4
	scrollStep = 60 * time.Millisecond

	iconPause  = 400 * time.Millisecond
	textPause  = 800 * time.Millisecond
	dayPause   = 300 * time.Millisecond
	slidePause = 250 * time.Millisecond
	weekPause  = 450 * time.Millisecond

	// day 0 is today, 1..7 the forecast days
	daySlots = Days + 1
)

type scroller struct {
	text   string
	offset int
	end    int
	acc    time.Duration
}

// App is the weather display. A toggles the week view, B shows the selected
// day, Y selects the next day and holding X runs through the icons.
type App struct {
	display panel.Display
	source  Source
	logger  *slog.Logger
	bright  uint8

	data    *Data
	fetched time.Time

	mode       Mode
	step       int
	timer      time.Duration
	day        int
	scroll     *scroller
	scrollWait bool
}

func New(display panel.Display, source Source, cfg Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		display: display,
		source:  source,
		logger:  logger,
		bright:  cfg.Brightness,
	}
}

func (a *App) Name() string {
	return "weather"
}

// Init shows the cloud icon and asks for fresh data. The last forecast is
// kept until a new one arrives.
func (a *App) Init() {
	a.drawIcon(glyph.IconCloud)
	a.mode = Idle
	a.step = 0
	a.timer = 0
	a.day = 0
	a.scroll = nil
	a.scrollWait = false
	if a.source != nil {
		a.source.Refresh()
	}
}

func (a *App) Update(frame *launcher.Frame) {
	pressed := frame.Events.Pressed
	held := frame.Buttons

	if pressed.A {
		if a.mode == Week {
			a.idle()
		} else {
			a.start(Week)
		}
	}

	if pressed.Y {
		a.day = (a.day + 1) % daySlots
		label := fmt.Sprint(a.day)
		if a.day > 0 {
			label = "+" + label
		}
		a.drawText(label, max(0, (panel.Width-textWidth(label))/2))
		a.mode = Idle
		a.step = 0
		a.timer = dayPause
	}

	if pressed.B {
		if a.mode == Idle {
			a.start(One)
		} else {
			a.idle()
		}
	}

	if held.X && a.mode != Icons {
		a.start(Icons)
	}

	a.poll()
	a.timer = max(0, a.timer-frame.Elapsed)

	switch a.mode {
	case One:
		a.stepOne(frame.Elapsed, held)
	case Icons:
		a.stepIcons()
	case Week:
		a.stepWeek(frame.Elapsed, held)
	}
}

func (a *App) start(mode Mode) {
	a.mode = mode
	a.step = 0
	a.timer = 0
	a.scroll = nil
	a.scrollWait = false
}

// idle cancels the running sequence and blanks the panel.
func (a *App) idle() {
	a.mode = Idle
	a.scroll = nil
	a.scrollWait = false
	a.step = 0
	a.timer = 0
	a.display.Clear()
	a.commit()
}

// poll takes every result that is ready. A failed fetch keeps the old data.
func (a *App) poll() {
	if a.source == nil {
		return
	}
	for {
		select {
		case res := <-a.source.Results():
			if res.Err != nil {
				a.logger.Debug("weather: keeping previous data", "err", res.Err)
				continue
			}
			a.data = res.Data
			a.fetched = res.At
		default:
			return
		}
	}
}

// needData shows the storm icon and goes idle when there is nothing to show.
func (a *App) needData() bool {
	if a.data != nil {
		return true
	}
	a.drawIcon(glyph.IconStorm)
	a.mode = Idle
	return false
}

func (a *App) stepOne(elapsed time.Duration, held input.Buttons) {
	if !a.needData() {
		return
	}
	switch {
	case a.step == 0:
		a.drawIcon(IconFor(a.dayCode()))
		a.timer = iconPause
		a.step = 1
	case a.step == 1 && a.timer == 0:
		if a.show(a.dayText(), elapsed, held) {
			a.timer = textPause
			a.step = 2
		}
	case a.step == 2 && a.timer == 0:
		a.mode = Idle
	}
}

func (a *App) stepIcons() {
	if !a.needData() {
		return
	}
	switch {
	case a.step == 0:
		code := codeCloud
		if a.data.CurrentCode != nil {
			code = *a.data.CurrentCode
		}
		a.drawIcon(IconFor(code))
		a.timer = slidePause
		a.step = 1
	case a.step <= Days && a.timer == 0:
		if i := a.step - 1; i < len(a.data.Days) {
			a.drawIcon(IconFor(a.data.Days[i].Code))
		}
		a.timer = slidePause
		a.step++
	case a.step > Days && a.timer == 0:
		a.mode = Idle
	}
}

func (a *App) stepWeek(elapsed time.Duration, held input.Buttons) {
	if !a.needData() {
		return
	}
	total := min(Days, len(a.data.Days))
	if a.step >= total*2 {
		a.mode = Idle
		return
	}
	if a.timer > 0 && !a.scrollWait {
		return
	}

	day := a.data.Days[a.step/2]
	text := DayLabel(day.Date)
	if a.step%2 == 1 {
		text = MaxMin(day.Max, day.Min)
	}
	if a.show(text, elapsed, held) {
		a.timer = weekPause
		a.step++
	}
}

// dayCode returns the weather code of the selected day.
func (a *App) dayCode() int {
	if a.day == 0 {
		if a.data.CurrentCode != nil {
			return *a.data.CurrentCode
		}
		return codeCloud
	}
	if len(a.data.Days) == 0 {
		return codeCloud
	}
	return a.data.Days[min(a.day-1, len(a.data.Days)-1)].Code
}

// dayText returns the temperature string of the selected day.
func (a *App) dayText() string {
	if a.day == 0 {
		return Temperature(a.data.CurrentTemp) + "°"
	}
	if len(a.data.Days) == 0 {
		return MaxMin(nil, nil)
	}
	d := a.data.Days[min(a.day-1, len(a.data.Days)-1)]
	return MaxMin(d.Max, d.Min)
}

// show draws text, scrolling it when it is wider than the panel. It
// returns true once the text has been shown completely or the scroll was
// cancelled.
func (a *App) show(text string, elapsed time.Duration, held input.Buttons) bool {
	if !a.scrollWait {
		if a.startScroll(text) {
			return true
		}
		a.scrollWait = true
		return false
	}
	if a.advanceScroll(elapsed, held) {
		a.scrollWait = false
		return true
	}
	return false
}

func (a *App) startScroll(text string) bool {
	width := textWidth(text)
	if width <= panel.Width {
		a.drawText(text, (panel.Width-width)/2)
		a.scroll = nil
		return true
	}
	a.scroll = &scroller{text: text, offset: panel.Width, end: -width}
	return false
}

// advanceScroll moves the text one column per scroll step. Any held button
// cancels it.
func (a *App) advanceScroll(elapsed time.Duration, held input.Buttons) bool {
	if held.Any() || a.scroll == nil {
		a.scroll = nil
		return true
	}
	s := a.scroll
	s.acc += elapsed
	moved := false
	for s.acc >= scrollStep {
		s.acc -= scrollStep
		s.offset--
		moved = true
	}
	if moved {
		a.drawText(s.text, s.offset)
	}
	if s.offset <= s.end {
		a.scroll = nil
		return true
	}
	return false
}

func textWidth(text string) int {
	return utf8.RuneCountInString(text)*charWidth - 1
}

func (a *App) drawIcon(icon glyph.Icon) {
	a.display.Clear()
	g := glyph.IconGlyph(icon)
	for x := range g {
		for y := 0; y < panel.Height; y++ {
			if g.Lit(x, y) {
				a.display.SetPixel(iconX+x, y, a.bright)
			}
		}
	}
	a.commit()
}

// drawText draws text in the small font starting at column x. Runes the
// font lacks leave a two column gap.
func (a *App) drawText(text string, x int) {
	a.display.Clear()
	for _, r := range text {
		g, ok := glyph.Small.Glyph(r)
		if !ok {
			x += 2
			continue
		}
		for gx := range g {
			for gy := 0; gy < glyph.Small.Height(); gy++ {
				px, py := x+gx, textY+gy
				if g.Lit(gx, gy) && px >= 0 && px < panel.Width && py < panel.Height {
					a.display.SetPixel(px, py, a.bright)
				}
			}
		}
		x += charWidth
	}
	a.commit()
}

func (a *App) commit() {
	if err := a.display.Commit(); err != nil {
		a.logger.Debug("weather: commit failed", "err", err)
	}
}

// Temperature formats t rounded to whole degrees, or "?" when unknown.
func Temperature(t *float64) string {
	if t == nil {
		return "?"
	}
	return fmt.Sprint(int(math.Round(*t)))
}

// MaxMin formats a day's temperature range as "max/min".
func MaxMin(maxTemp, minTemp *float64) string {
	return Temperature(maxTemp) + "/" + Temperature(minTemp)
}

// DayLabel turns an ISO date into "DD/MM".
func DayLabel(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return "??/??"
	}
	return parts[2] + "/" + parts[1]
}

// Status reports what the app is showing, for the debug overlay.
type Status struct {
	Mode    Mode
	Step    int
	Day     int
	HasData bool
	City    string
	Fetched time.Time
}

func (a *App) Status() Status {
	s := Status{
		Mode:    a.mode,
		Step:    a.step,
		Day:     a.day,
		HasData: a.data != nil,
		Fetched: a.fetched,
	}
	if a.data != nil {
		s.City = a.data.City
	}
	return s
}
