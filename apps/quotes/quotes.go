// Package quotes scrolls one line of a text file at a time across the panel.
package quotes

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/plus3/scrollpack/launcher"
	"github.com/plus3/scrollpack/panel"
)

type Config struct {
	File       string        `yaml:"file"`
	Brightness uint8         `yaml:"brightness"`
	Scroll     time.Duration `yaml:"scroll"`
	StartDelay time.Duration `yaml:"start_delay"`
}

func DefaultConfig() Config {
	return Config{
		File:       "sprueche.txt",
		Brightness: 70,
		Scroll:     80 * time.Millisecond,
		StartDelay: 100 * time.Millisecond,
	}
}

const brightnessStep = 3

// App shows quotes. Holding A dims and holding B brightens the text, X
// picks a random quote and Y the next one in file order.
type App struct {
	display panel.Display
	logger  *slog.Logger
	rng     *rand.Rand
	cfg     Config

	lines  []string
	bright uint8
	last   int
	seq    int

	// a scheduled line waits for delay before it starts scrolling
	pending    string
	hasPending bool
	delay      time.Duration

	cols   []uint8
	offset int
	timer  time.Duration
}

type Option func(*App)

func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(a *App) {
		a.rng = rng
	}
}

func New(display panel.Display, cfg Config, opts ...Option) *App {
	a := &App{
		display: display,
		logger:  slog.Default(),
		cfg:     cfg,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return a
}

func (a *App) Name() string {
	return "quotes"
}

// Init reloads the quote file and schedules the first line.
func (a *App) Init() {
	a.display.Clear()
	a.commit()

	lines, err := LoadLines(a.cfg.File)
	switch {
	case err != nil:
		a.logger.Warn("quotes: using fallback", "file", a.cfg.File, "err", err)
		lines = Fallback
	case len(lines) == 0:
		a.logger.Warn("quotes: file has no lines, using fallback", "file", a.cfg.File)
		lines = Fallback
	}
	a.lines = lines

	a.bright = a.cfg.Brightness
	a.last = -1
	a.seq = 0
	a.cols = nil
	a.offset = 0
	a.timer = 0
	a.schedule(a.lines[0])
}

func (a *App) Update(frame *launcher.Frame) {
	if a.lines == nil {
		a.Init()
	}

	if frame.Buttons.A {
		a.bright -= min(a.bright, brightnessStep)
	}
	if frame.Buttons.B {
		a.bright += min(255-a.bright, brightnessStep)
	}

	if frame.Events.Pressed.X {
		a.schedule(a.lines[a.pickRandom()])
	}
	if frame.Events.Pressed.Y {
		a.seq = (a.seq + 1) % len(a.lines)
		a.last = a.seq
		a.schedule(a.lines[a.seq])
	}

	a.stepPending(frame.Elapsed)
	a.stepScroll(frame.Elapsed)
}

func (a *App) schedule(line string) {
	a.pending = line
	a.hasPending = true
	a.delay = a.cfg.StartDelay
	a.cols = nil
}

// pickRandom returns a line index other than the last one shown.
func (a *App) pickRandom() int {
	if len(a.lines) == 1 {
		a.last = 0
		return 0
	}
	for {
		idx := a.rng.IntN(len(a.lines))
		if idx != a.last {
			a.last = idx
			return idx
		}
	}
}

func (a *App) stepPending(elapsed time.Duration) {
	if !a.hasPending {
		return
	}
	a.delay -= elapsed
	if a.delay > 0 {
		return
	}
	a.cols = Columns(a.pending)
	a.offset = 0
	a.timer = 0
	a.pending = ""
	a.hasPending = false
	a.delay = 0
}

// stepScroll moves the text one column per scroll interval and stops on
// the last column.
func (a *App) stepScroll(elapsed time.Duration) {
	if len(a.cols) == 0 {
		return
	}
	a.timer += elapsed
	if a.timer < a.cfg.Scroll {
		return
	}
	a.timer = 0
	a.offset++
	if a.offset >= len(a.cols) {
		a.offset = len(a.cols) - 1
		return
	}

	a.display.Clear()
	for x := 0; x < panel.Width; x++ {
		idx := a.offset + x
		if idx >= len(a.cols) {
			break
		}
		col := a.cols[idx]
		for y := 0; y < panel.Height; y++ {
			if col&(1<<y) != 0 {
				a.display.SetPixel(x, y, a.bright)
			}
		}
	}
	a.commit()
}

func (a *App) commit() {
	if err := a.display.Commit(); err != nil {
		a.logger.Debug("quotes: commit failed", "err", err)
	}
}

// Status reports what the app is showing, for the debug overlay.
type Status struct {
	Lines      int
	Brightness uint8
	Pending    string
	Offset     int
	Columns    int
}

func (a *App) Status() Status {
	return Status{
		Lines:      len(a.lines),
		Brightness: a.bright,
		Pending:    a.pending,
		Offset:     a.offset,
		Columns:    len(a.cols),
	}
}
