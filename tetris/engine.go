package tetris

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/plus3/scrollpack/input"
	"github.com/plus3/scrollpack/launcher"
	"github.com/plus3/scrollpack/panel"
)

// State is the top level phase of the engine.
type State uint8

const (
	Play State = iota
	GameOverFill
	GameOverClear
)

func (s State) String() string {
	switch s {
	case Play:
		return "play"
	case GameOverFill:
		return "game over fill"
	case GameOverClear:
		return "game over clear"
	default:
		return "INVALID"
	}
}

// Timing holds the speeds and brightness levels of the engine.
type Timing struct {
	Gravity      time.Duration `yaml:"gravity"`
	GravityFloor time.Duration `yaml:"gravity_floor"`
	GravityStep  time.Duration `yaml:"gravity_step"`
	SoftDrop     time.Duration `yaml:"soft_drop"`
	FillStep     time.Duration `yaml:"fill_step"`
	ClearStep    time.Duration `yaml:"clear_step"`

	Brightness      uint8 `yaml:"brightness"`
	GhostBrightness uint8 `yaml:"ghost_brightness"`
}

func DefaultTiming() Timing {
	return Timing{
		Gravity:         700 * time.Millisecond,
		GravityFloor:    120 * time.Millisecond,
		GravityStep:     20 * time.Millisecond,
		SoftDrop:        60 * time.Millisecond,
		FillStep:        40 * time.Millisecond,
		ClearStep:       25 * time.Millisecond,
		Brightness:      80,
		GhostBrightness: 30,
	}
}

var kicks = [...]int{0, -1, 1}

// Engine is the Tetris game as a launcher app. B moves left, A moves right,
// Y rotates and holding X drops the piece faster.
type Engine struct {
	display panel.Display
	logger  *slog.Logger
	rng     *rand.Rand
	timing  Timing

	field Field
	bag   *Bag
	cur   Piece
	state State
	prev  input.Buttons

	clock        time.Duration
	lastStep     time.Duration
	lastSoft     time.Duration
	softed       bool
	dropInterval time.Duration

	// game over animation
	row   int
	timer time.Duration

	lines  int
	pieces int
	games  int
}

type Option func(*Engine)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRand sets the source the bag shuffles with.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

func WithTiming(timing Timing) Option {
	return func(e *Engine) {
		e.timing = timing
	}
}

// NewEngine creates an engine drawing to display. The engine is ready after
// Init.
func NewEngine(display panel.Display, opts ...Option) *Engine {
	e := &Engine{
		display: display,
		logger:  slog.Default(),
		timing:  DefaultTiming(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return e
}

func (e *Engine) Name() string {
	return "tetris"
}

// Init starts a fresh game: empty field, new bag, first piece, initial
// speed. The games counter survives.
func (e *Engine) Init() {
	e.field = Field{}
	e.bag = NewBag(e.rng)
	e.cur = Spawn(e.bag.Next())
	e.state = Play
	e.prev = input.Buttons{}

	e.clock = 0
	e.lastStep = 0
	e.lastSoft = 0
	e.softed = false
	e.dropInterval = e.timing.Gravity

	e.row = FieldHeight - 1
	e.timer = 0
	e.lines = 0
	e.pieces = 0

	e.render(true)
}

// Update advances the game by one tick.
func (e *Engine) Update(frame *launcher.Frame) {
	if e.bag == nil {
		e.Init()
	}

	pressed := input.Edges(frame.Buttons, e.prev)
	e.prev = frame.Buttons
	e.clock += frame.Elapsed

	if e.state != Play {
		e.stepGameOver(frame.Elapsed)
		return
	}

	changed := false

	if pressed.B {
		changed = e.try(e.cur.Moved(-1, 0)) || changed
	}
	if pressed.A {
		changed = e.try(e.cur.Moved(1, 0)) || changed
	}
	if pressed.Y {
		rotated := e.cur.Rotated()
		for _, dx := range kicks {
			if e.try(rotated.Moved(dx, 0)) {
				changed = true
				break
			}
		}
	}

	if frame.Buttons.X && (!e.softed || e.clock-e.lastSoft >= e.timing.SoftDrop) {
		e.softed = true
		e.lastSoft = e.clock
		if !e.try(e.cur.Moved(0, -1)) && !e.lock() {
			return
		}
		changed = true
	}

	if e.clock-e.lastStep >= e.dropInterval {
		if !e.try(e.cur.Moved(0, -1)) && !e.lock() {
			return
		}
		changed = true
		e.lastStep = e.clock
	}

	if changed {
		e.render(true)
	}
}

// try makes p the active piece if it fits.
func (e *Engine) try(p Piece) bool {
	if !e.field.FitsPiece(p) {
		return false
	}
	e.cur = p
	return true
}

// lock fixes the active piece into the field, clears full rows and spawns
// the next piece. It returns false when that piece does not fit and the
// game is over.
func (e *Engine) lock() bool {
	e.field.Lock(e.cur.Shape(), e.cur.X, e.cur.Y, e.timing.Brightness)
	e.pieces++

	if n := e.field.ClearLines(); n > 0 {
		e.lines += n
		e.dropInterval = max(e.timing.GravityFloor, e.dropInterval-time.Duration(n)*e.timing.GravityStep)
	}

	e.cur = Spawn(e.bag.Next())
	if !e.field.FitsPiece(e.cur) {
		e.state = GameOverFill
		e.row = FieldHeight - 1
		e.timer = 0
		e.games++
		e.logger.Debug("tetris: game over", "lines", e.lines, "pieces", e.pieces)
		return false
	}
	return true
}

// stepGameOver processes at most one animation row per call.
func (e *Engine) stepGameOver(elapsed time.Duration) {
	e.timer += elapsed

	step := e.timing.FillStep
	if e.state == GameOverClear {
		step = e.timing.ClearStep
	}
	if e.timer < step {
		return
	}
	e.timer = 0

	switch e.state {
	case GameOverFill:
		e.field.SetRow(e.row, e.timing.Brightness)
		e.row--
		if e.row < 0 {
			e.state = GameOverClear
			e.row = 0
		}
	case GameOverClear:
		e.field.SetRow(e.row, 0)
		e.row++
		if e.row >= FieldHeight {
			e.Init()
			return
		}
	}
	e.render(false)
}

// Snapshot is a read-only copy of the engine state.
type Snapshot struct {
	State        State
	Field        Field
	Piece        Piece
	Ghost        Piece
	DropInterval time.Duration
	Clock        time.Duration
	Row          int
	Lines        int
	Pieces       int
	Games        int
	BagLeft      int
}

func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		State:        e.state,
		Field:        e.field,
		Piece:        e.cur,
		Ghost:        e.field.Drop(e.cur),
		DropInterval: e.dropInterval,
		Clock:        e.clock,
		Row:          e.row,
		Lines:        e.lines,
		Pieces:       e.pieces,
		Games:        e.games,
	}
	if e.bag != nil {
		s.BagLeft = e.bag.Len()
	}
	return s
}
