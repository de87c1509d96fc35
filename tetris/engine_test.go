package tetris

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/scrollpack/input"
	"github.com/plus3/scrollpack/launcher"
	"github.com/plus3/scrollpack/panel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) (*Engine, *panel.Buffer) {
	t.Helper()
	buf := panel.NewBuffer()
	e := NewEngine(buf, WithRand(rand.New(rand.NewPCG(42, 42))))
	e.Init()
	return e, buf
}

func tick(e *Engine, dt time.Duration, buttons input.Buttons) {
	e.Update(&launcher.Frame{Elapsed: dt, Buttons: buttons})
}

func TestEngineInit(t *testing.T) {
	e, buf := newTestEngine(t)
	first := e.Snapshot()

	assert.Equal(t, Play, first.State)
	assert.Equal(t, 700*time.Millisecond, first.DropInterval)
	assert.Equal(t, Spawn(first.Piece.Kind), first.Piece)
	assert.Zero(t, first.Field.Occupied())
	assert.Equal(t, uint64(1), buf.Commits())

	tick(e, 20*time.Millisecond, input.Buttons{B: true})
	e.Init()
	e.Init()
	second := e.Snapshot()

	assert.Equal(t, first.State, second.State)
	assert.Equal(t, first.Field, second.Field)
	assert.Equal(t, first.DropInterval, second.DropInterval)
	assert.Equal(t, first.Clock, second.Clock)
	assert.Equal(t, first.Piece.X, second.Piece.X)
	assert.Equal(t, first.Piece.Y, second.Piece.Y)
	assert.Equal(t, first.Piece.Rot, second.Piece.Rot)
	assert.Equal(t, first.Lines, second.Lines)
	assert.Equal(t, first.BagLeft, second.BagLeft)
}

func TestEngineMoves(t *testing.T) {
	t.Run("moves are edge triggered", func(t *testing.T) {
		e, _ := newTestEngine(t)
		x := e.Snapshot().Piece.X

		tick(e, 20*time.Millisecond, input.Buttons{B: true})
		tick(e, 20*time.Millisecond, input.Buttons{B: true})
		assert.Equal(t, x-1, e.Snapshot().Piece.X)

		tick(e, 20*time.Millisecond, input.Buttons{})
		tick(e, 20*time.Millisecond, input.Buttons{A: true})
		tick(e, 20*time.Millisecond, input.Buttons{A: true})
		assert.Equal(t, x, e.Snapshot().Piece.X)
	})

	t.Run("walls stop horizontal moves", func(t *testing.T) {
		e, _ := newTestEngine(t)
		for i := 0; i < 10; i++ {
			tick(e, time.Millisecond, input.Buttons{B: i%2 == 0})
		}
		p := e.Snapshot().Piece
		for _, c := range p.Cells() {
			assert.GreaterOrEqual(t, c.X, 0)
		}
		assert.False(t, e.field.FitsPiece(p.Moved(-1, 0)))
	})

	t.Run("rotation kicks left first", func(t *testing.T) {
		e, _ := newTestEngine(t)
		// vertical I against the right wall
		e.cur = Piece{Kind: I, Rot: 1, X: 4, Y: 5}
		tick(e, time.Millisecond, input.Buttons{Y: true})
		assert.Equal(t, Piece{Kind: I, Rot: 2, X: 3, Y: 5}, e.cur)
	})

	t.Run("rotation kicks right", func(t *testing.T) {
		e, _ := newTestEngine(t)
		// vertical I against the left wall
		e.cur = Piece{Kind: I, Rot: 3, X: -1, Y: 5}
		require.True(t, e.field.FitsPiece(e.cur))
		tick(e, time.Millisecond, input.Buttons{Y: true})
		assert.Equal(t, Piece{Kind: I, Rot: 0, X: 0, Y: 5}, e.cur)
	})

	t.Run("rotation without room is rejected", func(t *testing.T) {
		e, _ := newTestEngine(t)
		for x := 0; x < 6; x++ {
			e.field[x][6] = 80
		}
		e.cur = Piece{Kind: I, Rot: 1, X: 4, Y: 5}
		require.True(t, e.field.FitsPiece(e.cur))
		tick(e, time.Millisecond, input.Buttons{Y: true})
		assert.Equal(t, Piece{Kind: I, Rot: 1, X: 4, Y: 5}, e.cur)
	})

	t.Run("rotation in open space", func(t *testing.T) {
		e, _ := newTestEngine(t)
		e.cur = Piece{Kind: T, X: 2, Y: 8}
		tick(e, time.Millisecond, input.Buttons{Y: true})
		assert.Equal(t, Piece{Kind: T, Rot: 1, X: 2, Y: 8}, e.cur)
	})
}

func TestEngineSoftDrop(t *testing.T) {
	t.Run("first held tick drops at once", func(t *testing.T) {
		e, _ := newTestEngine(t)
		y := e.cur.Y
		held := input.Buttons{X: true}

		tick(e, time.Millisecond, held)
		assert.Equal(t, y-1, e.cur.Y)

		tick(e, 30*time.Millisecond, held)
		assert.Equal(t, y-1, e.cur.Y, "60ms have not passed")

		tick(e, 30*time.Millisecond, held)
		assert.Equal(t, y-2, e.cur.Y)

		tick(e, 100*time.Millisecond, input.Buttons{})
		assert.Equal(t, y-2, e.cur.Y, "released")
	})

	t.Run("obstructed drop locks", func(t *testing.T) {
		e, _ := newTestEngine(t)
		e.cur = e.field.Drop(e.cur)

		tick(e, time.Millisecond, input.Buttons{X: true})

		s := e.Snapshot()
		assert.Equal(t, 1, s.Pieces)
		assert.Equal(t, 4, s.Field.Occupied())
		assert.Equal(t, Spawn(s.Piece.Kind), s.Piece)
		assert.Equal(t, Play, s.State)
	})
}

func TestEngineGravity(t *testing.T) {
	t.Run("drops after the interval", func(t *testing.T) {
		e, _ := newTestEngine(t)
		y := e.cur.Y

		for i := 0; i < 34; i++ {
			tick(e, 20*time.Millisecond, input.Buttons{})
		}
		assert.Equal(t, y, e.cur.Y, "680ms")

		tick(e, 20*time.Millisecond, input.Buttons{})
		assert.Equal(t, y-1, e.cur.Y, "700ms")
	})

	t.Run("one step per tick with a long gap", func(t *testing.T) {
		e, _ := newTestEngine(t)
		y := e.cur.Y
		tick(e, 5*time.Second, input.Buttons{})
		assert.Equal(t, y-1, e.cur.Y)
	})

	t.Run("zero elapsed does nothing", func(t *testing.T) {
		e, buf := newTestEngine(t)
		before := e.Snapshot()
		commits := buf.Commits()
		for i := 0; i < 100; i++ {
			tick(e, 0, input.Buttons{})
		}
		assert.Equal(t, before, e.Snapshot())
		assert.Equal(t, commits, buf.Commits(), "nothing changed, nothing drawn")
	})
}

func TestEngineLineClearSpeedsUp(t *testing.T) {
	e, _ := newTestEngine(t)

	prev := e.Snapshot().DropInterval
	for i := 0; i < 40; i++ {
		for y := 0; y < 2; y++ {
			for x := 2; x < FieldWidth; x++ {
				e.field[x][y] = 80
			}
		}
		e.cur = Piece{Kind: O, X: 0, Y: 0}
		require.True(t, e.lock())

		s := e.Snapshot()
		assert.Equal(t, 2*(i+1), s.Lines)
		assert.LessOrEqual(t, s.DropInterval, prev)
		assert.GreaterOrEqual(t, s.DropInterval, 120*time.Millisecond)
		assert.Zero(t, s.Field.Occupied())
		prev = s.DropInterval
	}
	assert.Equal(t, 120*time.Millisecond, prev)
}

func TestEngineGameOver(t *testing.T) {
	e, _ := newTestEngine(t)

	// every kind covers (1,0) of its pivot in rotation 0
	e.field[spawnX+1][spawnY] = 80
	e.cur = Piece{Kind: O, X: 0, Y: 0}
	tick(e, time.Millisecond, input.Buttons{X: true})
	require.Equal(t, GameOverFill, e.Snapshot().State)
	assert.Equal(t, 1, e.Snapshot().Games)

	field := e.Snapshot().Field
	piece := e.Snapshot().Piece

	// input is ignored and at most one row is filled per tick
	tick(e, time.Second, input.Buttons{A: true, Y: true})
	s := e.Snapshot()
	assert.Equal(t, piece, s.Piece)
	assert.Equal(t, FieldHeight-2, s.Row)
	for x := 0; x < FieldWidth; x++ {
		assert.NotZero(t, s.Field[x][FieldHeight-1])
	}
	assert.Equal(t, field[0][FieldHeight-2], s.Field[0][FieldHeight-2])

	tick(e, 39*time.Millisecond, input.Buttons{})
	assert.Equal(t, FieldHeight-2, e.Snapshot().Row, "the step timer restarted at zero")

	for i := 0; i < FieldHeight-1; i++ {
		tick(e, 40*time.Millisecond, input.Buttons{B: i%2 == 0})
	}
	s = e.Snapshot()
	require.Equal(t, GameOverClear, s.State)
	assert.Equal(t, FieldWidth*FieldHeight, s.Field.Occupied())
	assert.Equal(t, piece, s.Piece)

	for i := 0; i < FieldHeight-1; i++ {
		tick(e, 25*time.Millisecond, input.Buttons{X: i%2 == 0})
		assert.Equal(t, GameOverClear, e.Snapshot().State)
	}
	assert.Equal(t, FieldWidth, e.Snapshot().Field.Occupied(), "only the top row is left")

	tick(e, 25*time.Millisecond, input.Buttons{})
	s = e.Snapshot()
	assert.Equal(t, Play, s.State)
	assert.Zero(t, s.Field.Occupied())
	assert.Equal(t, 700*time.Millisecond, s.DropInterval)
	assert.Zero(t, s.Lines)
	assert.Zero(t, s.Pieces)
	assert.Equal(t, 1, s.Games)
}

func TestEngineRender(t *testing.T) {
	e, buf := newTestEngine(t)
	front := buf.Front()

	for _, c := range e.cur.Cells() {
		px, py := ToPanel(c.X, c.Y)
		assert.Equal(t, uint8(80), front[px][py])
	}
	for _, c := range e.field.Drop(e.cur).Cells() {
		px, py := ToPanel(c.X, c.Y)
		assert.Equal(t, uint8(30), front[px][py])
	}
	assert.Equal(t, 8, front.Lit())

	x, y := ToPanel(0, 0)
	assert.Equal(t, 0, x)
	assert.Equal(t, panel.Height-1, y)
	x, y = ToPanel(FieldWidth-1, FieldHeight-1)
	assert.Equal(t, panel.Width-1, x)
	assert.Equal(t, 0, y)
}

type failingDisplay struct {
	*panel.Buffer
	fails int
}

func (d *failingDisplay) Commit() error {
	d.fails++
	return errors.New("panel unplugged")
}

func TestEngineIgnoresCommitErrors(t *testing.T) {
	d := &failingDisplay{Buffer: panel.NewBuffer()}
	e := NewEngine(d, WithRand(rand.New(rand.NewPCG(1, 1))))
	e.Init()

	y := e.cur.Y
	tick(e, 700*time.Millisecond, input.Buttons{})
	assert.Equal(t, y-1, e.cur.Y)
	assert.Equal(t, 2, d.fails)
}

func TestEngineTiming(t *testing.T) {
	timing := DefaultTiming()
	timing.Gravity = 100 * time.Millisecond
	timing.Brightness = 200

	buf := panel.NewBuffer()
	e := NewEngine(buf, WithTiming(timing))
	assert.Equal(t, "tetris", e.Name())

	// Update before Init starts a game
	tick(e, 100*time.Millisecond, input.Buttons{})
	s := e.Snapshot()
	assert.Equal(t, spawnY-1, s.Piece.Y)
	assert.Equal(t, 100*time.Millisecond, s.DropInterval)

	c := s.Piece.Cells()[0]
	px, py := ToPanel(c.X, c.Y)
	assert.Equal(t, uint8(200), buf.Front()[px][py])
}
