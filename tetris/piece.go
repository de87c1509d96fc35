package tetris

// Piece is the falling piece: a kind in one rotation at a pivot position.
type Piece struct {
	Kind Kind
	Rot  int
	X, Y int
}

const (
	spawnX = FieldWidth/2 - 1
	spawnY = FieldHeight - 3
)

// Spawn returns a new piece of kind k at the spawn position. If it would
// not fit on an empty field there it starts one row lower.
func Spawn(k Kind) Piece {
	p := Piece{Kind: k, X: spawnX, Y: spawnY}
	var empty Field
	if !empty.Fits(p.Shape(), p.X, p.Y) {
		p.Y = spawnY - 1
	}
	return p
}

func (p Piece) Shape() Shape {
	return p.Kind.Shape(p.Rot)
}

// Cells returns the absolute field cells of p.
func (p Piece) Cells() [4]Cell {
	var cells [4]Cell
	for i, c := range p.Shape() {
		cells[i] = Cell{X: p.X + c.X, Y: p.Y + c.Y}
	}
	return cells
}

// Moved returns p shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns p in its next rotation state.
func (p Piece) Rotated() Piece {
	p.Rot = (p.Rot + 1) % Rotations
	return p
}

// FitsPiece reports whether p can be placed on f.
func (f *Field) FitsPiece(p Piece) bool {
	return f.Fits(p.Shape(), p.X, p.Y)
}

// Drop returns p moved down as far as it fits on f.
func (f *Field) Drop(p Piece) Piece {
	for f.FitsPiece(p.Moved(0, -1)) {
		p = p.Moved(0, -1)
	}
	return p
}
