// Package tetris implements a Tetris engine on a 7x17 playfield that is
// advanced one non-blocking Update call per tick.
package tetris

// Kind is one of the seven tetrominoes.
type Kind uint8

const (
	I Kind = iota
	J
	L
	O
	S
	T
	Z
)

// Kinds lists every kind in bag order.
var Kinds = [...]Kind{I, J, L, O, S, T, Z}

func (k Kind) String() string {
	switch k {
	case I:
		return "I"
	case J:
		return "J"
	case L:
		return "L"
	case O:
		return "O"
	case S:
		return "S"
	case T:
		return "T"
	case Z:
		return "Z"
	default:
		return "INVALID"
	}
}

// Cell is a position on the field, or an offset from a piece pivot.
type Cell struct {
	X, Y int
}

// Shape is the four cells of a piece in one rotation, relative to its pivot.
// Positive Y points up.
type Shape [4]Cell

// Rotations is the number of rotation states of every kind.
const Rotations = 4

var shapes = [len(Kinds)][Rotations]Shape{
	I: {
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{2, -1}, {2, 0}, {2, 1}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{1, -1}, {1, 0}, {1, 1}, {1, 2}},
	},
	J: {
		{{0, 0}, {1, 0}, {2, 0}, {2, 1}},
		{{1, -1}, {1, 0}, {1, 1}, {2, -1}},
		{{2, 0}, {1, 0}, {0, 0}, {0, -1}},
		{{1, 1}, {1, 0}, {1, -1}, {0, 1}},
	},
	L: {
		{{0, 0}, {1, 0}, {2, 0}, {0, 1}},
		{{1, -1}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 0}, {0, 0}, {2, -1}},
		{{1, 1}, {1, 0}, {1, -1}, {0, -1}},
	},
	O: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	S: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, -1}, {1, 0}, {2, 0}, {2, 1}},
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, -1}, {1, 0}, {2, 0}, {2, 1}},
	},
	T: {
		{{0, 0}, {1, 0}, {2, 0}, {1, 1}},
		{{1, -1}, {1, 0}, {1, 1}, {2, 0}},
		{{0, 0}, {1, 0}, {2, 0}, {1, -1}},
		{{1, -1}, {1, 0}, {1, 1}, {0, 0}},
	},
	Z: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, -1}, {1, 0}, {2, 0}, {1, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, -1}, {1, 0}, {2, 0}, {1, 1}},
	},
}

// Shape returns the offsets of k in rotation rot. rot is taken modulo
// Rotations.
func (k Kind) Shape(rot int) Shape {
	rot %= Rotations
	if rot < 0 {
		rot += Rotations
	}
	return shapes[k][rot]
}
