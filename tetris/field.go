package tetris

const (
	FieldWidth  = 7
	FieldHeight = 17
)

// Field is the playfield indexed [x][y] with y = 0 at the bottom. A cell
// holds the brightness it is drawn with, 0 means empty.
type Field [FieldWidth][FieldHeight]uint8

// InBounds reports whether (x, y) lies on the field.
func InBounds(x, y int) bool {
	return x >= 0 && x < FieldWidth && y >= 0 && y < FieldHeight
}

// Fits reports whether shape placed with its pivot at (x, y) lies entirely
// on the field and covers only empty cells. Every move, rotation and drop is
// decided by it.
func (f *Field) Fits(shape Shape, x, y int) bool {
	for _, c := range shape {
		cx, cy := x+c.X, y+c.Y
		if !InBounds(cx, cy) || f[cx][cy] != 0 {
			return false
		}
	}
	return true
}

// Lock writes brightness v into the cells covered by shape at (x, y).
func (f *Field) Lock(shape Shape, x, y int, v uint8) {
	for _, c := range shape {
		cx, cy := x+c.X, y+c.Y
		if InBounds(cx, cy) {
			f[cx][cy] = v
		}
	}
}

// RowFull reports whether every cell of row y is occupied.
func (f *Field) RowFull(y int) bool {
	for x := 0; x < FieldWidth; x++ {
		if f[x][y] == 0 {
			return false
		}
	}
	return true
}

// ClearLines removes every full row and returns how many there were. Rows
// are scanned bottom to top; after a removal the same row index is checked
// again since the row above has moved into it.
func (f *Field) ClearLines() int {
	cleared := 0
	for y := 0; y < FieldHeight; {
		if !f.RowFull(y) {
			y++
			continue
		}
		cleared++
		for yy := y; yy < FieldHeight-1; yy++ {
			for x := 0; x < FieldWidth; x++ {
				f[x][yy] = f[x][yy+1]
			}
		}
		f.SetRow(FieldHeight-1, 0)
	}
	return cleared
}

// SetRow sets every cell of row y to v.
func (f *Field) SetRow(y int, v uint8) {
	for x := 0; x < FieldWidth; x++ {
		f[x][y] = v
	}
}

// Occupied returns the number of non-empty cells.
func (f Field) Occupied() int {
	n := 0
	for x := range f {
		for y := range f[x] {
			if f[x][y] != 0 {
				n++
			}
		}
	}
	return n
}
