package engine

import "iter"

// MoveResult describes the outcome of Piece.Move.
type MoveResult uint8

const (
	// Moved means the translation was applied.
	Moved MoveResult = iota
	// Blocked means a lateral or upward translation collided and was rolled back.
	Blocked
	// Resting means a downward translation collided and was rolled back: the piece
	// cannot fall any further and should be locked.
	Resting
)

func (r MoveResult) String() string {
	switch r {
	case Moved:
		return "moved"
	case Blocked:
		return "blocked"
	case Resting:
		return "resting"
	}
	return "unknown"
}

// Piece is a falling instance of a shape. Its position is the board coordinate of
// the matrix's top-left corner. A piece owns its matrix; the board is only read.
type Piece struct {
	kind   Kind
	matrix Matrix
	color  Color
	x, y   int
}

// Spawn creates a piece from a copy of s, centred horizontally on a board of the
// given width and placed on the top row.
func Spawn(s Shape, cols int) *Piece {
	p := &Piece{
		kind:   s.Kind,
		matrix: s.Matrix.Clone(),
		color:  s.Color,
	}
	p.x = spawnColumn(cols, p.matrix.Width())
	return p
}

// spawnColumn is floor((cols-width)/2), also for narrow boards.
func spawnColumn(cols, width int) int {
	d := cols - width
	if d < 0 && d%2 != 0 {
		return d/2 - 1
	}
	return d / 2
}

// Kind returns the catalog kind the piece was spawned from.
func (p *Piece) Kind() Kind { return p.kind }

// Color returns the color written to the board when the piece locks.
func (p *Piece) Color() Color { return p.color }

// Position returns the board coordinate of the matrix's top-left corner.
func (p *Piece) Position() (x, y int) {
	return p.x, p.y
}

// Matrix returns a copy of the current, possibly rotated, matrix.
func (p *Piece) Matrix() Matrix {
	return p.matrix.Clone()
}

// Blueprint returns the piece's shape and color without its position.
func (p *Piece) Blueprint() Shape {
	return Shape{Kind: p.kind, Matrix: p.matrix.Clone(), Color: p.color}
}

// Cells yields the absolute board coordinates of every occupied cell.
func (p *Piece) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for dy, row := range p.matrix {
			for dx, filled := range row {
				if !filled {
					continue
				}
				if !yield(Point{X: p.x + dx, Y: p.y + dy}) {
					return
				}
			}
		}
	}
}

// Move translates the piece by (dx, dy). A colliding translation is rolled back;
// if it was a downward move the result is Resting, signalling that the piece
// should be locked.
func (p *Piece) Move(b *Board, dx, dy int) MoveResult {
	oldX, oldY := p.x, p.y
	p.x += dx
	p.y += dy
	if !p.Collides(b) {
		return Moved
	}
	p.x, p.y = oldX, oldY
	if dy > 0 {
		return Resting
	}
	return Blocked
}

// Rotate turns the piece 90° clockwise in place. There are no wall kicks: a
// colliding rotation is discarded and false is returned.
func (p *Piece) Rotate(b *Board) bool {
	old := p.matrix
	p.matrix = old.Rotate()
	if p.Collides(b) {
		p.matrix = old
		return false
	}
	return true
}

// Collides reports whether any occupied cell lies left or right of the board, at or
// below its last row, or over a locked cell. Cells above the top row never collide.
func (p *Piece) Collides(b *Board) bool {
	for pt := range p.Cells() {
		if pt.X < 0 || pt.X >= b.Width() || pt.Y >= b.Height() {
			return true
		}
		if pt.Y >= 0 && !b.At(pt.X, pt.Y).Empty() {
			return true
		}
	}
	return false
}

// dropDistance returns how many rows the piece can fall before resting.
func (p *Piece) dropDistance(b *Board) int {
	ghost := *p
	n := 0
	for ghost.Move(b, 0, 1) == Moved {
		n++
	}
	return n
}
