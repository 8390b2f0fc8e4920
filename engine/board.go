package engine

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Cols and Rows are the fixed dimensions of the Engine's board.
	Cols = 10
	Rows = 20
)

// ErrInvalidDimensions is returned when a board is created with a non-positive size.
var ErrInvalidDimensions = errors.New("board dimensions must be positive")

// Point is a cell coordinate on the board; Y grows downwards.
type Point struct {
	X, Y int
}

// Board is a fixed-size grid of locked cells, indexed [row][column].
// Only Commit, ClearLines and Reset mutate it.
type Board struct {
	cols  int
	rows  int
	cells [][]Color
}

// NewBoard creates an empty cols × rows board.
func NewBoard(cols, rows int) (*Board, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cols, rows)
	}
	b := &Board{
		cols:  cols,
		rows:  rows,
		cells: make([][]Color, rows),
	}
	for y := range b.cells {
		b.cells[y] = make([]Color, cols)
	}
	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.cols }

// Height returns the number of rows.
func (b *Board) Height() int { return b.rows }

// InBounds reports whether (x, y) is a cell of the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.cols && y >= 0 && y < b.rows
}

// At returns the cell at (x, y), or ColorNone when out of bounds.
func (b *Board) At(x, y int) Color {
	if !b.InBounds(x, y) {
		return ColorNone
	}
	return b.cells[y][x]
}

// IsRowFull reports whether every cell of row is occupied.
func (b *Board) IsRowFull(row int) bool {
	if row < 0 || row >= b.rows {
		return false
	}
	for _, c := range b.cells[row] {
		if c.Empty() {
			return false
		}
	}
	return true
}

// ClearLines removes every full row, shifting the rows above it down by one and
// inserting an empty row at the top. Rows are scanned bottom to top and the same
// index is examined again after a removal, so adjacent full rows are all caught in
// a single pass. It returns the number of rows removed.
func (b *Board) ClearLines() int {
	cleared := 0
	for y := b.rows - 1; y >= 0; y-- {
		if !b.IsRowFull(y) {
			continue
		}
		removed := b.cells[y]
		copy(b.cells[1:y+1], b.cells[:y])
		clear(removed)
		b.cells[0] = removed
		cleared++
		y++
	}
	return cleared
}

// Commit writes the occupied cells of p into the board using its color.
// The caller guarantees p rests at a legal position; a cell outside the board is a
// programming error and panics.
func (b *Board) Commit(p *Piece) {
	for pt := range p.Cells() {
		if !b.InBounds(pt.X, pt.Y) {
			panic(fmt.Sprintf("commit of %s piece out of bounds at (%d,%d)", p.Kind(), pt.X, pt.Y))
		}
		b.cells[pt.Y][pt.X] = p.Color()
	}
}

// Reset empties every cell.
func (b *Board) Reset() {
	for _, row := range b.cells {
		clear(row)
	}
}

// Cells returns a deep copy of the grid.
func (b *Board) Cells() [][]Color {
	out := make([][]Color, b.rows)
	for y, row := range b.cells {
		out[y] = append([]Color(nil), row...)
	}
	return out
}

// Filled returns the number of occupied cells.
func (b *Board) Filled() int {
	n := 0
	for _, row := range b.cells {
		for _, c := range row {
			if !c.Empty() {
				n++
			}
		}
	}
	return n
}

var colorRunes = [colorCount]byte{
	ColorNone:   '.',
	ColorRed:    'R',
	ColorGreen:  'G',
	ColorBlue:   'B',
	ColorYellow: 'Y',
	ColorOrange: 'O',
}

// String renders one line per row: '.' for empty cells and the initial of the
// color (R, G, B, Y, O) otherwise. ParseBoard reads the same format.
func (b *Board) String() string {
	var sb strings.Builder
	for y, row := range b.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			if c < colorCount {
				sb.WriteByte(colorRunes[c])
			} else {
				sb.WriteByte('?')
			}
		}
	}
	return sb.String()
}

// ParseBoard builds a board from the format produced by String. Blank lines and
// surrounding whitespace are ignored; every row must have the same width.
func ParseBoard(text string) (*Board, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("parse board: %w: 0x0", ErrInvalidDimensions)
	}
	b, err := NewBoard(len(lines[0]), len(lines))
	if err != nil {
		return nil, fmt.Errorf("parse board: %w", err)
	}
	for y, line := range lines {
		if len(line) != b.cols {
			return nil, fmt.Errorf("parse board: row %d has width %d, want %d", y, len(line), b.cols)
		}
		for x := range len(line) {
			c, ok := colorFromRune(line[x])
			if !ok {
				return nil, fmt.Errorf("parse board: unknown cell %q at (%d,%d)", line[x], x, y)
			}
			b.cells[y][x] = c
		}
	}
	return b, nil
}

func colorFromRune(r byte) (Color, bool) {
	for c, cr := range colorRunes {
		if cr == r {
			return Color(c), true
		}
	}
	return ColorNone, false
}
