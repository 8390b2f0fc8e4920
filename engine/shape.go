// Package engine implements the game state of a falling-block puzzle: the shape
// catalog, the active piece, the fixed-size board and the Engine that ties them
// together with locking, line clearing, hold and scoring.
//
// An Engine is not safe for concurrent use. It is meant to be driven from a single
// loop that forwards discrete commands and periodic ticks, see package driver.
package engine

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Kind identifies one of the catalog shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindZ
	KindS
	KindT

	kindCount
)

var kindNames = [kindCount]string{"I", "O", "Z", "S", "T"}

func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Kinds returns every catalog kind in catalog order.
func Kinds() []Kind {
	return []Kind{KindI, KindO, KindZ, KindS, KindT}
}

// Matrix is a rectangular occupancy grid, indexed [row][column].
type Matrix [][]bool

// Width returns the number of columns.
func (m Matrix) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Height returns the number of rows.
func (m Matrix) Height() int {
	return len(m)
}

// Rotate returns a new matrix rotated 90° clockwise: transpose, then reverse each row.
// The receiver is left untouched.
func (m Matrix) Rotate() Matrix {
	h, w := m.Height(), m.Width()
	rotated := make(Matrix, w)
	for i := range rotated {
		rotated[i] = make([]bool, h)
	}
	for r := range h {
		for c := range w {
			rotated[c][h-1-r] = m[r][c]
		}
	}
	return rotated
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	clone := make(Matrix, len(m))
	for i, row := range m {
		clone[i] = append([]bool(nil), row...)
	}
	return clone
}

// Equal reports whether both matrices have the same dimensions and cells.
func (m Matrix) Equal(other Matrix) bool {
	if m.Height() != other.Height() || m.Width() != other.Width() {
		return false
	}
	for r := range m {
		for c := range m[r] {
			if m[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

func (m Matrix) String() string {
	var sb strings.Builder
	for r, row := range m {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, filled := range row {
			if filled {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// Shape is a catalog template: a kind, its occupancy matrix and its color tag.
type Shape struct {
	Kind   Kind
	Matrix Matrix
	Color  Color
}

// Clone returns a copy of s that shares no memory with it.
func (s Shape) Clone() Shape {
	return Shape{
		Kind:   s.Kind,
		Matrix: s.Matrix.Clone(),
		Color:  s.Color,
	}
}

// catalog holds the templates. It is never handed out directly; every accessor clones.
var catalog = [kindCount]Shape{
	KindI: {Kind: KindI, Color: ColorRed, Matrix: Matrix{
		{true, true, true, true},
	}},
	KindO: {Kind: KindO, Color: ColorGreen, Matrix: Matrix{
		{true, true},
		{true, true},
	}},
	KindZ: {Kind: KindZ, Color: ColorBlue, Matrix: Matrix{
		{true, true, false},
		{false, true, true},
	}},
	KindS: {Kind: KindS, Color: ColorYellow, Matrix: Matrix{
		{false, true, true},
		{true, true, false},
	}},
	KindT: {Kind: KindT, Color: ColorOrange, Matrix: Matrix{
		{true, true, true},
		{false, true, false},
	}},
}

// Shapes returns copies of all templates in catalog order.
func Shapes() []Shape {
	shapes := make([]Shape, 0, len(catalog))
	for _, s := range catalog {
		shapes = append(shapes, s.Clone())
	}
	return shapes
}

// ShapeOf returns a copy of the template for k.
func ShapeOf(k Kind) (Shape, bool) {
	if k >= kindCount {
		return Shape{}, false
	}
	return catalog[k].Clone(), true
}

// PickRandom returns a copy of a uniformly chosen template.
func PickRandom(rng *rand.Rand) Shape {
	return catalog[rng.IntN(len(catalog))].Clone()
}
