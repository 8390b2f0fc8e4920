package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyBoard(t *testing.T) *Board {
	t.Helper()
	b, err := NewBoard(Cols, Rows)
	require.NoError(t, err)
	return b
}

func spawnKind(t *testing.T, k Kind) *Piece {
	t.Helper()
	s, ok := ShapeOf(k)
	require.True(t, ok)
	return Spawn(s, Cols)
}

func TestSpawnPosition(t *testing.T) {
	tests := []struct {
		kind Kind
		x    int
	}{
		{KindI, 3},
		{KindO, 4},
		{KindZ, 3},
		{KindS, 3},
		{KindT, 3},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			p := spawnKind(t, tt.kind)
			x, y := p.Position()
			assert.Equal(t, tt.x, x)
			assert.Equal(t, 0, y)
		})
	}

	assert.Equal(t, -1, spawnColumn(3, 4), "floor division for pieces wider than the board")
}

func TestCollides(t *testing.T) {
	b := mustParseBoard(t, `
		....
		....
		..R.
		....
	`)
	o, _ := ShapeOf(KindO)
	p := Spawn(o, b.Width())

	t.Run("inside and clear", func(t *testing.T) {
		p.x, p.y = 0, 0
		assert.False(t, p.Collides(b))
		p.x, p.y = 0, 2
		assert.False(t, p.Collides(b))
	})

	t.Run("walls and floor", func(t *testing.T) {
		p.x, p.y = -1, 0
		assert.True(t, p.Collides(b))
		p.x, p.y = 3, 0
		assert.True(t, p.Collides(b))
		p.x, p.y = 0, 3
		assert.True(t, p.Collides(b))
	})

	t.Run("locked cell", func(t *testing.T) {
		p.x, p.y = 2, 1
		assert.True(t, p.Collides(b))
	})

	t.Run("above the top row", func(t *testing.T) {
		p.x, p.y = 0, -2
		assert.False(t, p.Collides(b))
		p.x, p.y = 2, -1
		assert.False(t, p.Collides(b), "the lower half sits on empty cells of row 0")
	})
}

func TestMoveRollsBack(t *testing.T) {
	b := emptyBoard(t)
	p := spawnKind(t, KindO)

	for range 4 {
		require.Equal(t, Moved, p.Move(b, -1, 0))
	}
	assert.Equal(t, Blocked, p.Move(b, -1, 0))
	x, y := p.Position()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	assert.Equal(t, Blocked, p.Move(b, -1, -1), "only downward rejections signal a rest")
	x, y = p.Position()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

func TestMoveDownUntilResting(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			b := emptyBoard(t)
			p := spawnKind(t, k)
			height := p.matrix.Height()

			moves := 0
			for p.Move(b, 0, 1) == Moved {
				moves++
				require.LessOrEqual(t, moves, Rows)
			}
			assert.Equal(t, Rows-height, moves)

			_, y := p.Position()
			assert.Equal(t, Rows-height, y, "a rejected downward move leaves the piece in place")
			assert.Equal(t, Resting, p.Move(b, 0, 1))
		})
	}
}

func TestRotate(t *testing.T) {
	b := emptyBoard(t)

	t.Run("applies when clear", func(t *testing.T) {
		p := spawnKind(t, KindI)
		require.True(t, p.Rotate(b))
		assert.Equal(t, 4, p.Matrix().Height())
	})

	t.Run("discarded against the wall", func(t *testing.T) {
		p := spawnKind(t, KindI)
		require.True(t, p.Rotate(b))
		for p.Move(b, 1, 0) == Moved {
		}
		x, _ := p.Position()
		require.Equal(t, Cols-1, x)

		before := p.Matrix()
		assert.False(t, p.Rotate(b))
		assert.True(t, before.Equal(p.Matrix()))
	})

	t.Run("O never changes", func(t *testing.T) {
		p := spawnKind(t, KindO)
		before := p.Matrix()
		assert.True(t, p.Rotate(b))
		assert.True(t, before.Equal(p.Matrix()))
	})
}

func TestPieceOwnsItsMatrix(t *testing.T) {
	p := spawnKind(t, KindT)
	m := p.Matrix()
	m[1][0] = true

	bp := p.Blueprint()
	bp.Matrix[0][0] = false

	assert.Equal(t, "###\n.#.", p.matrix.String())
	tee, _ := ShapeOf(KindT)
	assert.Equal(t, "###\n.#.", tee.Matrix.String())
}

func TestDropDistance(t *testing.T) {
	b := emptyBoard(t)
	p := spawnKind(t, KindT)
	assert.Equal(t, Rows-2, p.dropDistance(b))
	_, y := p.Position()
	assert.Equal(t, 0, y, "dropDistance must not move the piece")
}
