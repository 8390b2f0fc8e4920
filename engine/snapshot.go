package engine

// PieceView is a read-only copy of a piece for renderers.
type PieceView struct {
	Kind   Kind
	Matrix Matrix
	Color  Color
	X, Y   int
}

func viewOf(p *Piece) PieceView {
	x, y := p.Position()
	return PieceView{
		Kind:   p.Kind(),
		Matrix: p.Matrix(),
		Color:  p.Color(),
		X:      x,
		Y:      y,
	}
}

// Snapshot is a deep copy of everything a renderer needs for one frame.
type Snapshot struct {
	Board  [][]Color
	Active PieceView
	Next   PieceView
	// Hold is nil while the hold slot is empty. Its X and Y are zero.
	Hold    *PieceView
	Score   Score
	State   State
	CanHold bool
	GhostY  int
}

// Snapshot copies the observable engine state.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Board:   e.board.Cells(),
		Active:  viewOf(e.piece),
		Next:    viewOf(e.next),
		Score:   e.score,
		State:   e.state,
		CanHold: e.canHold,
		GhostY:  e.GhostY(),
	}
	if e.hold != nil {
		snap.Hold = &PieceView{
			Kind:   e.hold.Kind,
			Matrix: e.hold.Matrix.Clone(),
			Color:  e.hold.Color,
		}
	}
	return snap
}
