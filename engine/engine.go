package engine

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// State is the engine's lifecycle state.
type State uint8

const (
	Playing State = iota
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Score tracks points, level and cleared lines.
type Score struct {
	Points int
	Level  int
	Lines  int
}

// linesPerLevel is the number of cleared rows between level increments.
const linesPerLevel = 10

// Credit adds cleared rows to s. Points use the level before the rows are counted;
// the level is recomputed afterwards.
func (s *Score) Credit(cleared int) {
	if cleared <= 0 {
		return
	}
	s.Points += cleared * 100 * s.Level
	s.Lines += cleared
	s.Level = s.Lines/linesPerLevel + 1
}

// Engine owns the board, the active and next pieces, the hold slot and the score.
// Create one with New; it is not safe for concurrent use.
type Engine struct {
	board   *Board
	piece   *Piece
	next    *Piece
	hold    *Shape
	canHold bool
	score   Score
	state   State

	dropInterval time.Duration
	dropCounter  time.Duration

	rng     *rand.Rand
	stats   *Stats
	onEvent func(Event)
}

// New creates an engine with a fresh Cols × Rows board, a random active piece and
// a random next piece. It fails only on invalid options.
func New(opts ...Option) (*Engine, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	board, err := NewBoard(Cols, Rows)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	e := &Engine{
		board:        board,
		dropInterval: cfg.dropInterval,
		rng:          cfg.rng,
		stats:        newStats(),
		onEvent:      cfg.onEvent,
	}
	e.start()
	return e, nil
}

// start puts the engine into its initial playing state.
func (e *Engine) start() {
	e.board.Reset()
	e.score = Score{Level: 1}
	e.piece = e.spawnRandom()
	e.next = e.spawnRandom()
	e.hold = nil
	e.canHold = true
	e.state = Playing
	e.dropCounter = 0
	e.stats.games++
}

func (e *Engine) spawnRandom() *Piece {
	s := PickRandom(e.rng)
	e.stats.recordSpawn(s.Kind)
	return Spawn(s, e.board.Width())
}

func (e *Engine) emit(kind EventKind, piece Kind, lines int) {
	if e.onEvent == nil {
		return
	}
	e.onEvent(Event{Kind: kind, Piece: piece, Lines: lines, Score: e.score})
}

// Reset discards the current game and starts a new one. Lifetime stats are kept.
func (e *Engine) Reset() {
	e.start()
	e.emit(EventReset, e.piece.Kind(), 0)
}

// TogglePause switches between Playing and Paused and returns the new state.
// It has no effect once the game is over.
func (e *Engine) TogglePause() State {
	switch e.state {
	case Playing:
		e.state = Paused
		e.emit(EventPaused, e.piece.Kind(), 0)
	case Paused:
		e.state = Playing
		e.emit(EventResumed, e.piece.Kind(), 0)
	}
	return e.state
}

// Tick advances the drop timer by dt. Once the accumulated time exceeds the drop
// interval the active piece moves down one row and the timer restarts. Ticks are
// ignored unless the engine is Playing. It reports whether a drop was issued.
func (e *Engine) Tick(dt time.Duration) bool {
	if e.state != Playing {
		return false
	}
	e.dropCounter += dt
	if e.dropCounter <= e.dropInterval {
		return false
	}
	e.dropCounter = 0
	e.Move(0, 1)
	return true
}

// Move translates the active piece. A rejected downward move locks the piece.
func (e *Engine) Move(dx, dy int) bool {
	switch e.piece.Move(e.board, dx, dy) {
	case Moved:
		return true
	case Resting:
		e.lockPiece()
	}
	return false
}

// Rotate turns the active piece clockwise if the result does not collide.
func (e *Engine) Rotate() bool {
	return e.piece.Rotate(e.board)
}

// HardDrop moves the active piece down until it rests and locks. It returns the
// number of rows descended.
func (e *Engine) HardDrop() int {
	// Every successful step moves the piece toward the floor, so the loop ends.
	rows := 0
	for e.Move(0, 1) {
		rows++
	}
	return rows
}

// Hold parks the active piece's blueprint. With an empty slot the next piece
// becomes active; otherwise the held blueprint is respawned at the top. Only one
// hold is allowed per piece until the next lock. It reports whether it acted.
func (e *Engine) Hold() bool {
	if !e.canHold {
		return false
	}
	outgoing := e.piece.Blueprint()
	if e.hold == nil {
		e.piece = e.next
		e.next = e.spawnRandom()
	} else {
		e.piece = Spawn(*e.hold, e.board.Width())
	}
	e.hold = &outgoing
	e.canHold = false
	e.stats.holds++
	e.emit(EventHold, outgoing.Kind, 0)
	return true
}

// lockPiece commits the resting piece, clears rows, credits the score and promotes
// the next piece. A piece resting on the top row ends the game instead, leaving
// the board untouched.
func (e *Engine) lockPiece() {
	if e.state == GameOver {
		return
	}
	if _, y := e.piece.Position(); y <= 0 {
		e.state = GameOver
		e.emit(EventGameOver, e.piece.Kind(), 0)
		return
	}

	locked := e.piece.Kind()
	e.board.Commit(e.piece)
	cleared := e.board.ClearLines()
	e.updateScore(cleared)

	e.piece = e.next
	e.next = e.spawnRandom()
	e.canHold = true
	e.stats.locked++

	e.emit(EventLocked, locked, 0)
	if cleared > 0 {
		e.emit(EventLinesCleared, locked, cleared)
	}
}

func (e *Engine) updateScore(cleared int) {
	e.score.Credit(cleared)
	e.stats.recordClear(cleared)
}

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// Score returns the current score.
func (e *Engine) Score() Score { return e.score }

// CanHold reports whether Hold would act.
func (e *Engine) CanHold() bool { return e.canHold }

// DropInterval returns the configured gravity interval.
func (e *Engine) DropInterval() time.Duration { return e.dropInterval }

// Stats returns a copy of the lifetime counters.
func (e *Engine) Stats() StatsSnapshot { return e.stats.snapshot() }

// GhostY returns the row at which the active piece would come to rest.
func (e *Engine) GhostY() int {
	_, y := e.piece.Position()
	return y + e.piece.dropDistance(e.board)
}
