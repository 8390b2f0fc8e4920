package engine

import "fmt"

// EventKind classifies an Event.
type EventKind uint8

const (
	EventLocked EventKind = iota
	EventLinesCleared
	EventHold
	EventGameOver
	EventPaused
	EventResumed
	EventReset
)

func (k EventKind) String() string {
	switch k {
	case EventLocked:
		return "locked"
	case EventLinesCleared:
		return "lines-cleared"
	case EventHold:
		return "hold"
	case EventGameOver:
		return "game-over"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventReset:
		return "reset"
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event is reported to the handler installed with WithEventHandler after the
// engine state has been updated.
type Event struct {
	Kind  EventKind
	Piece Kind
	// Lines is the number of rows removed, set for EventLinesCleared.
	Lines int
	Score Score
}

func (e Event) String() string {
	switch e.Kind {
	case EventLinesCleared:
		return fmt.Sprintf("%s lines=%d score=%d level=%d total=%d", e.Kind, e.Lines, e.Score.Points, e.Score.Level, e.Score.Lines)
	case EventLocked, EventHold:
		return fmt.Sprintf("%s piece=%s", e.Kind, e.Piece)
	case EventGameOver:
		return fmt.Sprintf("%s score=%d lines=%d", e.Kind, e.Score.Points, e.Score.Lines)
	}
	return e.Kind.String()
}
