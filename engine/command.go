package engine

import (
	"fmt"
	"strings"
)

// Command is a discrete input accepted by Engine.Dispatch.
type Command uint8

const (
	CommandMoveLeft Command = iota + 1
	CommandMoveRight
	CommandSoftDrop
	CommandRotate
	CommandHardDrop
	CommandHold
	CommandTogglePause
	CommandReset
)

var commandNames = map[Command]string{
	CommandMoveLeft:    "left",
	CommandMoveRight:   "right",
	CommandSoftDrop:    "down",
	CommandRotate:      "rotate",
	CommandHardDrop:    "drop",
	CommandHold:        "hold",
	CommandTogglePause: "pause",
	CommandReset:       "reset",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

// ParseCommand maps a command name (as returned by String) back to a Command.
func ParseCommand(name string) (Command, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range commandNames {
		if n == name {
			return c, true
		}
	}
	return 0, false
}

// Dispatch applies cmd and reports whether it changed anything. It is the single
// gate for input: piece commands only run while Playing, TogglePause and Reset are
// always accepted, and unknown commands are ignored.
func (e *Engine) Dispatch(cmd Command) bool {
	switch cmd {
	case CommandTogglePause:
		before := e.state
		return e.TogglePause() != before
	case CommandReset:
		e.Reset()
		return true
	}

	if e.state != Playing {
		return false
	}

	switch cmd {
	case CommandMoveLeft:
		return e.Move(-1, 0)
	case CommandMoveRight:
		return e.Move(1, 0)
	case CommandSoftDrop:
		return e.Move(0, 1)
	case CommandRotate:
		return e.Rotate()
	case CommandHardDrop:
		e.HardDrop()
		return true
	case CommandHold:
		return e.Hold()
	}
	return false
}
