package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockfall/engine"
)

// Held keys repeat after repeatDelay ticks, then every repeatInterval ticks.
const (
	repeatDelay    = 12
	repeatInterval = 3
)

type binding struct {
	keys    []ebiten.Key
	command engine.Command
	repeat  bool
}

var bindings = []binding{
	{keys: []ebiten.Key{ebiten.KeyArrowLeft}, command: engine.CommandMoveLeft, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowRight}, command: engine.CommandMoveRight, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowDown}, command: engine.CommandSoftDrop, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyX}, command: engine.CommandRotate},
	{keys: []ebiten.Key{ebiten.KeySpace}, command: engine.CommandHardDrop},
	{keys: []ebiten.Key{ebiten.KeyC}, command: engine.CommandHold},
	{keys: []ebiten.Key{ebiten.KeyP}, command: engine.CommandTogglePause},
	{keys: []ebiten.Key{ebiten.KeyR}, command: engine.CommandReset},
}

// shouldFire reports whether a key held for duration ticks triggers this tick.
func shouldFire(duration int, repeat bool) bool {
	if duration == 1 {
		return true
	}
	if !repeat || duration < repeatDelay {
		return false
	}
	return (duration-repeatDelay)%repeatInterval == 0
}

// Input turns keyboard state into engine commands.
type Input struct {
	submit func(engine.Command)
}

func NewInput(submit func(engine.Command)) *Input {
	return &Input{submit: submit}
}

// Poll submits the commands triggered this tick. At most one command per binding
// is submitted even when several of its keys are held.
func (in *Input) Poll() {
	for _, b := range bindings {
		for _, key := range b.keys {
			if shouldFire(inpututil.KeyPressDuration(key), b.repeat) {
				in.submit(b.command)
				break
			}
		}
	}
}

func quitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
}
