package driver

import "github.com/plus3/blockfall/engine"

// InputSystem applies the commands submitted to the scheduler since the previous
// frame. Register it before GravitySystem so input lands before the piece falls.
type InputSystem struct {
	Applied int
	Ignored int
}

func (s *InputSystem) Execute(frame *UpdateFrame) {
	if frame.input == nil {
		return
	}
	applied, ignored := frame.input.Flush(frame.Engine)
	s.Applied += applied
	s.Ignored += ignored
}

// GravitySystem advances the engine's drop timer by the frame delta.
type GravitySystem struct {
	Drops int
}

func (s *GravitySystem) Execute(frame *UpdateFrame) {
	if frame.Engine.Tick(frame.DeltaTime) {
		s.Drops++
	}
}

// GameOverSystem resets the engine a fixed number of frames after the game ends.
// OnGameOver, if set, receives the final score before the reset.
type GameOverSystem struct {
	Delay      int
	OnGameOver func(engine.Score)

	waited int
}

func (s *GameOverSystem) Execute(frame *UpdateFrame) {
	if frame.Engine.State() != engine.GameOver {
		s.waited = 0
		return
	}
	if s.waited == 0 && s.OnGameOver != nil {
		s.OnGameOver(frame.Engine.Score())
	}
	if s.waited < s.Delay {
		s.waited++
		return
	}
	s.waited = 0
	frame.Commands.Push(engine.CommandReset)
}
