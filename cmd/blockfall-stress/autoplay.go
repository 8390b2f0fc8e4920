package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/engine"
)

// playable lists the commands the autoplayer chooses from. Pause and reset are
// left out so every run keeps playing until the board tops out.
var playable = []engine.Command{
	engine.CommandMoveLeft,
	engine.CommandMoveRight,
	engine.CommandSoftDrop,
	engine.CommandRotate,
	engine.CommandHardDrop,
	engine.CommandHold,
}

// AutoplaySystem pushes a few random commands every frame.
type AutoplaySystem struct {
	rng      *rand.Rand
	perFrame int
}

func NewAutoplaySystem(rng *rand.Rand, perFrame int) *AutoplaySystem {
	return &AutoplaySystem{rng: rng, perFrame: max(perFrame, 1)}
}

func (s *AutoplaySystem) Execute(frame *driver.UpdateFrame) {
	for range s.perFrame {
		frame.Commands.Push(playable[s.rng.IntN(len(playable))])
	}
}

// GameRecorder collects final scores.
type GameRecorder struct {
	Scores []engine.Score
}

func (r *GameRecorder) Record(s engine.Score) {
	r.Scores = append(r.Scores, s)
}

// Summary aggregates the recorded games.
type Summary struct {
	Games      int
	TotalScore int
	AvgScore   int
	BestScore  int
	BestLevel  int
	TotalLines int
}

func (r *GameRecorder) Summary() Summary {
	var s Summary
	s.Games = len(r.Scores)
	for _, sc := range r.Scores {
		s.TotalScore += sc.Points
		s.TotalLines += sc.Lines
		s.BestScore = max(s.BestScore, sc.Points)
		s.BestLevel = max(s.BestLevel, sc.Level)
	}
	if s.Games > 0 {
		s.AvgScore = s.TotalScore / s.Games
	}
	return s
}
