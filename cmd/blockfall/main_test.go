package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/blockfall/engine"
)

func TestShouldFire(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		repeat   bool
		want     bool
	}{
		{"not pressed", 0, true, false},
		{"first tick", 1, false, true},
		{"held without repeat", 20, false, false},
		{"before delay", repeatDelay - 1, true, false},
		{"at delay", repeatDelay, true, true},
		{"between repeats", repeatDelay + 1, true, false},
		{"next repeat", repeatDelay + repeatInterval, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldFire(tt.duration, tt.repeat))
		})
	}
}

func TestBindingsCoverCommands(t *testing.T) {
	bound := map[engine.Command]bool{}
	for _, b := range bindings {
		bound[b.command] = true
	}
	for c := engine.CommandMoveLeft; c <= engine.CommandReset; c++ {
		assert.True(t, bound[c], "no key for %s", c)
	}
}

func TestHudLines(t *testing.T) {
	snap := engine.Snapshot{Score: engine.Score{Points: 300, Level: 2, Lines: 11}}
	assert.Equal(t, []string{"Score: 300", "Level: 2", "Lines: 11"}, hudLines(snap))

	snap.State = engine.GameOver
	lines := hudLines(snap)
	assert.Equal(t, "GAME OVER - press R", lines[len(lines)-1])

	snap.State = engine.Paused
	lines = hudLines(snap)
	assert.Equal(t, "PAUSED - press P", lines[len(lines)-1])
}

func TestCellOrigin(t *testing.T) {
	x, y := cellOrigin(0, 0)
	assert.Equal(t, float32(BoardOffsetX), x)
	assert.Equal(t, float32(BoardOffsetY), y)

	x, y = cellOrigin(engine.Cols-1, engine.Rows-1)
	assert.Equal(t, float32(BoardOffsetX+(engine.Cols-1)*CellSize), x)
	assert.Equal(t, float32(BoardOffsetY+(engine.Rows-1)*CellSize), y)
}
