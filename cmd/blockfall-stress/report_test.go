package main

import (
	"bytes"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/engine"
)

func TestStatsFinalize(t *testing.T) {
	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)

	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()
	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)
}

func TestGameRecorderSummary(t *testing.T) {
	r := &GameRecorder{}
	assert.Equal(t, Summary{}, r.Summary())

	r.Record(engine.Score{Points: 100, Level: 1, Lines: 1})
	r.Record(engine.Score{Points: 1200, Level: 2, Lines: 12})
	assert.Equal(t, Summary{
		Games:      2,
		TotalScore: 1300,
		AvgScore:   650,
		BestScore:  1200,
		BestLevel:  2,
		TotalLines: 13,
	}, r.Summary())
}

func TestAutoplayFinishesGames(t *testing.T) {
	e, err := engine.New(engine.WithSeed(5), engine.WithDropInterval(time.Millisecond))
	require.NoError(t, err)

	recorder := &GameRecorder{}
	scheduler := driver.NewScheduler(e)
	scheduler.Register(NewAutoplaySystem(rand.New(rand.NewPCG(5, 6)), 3))
	scheduler.Register(&driver.InputSystem{})
	scheduler.Register(&driver.GravitySystem{})
	scheduler.Register(&driver.GameOverSystem{OnGameOver: recorder.Record})

	for range 5000 {
		scheduler.Once(2 * time.Millisecond)
	}

	assert.NotEmpty(t, recorder.Scores)
	assert.Equal(t, len(recorder.Scores)+1, e.Stats().Games, "every finished game was reset")
	assert.Positive(t, e.Stats().Locked)
}

func TestReportGenerate(t *testing.T) {
	report := &Report{
		Duration:  time.Second,
		Seed:      9,
		Games:     Summary{Games: 2, TotalScore: 300, AvgScore: 150, BestScore: 200, BestLevel: 1},
		Scheduler: &driver.SchedulerStats{Systems: []driver.SystemStats{{Name: "GravitySystem", ExecutionCount: 7}}},
	}
	report.Engine.Clears[2] = 3
	report.Engine.Spawned[engine.KindT] = 4

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	out := buf.String()

	assert.Contains(t, out, "# Blockfall Stress Test Report")
	assert.Contains(t, out, "- **Seed:** 9")
	assert.Contains(t, out, "- **Best Score:** 200 (level 1)")
	assert.Contains(t, out, "| Double | 3 |")
	assert.Contains(t, out, "| "+engine.KindT.String()+" | 4 |")
	assert.Contains(t, out, "| GravitySystem | 7 |")
	assert.Contains(t, out, "- **Lines Cleared:** 6 in 3 clears")
	assert.NotContains(t, out, "GC Pause Durations")
}
