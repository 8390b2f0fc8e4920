package driver_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/engine"
)

func newEngine(t *testing.T, opts ...engine.Option) *engine.Engine {
	t.Helper()
	e, err := engine.New(append([]engine.Option{engine.WithSeed(7)}, opts...)...)
	require.NoError(t, err)
	return e
}

type countingSystem struct {
	ExecuteCount int
	order        *[]string
	name         string
}

func (s *countingSystem) Execute(frame *driver.UpdateFrame) {
	s.ExecuteCount++
	if s.order != nil {
		*s.order = append(*s.order, s.name)
	}
}

type probeSystem struct {
	seen []int
}

func (s *probeSystem) Execute(frame *driver.UpdateFrame) {
	x, _ := pieceX(frame.Engine)
	s.seen = append(s.seen, x)
}

func pieceX(e *engine.Engine) (int, int) {
	snap := e.Snapshot()
	return snap.Active.X, snap.Active.Y
}

func TestScheduler(t *testing.T) {
	t.Run("systems run in registration order", func(t *testing.T) {
		var order []string
		s := driver.NewScheduler(newEngine(t))
		first := &countingSystem{order: &order, name: "first"}
		second := &countingSystem{order: &order, name: "second"}
		s.Register(first)
		s.Register(second)

		s.Once(time.Millisecond)
		s.Once(time.Millisecond)

		assert.Equal(t, 2, first.ExecuteCount)
		assert.Equal(t, 2, second.ExecuteCount)
		assert.Equal(t, []string{"first", "second", "first", "second"}, order)
	})

	t.Run("input system applies submissions before later systems", func(t *testing.T) {
		e := newEngine(t)
		s := driver.NewScheduler(e)
		probe := &probeSystem{}
		input := &driver.InputSystem{}
		s.Register(input)
		s.Register(probe)

		start, _ := pieceX(e)
		s.Submit(engine.CommandMoveLeft)
		s.Once(time.Millisecond)

		require.Len(t, probe.seen, 1)
		assert.Equal(t, start-1, probe.seen[0])
		assert.Equal(t, 1, input.Applied)
	})

	t.Run("submissions apply after systems without an input system", func(t *testing.T) {
		e := newEngine(t)
		s := driver.NewScheduler(e)
		probe := &probeSystem{}
		s.Register(probe)

		start, _ := pieceX(e)
		s.Submit(engine.CommandMoveRight)
		s.Once(time.Millisecond)

		assert.Equal(t, []int{start}, probe.seen)
		x, _ := pieceX(e)
		assert.Equal(t, start+1, x)
	})

	t.Run("gravity follows the drop interval", func(t *testing.T) {
		e := newEngine(t, engine.WithDropInterval(100*time.Millisecond))
		s := driver.NewScheduler(e)
		gravity := &driver.GravitySystem{}
		s.Register(&driver.InputSystem{})
		s.Register(gravity)

		for range 10 {
			s.Once(50 * time.Millisecond)
		}
		// The counter must exceed the interval, so every third frame drops.
		assert.Equal(t, 3, gravity.Drops)
		_, y := pieceX(e)
		assert.Equal(t, 3, y)
	})

	t.Run("paused engines ignore piece commands", func(t *testing.T) {
		e := newEngine(t)
		s := driver.NewScheduler(e)
		input := &driver.InputSystem{}
		s.Register(input)

		s.Submit(engine.CommandTogglePause)
		s.Submit(engine.CommandMoveLeft)
		s.Submit(engine.CommandHardDrop)
		s.Once(time.Millisecond)

		assert.Equal(t, engine.Paused, e.State())
		assert.Equal(t, 1, input.Applied)
		assert.Equal(t, 2, input.Ignored)
		assert.Equal(t, 0, e.Stats().Locked)
	})
}

func TestSchedulerRun(t *testing.T) {
	s := driver.NewScheduler(newEngine(t))
	counter := &countingSystem{}
	s.Register(counter)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	s.Run(ctx, 5*time.Millisecond)

	assert.Positive(t, counter.ExecuteCount)
	assert.EqualValues(t, counter.ExecuteCount, s.GetStats().Frames)
}

func TestSchedulerStats(t *testing.T) {
	s := driver.NewScheduler(newEngine(t))
	s.Register(&driver.InputSystem{})
	s.Register(&driver.GravitySystem{})

	s.Submit(engine.CommandRotate)
	s.Submit(engine.CommandTogglePause)
	s.Submit(engine.CommandHold)
	for range 3 {
		s.Once(time.Millisecond)
	}

	stats := s.GetStats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.EqualValues(t, 3, stats.Frames)
	assert.EqualValues(t, 6, stats.TotalExecutions)
	assert.EqualValues(t, 2, stats.CommandsApplied)
	assert.EqualValues(t, 1, stats.CommandsIgnored)

	require.Len(t, stats.Systems, 2)
	assert.Equal(t, "InputSystem", stats.Systems[0].Name)
	assert.Equal(t, "GravitySystem", stats.Systems[1].Name)
	for _, sys := range stats.Systems {
		assert.EqualValues(t, 3, sys.ExecutionCount)
		assert.LessOrEqual(t, sys.MinDuration, sys.MaxDuration)
		assert.Equal(t, sys.TotalDuration/3, sys.AvgDuration)
	}
}

func TestGameOverSystem(t *testing.T) {
	e := newEngine(t)
	s := driver.NewScheduler(e)
	var finals []engine.Score
	s.Register(&driver.InputSystem{})
	s.Register(&driver.GameOverSystem{
		Delay:      2,
		OnGameOver: func(sc engine.Score) { finals = append(finals, sc) },
	})

	for e.State() != engine.GameOver {
		s.Submit(engine.CommandHardDrop)
		s.Once(time.Millisecond)
		require.Less(t, e.Stats().Locked, engine.Rows*engine.Cols)
	}

	s.Once(time.Millisecond)
	assert.Equal(t, engine.GameOver, e.State())
	s.Once(time.Millisecond)
	assert.Equal(t, engine.Playing, e.State())
	assert.Len(t, finals, 1)
}
