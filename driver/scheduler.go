// Package driver runs an engine from a frame loop. Input collaborators submit
// commands between frames; each call to Scheduler.Once runs the registered systems
// in order and then applies whatever commands they queued.
package driver

import (
	"context"
	"reflect"
	"time"

	"github.com/plus3/blockfall/engine"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	Frames          int64
	TotalExecutions int64
	// CommandsApplied and CommandsIgnored count every flushed engine command.
	CommandsApplied int64
	CommandsIgnored int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler owns the frame loop around one engine. It is not safe for concurrent
// use: Submit and Once must be called from the same goroutine.
type Scheduler struct {
	engine      *engine.Engine
	input       *Commands
	commands    *Commands
	systems     []System
	systemStats []*systemStatsInternal

	frames int64
}

// NewScheduler creates a scheduler driving e.
func NewScheduler(e *engine.Engine) *Scheduler {
	return &Scheduler{
		engine:   e,
		input:    newCommands(),
		commands: newCommands(),
		systems:  make([]System, 0),
	}
}

// Engine returns the driven engine.
func (s *Scheduler) Engine() *engine.Engine {
	return s.engine
}

// Register appends a system to the frame.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Submit queues an input command for the next frame. Submitted commands are
// applied by InputSystem, or after the systems run when none is registered.
func (s *Scheduler) Submit(cmd engine.Command) {
	s.input.Push(cmd)
}

// Once executes all registered systems once with the given delta time, then
// flushes any commands still queued.
func (s *Scheduler) Once(dt time.Duration) {
	frame := newUpdateFrame(dt, s.input, s.commands, s.engine)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	s.input.Flush(s.engine)
	s.commands.Flush(s.engine)
	s.frames++
}

// Run executes frames at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime)
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount:     len(s.systems),
		Frames:          s.frames,
		CommandsApplied: s.input.applied + s.commands.applied,
		CommandsIgnored: s.input.ignored + s.commands.ignored,
		Systems:         make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
