package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/engine"
)

type Report struct {
	// Configuration
	Duration       time.Duration
	Seed           uint64
	DropInterval   time.Duration
	CommandsPerRun int

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Games          Summary
	Engine         engine.StatsSnapshot
	Scheduler      *driver.SchedulerStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// clearLabels names the clear histogram buckets 1 through 4.
var clearLabels = []string{"", "Single", "Double", "Triple", "Quad"}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Drop Interval:** {{.DropInterval}}
- **Commands Per Frame:** {{.CommandsPerRun}}

## Games
- **Finished Games:** {{.Games.Games}}
- **Total Score:** {{.Games.TotalScore}}
- **Average Score:** {{.Games.AvgScore}}
- **Best Score:** {{.Games.BestScore}} (level {{.Games.BestLevel}})
- **Lines Cleared:** {{.Engine.TotalLines}} in {{.Engine.TotalClears}} clears
- **Pieces Locked:** {{.Engine.Locked}}
- **Holds:** {{.Engine.Holds}}

| Clear | Count |
|---|---|
{{range $size, $n := .Engine.Clears}}{{if $size}}| {{clearLabel $size}} | {{$n}} |
{{end}}{{end}}
| Piece | Spawned |
|---|---|
{{range $kind, $n := .Engine.Spawned}}| {{kindName $kind}} | {{$n}} |
{{end}}
## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Commands:** {{.Scheduler.CommandsApplied}} applied, {{.Scheduler.CommandsIgnored}} ignored
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

| System | Runs | Avg | Max |
|---|---|---|---|
{{range .Scheduler.Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
		"clearLabel": func(size int) string {
			if size < len(clearLabels) {
				return clearLabels[size]
			}
			return fmt.Sprintf("%d rows", size)
		},
		"kindName": func(i int) string {
			return engine.Kind(i).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
