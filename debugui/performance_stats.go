package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/driver"
)

// FrameHistory is a fixed-size ring of frame times in milliseconds.
type FrameHistory struct {
	frames []float32
	index  int
	filled int
}

func NewFrameHistory(size int) *FrameHistory {
	if size < 1 {
		size = 1
	}
	return &FrameHistory{frames: make([]float32, size)}
}

// Push records one frame, overwriting the oldest once the ring is full.
func (h *FrameHistory) Push(dt time.Duration) {
	h.frames[h.index] = float32(dt.Seconds() * 1000.0)
	h.index = (h.index + 1) % len(h.frames)
	if h.filled < len(h.frames) {
		h.filled++
	}
}

// Average returns the mean of the recorded frames in milliseconds.
func (h *FrameHistory) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var total float32
	for _, ft := range h.frames[:h.filled] {
		total += ft
	}
	return total / float32(h.filled)
}

// Values returns the recorded frames oldest first.
func (h *FrameHistory) Values() []float32 {
	out := make([]float32, 0, h.filled)
	if h.filled < len(h.frames) {
		return append(out, h.frames[:h.filled]...)
	}
	out = append(out, h.frames[h.index:]...)
	return append(out, h.frames[:h.index]...)
}

// PerformanceStats shows frame times and the scheduler's per-system timings.
type PerformanceStats struct {
	scheduler *driver.Scheduler
	history   *FrameHistory
}

func NewPerformanceStats(scheduler *driver.Scheduler, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		scheduler: scheduler,
		history:   NewFrameHistory(historyFrames),
	}
}

func (ps *PerformanceStats) Render(dt time.Duration) {
	ps.history.Push(dt)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ps.scheduler.GetStats()

	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))
	imgui.Text(fmt.Sprintf("Commands: %d applied, %d ignored", stats.CommandsApplied, stats.CommandsIgnored))

	avgFrameTime := ps.history.Average()
	fps := float32(0)
	if avgFrameTime > 0 {
		fps = 1000.0 / avgFrameTime
	}
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, fps))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	values := ps.history.Values()
	if len(values) > 0 {
		imgui.PlotLinesFloatPtr("##frametime", &values[0], int32(len(values)))
	}

	if imgui.TreeNodeStr("System Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// FrameTimer measures wall time between calls.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() time.Duration {
	now := time.Now()
	delta := now.Sub(ft.lastFrameTime)
	ft.lastFrameTime = now
	return delta
}
