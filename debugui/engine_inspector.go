package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/engine"
)

const minimapCell = 8

// EventLog keeps the most recent engine events, newest last.
type EventLog struct {
	events []engine.Event
	limit  int
}

func NewEventLog(limit int) *EventLog {
	if limit < 1 {
		limit = 1
	}
	return &EventLog{limit: limit}
}

// Record is shaped to be passed to engine.WithEventHandler.
func (l *EventLog) Record(ev engine.Event) {
	if len(l.events) == l.limit {
		copy(l.events, l.events[1:])
		l.events = l.events[:l.limit-1]
	}
	l.events = append(l.events, ev)
}

func (l *EventLog) Events() []engine.Event {
	return append([]engine.Event(nil), l.events...)
}

// Composite overlays the active piece onto a copy of the snapshot's board.
// Cells of the piece above the top row are dropped.
func Composite(snap engine.Snapshot) [][]engine.Color {
	grid := make([][]engine.Color, len(snap.Board))
	for y, row := range snap.Board {
		grid[y] = append([]engine.Color(nil), row...)
	}

	active := snap.Active
	for r, row := range active.Matrix {
		for c, filled := range row {
			x, y := active.X+c, active.Y+r
			if !filled || y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
				continue
			}
			grid[y][x] = active.Color
		}
	}
	return grid
}

func pieceLabel(v *engine.PieceView) string {
	if v == nil {
		return "-"
	}
	return v.Kind.String()
}

// EngineInspector shows the live engine state with pause and reset controls.
// Submit receives button presses; pass the scheduler's Submit so they apply on
// the next frame like keyboard input.
type EngineInspector struct {
	engine *engine.Engine
	submit func(engine.Command)
	log    *EventLog
}

func NewEngineInspector(e *engine.Engine, submit func(engine.Command), log *EventLog) *EngineInspector {
	return &EngineInspector{engine: e, submit: submit, log: log}
}

func (ei *EngineInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 420), imgui.CondOnce)

	if !imgui.BeginV("Engine", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := ei.engine.Snapshot()

	if snap.State == engine.Playing {
		imgui.Text("State: playing")
	} else {
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "State: "+snap.State.String())
	}
	imgui.Text(fmt.Sprintf("Score: %d  Level: %d  Lines: %d", snap.Score.Points, snap.Score.Level, snap.Score.Lines))
	imgui.Text(fmt.Sprintf("Active: %s at (%d, %d)  ghost row %d", snap.Active.Kind, snap.Active.X, snap.Active.Y, snap.GhostY))
	imgui.Text(fmt.Sprintf("Next: %s  Hold: %s", pieceLabel(&snap.Next), pieceLabel(snap.Hold)))
	imgui.Text(fmt.Sprintf("Hold available: %t", snap.CanHold))
	imgui.Text(fmt.Sprintf("Drop interval: %s", ei.engine.DropInterval()))

	if ei.submit != nil {
		label := "Pause"
		if snap.State == engine.Paused {
			label = "Resume"
			imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0.2, 0.7, 0.2, 1.0))
		}
		if imgui.Button(label) {
			ei.submit(engine.CommandTogglePause)
		}
		if snap.State == engine.Paused {
			imgui.PopStyleColor()
		}
		imgui.SameLine()
		if imgui.Button("Reset") {
			ei.submit(engine.CommandReset)
		}
	}

	imgui.Separator()
	drawMinimap(Composite(snap))

	if ei.log != nil && imgui.TreeNodeStr("Recent Events") {
		for _, ev := range ei.log.Events() {
			imgui.BulletText(ev.String())
		}
		imgui.TreePop()
	}

	imgui.End()
}

func drawMinimap(grid [][]engine.Color) {
	if len(grid) == 0 {
		return
	}
	drawList := imgui.WindowDrawList()
	pos := imgui.CursorScreenPos()
	width := float32(len(grid[0]) * minimapCell)
	height := float32(len(grid) * minimapCell)

	drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+width, pos.Y+height), imgui.ColorU32Vec4(imgui.NewVec4(0.1, 0.1, 0.1, 1.0)))
	for y, row := range grid {
		for x, c := range row {
			if c.Empty() {
				continue
			}
			r, g, b := c.RGB()
			x0 := pos.X + float32(x*minimapCell)
			y0 := pos.Y + float32(y*minimapCell)
			color := imgui.ColorU32Vec4(imgui.NewVec4(float32(r)/255, float32(g)/255, float32(b)/255, 1.0))
			drawList.AddRectFilled(imgui.NewVec2(x0, y0), imgui.NewVec2(x0+minimapCell-1, y0+minimapCell-1), color)
		}
	}
	imgui.Dummy(imgui.NewVec2(width, height))
}
