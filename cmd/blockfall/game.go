package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/engine"
)

// Game implements ebiten.Game around one engine.
type Game struct {
	Engine    *engine.Engine
	Scheduler *driver.Scheduler
	Input     *Input

	// imgui and imguiInput are nil unless the inspector overlay is enabled.
	imgui      *debugui_ebiten.ImguiBackend
	imguiInput *debugui.InputState
}

func NewGame(e *engine.Engine) *Game {
	scheduler := driver.NewScheduler(e)
	scheduler.Register(&driver.InputSystem{})
	scheduler.Register(&driver.GravitySystem{})

	return &Game{
		Engine:    e,
		Scheduler: scheduler,
		Input:     NewInput(scheduler.Submit),
	}
}

// EnableInspector registers the ImGui panels. It must be called before the
// first Update.
func (g *Game) EnableInspector(backend *debugui_ebiten.ImguiBackend, events *debugui.EventLog) {
	g.imgui = backend
	g.imguiInput = &debugui.InputState{}

	timer := debugui.NewFrameTimer()
	perf := debugui.NewPerformanceStats(g.Scheduler, 120)
	panels := &debugui.ImguiSystem{Input: g.imguiInput}
	panels.Add(
		debugui.Item{Render: debugui.NewEngineInspector(g.Engine, g.Scheduler.Submit, events).Render},
		debugui.Item{Render: debugui.NewStatsViewer(g.Engine).Render},
		debugui.Item{Render: func() { perf.Render(timer.GetDeltaTime()) }},
	)
	g.Scheduler.Register(panels)
}

func (g *Game) Update() error {
	if quitRequested() {
		return ebiten.Termination
	}

	if g.imgui == nil {
		g.step()
		return nil
	}

	g.imgui.Frame(g.step)
	return nil
}

func (g *Game) step() {
	if g.imguiInput == nil || !g.imguiInput.WantCaptureKeyboard {
		g.Input.Poll()
	}
	g.Scheduler.Once(time.Second / time.Duration(ebiten.TPS()))
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawGame(screen, g.Engine.Snapshot())

	if g.imgui != nil {
		g.imgui.Overlay(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return ScreenWidth, ScreenHeight
}
