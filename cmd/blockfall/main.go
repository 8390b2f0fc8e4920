// Command blockfall plays the falling-block game in an Ebiten window.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/engine"
)

const windowTitle = "Blockfall"

func main() {
	seed := flag.Uint64("seed", 0, "Seed for piece selection (0 picks one from the clock).")
	drop := flag.Duration("drop", engine.DefaultDropInterval, "Time between gravity steps.")
	debug := flag.Bool("debug", false, "Append a debug log to "+debugLogName+" in the temp directory.")
	inspector := flag.Bool("imgui", false, "Show the Dear ImGui inspector overlay.")
	flag.Parse()

	closeLog, err := setupLogging(*debug)
	if err != nil {
		log.Fatalf("Failed to open debug log: %v", err)
	}
	defer closeLog()

	events := debugui.NewEventLog(20)
	opts := []engine.Option{
		engine.WithDropInterval(*drop),
		engine.WithEventHandler(func(ev engine.Event) {
			logEvent(ev)
			events.Record(ev)
		}),
	}
	if *seed != 0 {
		opts = append(opts, engine.WithSeed(*seed))
	}

	e, err := engine.New(opts...)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}
	log.Printf("started seed=%d drop=%s imgui=%t", *seed, *drop, *inspector)

	game := NewGame(e)
	if *inspector {
		game.EnableInspector(debugui_ebiten.NewImguiBackend(windowTitle, 1280, 800), events)
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle(windowTitle)
	}

	start := time.Now()
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game exited: %v", err)
	}
	log.Printf("quit after %s score=%d", time.Since(start).Round(time.Second), e.Score().Points)
}
