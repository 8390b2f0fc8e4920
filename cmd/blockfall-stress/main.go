package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/engine"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	seed := flag.Uint64("seed", 0, "Seed for piece selection and autoplay (0 picks one from the clock).")
	drop := flag.Duration("drop", 50*time.Millisecond, "Gravity interval used while autoplaying.")
	perFrame := flag.Int("commands", 2, "Random commands pushed per frame.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	log.Println("Starting blockfall stress test...")

	// 1. Setup Engine and Scheduler
	e, err := engine.New(engine.WithSeed(*seed), engine.WithDropInterval(*drop))
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	recorder := &GameRecorder{}
	scheduler := driver.NewScheduler(e)
	scheduler.Register(NewAutoplaySystem(rand.New(rand.NewPCG(*seed, *seed+1)), *perFrame))
	scheduler.Register(&driver.InputSystem{})
	scheduler.Register(&driver.GravitySystem{})
	scheduler.Register(&driver.GameOverSystem{OnGameOver: recorder.Record})

	// 2. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		DropInterval:   *drop,
		CommandsPerRun: *perFrame,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			scheduler.Once(deltaTime)
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.Games = recorder.Summary()
	report.Engine = e.Stats()
	report.Scheduler = scheduler.GetStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Printf("Simulation finished after %d games.\n", report.Games.Games)

	// 3. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
