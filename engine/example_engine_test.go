package engine_test

import (
	"fmt"
	"time"

	"github.com/plus3/blockfall/engine"
)

// ExampleEngine drives an engine the way a frame loop would: input commands are
// dispatched between frames and Tick advances gravity with the frame's delta.
func ExampleEngine() {
	e, err := engine.New(engine.WithSeed(42))
	if err != nil {
		panic(err)
	}

	e.Dispatch(engine.CommandHardDrop)
	fmt.Println("locked:", e.Stats().Locked)

	e.Dispatch(engine.CommandTogglePause)
	fmt.Println("dropped while paused:", e.Tick(2*time.Second))
	e.Dispatch(engine.CommandTogglePause)

	fmt.Println("dropped after resume:", e.Tick(1001*time.Millisecond))
	fmt.Println("state:", e.State())

	// Output:
	// locked: 1
	// dropped while paused: false
	// dropped after resume: true
	// state: playing
}

func ExampleScore_Credit() {
	s := engine.Score{Level: 1}
	s.Credit(2)
	fmt.Printf("%+v\n", s)

	s = engine.Score{Lines: 20, Level: 3}
	s.Credit(2)
	fmt.Printf("%+v\n", s)

	// Output:
	// {Points:200 Level:1 Lines:2}
	// {Points:600 Level:3 Lines:22}
}

func ExampleMatrix_Rotate() {
	t, _ := engine.ShapeOf(engine.KindT)
	fmt.Println(t.Matrix.Rotate())

	// Output:
	// .#
	// ##
	// .#
}
