package driver

import (
	"time"

	"github.com/plus3/blockfall/engine"
)

// UpdateFrame is handed to every system during Scheduler.Once.
type UpdateFrame struct {
	DeltaTime time.Duration
	Commands  *Commands
	Engine    *engine.Engine

	// input holds commands submitted to the scheduler since the last frame.
	input *Commands
}

func newUpdateFrame(dt time.Duration, input, commands *Commands, e *engine.Engine) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  commands,
		Engine:    e,
		input:     input,
	}
}
