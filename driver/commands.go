package driver

import "github.com/plus3/blockfall/engine"

// Commands buffers engine commands and deferred functions until they are flushed.
// Commands are applied in the order they were pushed, so a command that locks a
// piece has fully completed before the next one runs.
type Commands struct {
	queue  []engine.Command
	defers []func()

	applied int64
	ignored int64
}

func newCommands() *Commands {
	return &Commands{}
}

// Push queues an engine command.
func (c *Commands) Push(cmd engine.Command) {
	c.queue = append(c.queue, cmd)
}

// Defer queues a function to run after the queued commands of the same flush.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued engine commands.
func (c *Commands) Len() int {
	return len(c.queue)
}

// Flush dispatches every queued command to e, runs deferred functions and resets
// the buffer. It returns how many commands changed the engine and how many were
// ignored (for example while paused).
func (c *Commands) Flush(e *engine.Engine) (applied, ignored int) {
	for _, cmd := range c.queue {
		if e.Dispatch(cmd) {
			applied++
		} else {
			ignored++
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.queue = c.queue[:0]
	c.defers = c.defers[:0]
	c.applied += int64(applied)
	c.ignored += int64(ignored)
	return applied, ignored
}
