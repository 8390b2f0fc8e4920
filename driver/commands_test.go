package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/engine"
)

func TestCommandsFlush(t *testing.T) {
	e, err := engine.New(engine.WithSeed(3))
	require.NoError(t, err)

	c := newCommands()
	var deferred []int
	c.Push(engine.CommandMoveLeft)
	c.Defer(func() { deferred = append(deferred, e.Stats().Locked) })
	c.Push(engine.CommandHardDrop)
	c.Push(engine.Command(99))
	require.Equal(t, 3, c.Len())

	applied, ignored := c.Flush(e)
	assert.Equal(t, 2, applied)
	assert.Equal(t, 1, ignored)
	assert.Equal(t, []int{1}, deferred, "deferred functions run after every queued command")
	assert.Equal(t, 0, c.Len())

	applied, ignored = c.Flush(e)
	assert.Zero(t, applied)
	assert.Zero(t, ignored)
	assert.Len(t, deferred, 1, "the buffer resets after a flush")
	assert.EqualValues(t, 2, c.applied)
	assert.EqualValues(t, 1, c.ignored)
}

func TestCommandsOrdering(t *testing.T) {
	e, err := engine.New(engine.WithSeed(3))
	require.NoError(t, err)

	c := newCommands()
	c.Push(engine.CommandHardDrop)
	c.Push(engine.CommandHardDrop)
	c.Flush(e)

	// The second drop acts on the piece spawned by the first lock.
	assert.Equal(t, 2, e.Stats().Locked)
}
