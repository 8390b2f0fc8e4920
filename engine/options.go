package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// DefaultDropInterval is the time between gravity steps. Level does not change it.
const DefaultDropInterval = 1000 * time.Millisecond

// ErrInvalidDropInterval is returned by New for a non-positive drop interval.
var ErrInvalidDropInterval = errors.New("drop interval must be positive")

type config struct {
	rng          *rand.Rand
	dropInterval time.Duration
	onEvent      func(Event)
}

// Option configures an Engine at construction time.
type Option func(*config)

// WithRand sets the random source used to pick shapes.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}

// WithSeed seeds a PCG source for reproducible games.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	}
}

// WithDropInterval overrides DefaultDropInterval.
func WithDropInterval(d time.Duration) Option {
	return func(c *config) {
		c.dropInterval = d
	}
}

// WithEventHandler installs fn to observe engine events. fn runs synchronously
// and must not call back into the engine.
func WithEventHandler(fn func(Event)) Option {
	return func(c *config) {
		c.onEvent = fn
	}
}

func newConfig(opts []Option) (config, error) {
	c := config{
		dropInterval: DefaultDropInterval,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.dropInterval <= 0 {
		return c, fmt.Errorf("%w: %s", ErrInvalidDropInterval, c.dropInterval)
	}
	if c.rng == nil {
		seed := uint64(time.Now().UnixNano())
		c.rng = rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	}
	return c, nil
}
