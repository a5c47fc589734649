package core

import "time"

// RuntimeConfig contains settings the embedding layer passes to a session.
type RuntimeConfig struct {
	TickDelay time.Duration // Wall-clock delay between ticks
	Seed      int64         // RNG seed, 0 means derive from the current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickDelay: 10 * time.Millisecond,
		Seed:      0,
	}
}
