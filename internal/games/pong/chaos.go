package pong

import (
	"math/rand/v2"
	"time"

	"github.com/vovakirdan/pong-engine/internal/core"
)

// Rand is the random source the engine draws from.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform integer in [0, n). n is always > 0.
	IntN(n int) int
}

// NewRand creates a random source for one session.
// A zero seed derives the seed from the current time.
// The returned source is not safe for concurrent use; give each session its own.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return SeededRand(seed)
}

// SeededRand creates a random source from seed exactly, including zero.
func SeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// Chaos perturbs v by a uniform random amount of at most 20% of its magnitude.
// Values with magnitude 2 or less are returned unchanged.
func Chaos(r Rand, v int) int {
	if core.Abs(v) <= 2 {
		return v
	}

	bound := core.Abs(int(float32(v) * 0.2))
	return v + r.IntN(2*bound+1) - bound
}
