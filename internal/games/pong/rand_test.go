package pong

// offsetRand returns a fixed position inside the requested range.
// pick < 0 selects the lowest value, pick > 0 the highest, 0 the middle.
type offsetRand struct {
	pick  int
	calls int
}

func (r *offsetRand) IntN(n int) int {
	r.calls++
	switch {
	case r.pick < 0:
		return 0
	case r.pick > 0:
		return n - 1
	default:
		return n / 2
	}
}

// noJitter makes Chaos the identity function.
func noJitter() *offsetRand { return &offsetRand{} }
