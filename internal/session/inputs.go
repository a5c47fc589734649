package session

import "github.com/vovakirdan/pong-engine/internal/games/pong"

// Inputs supplies both players' paddle deltas, one pair per tick.
type Inputs interface {
	// Next returns the deltas for the next tick, or ok=false when exhausted.
	Next() (p1, p2 int, ok bool)
}

// TapeInputs plays back a recorded tape.
type TapeInputs struct {
	tape pong.Tape
	pos  int
}

// NewTapeInputs creates an input source over tape.
// The caller must have checked that both sides have the same length.
func NewTapeInputs(tape pong.Tape) *TapeInputs {
	return &TapeInputs{tape: tape}
}

// Next implements Inputs.
func (t *TapeInputs) Next() (int, int, bool) {
	if t.pos >= len(t.tape.P1) || t.pos >= len(t.tape.P2) {
		return 0, 0, false
	}
	p1, p2 := t.tape.P1[t.pos], t.tape.P2[t.pos]
	t.pos++
	return p1, p2, true
}

// IdleInputs never moves either paddle and never runs out.
type IdleInputs struct{}

// Next implements Inputs.
func (IdleInputs) Next() (int, int, bool) { return 0, 0, true }

// RandomInputs moves each paddle by a uniform delta in [-maxDelta, maxDelta].
type RandomInputs struct {
	rng      pong.Rand
	maxDelta int
}

// NewRandomInputs creates a noise input source drawing from rng.
func NewRandomInputs(rng pong.Rand, maxDelta int) *RandomInputs {
	return &RandomInputs{rng: rng, maxDelta: max(0, maxDelta)}
}

// Next implements Inputs.
func (r *RandomInputs) Next() (int, int, bool) {
	span := 2*r.maxDelta + 1
	return r.rng.IntN(span) - r.maxDelta, r.rng.IntN(span) - r.maxDelta, true
}
