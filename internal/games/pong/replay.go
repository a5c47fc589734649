package pong

import (
	"errors"
	"fmt"
)

// ErrInputLengthMismatch is returned by Replay when the two players' input
// sequences differ in length.
var ErrInputLengthMismatch = errors.New("pong: input sequences differ in length")

// Replay calculates the state after applying every pair of paddle deltas to s
// in order. Index i of p1Deltas and p2Deltas is consumed together.
// On length mismatch nothing is applied and s is returned with the error.
func Replay(r Rand, s State, p1Deltas, p2Deltas []int) (State, error) {
	if len(p1Deltas) != len(p2Deltas) {
		return s, fmt.Errorf("%w: p1=%d p2=%d", ErrInputLengthMismatch, len(p1Deltas), len(p2Deltas))
	}

	for i := range p1Deltas {
		s = Advance(r, s, p1Deltas[i], p2Deltas[i])
	}

	return s, nil
}
