package pong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChaosSmallValuesUnchanged(t *testing.T) {
	r := &offsetRand{pick: 1}
	for v := -2; v <= 2; v++ {
		assert.Equal(t, v, Chaos(r, v), "Chaos(%d)", v)
	}
	assert.Zero(t, r.calls, "small values must not draw from the source")
}

func TestChaosBounds(t *testing.T) {
	tests := []struct {
		name  string
		value int
		low   int
		high  int
	}{
		{"three has zero bound", 3, 3, 3},
		{"four has zero bound", 4, 4, 4},
		{"five", 5, 4, 6},
		{"negated base speed", -6, -7, -5},
		{"half height", BaseHeight / 2, 240, 360},
		{"half width", BaseWidth / 2, 480, 720},
		{"negative hundred", -100, -120, -80},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.low, Chaos(&offsetRand{pick: -1}, tc.value))
			assert.Equal(t, tc.high, Chaos(&offsetRand{pick: 1}, tc.value))
			assert.Equal(t, tc.value, Chaos(noJitter(), tc.value))
		})
	}
}

func TestChaosStatisticalRange(t *testing.T) {
	r := NewRand(7)
	seen := make(map[int]bool)

	for i := 0; i < 5000; i++ {
		got := Chaos(r, 50)
		require.GreaterOrEqual(t, got, 40)
		require.LessOrEqual(t, got, 60)
		seen[got] = true
	}

	// Every value in the inclusive range should come up.
	assert.Len(t, seen, 21)
}

func TestNewRandSeeded(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestSeededRandZeroIsFixed(t *testing.T) {
	a := SeededRand(0)
	b := SeededRand(0)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}
