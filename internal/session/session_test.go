package session

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pong-engine/internal/core"
	"github.com/vovakirdan/pong-engine/internal/games/pong"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestSessionTickMatchesAdvance(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 42}
	sess := New(cfg, quietLogger())

	// Same seed, same draws: the constructor consumed two values first.
	r := pong.NewRand(42)
	want := pong.New(r)
	require.Equal(t, want, sess.State())

	for i := 0; i < 300; i++ {
		want = pong.Advance(r, want, i%3-1, 1-i%3)
		got := sess.Tick(i%3-1, 1-i%3)
		require.Equal(t, want, got)
	}
}

func TestSessionRunTapeExhausted(t *testing.T) {
	sess := New(core.RuntimeConfig{Seed: 1}, quietLogger())
	tape := pong.Tape{P1: make([]int, 10), P2: make([]int, 10)}

	var seen []int
	sess.OnTick = func(s pong.State) { seen = append(seen, s.Step) }

	res := sess.Run(context.Background(), NewTapeInputs(tape), 0)

	assert.Equal(t, EndReasonInputsExhausted, res.Reason)
	assert.Equal(t, 10, res.Ticks)
	assert.Equal(t, 10, res.Final.Step)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, seen)
	assert.Equal(t, sess.ID(), res.ID)
}

func TestSessionRunTickLimit(t *testing.T) {
	sess := New(core.RuntimeConfig{Seed: 2}, quietLogger())

	res := sess.Run(context.Background(), IdleInputs{}, 25)

	assert.Equal(t, EndReasonTickLimit, res.Reason)
	assert.Equal(t, 25, res.Ticks)
}

func TestSessionRunGameOver(t *testing.T) {
	sess := New(core.RuntimeConfig{Seed: 3}, quietLogger())

	state := sess.State()
	state.P1Lives = 1
	state.P1Paddle = pong.BaseHeight
	state.BallX = 10
	state.BallY = 100
	state.BallXSpeed = -6
	state.BallYSpeed = 0
	sess.Restore(state)

	res := sess.Run(context.Background(), IdleInputs{}, 100)

	assert.Equal(t, EndReasonGameOver, res.Reason)
	assert.Equal(t, 1, res.Ticks)
	assert.Equal(t, 0, res.Final.P1Lives)
	assert.Equal(t, 1, res.Stats.Deaths)
	assert.Equal(t, pong.Player2, res.Final.Winner())
}

func TestSessionRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sess := New(core.RuntimeConfig{Seed: 4}, quietLogger())
	res := sess.Run(ctx, IdleInputs{}, 0)

	assert.Equal(t, EndReasonCancelled, res.Reason)
	assert.Equal(t, 0, res.Ticks)
}

func TestSessionRunPacedByTicker(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 5, TickDelay: 2 * time.Millisecond}
	sess := New(cfg, quietLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	res := sess.Run(ctx, IdleInputs{}, 10)

	assert.Equal(t, EndReasonTickLimit, res.Reason)
	assert.GreaterOrEqual(t, time.Since(start), 18*time.Millisecond)
}

func TestSessionRunPacedStopsOnCancel(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 6, TickDelay: time.Millisecond}
	sess := New(cfg, quietLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	res := sess.Run(ctx, IdleInputs{}, 0)

	assert.Equal(t, EndReasonCancelled, res.Reason)
	assert.Positive(t, res.Ticks)
}

func TestStatsCountEvents(t *testing.T) {
	sess := New(core.RuntimeConfig{Seed: 7}, quietLogger())
	res := sess.Run(context.Background(), IdleInputs{}, 5000)

	total := res.Stats.PaddleCollisions + res.Stats.EdgeCollisions + res.Stats.Deaths
	assert.Positive(t, total)
	assert.Equal(t, pong.MaxLives*2-res.Final.P1Lives-res.Final.P2Lives, res.Stats.Deaths)
}

func TestRandomInputsBounds(t *testing.T) {
	in := NewRandomInputs(pong.NewRand(9), 10)
	for i := 0; i < 1000; i++ {
		p1, p2, ok := in.Next()
		require.True(t, ok)
		require.GreaterOrEqual(t, p1, -10)
		require.LessOrEqual(t, p1, 10)
		require.GreaterOrEqual(t, p2, -10)
		require.LessOrEqual(t, p2, 10)
	}

	zero := NewRandomInputs(pong.NewRand(9), 0)
	p1, p2, _ := zero.Next()
	assert.Zero(t, p1)
	assert.Zero(t, p2)
}
