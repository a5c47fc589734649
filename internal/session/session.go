// Package session drives engine states the way a host would: one session
// owns one match, its random source, and its tick loop.
package session

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/pong-engine/internal/core"
	"github.com/vovakirdan/pong-engine/internal/games/pong"
)

// ID uniquely identifies a session.
type ID string

// EndReason describes why a session loop stopped.
type EndReason int

const (
	EndReasonGameOver        EndReason = iota // A player ran out of lives
	EndReasonInputsExhausted                  // The input source ran dry
	EndReasonTickLimit                        // The requested tick count was reached
	EndReasonCancelled                        // The context was cancelled
)

func (r EndReason) String() string {
	switch r {
	case EndReasonGameOver:
		return "game over"
	case EndReasonInputsExhausted:
		return "inputs exhausted"
	case EndReasonTickLimit:
		return "tick limit"
	case EndReasonCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Stats counts the events a session has seen.
type Stats struct {
	PaddleCollisions int
	EdgeCollisions   int
	Deaths           int
}

// Result contains the outcome of a session loop.
type Result struct {
	ID     ID
	Reason EndReason
	Final  pong.State
	Ticks  int
	Stats  Stats
}

// Session holds a single match.
// It is confined to one goroutine; run independent matches in separate sessions.
type Session struct {
	id        ID
	rng       pong.Rand
	state     pong.State
	tickDelay time.Duration
	ticks     int
	stats     Stats
	logger    *log.Logger

	// OnTick, if set, is called with every new state.
	OnTick func(pong.State)
}

// New creates a session with a fresh initial state.
// A nil logger falls back to the default logger.
func New(cfg core.RuntimeConfig, logger *log.Logger) *Session {
	return newSession(pong.NewRand(cfg.Seed), cfg.TickDelay, logger)
}

func newSession(rng pong.Rand, tickDelay time.Duration, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	id := ID(uuid.NewString())

	return &Session{
		id:        id,
		rng:       rng,
		state:     pong.New(rng),
		tickDelay: tickDelay,
		logger:    logger.With("session", id[:8]),
	}
}

// ID returns the session identifier.
func (s *Session) ID() ID {
	return s.id
}

// State returns the current state.
func (s *Session) State() pong.State {
	return s.state
}

// Stats returns the event counters so far.
func (s *Session) Stats() Stats {
	return s.stats
}

// Restore replaces the current state, e.g. with a loaded checkpoint.
func (s *Session) Restore(state pong.State) {
	s.state = state
}

// Tick advances the match by one step and returns the new state.
func (s *Session) Tick(p1Delta, p2Delta int) pong.State {
	s.state = pong.Advance(s.rng, s.state, p1Delta, p2Delta)
	s.ticks++

	switch s.state.LastEvent {
	case pong.EventPaddleCollision:
		s.stats.PaddleCollisions++
		s.logger.Debug("paddle collision", "step", s.state.Step, "vx", s.state.BallXSpeed, "vy", s.state.BallYSpeed)
	case pong.EventEdgeCollision:
		s.stats.EdgeCollisions++
		s.logger.Debug("edge collision", "step", s.state.Step, "y", s.state.BallY)
	case pong.EventPlayerDie:
		s.stats.Deaths++
		s.logger.Info("player died", "step", s.state.Step, "p1_lives", s.state.P1Lives, "p2_lives", s.state.P2Lives)
	case pong.EventNone:
	}

	if s.OnTick != nil {
		s.OnTick(s.state)
	}
	return s.state
}

// Run drives the tick loop until the game is over, inputs run out,
// maxTicks ticks have run (0 = unlimited), or ctx is done.
// With a positive tick delay each tick waits for the ticker; otherwise
// ticks run back to back.
func (s *Session) Run(ctx context.Context, in Inputs, maxTicks int) Result {
	var tickC <-chan time.Time
	if s.tickDelay > 0 {
		ticker := time.NewTicker(s.tickDelay)
		defer ticker.Stop()
		tickC = ticker.C
	}

	start := s.ticks
	for {
		if s.state.GameOver() {
			return s.result(EndReasonGameOver)
		}
		if maxTicks > 0 && s.ticks-start >= maxTicks {
			return s.result(EndReasonTickLimit)
		}

		if tickC != nil {
			select {
			case <-ctx.Done():
				return s.result(EndReasonCancelled)
			case <-tickC:
			}
		} else if ctx.Err() != nil {
			return s.result(EndReasonCancelled)
		}

		p1, p2, ok := in.Next()
		if !ok {
			return s.result(EndReasonInputsExhausted)
		}
		s.Tick(p1, p2)
	}
}

func (s *Session) result(reason EndReason) Result {
	s.logger.Debug("session ended", "reason", reason, "ticks", s.ticks)
	return Result{
		ID:     s.id,
		Reason: reason,
		Final:  s.state,
		Ticks:  s.ticks,
		Stats:  s.stats,
	}
}
