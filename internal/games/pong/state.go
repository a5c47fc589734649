// Package pong implements the two-player Pong state-transition engine.
//
// A State describes one simulation instant. Advance computes the next State
// from the current one plus both players' paddle deltas; Replay folds
// Advance over recorded input sequences. States are plain values: every
// transition returns a new State and never touches its input.
package pong

// Event classifies what happened during the most recent tick.
type Event int

const (
	EventNone Event = iota
	EventPaddleCollision
	EventEdgeCollision
	EventPlayerDie
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventPaddleCollision:
		return "PaddleCollision"
	case EventEdgeCollision:
		return "EdgeCollision"
	case EventPlayerDie:
		return "PlayerDie"
	default:
		return "Unknown"
	}
}

// Player identifies a side of the field.
type Player int

const (
	NoPlayer Player = iota
	Player1         // Left paddle
	Player2         // Right paddle
)

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "none"
	}
}

// State is the complete game state at one tick, shared by both players.
type State struct {
	P1Paddle   int // Vertical center of the left paddle
	P2Paddle   int // Vertical center of the right paddle
	P1Lives    int
	P2Lives    int
	BallXSpeed int
	BallYSpeed int
	BallX      int
	BallY      int
	Step       int
	LastEvent  Event
}

// New creates the initial state: jittered paddles, full lives, centered ball
// moving at base speed.
func New(r Rand) State {
	return State{
		P1Paddle:   Chaos(r, BaseHeight/2),
		P2Paddle:   Chaos(r, BaseHeight/2),
		P1Lives:    MaxLives,
		P2Lives:    MaxLives,
		BallXSpeed: BaseBallSpeed,
		BallYSpeed: BaseBallSpeed,
		BallX:      BaseWidth / 2,
		BallY:      BaseHeight / 2,
		Step:       0,
		LastEvent:  EventNone,
	}
}

// GameOver reports whether either player has run out of lives.
// The transition function never consults it; hosts decide when to stop.
func (s State) GameOver() bool {
	return s.P1Lives <= 0 || s.P2Lives <= 0
}

// Winner returns the player that still has lives once the game is over,
// or NoPlayer while the game is running.
func (s State) Winner() Player {
	switch {
	case !s.GameOver():
		return NoPlayer
	case s.P1Lives > 0:
		return Player1
	case s.P2Lives > 0:
		return Player2
	default:
		return NoPlayer
	}
}
