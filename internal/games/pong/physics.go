package pong

import "github.com/vovakirdan/pong-engine/internal/core"

// Advance calculates the state at tick n+1 from s at tick n.
// p1Delta and p2Delta move the paddles before the ball is resolved.
// s is never modified.
func Advance(r Rand, s State, p1Delta, p2Delta int) State {
	next := s
	next.Step++

	next.P1Paddle = core.Clamp(s.P1Paddle+p1Delta, 0, BaseHeight)
	next.P2Paddle = core.Clamp(s.P2Paddle+p2Delta, 0, BaseHeight)

	next.BallX = s.BallX + s.BallXSpeed*BallDeltaPerStep
	next.BallY = s.BallY + s.BallYSpeed*BallDeltaPerStep

	switch {
	case hitsLeftPaddle(next) || hitsRightPaddle(next):
		resolvePaddleCollision(r, &next)
	case next.BallY < 0 || next.BallY > BaseHeight:
		resolveEdgeCollision(r, &next)
	case next.BallX <= DieThreshold || next.BallX > BaseWidth:
		resolvePlayerDie(r, &next)
	default:
		next.LastEvent = EventNone
	}

	return next
}

// hitsLeftPaddle reports whether the ball's left edge crossed the left
// paddle plane while vertically within half a paddle of its center.
func hitsLeftPaddle(s State) bool {
	return s.BallX-BallRadius < PaddleWidth &&
		core.Abs(s.BallY-s.P1Paddle)*2 < PaddleHeight
}

func hitsRightPaddle(s State) bool {
	return s.BallX+BallRadius > BaseWidth-PaddleWidth &&
		core.Abs(s.BallY-s.P2Paddle)*2 < PaddleHeight
}

func resolvePaddleCollision(r Rand, s *State) {
	left := hitsLeftPaddle(*s)

	s.BallXSpeed = Chaos(r, -s.BallXSpeed)
	s.BallYSpeed = Chaos(r, s.BallYSpeed)
	s.LastEvent = EventPaddleCollision

	// Move the ball clear of the paddle so it cannot tunnel through next tick.
	if left {
		s.BallX = PaddleWidth * 2
	} else {
		s.BallX = BaseWidth - PaddleWidth*2
	}
}

func resolveEdgeCollision(r Rand, s *State) {
	top := s.BallY < 0

	s.BallYSpeed = Chaos(r, -s.BallYSpeed)
	s.BallXSpeed = Chaos(r, s.BallXSpeed)
	s.LastEvent = EventEdgeCollision

	if top {
		s.BallY = 0
	} else {
		s.BallY = BaseHeight
	}
}

func resolvePlayerDie(r Rand, s *State) {
	if s.BallX <= DieThreshold {
		s.P1Lives--
	} else {
		s.P2Lives--
	}

	s.BallX = Chaos(r, BaseWidth/2)
	s.BallY = Chaos(r, BaseHeight/2)
	s.BallXSpeed = BaseBallSpeed
	s.BallYSpeed = BaseBallSpeed
	s.LastEvent = EventPlayerDie
}
