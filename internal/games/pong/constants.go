package pong

// Field and physics parameters. All distances are in field units.
const (
	BallDeltaPerStep = 1    // Displacement per unit of ball speed per tick
	PaddleHeight     = 100  // Paddle extent along the y axis
	PaddleWidth      = 10   // Paddle extent along the x axis
	BaseWidth        = 1200 // Field width
	BaseHeight       = 600  // Field height
	BallRadius       = 10
	MaxLives         = 5
	TickDelay        = 10 // Milliseconds between ticks in the host loop

	// BaseBallSpeed is the speed both ball components take at the start and
	// after every life lost.
	BaseBallSpeed = 6

	// DieThreshold is the x position at or below which the left player loses.
	DieThreshold = 5
)

// Constants is a read-only view of the engine parameters, used by the
// embedding layer to report them.
type Constants struct {
	BallDeltaPerStep int `json:"ball_delta_per_step" yaml:"ball_delta_per_step"`
	PaddleHeight     int `json:"paddle_height" yaml:"paddle_height"`
	PaddleWidth      int `json:"paddle_width" yaml:"paddle_width"`
	BaseWidth        int `json:"base_width" yaml:"base_width"`
	BaseHeight       int `json:"base_height" yaml:"base_height"`
	BallRadius       int `json:"ball_radius" yaml:"ball_radius"`
	MaxLives         int `json:"max_lives" yaml:"max_lives"`
	TickDelay        int `json:"tick_delay" yaml:"tick_delay"`
	BaseBallSpeed    int `json:"base_ball_speed" yaml:"base_ball_speed"`
}

// Params returns the engine constants.
func Params() Constants {
	return Constants{
		BallDeltaPerStep: BallDeltaPerStep,
		PaddleHeight:     PaddleHeight,
		PaddleWidth:      PaddleWidth,
		BaseWidth:        BaseWidth,
		BaseHeight:       BaseHeight,
		BallRadius:       BallRadius,
		MaxLives:         MaxLives,
		TickDelay:        TickDelay,
		BaseBallSpeed:    BaseBallSpeed,
	}
}
