package match

// Field and tuning defaults used when no config overrides them.
const (
	FieldWidth  = 800
	FieldHeight = 450

	// paddleInset is the distance from each wall to its paddle's centre line.
	paddleInset = 50
)

// Rules holds every numeric constant the simulation depends on.
type Rules struct {
	FieldW float64
	FieldH float64

	PaddleSpeed      float64 // units/sec
	InitialBallSpeed float64 // |vel.x| at the start of every round
	MaxBallSpeedX    float64 // cap on |vel.x|
	SpeedIncrement   float64 // added to |vel.x| on each paddle hit
	BounceFactor     float64 // vel.y = offset from paddle centre * BounceFactor
	CountdownSeconds float64
	WinScore         int
}

// DefaultRules returns the stock 800x450 ruleset.
func DefaultRules() Rules {
	return Rules{
		FieldW:           FieldWidth,
		FieldH:           FieldHeight,
		PaddleSpeed:      500,
		InitialBallSpeed: 300,
		MaxBallSpeedX:    600,
		SpeedIncrement:   5,
		BounceFactor:     5,
		CountdownSeconds: 3,
		WinScore:         5,
	}
}

// Vec2 is a 2D position or velocity.
type Vec2 struct {
	X, Y float64
}

// Size is the width/height of a drawable, supplied by the asset loader.
type Size struct {
	W, H float64
}

// Dimensions are the read-only sizes of the gameplay sprites.
type Dimensions struct {
	Ball        Size
	LeftPaddle  Size
	RightPaddle Size
	Background  Size
}

// DefaultDimensions matches the stock sprite sheet.
func DefaultDimensions() Dimensions {
	return Dimensions{
		Ball:        Size{W: 20, H: 20},
		LeftPaddle:  Size{W: 20, H: 80},
		RightPaddle: Size{W: 20, H: 80},
		Background:  Size{W: 64, H: 64},
	}
}

// Paddle returns the size of the paddle on the given side.
func (d Dimensions) Paddle(side Side) Size {
	if side == SideLeft {
		return d.LeftPaddle
	}
	return d.RightPaddle
}
