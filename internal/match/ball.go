package match

import "math"

// Ball is the volley ball. Position is its centre.
type Ball struct {
	Pos Vec2
	Vel Vec2
}

// NewBall returns a ball at the field centre travelling horizontally at the
// initial speed. dirX picks the direction; zero is treated as rightward.
func NewBall(r Rules, dirX float64) Ball {
	vx := r.InitialBallSpeed
	if dirX < 0 {
		vx = -vx
	}
	return Ball{
		Pos: Vec2{X: r.FieldW / 2, Y: r.FieldH / 2},
		Vel: Vec2{X: vx},
	}
}

// Integrate advances the ball by dt and reflects it off the top and bottom
// borders. The border test uses the post-move position only, so a large
// enough dt can carry the ball straight through. The reflection ignores the
// sign of Vel.Y, so a ball sent into a wall it already overlaps flips every
// tick and slides along it.
func Integrate(b Ball, dt float64, size Size, r Rules) (Ball, bool) {
	b.Pos.X += b.Vel.X * dt
	b.Pos.Y += b.Vel.Y * dt

	if b.Pos.Y-size.H/2 <= 0 || b.Pos.Y+size.H/2 >= r.FieldH {
		b.Vel.Y = -b.Vel.Y
		return b, true
	}
	return b, false
}

// CheckExit reports whether the ball has left the field horizontally and, if
// so, which side scores. Leaving through the left wall scores for the right.
func CheckExit(b Ball, r Rules) (Side, bool) {
	switch {
	case b.Pos.X < 0:
		return SideRight, true
	case b.Pos.X > r.FieldW:
		return SideLeft, true
	}
	return 0, false
}

// nextServe is the ball for the round after one that ended with prev.
// It heads away from where prev was travelling.
func nextServe(prev Ball, r Rules) Ball {
	return NewBall(r, -sign(prev.Vel.X))
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Speed is the ball's horizontal speed.
func (b Ball) Speed() float64 {
	return math.Abs(b.Vel.X)
}
