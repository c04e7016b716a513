package match

import "math"

// paddleFrame describes a paddle from the ball's point of view along X.
// dir is +1 when the ball must travel right to reach the paddle (right
// paddle) and -1 for the left paddle, so "crossed" comparisons can be written
// once for both sides.
type paddleFrame struct {
	dir    float64
	facing float64 // X of the edge that faces the field centre
	far    float64 // X of the edge that faces the wall
	centre float64
}

func frameOf(p Paddle, size Size) paddleFrame {
	half := size.W / 2
	if p.Side == SideLeft {
		return paddleFrame{dir: -1, facing: p.Pos.X + half, far: p.Pos.X - half, centre: p.Pos.X}
	}
	return paddleFrame{dir: 1, facing: p.Pos.X - half, far: p.Pos.X + half, centre: p.Pos.X}
}

// crossed reports whether x lies beyond edge in the direction of travel.
func (f paddleFrame) crossed(x, edge float64) bool {
	return (x-edge)*f.dir > 0
}

// centreNotPassed is the guard that keeps a hit from registering twice: once
// the ball's centre is level with or past the paddle's centre line it is
// treated as already through. A resolved hit snaps the ball back in front of
// the facing edge, which makes the first condition false on the next tick.
func (f paddleFrame) centreNotPassed(ballX float64) bool {
	return (ballX-f.centre)*f.dir < 0
}

// ResolvePaddleHit tests the ball against one paddle and, on a hit, snaps it
// flush to the facing edge and reflects it. The returned bool reports whether
// a hit was registered.
func ResolvePaddleHit(b Ball, p Paddle, ballSize, paddleSize Size, r Rules) (Ball, bool) {
	f := frameOf(p, paddleSize)
	leading := b.Pos.X + f.dir*ballSize.W/2

	if !f.crossed(leading, f.facing) {
		return b, false
	}
	if f.crossed(leading, f.far) {
		return b, false
	}
	if b.Pos.Y-ballSize.H/2 >= p.bottom(paddleSize) || b.Pos.Y+ballSize.H/2 <= p.top(paddleSize) {
		return b, false
	}
	if !f.centreNotPassed(b.Pos.X) {
		return b, false
	}

	b.Pos.X = f.facing - f.dir*ballSize.W/2
	b.Vel.X = -b.Vel.X
	b.Vel.Y = (b.Pos.Y - p.Pos.Y) * r.BounceFactor

	speed := math.Min(math.Abs(b.Vel.X)+r.SpeedIncrement, r.MaxBallSpeedX)
	b.Vel.X = math.Copysign(speed, -f.dir)
	return b, true
}
