package match

// Paddle is one player's bat. Its X never changes after construction.
type Paddle struct {
	Side Side
	Pos  Vec2
}

// NewPaddle returns a paddle at its side's fixed X, vertically centred.
func NewPaddle(side Side, r Rules) Paddle {
	x := float64(paddleInset)
	if side == SideRight {
		x = r.FieldW - paddleInset
	}
	return Paddle{Side: side, Pos: Vec2{X: x, Y: r.FieldH / 2}}
}

// MovePaddle applies one tick of directional input. The bounds check runs on
// the would-be position: a step that would push the near edge past the field
// is dropped, not clamped.
func MovePaddle(p Paddle, up, down bool, dt float64, size Size, r Rules) Paddle {
	step := r.PaddleSpeed * dt
	half := size.H / 2
	if up {
		if next := p.Pos.Y - step; next-half >= 0 {
			p.Pos.Y = next
		}
	}
	if down {
		if next := p.Pos.Y + step; next+half <= r.FieldH {
			p.Pos.Y = next
		}
	}
	return p
}

// top and bottom edges.
func (p Paddle) top(size Size) float64    { return p.Pos.Y - size.H/2 }
func (p Paddle) bottom(size Size) float64 { return p.Pos.Y + size.H/2 }
