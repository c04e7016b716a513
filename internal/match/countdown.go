package match

import "math"

// Countdown gates play at the start of every round. While it is counting the
// paddles and ball are frozen.
type Countdown struct {
	Remaining float64
	Expired   bool
}

// NewCountdown returns a countdown armed with the configured delay.
func NewCountdown(r Rules) Countdown {
	return Countdown{Remaining: r.CountdownSeconds}
}

// Advance consumes dt. The returned bool is true only on the tick the
// countdown expires, which is the first tick where Remaining drops below zero.
func (c Countdown) Advance(dt float64) (Countdown, bool) {
	if c.Expired {
		return c, false
	}
	c.Remaining -= dt
	if c.Remaining < 0 {
		c.Expired = true
		return c, true
	}
	return c, false
}

// PlayEnabled reports whether paddles and ball may move.
func (c Countdown) PlayEnabled() bool {
	return c.Expired
}

// Digit is the number shown on screen while counting.
func (c Countdown) Digit() int {
	return int(math.Ceil(c.Remaining))
}
