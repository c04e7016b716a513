package match

// Phase is the sub-state of a gameplay session.
type Phase int

const (
	PhaseCountdown Phase = iota // waiting for the pre-round countdown
	PhaseRound                  // ball in play
	PhaseMatchOver              // win screen, waiting for rematch or abandon
)

func (p Phase) String() string {
	switch p {
	case PhaseCountdown:
		return "countdown"
	case PhaseRound:
		return "round"
	case PhaseMatchOver:
		return "match_over"
	}
	return "unknown"
}

// Input is everything the simulation reads from the input collaborator for
// one tick. Paddle flags are level-triggered; the rest are edge-triggered.
type Input struct {
	LeftUp, LeftDown   bool
	RightUp, RightDown bool

	Start   bool
	Abandon bool
	Rematch bool
	Quit    bool
	Copy    bool
}

// Session is the state of one gameplay session. It is a plain value: Step
// returns the next session rather than mutating the receiver.
type Session struct {
	Rules Rules
	Dims  Dimensions

	Ball      Ball
	Left      Paddle
	Right     Paddle
	Score     Score
	Countdown Countdown
	Phase     Phase
	Winner    Side
	Tick      int
}

// NewSession returns a freshly served session, counting down to the first
// round. The opening serve goes right.
func NewSession(r Rules, d Dimensions) Session {
	return Session{
		Rules:     r,
		Dims:      d,
		Ball:      NewBall(r, 1),
		Left:      NewPaddle(SideLeft, r),
		Right:     NewPaddle(SideRight, r),
		Countdown: NewCountdown(r),
		Phase:     PhaseCountdown,
	}
}

// Paddle returns the paddle on the given side.
func (s Session) Paddle(side Side) Paddle {
	if side == SideLeft {
		return s.Left
	}
	return s.Right
}

// Step runs one tick. Abandon is handled by the caller before Step.
func (s Session) Step(dt float64, in Input) (Session, []Event) {
	s.Tick++
	var events []Event

	if s.Phase == PhaseMatchOver {
		if in.Rematch {
			s = s.rematch()
		}
		return s, events
	}

	if s.Phase == PhaseCountdown {
		var fired bool
		s.Countdown, fired = s.Countdown.Advance(dt)
		if !fired {
			return s, events
		}
		events = append(events, Event{Kind: EventCountdownEnd, Side: SideNone})
		s.Phase = PhaseRound
	}

	// 1. PADDLES
	s.Left = MovePaddle(s.Left, in.LeftUp, in.LeftDown, dt, s.Dims.LeftPaddle, s.Rules)
	s.Right = MovePaddle(s.Right, in.RightUp, in.RightDown, dt, s.Dims.RightPaddle, s.Rules)

	// 2. BALL
	var bounced bool
	s.Ball, bounced = Integrate(s.Ball, dt, s.Dims.Ball, s.Rules)
	if bounced {
		events = append(events, Event{Kind: EventBorderCollision, Side: SideNone})
	}

	// 3. COLLISIONS: both paddles every tick, right first.
	for _, p := range [2]Paddle{s.Right, s.Left} {
		var hit bool
		s.Ball, hit = ResolvePaddleHit(s.Ball, p, s.Dims.Ball, s.Dims.Paddle(p.Side), s.Rules)
		if hit {
			events = append(events, Event{Kind: EventPaddleCollision, Side: p.Side})
		}
	}

	// 4. SCORING
	if scorer, out := CheckExit(s.Ball, s.Rules); out {
		events = append(events, Event{Kind: EventRoundWin, Side: scorer})
		s = s.endRound(scorer)
	}
	return s, events
}

// endRound awards the point, serves a fresh ball and either re-arms the
// countdown or ends the match.
func (s Session) endRound(scorer Side) Session {
	s.Score = s.Score.Award(scorer)
	s.Ball = nextServe(s.Ball, s.Rules)
	s.Left = NewPaddle(SideLeft, s.Rules)
	s.Right = NewPaddle(SideRight, s.Rules)

	if s.Score.Reached(s.Rules.WinScore) {
		s.Phase = PhaseMatchOver
		s.Winner = s.Score.Leader()
		return s
	}
	s.Countdown = NewCountdown(s.Rules)
	s.Phase = PhaseCountdown
	return s
}

// rematch clears the score and counts down to a new first round. The ball
// keeps the serve direction it was given when the last match ended.
func (s Session) rematch() Session {
	s.Score = Score{}
	s.Countdown = NewCountdown(s.Rules)
	s.Phase = PhaseCountdown
	return s
}

// PlayEnabled reports whether paddles and ball are live this tick.
func (s Session) PlayEnabled() bool {
	return s.Phase == PhaseRound
}
