package match

import (
	"math/rand"
)

// Pilot produces one side's paddle input for a tick.
type Pilot func(s Session, side Side) (up, down bool)

// IdlePilot never moves.
func IdlePilot(Session, Side) (bool, bool) { return false, false }

// TrackingPilot chases the ball's Y plus aim, with a dead zone. A non-zero aim
// makes the paddle meet the ball off-centre so returns come back angled.
// With a non-nil rng it sits still on roughly miss of the ticks.
func TrackingPilot(aim, deadZone, miss float64, rng *rand.Rand) Pilot {
	return func(s Session, side Side) (bool, bool) {
		if rng != nil && rng.Float64() < miss {
			return false, false
		}
		p := s.Paddle(side)
		dy := s.Ball.Pos.Y + aim - p.Pos.Y
		switch {
		case dy < -deadZone:
			return true, false
		case dy > deadZone:
			return false, true
		}
		return false, false
	}
}

// TestMatch is a headless match driver used by tests and the headless
// report. It mirrors the frontend's Update loop without any window.
type TestMatch struct {
	App  *App
	DT   float64
	Tick int

	rules   Rules
	dims    Dimensions
	rng     *rand.Rand
	pilots  [2]Pilot
	verbose bool
	started bool

	// Events holds every event emitted since construction, in order.
	Events []Event
}

// MatchOption is a builder function applied to a TestMatch during construction.
type MatchOption func(*TestMatch)

// WithRules replaces the default ruleset.
func WithRules(r Rules) MatchOption {
	return func(tm *TestMatch) { tm.rules = r }
}

// WithDimensions replaces the default sprite sizes.
func WithDimensions(d Dimensions) MatchOption {
	return func(tm *TestMatch) { tm.dims = d }
}

// WithDT sets the fixed tick length in seconds.
func WithDT(dt float64) MatchOption {
	return func(tm *TestMatch) { tm.DT = dt }
}

// WithSeed sets the RNG seed handed to pilots created by WithTrackingPilots.
func WithSeed(seed int64) MatchOption {
	return func(tm *TestMatch) {
		tm.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- test harness
	}
}

// WithVerbose enables per-tick position logging.
func WithVerbose(v bool) MatchOption {
	return func(tm *TestMatch) { tm.verbose = v }
}

// WithPilot installs a pilot for one side.
func WithPilot(side Side, p Pilot) MatchOption {
	return func(tm *TestMatch) { tm.pilots[side] = p }
}

// WithTrackingPilots gives both sides a TrackingPilot drawing from the
// match RNG. Apply after WithSeed.
func WithTrackingPilots(aim, deadZone, miss float64) MatchOption {
	return func(tm *TestMatch) {
		tm.pilots[SideLeft] = TrackingPilot(aim, deadZone, miss, tm.rng)
		tm.pilots[SideRight] = TrackingPilot(-aim, deadZone, miss, tm.rng)
	}
}

type fixedLoader Dimensions

func (f fixedLoader) LoadSession() (Dimensions, error) { return Dimensions(f), nil }

// NewTestMatch builds a match that enters gameplay on its first tick.
func NewTestMatch(opts ...MatchOption) *TestMatch {
	tm := &TestMatch{
		DT:     1.0 / 60,
		rules:  DefaultRules(),
		dims:   DefaultDimensions(),
		rng:    rand.New(rand.NewSource(1)), // #nosec G404 -- test harness default
		pilots: [2]Pilot{IdlePilot, IdlePilot},
	}
	for _, o := range opts {
		o(tm)
	}
	tm.App = NewApp(tm.rules, fixedLoader(tm.dims), nil)
	tm.App.Log = NewEventLog(tm.verbose)
	return tm
}

// Session returns the live session.
func (tm *TestMatch) Session() Session {
	return tm.App.Session
}

// Log returns the session event log.
func (tm *TestMatch) Log() *EventLog {
	return tm.App.Log
}

// Step runs one tick with extra input merged over the pilots' output.
func (tm *TestMatch) Step(extra Input) Frame {
	in := extra
	if !tm.started {
		in.Start = true
		tm.started = true
	}
	if tm.App.Mode == ModeGameplay {
		s := tm.App.Session
		lu, ld := tm.pilots[SideLeft](s, SideLeft)
		ru, rd := tm.pilots[SideRight](s, SideRight)
		in.LeftUp = in.LeftUp || lu
		in.LeftDown = in.LeftDown || ld
		in.RightUp = in.RightUp || ru
		in.RightDown = in.RightDown || rd
	}
	tm.Tick++
	// fixedLoader cannot fail.
	f, _ := tm.App.Step(tm.DT, in)
	tm.Events = append(tm.Events, f.Events...)
	return f
}

// RunTicks advances the match n ticks with no extra input.
func (tm *TestMatch) RunTicks(n int) {
	for i := 0; i < n; i++ {
		tm.Step(Input{})
	}
}

// RunUntil advances up to maxTicks, stopping early once predicate returns
// true. Returns the tick at which the predicate was satisfied, or -1.
func (tm *TestMatch) RunUntil(predicate func(*TestMatch) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		tm.Step(Input{})
		if predicate(tm) {
			return tm.Tick
		}
	}
	return -1
}

// MatchOver reports whether the session is on the win screen.
func MatchOver(tm *TestMatch) bool {
	return tm.App.Mode == ModeGameplay && tm.App.Session.Phase == PhaseMatchOver
}
