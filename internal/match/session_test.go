package match

import (
	"errors"
	"testing"
)

// liveSession returns a session already past its countdown.
func liveSession() Session {
	s := NewSession(DefaultRules(), DefaultDimensions())
	s.Countdown = Countdown{Expired: true}
	s.Phase = PhaseRound
	return s
}

func countKind(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestSession_ExitScoresOppositeSideAndResets(t *testing.T) {
	s := liveSession()
	s.Score = Score{Left: 2, Right: 1}
	s.Ball = Ball{Pos: Vec2{X: 2, Y: 300}, Vel: Vec2{X: -300, Y: 40}}
	s.Left.Pos.Y = 100
	s.Right.Pos.Y = 390

	s, events := s.Step(1.0/60, Input{})

	if countKind(events, EventRoundWin) != 1 {
		t.Fatalf("expected one RoundWin, got events %v", events)
	}
	if s.Score != (Score{Left: 2, Right: 2}) {
		t.Fatalf("expected right to score (2-2), got %d-%d", s.Score.Left, s.Score.Right)
	}
	if s.Ball.Pos != (Vec2{X: 400, Y: 225}) {
		t.Fatalf("ball not reset to centre: %+v", s.Ball.Pos)
	}
	if s.Ball.Vel.Y != 0 || s.Ball.Vel.X != 300 {
		t.Fatalf("expected serve velocity (300,0), got %+v", s.Ball.Vel)
	}
	if s.Left.Pos.Y != 225 || s.Right.Pos.Y != 225 {
		t.Fatalf("paddles not recentred: left=%.1f right=%.1f", s.Left.Pos.Y, s.Right.Pos.Y)
	}
	if s.Phase != PhaseCountdown || s.Countdown.Remaining != 3 || s.PlayEnabled() {
		t.Fatalf("countdown not re-armed: phase=%s countdown=%+v", s.Phase, s.Countdown)
	}
}

func TestSession_MatchEndsAtWinScore(t *testing.T) {
	s := liveSession()
	s.Score = Score{Left: 4, Right: 3}
	s.Ball = Ball{Pos: Vec2{X: 798, Y: 225}, Vel: Vec2{X: 400}}
	s.Right.Pos.Y = 40 // out of the way

	s, _ = s.Step(1.0/60, Input{})
	if s.Phase != PhaseMatchOver {
		t.Fatalf("expected match over, got phase %s", s.Phase)
	}
	if s.Winner != SideLeft {
		t.Fatalf("expected left to win, got %s", s.Winner)
	}
	if s.Score != (Score{Left: 5, Right: 3}) {
		t.Fatalf("unexpected final score %d-%d", s.Score.Left, s.Score.Right)
	}

	// Round logic is suspended until a decision arrives.
	before := s
	for i := 0; i < 300; i++ {
		var events []Event
		s, events = s.Step(1.0/60, Input{LeftUp: true, Start: true})
		if len(events) != 0 {
			t.Fatalf("events emitted on the win screen: %v", events)
		}
	}
	if s.Phase != PhaseMatchOver || s.Score != before.Score || s.Ball != before.Ball {
		t.Fatal("session changed while awaiting a decision")
	}

	s, _ = s.Step(1.0/60, Input{Rematch: true})
	if s.Score != (Score{}) {
		t.Fatalf("rematch did not clear score: %d-%d", s.Score.Left, s.Score.Right)
	}
	if s.Phase != PhaseCountdown || s.Countdown.Remaining != 3 {
		t.Fatalf("rematch did not re-arm countdown: phase=%s countdown=%+v", s.Phase, s.Countdown)
	}
}

func TestSession_PaddleHitEmitsSideEvent(t *testing.T) {
	s := liveSession()
	s.Ball = Ball{Pos: Vec2{X: 740, Y: 225}, Vel: Vec2{X: 300}}

	s, events := s.Step(1.0/60, Input{})
	if len(events) != 1 || events[0] != (Event{Kind: EventPaddleCollision, Side: SideRight}) {
		t.Fatalf("expected one right paddle collision, got %v", events)
	}
	if s.Ball.Vel.X != -305 || s.Ball.Pos.X != 730 {
		t.Fatalf("unexpected ball after hit: %+v", s.Ball)
	}
}

func TestSession_FieldEventsCarryNoSide(t *testing.T) {
	s := liveSession()
	s.Ball = Ball{Pos: Vec2{X: 400, Y: 12}, Vel: Vec2{Y: -300}}

	_, events := s.Step(1.0/60, Input{})
	if len(events) != 1 || events[0] != (Event{Kind: EventBorderCollision, Side: SideNone}) {
		t.Fatalf("expected one sideless border collision, got %v", events)
	}
	if events[0].Side.String() != "--" {
		t.Fatalf("SideNone prints as %q", events[0].Side.String())
	}

	s = NewSession(DefaultRules(), DefaultDimensions())
	s.Countdown.Remaining = 0.001
	_, events = s.Step(1.0/60, Input{})
	if countKind(events, EventCountdownEnd) != 1 {
		t.Fatalf("expected countdown end, got %v", events)
	}
	for _, ev := range events {
		if ev.Kind == EventCountdownEnd && ev.Side != SideNone {
			t.Fatalf("countdown end carries side %s", ev.Side)
		}
	}
}

func TestNextMode(t *testing.T) {
	cases := []struct {
		from Mode
		sig  Signal
		want Mode
	}{
		{ModeMainMenu, SignalStart, ModeGameplay},
		{ModeMainMenu, SignalQuit, ModeQuit},
		{ModeMainMenu, SignalAbandon, ModeMainMenu},
		{ModeGameplay, SignalAbandon, ModeMainMenu},
		{ModeGameplay, SignalQuit, ModeGameplay},
		{ModeGameplay, SignalStart, ModeGameplay},
		{ModeQuit, SignalStart, ModeQuit},
		{ModeQuit, SignalAbandon, ModeQuit},
	}
	for _, tc := range cases {
		if got := NextMode(tc.from, tc.sig); got != tc.want {
			t.Errorf("NextMode(%s, %d) = %s, want %s", tc.from, tc.sig, got, tc.want)
		}
	}
}

type stubLoader struct {
	dims Dimensions
	err  error
	hits int
}

func (l *stubLoader) LoadSession() (Dimensions, error) {
	l.hits++
	return l.dims, l.err
}

func TestApp_StartLoadsAssetsOnce(t *testing.T) {
	dims := DefaultDimensions()
	dims.Ball = Size{W: 16, H: 16}
	loader := &stubLoader{dims: dims}
	app := NewApp(DefaultRules(), loader, nil)

	f, err := app.Step(1.0/60, Input{})
	if err != nil || f.Mode != ModeMainMenu {
		t.Fatalf("idle menu tick: mode=%s err=%v", f.Mode, err)
	}
	f, err = app.Step(1.0/60, Input{Start: true})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if f.Mode != ModeGameplay || app.Session.Dims.Ball.W != 16 {
		t.Fatalf("expected gameplay with loaded dims, got mode=%s dims=%+v", f.Mode, app.Session.Dims)
	}
	app.Step(1.0/60, Input{Start: true})
	if loader.hits != 1 {
		t.Fatalf("expected assets loaded once, got %d", loader.hits)
	}
}

func TestApp_LoaderFailureIsFatal(t *testing.T) {
	boom := errors.New("missing sprites/ball.png")
	app := NewApp(DefaultRules(), &stubLoader{err: boom}, nil)

	f, err := app.Step(1.0/60, Input{Start: true})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped loader error, got %v", err)
	}
	if f.Mode != ModeQuit {
		t.Fatalf("expected quit after bootstrap failure, got %s", f.Mode)
	}
}

func TestApp_AbandonReturnsToMenuAndQuitIsTerminal(t *testing.T) {
	app := NewApp(DefaultRules(), nil, nil)
	app.Step(1.0/60, Input{Start: true})
	app.Step(1.0/60, Input{})

	f, _ := app.Step(1.0/60, Input{Abandon: true, LeftUp: true})
	if f.Mode != ModeMainMenu {
		t.Fatalf("expected main menu after abandon, got %s", f.Mode)
	}
	if app.Session.Tick != 0 {
		t.Fatal("session state survived abandon")
	}
	if _, ok := app.Log.LastOf("match", "abandon"); !ok {
		t.Fatal("abandon not logged")
	}

	f, _ = app.Step(1.0/60, Input{Quit: true})
	if f.Mode != ModeQuit {
		t.Fatalf("expected quit, got %s", f.Mode)
	}
	f, _ = app.Step(1.0/60, Input{Start: true})
	if f.Mode != ModeQuit {
		t.Fatalf("quit is terminal, got %s", f.Mode)
	}
}

func TestApp_AbandonOnWinScreenReturnsToMenu(t *testing.T) {
	app := NewApp(DefaultRules(), nil, nil)
	app.Step(1.0/60, Input{Start: true})

	s := liveSession()
	s.Score = Score{Left: 4, Right: 3}
	s.Ball = Ball{Pos: Vec2{X: 798, Y: 225}, Vel: Vec2{X: 400}}
	s.Right.Pos.Y = 40
	app.Session = s

	f, _ := app.Step(1.0/60, Input{})
	if f.Mode != ModeGameplay || app.Session.Phase != PhaseMatchOver {
		t.Fatalf("expected win screen, got mode=%s phase=%s", f.Mode, app.Session.Phase)
	}
	if app.Session.Score != (Score{Left: 5, Right: 3}) {
		t.Fatalf("unexpected final score %d-%d", app.Session.Score.Left, app.Session.Score.Right)
	}

	f, _ = app.Step(1.0/60, Input{Abandon: true})
	if f.Mode != ModeMainMenu || app.Mode != ModeMainMenu {
		t.Fatalf("expected main menu after abandon on the win screen, got %s", f.Mode)
	}
	if app.Session.Score != (Score{}) || app.Session.Phase != PhaseCountdown || app.Session.Tick != 0 {
		t.Fatalf("session not discarded: %+v", app.Session)
	}
	last, ok := app.Log.LastOf("match", "abandon")
	if !ok || last.Value != "5-3" {
		t.Fatalf("abandon not logged with the final score: %+v", last)
	}
	if len(f.Draw) != 0 || len(f.Events) != 0 {
		t.Fatal("menu frame carries gameplay output")
	}
}
