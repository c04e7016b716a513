package match

import "fmt"

// Mode is the top-level program state.
type Mode int

const (
	ModeMainMenu Mode = iota
	ModeGameplay
	ModeQuit
)

func (m Mode) String() string {
	switch m {
	case ModeMainMenu:
		return "main_menu"
	case ModeGameplay:
		return "gameplay"
	case ModeQuit:
		return "quit"
	}
	return "unknown"
}

// Signal is a discrete input that can change the top-level mode.
type Signal int

const (
	SignalNone Signal = iota
	SignalStart
	SignalAbandon
	SignalQuit
)

// NextMode is the top-level transition function. Anything not listed is a
// no-op: Quit is terminal and can only be reached from the menu.
func NextMode(m Mode, sig Signal) Mode {
	switch {
	case m == ModeMainMenu && sig == SignalStart:
		return ModeGameplay
	case m == ModeMainMenu && sig == SignalQuit:
		return ModeQuit
	case m == ModeGameplay && sig == SignalAbandon:
		return ModeMainMenu
	}
	return m
}

// signalOf picks the mode-level signal carried by in for mode m.
func signalOf(m Mode, in Input) Signal {
	switch m {
	case ModeMainMenu:
		if in.Quit {
			return SignalQuit
		}
		if in.Start {
			return SignalStart
		}
	case ModeGameplay:
		if in.Abandon {
			return SignalAbandon
		}
	}
	return SignalNone
}

// AssetLoader resolves sprite dimensions when a gameplay session begins.
// A failure is fatal for the session.
type AssetLoader interface {
	LoadSession() (Dimensions, error)
}

// Frame is the output of one App step: what to draw and what to play.
type Frame struct {
	Mode   Mode
	Events []Event
	Draw   []DrawCommand
}

// App owns the top-level mode and, while in gameplay, the active session.
type App struct {
	Mode    Mode
	Session Session
	Log     *EventLog

	rules    Rules
	loader   AssetLoader
	measurer TextMeasurer
}

// NewApp returns an App sitting at the main menu. loader and m may be nil,
// in which case default dimensions and MonoMeasurer are used.
func NewApp(r Rules, loader AssetLoader, m TextMeasurer) *App {
	if m == nil {
		m = MonoMeasurer{}
	}
	return &App{
		Mode:     ModeMainMenu,
		Log:      NewEventLog(false),
		rules:    r,
		loader:   loader,
		measurer: m,
	}
}

// Rules returns the ruleset new sessions are built from.
func (a *App) Rules() Rules {
	return a.rules
}

// Step advances the program by one tick. Abandon and quit are read before
// any simulation work. The error is non-nil only when entering gameplay and
// the asset loader fails; the caller must treat it as fatal.
func (a *App) Step(dt float64, in Input) (Frame, error) {
	prevMode := a.Mode
	a.Mode = NextMode(a.Mode, signalOf(a.Mode, in))

	switch {
	case prevMode == ModeMainMenu && a.Mode == ModeGameplay:
		if err := a.beginSession(); err != nil {
			a.Mode = ModeQuit
			return Frame{Mode: a.Mode}, err
		}
		return Frame{Mode: a.Mode, Draw: a.Session.DrawList(a.measurer)}, nil
	case prevMode == ModeGameplay && a.Mode == ModeMainMenu:
		a.Log.Add(a.Session.Tick, "--", "match", "abandon",
			fmt.Sprintf("%d-%d", a.Session.Score.Left, a.Session.Score.Right), 0)
		a.Session = Session{}
		return Frame{Mode: a.Mode}, nil
	}

	if a.Mode != ModeGameplay {
		return Frame{Mode: a.Mode}, nil
	}

	prev := a.Session
	var events []Event
	a.Session, events = a.Session.Step(dt, in)
	a.Log.recordTick(prev, a.Session, events)

	return Frame{Mode: a.Mode, Events: events, Draw: a.Session.DrawList(a.measurer)}, nil
}

func (a *App) beginSession() error {
	dims := DefaultDimensions()
	if a.loader != nil {
		var err error
		if dims, err = a.loader.LoadSession(); err != nil {
			return fmt.Errorf("start session: %w", err)
		}
	}
	a.Session = NewSession(a.rules, dims)
	a.Log.Reset()
	a.Log.Add(0, "--", "match", "start", fmt.Sprintf("first to %d", a.rules.WinScore), 0)
	return nil
}
