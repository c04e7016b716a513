package game

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Macro-Pong/internal/config"
	"github.com/Garsondee/Macro-Pong/internal/match"
)

// Game is the ebiten front end around match.App. It polls input, feeds one
// tick per Update, plays the emitted events and draws the returned frame.
type Game struct {
	cfg   *config.Config
	app   *match.App
	frame match.Frame

	assets  *Assets
	fonts   *Fonts
	speaker *Speaker
	menu    Menu
	feed    *Feed

	// Edge-triggered input state.
	prevKeys      map[ebiten.Key]bool
	prevMouseLeft bool

	showFeed bool
}

// New builds the game at the main menu. Sprites and sounds are not touched
// until a session starts.
func New(cfg *config.Config) *Game {
	rules := cfg.MatchRules()
	fonts := NewFonts()
	g := &Game{
		cfg:      cfg,
		fonts:    fonts,
		assets:   NewAssets(cfg.Assets.Dir, cfg.Audio.Enabled, cfg.Audio.SampleRate, cfg.Audio.Volume),
		menu:     NewMenu(rules.FieldW, rules.FieldH),
		feed:     NewFeed(),
		prevKeys: make(map[ebiten.Key]bool),
	}
	if cfg.Audio.Enabled {
		g.speaker = NewSpeaker(cfg.Audio.SampleRate)
	}
	g.app = match.NewApp(rules, g.assets, fonts)
	g.frame = match.Frame{Mode: g.app.Mode}
	return g
}

func (g *Game) Update() error {
	in := g.handleInput()

	f, err := g.app.Step(1/float64(ebiten.TPS()), in)
	if err != nil {
		return fmt.Errorf("gameplay bootstrap: %w", err)
	}
	if f.Mode == match.ModeGameplay && g.frame.Mode != match.ModeGameplay {
		g.feed.Clear()
		g.speaker.Load(g.assets.Sounds())
		g.feed.Add(0, "--", fmt.Sprintf("first to %d", g.app.Rules().WinScore))
	}
	g.frame = f

	for _, ev := range f.Events {
		g.speaker.Play(ev)
		g.feed.AddEvent(g.app.Session, ev)
	}
	if in.Copy && f.Mode == match.ModeGameplay && g.app.Session.Phase == match.PhaseMatchOver {
		g.copyResult()
	}
	if f.Mode == match.ModeQuit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) copyResult() {
	summary := g.app.Log.Summary(g.app.Session)
	if err := copyToClipboard(summary); err != nil {
		log.Printf("copy result: %v", err)
		g.feed.Add(g.app.Session.Tick, "--", "clipboard unavailable")
		return
	}
	g.feed.Add(g.app.Session.Tick, "--", "result copied")
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.frame.Mode {
	case match.ModeMainMenu:
		g.menu.Draw(screen, g.fonts)
	case match.ModeGameplay:
		g.drawFrame(screen, g.frame.Draw)
	default:
		screen.Fill(color.Black)
	}
	if g.showFeed {
		g.feed.Draw(screen)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	r := g.app.Rules()
	return int(r.FieldW), int(r.FieldH)
}
