package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Macro-Pong/internal/match"
)

const (
	feedWidth      = 260
	feedMaxEntries = 24
	feedLineHeight = 14
)

// FeedEntry is a single line in the event feed.
type FeedEntry struct {
	Tick    int
	Side    string // "left", "right" or "--"
	Message string
}

// Feed is a ring buffer of recent match events rendered as an overlay.
type Feed struct {
	entries []FeedEntry
	head    int
	count   int
}

// NewFeed creates a feed with a fixed capacity.
func NewFeed() *Feed {
	return &Feed{
		entries: make([]FeedEntry, feedMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest once full.
func (f *Feed) Add(tick int, side, msg string) {
	f.entries[f.head] = FeedEntry{Tick: tick, Side: side, Message: msg}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// AddEvent records ev as it looked in session s.
func (f *Feed) AddEvent(s match.Session, ev match.Event) {
	switch ev.Kind {
	case match.EventPaddleCollision:
		f.Add(s.Tick, ev.Side.String(), fmt.Sprintf("hit %.0f", s.Ball.Speed()))
	case match.EventRoundWin:
		f.Add(s.Tick, ev.Side.String(), fmt.Sprintf("scores %d-%d", s.Score.Left, s.Score.Right))
	default:
		f.Add(s.Tick, "--", ev.Kind.String())
	}
}

// Clear drops every entry.
func (f *Feed) Clear() {
	f.head, f.count = 0, 0
}

// Recent returns entries in chronological order (oldest first).
func (f *Feed) Recent() []FeedEntry {
	result := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

// Draw renders the feed panel in the top-left corner.
func (f *Feed) Draw(screen *ebiten.Image) {
	entries := f.Recent()
	h := float32(len(entries)*feedLineHeight + 24)
	vector.FillRect(screen, 0, 0, feedWidth, h, color.RGBA{R: 10, G: 12, B: 10, A: 200}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS  [F1] hide", 6, 2)
	vector.StrokeLine(screen, 0, 18, feedWidth, 18, 1.0, color.RGBA{R: 50, G: 80, B: 50, A: 200}, false)

	y := 20
	for _, e := range entries {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%5d %-5s %s", e.Tick, e.Side, e.Message), 6, y)
		y += feedLineHeight
	}
}
