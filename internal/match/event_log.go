package match

import (
	"fmt"
	"strings"
)

// EventLogEntry is one recorded event during a session.
type EventLogEntry struct {
	Tick     int
	Side     string  // "left", "right", or "--" for field-wide events
	Category string  // ball, paddle, round, countdown, match, move
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=0412] right paddle    hit              vx=-305.0 vy=0.0
func (e EventLogEntry) String() string {
	return fmt.Sprintf("[T=%04d] %-5s %-9s %-16s %s",
		e.Tick, e.Side, e.Category, e.Key, e.Value)
}

// EventLog collects structured events for a session. It is unbounded and
// machine-readable; the on-screen feed keeps only the tail.
type EventLog struct {
	entries []EventLogEntry
	verbose bool
}

// NewEventLog creates an EventLog. If verbose is true, per-tick ball and
// paddle positions are also recorded.
func NewEventLog(verbose bool) *EventLog {
	return &EventLog{verbose: verbose}
}

// Add records a new entry.
func (el *EventLog) Add(tick int, side, category, key, value string, numVal float64) {
	el.entries = append(el.entries, EventLogEntry{
		Tick:     tick,
		Side:     side,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (el *EventLog) AddVerbose(tick int, side, category, key, value string, numVal float64) {
	if !el.verbose {
		return
	}
	el.Add(tick, side, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (el *EventLog) Entries() []EventLogEntry {
	return el.entries
}

// Reset drops every entry, keeping the verbosity setting.
func (el *EventLog) Reset() {
	el.entries = el.entries[:0]
}

// Filter returns entries with the given category and key. An empty string
// matches anything.
func (el *EventLog) Filter(category, key string) []EventLogEntry {
	return el.collect(func(e EventLogEntry) bool { return e.is(category, key) })
}

// FilterTickRange returns entries logged in ticks [from, to].
func (el *EventLog) FilterTickRange(from, to int) []EventLogEntry {
	return el.collect(func(e EventLogEntry) bool { return e.Tick >= from && e.Tick <= to })
}

func (el *EventLog) collect(keep func(EventLogEntry) bool) []EventLogEntry {
	var out []EventLogEntry
	for _, e := range el.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

func (e EventLogEntry) is(category, key string) bool {
	return (category == "" || e.Category == category) && (key == "" || e.Key == key)
}

// Count returns how many entries match category and key.
func (el *EventLog) Count(category, key string) int {
	return len(el.Filter(category, key))
}

// LastOf returns the newest entry matching category and key.
func (el *EventLog) LastOf(category, key string) (EventLogEntry, bool) {
	for i := len(el.entries) - 1; i >= 0; i-- {
		if el.entries[i].is(category, key) {
			return el.entries[i], true
		}
	}
	return EventLogEntry{}, false
}

// Format returns the full log as a single string.
func (el *EventLog) Format() string {
	var sb strings.Builder
	for _, e := range el.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// recordTick logs the events of one tick plus any phase change.
func (el *EventLog) recordTick(prev, next Session, events []Event) {
	tick := next.Tick
	for _, ev := range events {
		switch ev.Kind {
		case EventBorderCollision:
			el.Add(tick, "--", "ball", "border", fmt.Sprintf("y=%.1f vy=%.1f", next.Ball.Pos.Y, next.Ball.Vel.Y), next.Ball.Vel.Y)
		case EventPaddleCollision:
			el.Add(tick, ev.Side.String(), "paddle", "hit",
				fmt.Sprintf("vx=%.1f vy=%.1f", next.Ball.Vel.X, next.Ball.Vel.Y), next.Ball.Speed())
		case EventRoundWin:
			el.Add(tick, ev.Side.String(), "round", "win",
				fmt.Sprintf("%d-%d", next.Score.Left, next.Score.Right), float64(next.Score.Of(ev.Side)))
		case EventCountdownEnd:
			el.Add(tick, "--", "countdown", "end", "play enabled", 0)
		}
	}
	if prev.Phase != next.Phase {
		el.Add(tick, "--", "match", "phase", fmt.Sprintf("%s → %s", prev.Phase, next.Phase), 0)
		if next.Phase == PhaseMatchOver {
			el.Add(tick, next.Winner.String(), "match", "winner",
				fmt.Sprintf("%d-%d", next.Score.Left, next.Score.Right), 0)
		}
	}
	if next.Phase == PhaseRound {
		el.AddVerbose(tick, "--", "move", "ball", fmt.Sprintf("(%.1f,%.1f)", next.Ball.Pos.X, next.Ball.Pos.Y), next.Ball.Speed())
		el.AddVerbose(tick, "left", "move", "paddle", fmt.Sprintf("%.1f", next.Left.Pos.Y), next.Left.Pos.Y)
		el.AddVerbose(tick, "right", "move", "paddle", fmt.Sprintf("%.1f", next.Right.Pos.Y), next.Right.Pos.Y)
	}
}

// FinalRally counts the paddle hits logged since the second-to-last point,
// which is the rally that produced the last point.
func (el *EventLog) FinalRally() int {
	wins := el.Filter("round", "win")
	if len(wins) == 0 {
		return 0
	}
	from := 0
	if len(wins) > 1 {
		from = wins[len(wins)-2].Tick + 1
	}
	hits := 0
	for _, e := range el.FilterTickRange(from, wins[len(wins)-1].Tick) {
		if e.is("paddle", "hit") {
			hits++
		}
	}
	return hits
}

// Summary returns a short human-readable summary of the session.
func (el *EventLog) Summary(s Session) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at T=%04d ---\n", s.Tick)
	fmt.Fprintf(&sb, "Score: left=%d  right=%d  phase=%s\n", s.Score.Left, s.Score.Right, s.Phase)
	if s.Phase == PhaseMatchOver {
		fmt.Fprintf(&sb, "Result: %s\n", WinnerBanner(s.Winner))
		if w, ok := el.LastOf("match", "winner"); ok {
			fmt.Fprintf(&sb, "Decided at T=%04d after a %d-hit rally\n", w.Tick, el.FinalRally())
		}
	}

	hits := map[string]int{}
	top := 0.0
	for _, e := range el.Filter("paddle", "hit") {
		hits[e.Side]++
		if e.NumVal > top {
			top = e.NumVal
		}
	}
	fmt.Fprintf(&sb, "Hits: left=%d  right=%d  top speed=%.0f\n", hits["left"], hits["right"], top)
	fmt.Fprintf(&sb, "Rounds: %d  border bounces: %d\n", el.Count("round", "win"), el.Count("ball", "border"))
	return sb.String()
}
