package match

import (
	"strings"
	"testing"
)

func TestEventLog_FilterAndVerbose(t *testing.T) {
	el := NewEventLog(false)
	el.Add(1, "left", "paddle", "hit", "vx=305.0 vy=0.0", 305)
	el.Add(2, "--", "ball", "border", "y=9.0 vy=120.0", 120)
	el.AddVerbose(2, "--", "move", "ball", "(400.0,225.0)", 300)
	el.Add(9, "right", "round", "win", "0-1", 1)

	if got := len(el.Entries()); got != 3 {
		t.Fatalf("verbose entry recorded in quiet log: %d entries", got)
	}
	if el.Count("paddle", "") != 1 || el.Count("", "win") != 1 {
		t.Fatal("filter by category or key failed")
	}
	if got := el.FilterTickRange(2, 9); len(got) != 2 || got[0].Category != "ball" {
		t.Fatalf("tick range returned %+v", got)
	}
	last, ok := el.LastOf("ball", "border")
	if !ok || last.Tick != 2 {
		t.Fatalf("LastOf returned %+v, %v", last, ok)
	}
	if !strings.Contains(el.Format(), "[T=0009] right round") {
		t.Fatalf("unexpected format:\n%s", el.Format())
	}

	el.Reset()
	if len(el.Entries()) != 0 {
		t.Fatal("reset kept entries")
	}
}

func TestEventLog_FinalRallyCountsHitsAfterPreviousPoint(t *testing.T) {
	el := NewEventLog(false)
	if el.FinalRally() != 0 {
		t.Fatal("empty log has no rally")
	}
	el.Add(10, "left", "paddle", "hit", "", 305)
	el.Add(20, "right", "round", "win", "0-1", 1)
	el.Add(300, "right", "paddle", "hit", "", 305)
	el.Add(340, "left", "paddle", "hit", "", 310)
	el.Add(380, "right", "paddle", "hit", "", 315)
	el.Add(420, "left", "round", "win", "1-1", 1)

	if got := el.FinalRally(); got != 3 {
		t.Fatalf("expected a 3-hit final rally, got %d", got)
	}

	el.Add(421, "left", "match", "winner", "1-1", 0)
	s := Session{Phase: PhaseMatchOver, Winner: SideLeft, Tick: 421}
	if sum := el.Summary(s); !strings.Contains(sum, "Decided at T=0421 after a 3-hit rally") {
		t.Fatalf("summary missing decision line:\n%s", sum)
	}
}
