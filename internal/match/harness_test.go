package match

import (
	"strings"
	"testing"
)

func TestTestMatch_AngledReturnsWinMatchForLeft(t *testing.T) {
	tm := NewTestMatch(
		WithPilot(SideLeft, TrackingPilot(20, 5, 0, nil)),
		WithPilot(SideRight, IdlePilot),
	)
	end := tm.RunUntil(MatchOver, 20000)
	if end < 0 {
		t.Fatalf("match did not finish; log:\n%s", tm.Log().Format())
	}

	s := tm.Session()
	if s.Winner != SideLeft || s.Score != (Score{Left: 5, Right: 0}) {
		t.Fatalf("expected left to win 5-0, got %s %d-%d", s.Winner, s.Score.Left, s.Score.Right)
	}

	// Each exit moves exactly one score by one.
	wins := 0
	for _, e := range tm.Events {
		if e.Kind == EventRoundWin {
			wins++
			if e.Side != SideLeft {
				t.Fatalf("round %d credited to %s", wins, e.Side)
			}
		}
	}
	if wins != 5 || tm.Log().Count("round", "win") != 5 {
		t.Fatalf("expected 5 round wins, events=%d log=%d", wins, tm.Log().Count("round", "win"))
	}
	if got := countKind(tm.Events, EventCountdownEnd); got != 5 {
		t.Fatalf("expected 5 countdowns to expire, got %d", got)
	}
	if !strings.Contains(tm.Log().Summary(s), "Left Player Won!") {
		t.Fatalf("summary missing winner:\n%s", tm.Log().Summary(s))
	}
}

func TestTestMatch_SpeedNeverDecreasesBetweenHitsInARound(t *testing.T) {
	tm := NewTestMatch(
		WithSeed(3),
		WithTrackingPilots(12, 4, 0.05),
	)
	tm.RunUntil(MatchOver, 30000)

	var last float64
	lastRound := 0
	rounds := 0
	for _, e := range tm.Log().Entries() {
		switch {
		case e.Category == "round" && e.Key == "win":
			rounds++
		case e.Category == "paddle" && e.Key == "hit":
			if rounds != lastRound {
				last = 0
				lastRound = rounds
			}
			if e.NumVal < last || e.NumVal > 600 {
				t.Fatalf("T=%d: hit speed %.1f after %.1f", e.Tick, e.NumVal, last)
			}
			last = e.NumVal
		}
	}
}

func TestTestMatch_VerboseLogsPositions(t *testing.T) {
	tm := NewTestMatch(WithVerbose(true))
	tm.RunTicks(200)
	if tm.Log().Count("move", "ball") == 0 {
		t.Fatal("expected verbose ball positions once play was enabled")
	}
	if _, ok := tm.Log().LastOf("countdown", "end"); !ok {
		t.Fatal("countdown end not logged")
	}
	if got := len(tm.Log().FilterTickRange(0, 180)); got != 1 {
		// Only the session start entry precedes the countdown.
		t.Fatalf("expected 1 entry before the countdown ends, got %d:\n%s", got, tm.Log().Format())
	}
}
