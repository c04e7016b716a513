package main

import (
	"testing"

	"github.com/Garsondee/Macro-Pong/internal/match"
)

func TestStatsFromEntries_CountsAndRallies(t *testing.T) {
	entries := []match.EventLogEntry{
		{Tick: 0, Side: "--", Category: "match", Key: "start"},
		{Tick: 200, Side: "left", Category: "paddle", Key: "hit", NumVal: 305},
		{Tick: 240, Side: "--", Category: "ball", Key: "border"},
		{Tick: 260, Side: "right", Category: "paddle", Key: "hit", NumVal: 310},
		{Tick: 300, Side: "left", Category: "paddle", Key: "hit", NumVal: 315},
		{Tick: 340, Side: "left", Category: "round", Key: "win"},
		{Tick: 600, Side: "right", Category: "paddle", Key: "hit", NumVal: 305},
		{Tick: 660, Side: "right", Category: "round", Key: "win"},
	}

	rs := statsFromEntries(entries)
	if rs.leftHits != 2 || rs.rightHits != 2 {
		t.Fatalf("expected hits left=2 right=2, got left=%d right=%d", rs.leftHits, rs.rightHits)
	}
	if rs.rounds != 2 || rs.borderBounces != 1 {
		t.Fatalf("expected rounds=2 border=1, got rounds=%d border=%d", rs.rounds, rs.borderBounces)
	}
	if rs.longestRally != 3 {
		t.Fatalf("expected longest rally 3, got %d", rs.longestRally)
	}
	if rs.topSpeed != 315 {
		t.Fatalf("expected top speed 315, got %.0f", rs.topSpeed)
	}
	if rs.firstHitTick != 200 || rs.firstPointTick != 340 {
		t.Fatalf("expected markers 200/340, got %d/%d", rs.firstHitTick, rs.firstPointTick)
	}
}

func TestStatsFromEntries_EmptyLog(t *testing.T) {
	rs := statsFromEntries(nil)
	if rs.firstHitTick != -1 || rs.firstPointTick != -1 {
		t.Fatalf("expected -1 markers for an empty log, got %d/%d", rs.firstHitTick, rs.firstPointTick)
	}
}

func TestRunMatch_UnfinishedWithinTickLimit(t *testing.T) {
	rs := runMatch(3, 7, 300, 20, 5, 0)
	if rs.finished || rs.winner != "" {
		t.Fatalf("a match cannot finish in 300 ticks, got winner=%q", rs.winner)
	}
	if rs.runIndex != 3 || rs.seed != 7 {
		t.Fatalf("run identity not recorded: %+v", rs)
	}
	if rs.ticks <= 0 || rs.ticks > 300 {
		t.Fatalf("expected session ticks within (0, 300], got %d", rs.ticks)
	}
}

func TestJoinCounts_Sorted(t *testing.T) {
	got := joinCounts(map[string]int{"right": 2, "left": 3})
	if got != "left=3 right=2" {
		t.Fatalf("unexpected join %q", got)
	}
}

func TestAvgTickString(t *testing.T) {
	if got := avgTickString(nil); got != "n/a" {
		t.Fatalf("expected n/a, got %s", got)
	}
	if got := avgTickString([]int{10, 20}); got != "15.0" {
		t.Fatalf("expected 15.0, got %s", got)
	}
}
