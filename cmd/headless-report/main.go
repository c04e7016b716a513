package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/Garsondee/Macro-Pong/internal/match"
)

type runStats struct {
	runIndex int
	seed     int64

	finished   bool
	winner     string
	scoreLeft  int
	scoreRight int
	ticks      int

	rounds        int
	leftHits      int
	rightHits     int
	borderBounces int
	topSpeed      float64
	longestRally  int
	finalRally    int

	firstHitTick   int
	firstPointTick int
}

func main() {
	var runs int
	var maxTicks int
	var seedBase int64
	var seedStep int64
	var aim float64
	var deadZone float64
	var miss float64

	flag.IntVar(&runs, "runs", 5, "number of headless matches")
	flag.IntVar(&maxTicks, "max-ticks", 60*60*10, "tick limit per match")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Float64Var(&aim, "aim", 12, "vertical offset the left pilot aims for (right uses the negation)")
	flag.Float64Var(&deadZone, "dead-zone", 4, "pilot dead zone in pixels")
	flag.Float64Var(&miss, "miss", 0.05, "per-tick probability a pilot freezes")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if maxTicks <= 0 {
		fmt.Println("error: -max-ticks must be > 0")
		return
	}
	if miss < 0 || miss > 1 {
		fmt.Println("error: -miss must be within [0, 1]")
		return
	}

	fmt.Printf("=== Headless Match Report ===\n")
	fmt.Printf("runs=%d max_ticks=%d seed_base=%d seed_step=%d aim=%.1f dead_zone=%.1f miss=%.2f\n\n",
		runs, maxTicks, seedBase, seedStep, aim, deadZone, miss)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs := runMatch(i+1, seed, maxTicks, aim, deadZone, miss)
		all = append(all, rs)
		printRun(rs)
	}

	printAggregate(all)
}

func runMatch(runIndex int, seed int64, maxTicks int, aim, deadZone, miss float64) runStats {
	tm := match.NewTestMatch(
		match.WithSeed(seed),
		match.WithTrackingPilots(aim, deadZone, miss),
	)
	tm.RunUntil(match.MatchOver, maxTicks)

	rs := statsFromEntries(tm.Log().Entries())
	rs.runIndex = runIndex
	rs.seed = seed
	rs.ticks = tm.Session().Tick
	rs.scoreLeft = tm.Session().Score.Left
	rs.scoreRight = tm.Session().Score.Right
	rs.finalRally = tm.Log().FinalRally()
	rs.finished = match.MatchOver(tm)
	if rs.finished {
		rs.winner = tm.Session().Winner.String()
	}
	return rs
}

// statsFromEntries folds an event log into per-match counters. Rally length
// counts paddle hits between two round wins.
func statsFromEntries(entries []match.EventLogEntry) runStats {
	rs := runStats{firstHitTick: -1, firstPointTick: -1}
	rally := 0
	for _, e := range entries {
		switch {
		case e.Category == "paddle" && e.Key == "hit":
			if rs.firstHitTick < 0 {
				rs.firstHitTick = e.Tick
			}
			if e.Side == "left" {
				rs.leftHits++
			} else {
				rs.rightHits++
			}
			if e.NumVal > rs.topSpeed {
				rs.topSpeed = e.NumVal
			}
			rally++
		case e.Category == "ball" && e.Key == "border":
			rs.borderBounces++
		case e.Category == "round" && e.Key == "win":
			if rs.firstPointTick < 0 {
				rs.firstPointTick = e.Tick
			}
			rs.rounds++
			if rally > rs.longestRally {
				rs.longestRally = rally
			}
			rally = 0
		}
	}
	return rs
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	if rs.finished {
		fmt.Printf("result: winner=%s score=%d-%d ticks=%d\n", rs.winner, rs.scoreLeft, rs.scoreRight, rs.ticks)
	} else {
		fmt.Printf("result: unfinished score=%d-%d ticks=%d\n", rs.scoreLeft, rs.scoreRight, rs.ticks)
	}
	fmt.Printf("event_totals: rounds=%d hits_left=%d hits_right=%d border=%d\n",
		rs.rounds, rs.leftHits, rs.rightHits, rs.borderBounces)
	fmt.Printf("markers: first_hit=%d first_point=%d longest_rally=%d final_rally=%d top_speed=%.0f\n",
		rs.firstHitTick, rs.firstPointTick, rs.longestRally, rs.finalRally, rs.topSpeed)
	fmt.Println()
}

func printAggregate(all []runStats) {
	wins := map[string]int{}
	totalRounds := 0
	totalHits := 0
	totalBorder := 0
	unfinished := 0
	topSpeed := 0.0
	matchTicks := make([]int, 0, len(all))
	pointTicks := make([]int, 0, len(all))

	for _, rs := range all {
		if rs.finished {
			wins[rs.winner]++
			matchTicks = append(matchTicks, rs.ticks)
		} else {
			unfinished++
		}
		if rs.firstPointTick >= 0 {
			pointTicks = append(pointTicks, rs.firstPointTick)
		}
		totalRounds += rs.rounds
		totalHits += rs.leftHits + rs.rightHits
		totalBorder += rs.borderBounces
		if rs.topSpeed > topSpeed {
			topSpeed = rs.topSpeed
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d unfinished=%d wins=[%s]\n", len(all), unfinished, joinCounts(wins))
	fmt.Printf("avg_per_run: rounds=%.1f hits=%.1f border=%.1f\n",
		avg(totalRounds, len(all)), avg(totalHits, len(all)), avg(totalBorder, len(all)))
	fmt.Printf("avg_ticks: match=%s first_point=%s\n", avgTickString(matchTicks), avgTickString(pointTicks))
	fmt.Printf("top_speed=%.0f\n", topSpeed)
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinCounts(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
	}
	return strings.Join(parts, " ")
}
