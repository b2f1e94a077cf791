package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/treat-hunt/internal/games/treats"
)

func TestStatsLines(t *testing.T) {
	s := treats.Summary{
		Outcome:    treats.PhaseWon,
		Elapsed:    83,
		Lives:      2,
		Points:     25,
		Mines:      1,
		MinePoints: -2,
		Buckets: []treats.Bucket{
			{Kind: treats.TreatSmall, Multiplier: 3, Count: 4, Points: 12},
			{Kind: treats.TreatBig, Multiplier: 3, Count: 1, Points: 9},
			{Kind: treats.TreatSmall, Multiplier: 1, Count: 6, Points: 6},
		},
	}

	got := strings.Join(StatsLines(s), "\n")
	for _, want := range []string{
		"You win!",
		"Time: 01:23",
		"Lives: 2",
		"Total: 25 points",
		"4 treats (3x): 12 points",
		"1 big treats (3x): 9 points",
		"6 treats (no bonus): 6 points",
		"1 mines triggered: -2 points",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("stats missing %q in:\n%s", want, got)
		}
	}
}

func TestStatsLinesLoss(t *testing.T) {
	lines := StatsLines(treats.Summary{Outcome: treats.PhaseLost})
	if lines[0] != "Game over... better luck next time" {
		t.Errorf("headline = %q", lines[0])
	}
}

func TestRenderStatsFitsArea(t *testing.T) {
	out := renderStats(treats.Summary{Outcome: treats.PhaseWon}, "esc close", 80, 32)
	if n := strings.Count(out, "\n") + 1; n != 32 {
		t.Errorf("modal spans %d rows, expected 32", n)
	}
	if !strings.Contains(out, "esc close") {
		t.Error("help line missing")
	}
}
