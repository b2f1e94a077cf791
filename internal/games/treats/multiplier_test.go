package treats

import (
	"testing"

	"github.com/vovakirdan/treat-hunt/internal/config"
)

func TestMultiplier(t *testing.T) {
	w := NewBonusWindow(config.BonusConfig{FirstCutoff: 5, SecondCutoff: 10})
	tests := []struct {
		elapsed  int
		expected int
	}{
		{0, 3},
		{4, 3},
		{5, 2},
		{9, 2},
		{10, 1},
		{59, 1},
		{61, 1}, // ss is 01 but mm is no longer 00
		{125, 1},
	}

	for _, tc := range tests {
		if got := w.Multiplier(tc.elapsed); got != tc.expected {
			t.Errorf("Multiplier(%d) = %d, expected %d", tc.elapsed, got, tc.expected)
		}
	}
}

func TestTallyBreakdown(t *testing.T) {
	var tally Tally
	tally.Record(TreatSmall, 3)
	tally.Record(TreatSmall, 3)
	tally.Record(TreatBig, 2)
	tally.Record(TreatSmall, 1)
	tally.Record(TreatBig, 1)

	rules := config.DefaultTreatsConfig().Rules
	got := tally.Breakdown(rules)
	expected := []Bucket{
		{Kind: TreatSmall, Multiplier: 3, Count: 2, Points: 6},
		{Kind: TreatBig, Multiplier: 3, Count: 0, Points: 0},
		{Kind: TreatSmall, Multiplier: 2, Count: 0, Points: 0},
		{Kind: TreatBig, Multiplier: 2, Count: 1, Points: 6},
		{Kind: TreatSmall, Multiplier: 1, Count: 1, Points: 1},
		{Kind: TreatBig, Multiplier: 1, Count: 1, Points: 3},
	}
	if len(got) != len(expected) {
		t.Fatalf("got %d buckets, expected %d", len(got), len(expected))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("bucket %d = %+v, expected %+v", i, got[i], expected[i])
		}
	}
}

func TestClock(t *testing.T) {
	tests := []struct {
		elapsed int
		mm, ss  string
	}{
		{0, "00", "00"},
		{9, "00", "09"},
		{60, "01", "00"},
		{754, "12", "34"},
	}
	for _, tc := range tests {
		mm, ss := Clock(tc.elapsed)
		if mm != tc.mm || ss != tc.ss {
			t.Errorf("Clock(%d) = %s:%s, expected %s:%s", tc.elapsed, mm, ss, tc.mm, tc.ss)
		}
	}
}
