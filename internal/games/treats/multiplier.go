package treats

import "github.com/vovakirdan/treat-hunt/internal/config"

// BonusWindow maps elapsed round time to a score multiplier.
type BonusWindow struct {
	First  int // Seconds below which treats score 3x
	Second int // Seconds below which treats score 2x
}

// NewBonusWindow builds a window from config.
func NewBonusWindow(cfg config.BonusConfig) BonusWindow {
	return BonusWindow{First: cfg.FirstCutoff, Second: cfg.SecondCutoff}
}

// Multiplier returns 3, 2 or 1 for the given elapsed seconds.
// The bonus only applies while the minutes readout shows 00.
func (w BonusWindow) Multiplier(elapsed int) int {
	minutes, seconds := elapsed/60, elapsed%60
	switch {
	case minutes == 0 && seconds < w.First:
		return 3
	case minutes == 0 && seconds < w.Second:
		return 2
	default:
		return 1
	}
}

// Tally counts collections per multiplier bucket, for reporting only.
type Tally struct {
	TreatsX3    int
	TreatsX2    int
	TreatsX1    int
	BigTreatsX3 int
	BigTreatsX2 int
	BigTreatsX1 int
	Mines       int // Mines triggered
}

// Record counts one collection of kind at multiplier mult.
func (t *Tally) Record(kind TreatKind, mult int) {
	switch kind {
	case TreatSmall:
		switch mult {
		case 3:
			t.TreatsX3++
		case 2:
			t.TreatsX2++
		default:
			t.TreatsX1++
		}
	case TreatBig:
		switch mult {
		case 3:
			t.BigTreatsX3++
		case 2:
			t.BigTreatsX2++
		default:
			t.BigTreatsX1++
		}
	}
}

// Bucket is one line of the end-of-round breakdown.
type Bucket struct {
	Kind       TreatKind
	Multiplier int
	Count      int
	Points     int
}

// Breakdown returns the six buckets in display order: 3x, 2x, none,
// treats before big treats within each multiplier.
func (t Tally) Breakdown(rules config.RulesConfig) []Bucket {
	bucket := func(kind TreatKind, mult, count int) Bucket {
		value := rules.TreatValue
		if kind == TreatBig {
			value = rules.BigTreatValue
		}
		return Bucket{Kind: kind, Multiplier: mult, Count: count, Points: count * value * mult}
	}
	return []Bucket{
		bucket(TreatSmall, 3, t.TreatsX3),
		bucket(TreatBig, 3, t.BigTreatsX3),
		bucket(TreatSmall, 2, t.TreatsX2),
		bucket(TreatBig, 2, t.BigTreatsX2),
		bucket(TreatSmall, 1, t.TreatsX1),
		bucket(TreatBig, 1, t.BigTreatsX1),
	}
}
