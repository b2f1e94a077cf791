package config

import (
	_ "embed"
)

//go:embed defaults/treats.yaml
var defaultTreatsYAML []byte

// DefaultTreatsConfig returns the built-in configuration.
// It matches defaults/treats.yaml and is used when the embedded file cannot be parsed.
func DefaultTreatsConfig() TreatsConfig {
	return TreatsConfig{
		Canvas: CanvasConfig{
			Width:  1000,
			Height: 750,
			Grid:   25,
		},
		Player: PlayerConfig{
			StartRadius: 50,
			MinRadius:   10,
			MaxRadius:   150,
			Growth:      7.5,
			Shrink:      15,
			Step:        25,
		},
		Entities: EntitiesConfig{
			Mines:           4,
			Treats:          10,
			BigTreats:       2,
			TreatSize:       15,
			BigTreatSize:    20,
			MineRadius:      7.5,
			MineOuterRadius: 12.5,
			StarSpikes:      5,
			StarOuterRadius: 20,
			StarInnerRadius: 10,
			StarMargin:      20,
		},
		Rules: RulesConfig{
			Lives:              3,
			TreatValue:         1,
			BigTreatValue:      3,
			MinePenalty:        2,
			LossMinesRemaining: 1,
			MaxSpawnAttempts:   10000,
		},
		Bonus: BonusConfig{
			FirstCutoff:  5,
			SecondCutoff: 10,
		},
	}
}

// DefaultTreatsYAML returns the embedded default YAML, as printed by `treathunt config --defaults`.
func DefaultTreatsYAML() []byte {
	return defaultTreatsYAML
}
