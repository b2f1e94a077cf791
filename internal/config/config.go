// Package config provides YAML-based configuration for Treat Hunt:
// board geometry, entity counts, scoring rules and difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// TreatsConfig contains all tunables for a Treat Hunt round.
type TreatsConfig struct {
	Canvas   CanvasConfig   `yaml:"canvas"`
	Player   PlayerConfig   `yaml:"player"`
	Entities EntitiesConfig `yaml:"entities"`
	Rules    RulesConfig    `yaml:"rules"`
	Bonus    BonusConfig    `yaml:"bonus"`
}

// CanvasConfig is the playfield size in pixels and the placement grid size.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Grid   int `yaml:"grid"`
}

// PlayerConfig defines the controllable circle.
type PlayerConfig struct {
	StartRadius float64 `yaml:"start_radius"`
	MinRadius   float64 `yaml:"min_radius"`
	MaxRadius   float64 `yaml:"max_radius"`
	Growth      float64 `yaml:"growth"` // Radius gained per treat
	Shrink      float64 `yaml:"shrink"` // Radius lost per mine
	Step        float64 `yaml:"step"`   // Distance moved per key press
}

// EntitiesConfig defines how many of each entity spawn and their geometry.
type EntitiesConfig struct {
	Mines           int     `yaml:"mines"`
	Treats          int     `yaml:"treats"`
	BigTreats       int     `yaml:"big_treats"`
	TreatSize       float64 `yaml:"treat_size"`
	BigTreatSize    float64 `yaml:"big_treat_size"`
	MineRadius      float64 `yaml:"mine_radius"`
	MineOuterRadius float64 `yaml:"mine_outer_radius"`
	StarSpikes      int     `yaml:"star_spikes"`
	StarOuterRadius float64 `yaml:"star_outer_radius"`
	StarInnerRadius float64 `yaml:"star_inner_radius"`
	StarMargin      int     `yaml:"star_margin"` // Keeps the star's first draw away from the edges
}

// RulesConfig defines scoring, lives and round termination.
type RulesConfig struct {
	Lives              int `yaml:"lives"`
	TreatValue         int `yaml:"treat_value"`
	BigTreatValue      int `yaml:"big_treat_value"`
	MinePenalty        int `yaml:"mine_penalty"`
	LossMinesRemaining int `yaml:"loss_mines_remaining"` // Round is lost once this many mines or fewer remain
	MaxSpawnAttempts   int `yaml:"max_spawn_attempts"`   // Redraws allowed per entity before giving up
}

// BonusConfig defines the score multiplier window, in whole seconds.
type BonusConfig struct {
	FirstCutoff  int `yaml:"first_cutoff"`  // Below this: 3x
	SecondCutoff int `yaml:"second_cutoff"` // Below this: 2x
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Columns returns the number of grid cells across the canvas.
func (c CanvasConfig) Columns() int {
	return c.Width / c.Grid
}

// Rows returns the number of grid cells down the canvas.
func (c CanvasConfig) Rows() int {
	return c.Height / c.Grid
}

// Validate rejects configurations a round cannot be played with.
func (c TreatsConfig) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	if c.Canvas.Grid <= 0 {
		return invalid("canvas.grid must be positive, got %d", c.Canvas.Grid)
	}
	if c.Canvas.Width <= c.Canvas.Grid || c.Canvas.Height <= c.Canvas.Grid {
		return invalid("canvas %dx%d must be larger than one grid cell (%d)", c.Canvas.Width, c.Canvas.Height, c.Canvas.Grid)
	}
	if c.Player.MinRadius <= 0 || c.Player.MinRadius > c.Player.MaxRadius {
		return invalid("player radius bounds [%v, %v] are inverted or non-positive", c.Player.MinRadius, c.Player.MaxRadius)
	}
	if c.Player.StartRadius < c.Player.MinRadius || c.Player.StartRadius > c.Player.MaxRadius {
		return invalid("player.start_radius %v outside [%v, %v]", c.Player.StartRadius, c.Player.MinRadius, c.Player.MaxRadius)
	}
	if c.Player.Step <= 0 {
		return invalid("player.step must be positive, got %v", c.Player.Step)
	}
	if c.Entities.Mines < 0 || c.Entities.Treats < 0 || c.Entities.BigTreats < 0 {
		return invalid("entity counts must not be negative")
	}
	if c.Rules.LossMinesRemaining < 0 || c.Entities.Mines <= c.Rules.LossMinesRemaining {
		return invalid("entities.mines %d must exceed rules.loss_mines_remaining %d", c.Entities.Mines, c.Rules.LossMinesRemaining)
	}
	if 2*c.Entities.StarMargin >= c.Canvas.Width || 2*c.Entities.StarMargin >= c.Canvas.Height {
		return invalid("entities.star_margin %d leaves no room on the canvas", c.Entities.StarMargin)
	}
	if c.Rules.Lives <= 0 {
		return invalid("rules.lives must be positive, got %d", c.Rules.Lives)
	}
	if c.Rules.MaxSpawnAttempts <= 0 {
		return invalid("rules.max_spawn_attempts must be positive, got %d", c.Rules.MaxSpawnAttempts)
	}
	if c.Bonus.FirstCutoff < 0 || c.Bonus.FirstCutoff > c.Bonus.SecondCutoff {
		return invalid("bonus cutoffs %d/%d must satisfy 0 <= first <= second", c.Bonus.FirstCutoff, c.Bonus.SecondCutoff)
	}

	// One cell per entity plus the star, on top of the player's reserved area.
	reservedSide := int(2*c.Player.StartRadius)/c.Canvas.Grid + 1
	free := c.Canvas.Columns()*c.Canvas.Rows() - reservedSide*reservedSide
	need := c.Entities.Mines + c.Entities.Treats + c.Entities.BigTreats + 1
	if need > free {
		return invalid("%d entities do not fit in %d free grid cells", need, free)
	}
	return nil
}

// DifficultyPreset is a named set of adjustments on top of a config.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI flag value to a preset.
// An empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyTreatsPreset adjusts lives and the bonus window for a preset.
// Normal and fixed keep the loaded values.
func ApplyTreatsPreset(cfg *TreatsConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.Lives = 4
		cfg.Bonus.FirstCutoff = 8
		cfg.Bonus.SecondCutoff = 15
	case DifficultyHard:
		cfg.Rules.Lives = 2
		cfg.Bonus.FirstCutoff = 3
		cfg.Bonus.SecondCutoff = 6
	}
}
