package core

// RuntimeConfig is passed to a game on every Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed, 0 means the platform picks one
}

// DefaultConfig returns a RuntimeConfig sized for a classic 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TicksPerSecond returns the tick rate, falling back to 60 when unset.
func (c RuntimeConfig) TicksPerSecond() int {
	if c.TickRate <= 0 {
		return 60
	}
	return c.TickRate
}

// GameState is the coarse status a game reports to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the round has ended
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
