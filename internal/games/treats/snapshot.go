package treats

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Points    int
	Lives     int
	Elapsed   int
	Attempt   int
	CircleX   float64
	CircleY   float64
	Radius    float64
	Treats    int
	BigTreats int
	Mines     int
	StarX     float64
	StarY     float64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.round.State()
	return Snapshot{
		Tick:      g.tick,
		Phase:     s.Phase,
		Points:    s.Points,
		Lives:     s.Lives,
		Elapsed:   s.Elapsed,
		Attempt:   g.round.Attempts(),
		CircleX:   s.Circle.Center.X,
		CircleY:   s.Circle.Center.Y,
		Radius:    s.Circle.Radius,
		Treats:    len(s.Treats),
		BigTreats: len(s.BigTreats),
		Mines:     len(s.Mines),
		StarX:     s.Star.Center.X,
		StarY:     s.Star.Center.Y,
	}
}
