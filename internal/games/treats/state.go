package treats

import "fmt"

// Phase is where a round is in its lifecycle.
type Phase int

const (
	PhaseIdle    Phase = iota // Waiting for the first start
	PhaseOngoing              // Accepting moves
	PhaseWon                  // All treats eaten and the star reached
	PhaseLost                 // Too few mines left
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseOngoing:
		return "ongoing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the round has ended.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// RoundState is everything a round owns. It is replaced wholesale on reset.
type RoundState struct {
	Circle    Circle
	Treats    []Treat
	BigTreats []Treat
	Mines     []Mine
	Star      Star
	Grid      *Grid

	Points       int
	Lives        int
	Elapsed      int // Whole seconds since the round started
	TimerRunning bool
	Phase        Phase
	Tally        Tally
}

// StarRevealed reports whether every treat has been eaten.
func (s *RoundState) StarRevealed() bool {
	return len(s.Treats) == 0 && len(s.BigTreats) == 0
}

// Clock formats elapsed seconds as the zero-padded mm and ss readouts.
func Clock(elapsed int) (mm, ss string) {
	return fmt.Sprintf("%02d", elapsed/60), fmt.Sprintf("%02d", elapsed%60)
}

// Summary is the end-of-round report.
type Summary struct {
	Outcome    Phase
	Elapsed    int
	Lives      int
	Points     int
	Buckets    []Bucket
	Mines      int // Mines triggered
	MinePoints int // Points lost to mines (negative or zero)
	Attempt    int
}

// Time returns the elapsed time as mm:ss.
func (s Summary) Time() string {
	mm, ss := Clock(s.Elapsed)
	return mm + ":" + ss
}

// Message returns the headline shown for the outcome.
func (s Summary) Message() string {
	if s.Outcome == PhaseWon {
		return "You win!"
	}
	return "Game over... better luck next time"
}
