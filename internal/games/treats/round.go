package treats

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/vovakirdan/treat-hunt/internal/config"
)

// Direction is a move input.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Round runs Treat Hunt rounds. It owns the RoundState and is the only thing
// that mutates it. A Round is not safe for concurrent use; the platform
// drives it from a single update loop.
type Round struct {
	cfg      config.TreatsConfig
	rng      *rand.Rand
	bonus    BonusWindow
	renderer Renderer
	sink     Sink
	state    RoundState
	attempts int
}

// NewRound creates an idle round. Entities are spawned by Start.
func NewRound(cfg config.TreatsConfig, seed int64) *Round {
	return &Round{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		bonus:    NewBonusWindow(cfg.Bonus),
		renderer: nopRenderer{},
		sink:     nopSink{},
		state:    RoundState{Phase: PhaseIdle, Lives: cfg.Rules.Lives},
	}
}

// SetRenderer sets where the board is drawn. Nil disables drawing.
func (r *Round) SetRenderer(rd Renderer) {
	if rd == nil {
		rd = nopRenderer{}
	}
	r.renderer = rd
}

// SetSink sets where readouts are reported. Nil disables reporting.
func (r *Round) SetSink(s Sink) {
	if s == nil {
		s = nopSink{}
	}
	r.sink = s
}

// Start begins a new round, discarding any round in progress. It is used
// both for the first start and for every restart: the old clock stops and
// the new one starts at 00:00 in the same call.
func (r *Round) Start() error {
	cfg := r.cfg
	circle := Circle{
		Center: Point{X: float64(cfg.Canvas.Width) / 2, Y: float64(cfg.Canvas.Height) / 2},
		Radius: cfg.Player.StartRadius,
	}

	grid := NewGrid(float64(cfg.Canvas.Grid))
	grid.ReserveCircle(circle)

	spawner := NewSpawner(r.rng, grid, cfg.Canvas.Width, cfg.Canvas.Height, cfg.Rules.MaxSpawnAttempts)
	layout, err := spawner.Populate(cfg.Entities)
	if err != nil {
		r.state = RoundState{Phase: PhaseIdle, Lives: cfg.Rules.Lives}
		return fmt.Errorf("treats: start round: %w", err)
	}

	r.attempts++
	r.state = RoundState{
		Circle:       circle,
		Treats:       layout.Treats,
		BigTreats:    layout.BigTreats,
		Mines:        layout.Mines,
		Star:         layout.Star,
		Grid:         grid,
		Lives:        cfg.Rules.Lives,
		TimerRunning: true,
		Phase:        PhaseOngoing,
	}

	mm, ss := Clock(0)
	r.sink.ReportScore(0)
	r.sink.ReportLives(r.state.Lives)
	r.sink.ReportTime(mm, ss)
	r.redraw()
	return nil
}

// Move steps the circle one grid step in dir and runs the collision pass.
// It returns false, changing nothing, when the round is not ongoing or the
// step would leave the canvas.
func (r *Round) Move(dir Direction) bool {
	if r.state.Phase != PhaseOngoing {
		return false
	}

	next := r.state.Circle.Center
	step := r.cfg.Player.Step
	switch dir {
	case DirUp:
		next.Y -= step
	case DirDown:
		next.Y += step
	case DirLeft:
		next.X -= step
	case DirRight:
		next.X += step
	default:
		return false
	}
	if next.X < 0 || next.X > float64(r.cfg.Canvas.Width) ||
		next.Y < 0 || next.Y > float64(r.cfg.Canvas.Height) {
		return false
	}

	r.state.Circle.Center = next
	r.update()
	r.redraw()
	r.evaluate()
	if r.state.Phase.Terminal() {
		r.sink.ReportOutcome(r.state.Phase, r.Summary())
	}
	return true
}

// TickSecond advances the round clock by one second while it is running.
func (r *Round) TickSecond() {
	if !r.state.TimerRunning {
		return
	}
	r.state.Elapsed++
	r.sink.ReportTime(Clock(r.state.Elapsed))
}

// Redraw draws the current board to the renderer.
func (r *Round) Redraw() {
	r.redraw()
}

func (r *Round) redraw() {
	s := &r.state
	r.renderer.Clear()
	if s.Phase == PhaseIdle {
		return
	}
	for _, m := range s.Mines {
		r.renderer.DrawMine(m)
	}
	for _, t := range s.Treats {
		r.renderer.DrawTreat(t)
	}
	for _, t := range s.BigTreats {
		r.renderer.DrawTreat(t)
	}
	r.renderer.DrawCircle(s.Circle)
	if s.StarRevealed() {
		r.renderer.DrawStar(s.Star)
	}
}

// evaluate checks win before loss; only the first terminal transition applies.
// The outcome is reported by Move once the pass is over.
func (r *Round) evaluate() {
	s := &r.state
	if s.Phase != PhaseOngoing {
		return
	}
	switch {
	case s.StarRevealed() && s.Circle.Contains(s.Star.Center):
		r.finish(PhaseWon)
	case len(s.Mines) <= r.cfg.Rules.LossMinesRemaining:
		r.finish(PhaseLost)
	}
}

func (r *Round) finish(outcome Phase) {
	r.state.Phase = outcome
	r.state.TimerRunning = false
}

// Summary returns the report for the current round.
func (r *Round) Summary() Summary {
	s := r.state
	return Summary{
		Outcome:    s.Phase,
		Elapsed:    s.Elapsed,
		Lives:      s.Lives,
		Points:     s.Points,
		Buckets:    s.Tally.Breakdown(r.cfg.Rules),
		Mines:      s.Tally.Mines,
		MinePoints: -s.Tally.Mines * r.cfg.Rules.MinePenalty,
		Attempt:    r.attempts,
	}
}

// Phase returns the current phase.
func (r *Round) Phase() Phase { return r.state.Phase }

// Points returns the current score.
func (r *Round) Points() int { return r.state.Points }

// Lives returns the remaining lives.
func (r *Round) Lives() int { return r.state.Lives }

// Elapsed returns the whole seconds since the round started.
func (r *Round) Elapsed() int { return r.state.Elapsed }

// Attempts returns how many rounds have been started.
func (r *Round) Attempts() int { return r.attempts }

// Config returns the configuration the round was built with.
func (r *Round) Config() config.TreatsConfig { return r.cfg }

// State returns a copy of the round state. Entity slices are copied; the
// grid is shared and must not be modified.
func (r *Round) State() RoundState {
	s := r.state
	s.Treats = slices.Clone(s.Treats)
	s.BigTreats = slices.Clone(s.BigTreats)
	s.Mines = slices.Clone(s.Mines)
	return s
}
