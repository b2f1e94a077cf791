package treats

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/treat-hunt/internal/config"
)

// ErrGridSaturated is returned when no free cell was found within the retry budget.
var ErrGridSaturated = errors.New("treats: no free grid cell")

// Spawner places entities on free grid cells.
// All randomness comes from rng, so a seeded rng yields a reproducible layout.
type Spawner struct {
	rng         *rand.Rand
	grid        *Grid
	width       int
	height      int
	maxAttempts int
}

// NewSpawner creates a spawner for a width x height canvas.
func NewSpawner(rng *rand.Rand, grid *Grid, width, height, maxAttempts int) *Spawner {
	return &Spawner{
		rng:         rng,
		grid:        grid,
		width:       width,
		height:      height,
		maxAttempts: maxAttempts,
	}
}

// randInt returns an int in [lo, hi).
func (s *Spawner) randInt(lo, hi int) int {
	return s.rng.Intn(hi-lo) + lo
}

// draw returns a random point with each coordinate in [margin, extent-margin).
func (s *Spawner) draw(margin int) Point {
	return Point{
		X: float64(s.randInt(margin, s.width-margin)),
		Y: float64(s.randInt(margin, s.height-margin)),
	}
}

// Place moves center onto a free cell, marks it with kind and snaps center
// to the cell's midpoint. While the cell under center is taken, a new
// position is drawn uniformly over the canvas, inset by half a cell.
func (s *Spawner) Place(center *Point, kind EntityKind) error {
	size := s.grid.Size()
	grid := int(size)

	cell := CellOf(*center, size)
	for attempt := 0; s.grid.Occupied(cell); attempt++ {
		if attempt >= s.maxAttempts {
			return fmt.Errorf("%w: placing %s after %d attempts", ErrGridSaturated, kind, attempt)
		}
		center.X = float64(s.randInt(0, s.width-grid)) + size/2
		center.Y = float64(s.randInt(0, s.height-grid)) + size/2
		cell = CellOf(*center, size)
	}

	s.grid.Mark(cell, kind)
	*center = cell.Midpoint(size)
	return nil
}

// Layout is the set of entities spawned for one round.
type Layout struct {
	Mines     []Mine
	Treats    []Treat
	BigTreats []Treat
	Star      Star
}

// Populate spawns every entity for a round in a fixed order:
// mines, treats, big treats, then the star. The order decides which cells
// are already taken for later entities, so it must not change.
func (s *Spawner) Populate(e config.EntitiesConfig) (Layout, error) {
	var layout Layout

	layout.Mines = make([]Mine, 0, e.Mines)
	for range e.Mines {
		m := Mine{Center: s.draw(0), Radius: e.MineRadius, OuterRadius: e.MineOuterRadius}
		if err := s.Place(&m.Center, KindMine); err != nil {
			return Layout{}, err
		}
		layout.Mines = append(layout.Mines, m)
	}

	var err error
	if layout.Treats, err = s.treats(TreatSmall, e.Treats, e.TreatSize); err != nil {
		return Layout{}, err
	}
	if layout.BigTreats, err = s.treats(TreatBig, e.BigTreats, e.BigTreatSize); err != nil {
		return Layout{}, err
	}

	layout.Star = Star{
		Center:      s.draw(e.StarMargin),
		Spikes:      e.StarSpikes,
		OuterRadius: e.StarOuterRadius,
		InnerRadius: e.StarInnerRadius,
	}
	if err := s.Place(&layout.Star.Center, KindStar); err != nil {
		return Layout{}, err
	}
	return layout, nil
}

func (s *Spawner) treats(kind TreatKind, n int, size float64) ([]Treat, error) {
	out := make([]Treat, 0, n)
	for range n {
		t := Treat{Center: s.draw(0), Kind: kind, Size: size}
		if err := s.Place(&t.Center, kind.EntityKind()); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
