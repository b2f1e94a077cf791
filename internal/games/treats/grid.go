package treats

import "math"

// Cell identifies one square of the placement grid.
type Cell struct {
	X, Y int
}

// CellOf returns the cell containing p for the given cell size.
func CellOf(p Point, size float64) Cell {
	return Cell{
		X: int(math.Floor(p.X / size)),
		Y: int(math.Floor(p.Y / size)),
	}
}

// Midpoint returns the center of the cell in canvas pixels.
func (c Cell) Midpoint(size float64) Point {
	return Point{
		X: float64(c.X)*size + size/2,
		Y: float64(c.Y)*size + size/2,
	}
}

// Grid records which cells are taken during spawn placement.
// It is rebuilt for every round and never shrinks.
type Grid struct {
	size  float64
	cells map[Cell]EntityKind
}

// NewGrid creates an empty grid with square cells of the given size.
func NewGrid(size float64) *Grid {
	return &Grid{
		size:  size,
		cells: make(map[Cell]EntityKind),
	}
}

// Size returns the cell size in pixels.
func (g *Grid) Size() float64 {
	return g.size
}

// Mark records kind at cell, replacing any previous entry.
func (g *Grid) Mark(cell Cell, kind EntityKind) {
	g.cells[cell] = kind
}

// Occupied reports whether anything has been marked at cell.
func (g *Grid) Occupied(cell Cell) bool {
	_, ok := g.cells[cell]
	return ok
}

// Kind returns what was marked at cell, or KindNone.
func (g *Grid) Kind(cell Cell) EntityKind {
	return g.cells[cell]
}

// Len returns the number of occupied cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// ReserveCircle marks every cell under the circle's bounding box, sampled
// from center-radius up to (not including) center+radius in grid steps.
func (g *Grid) ReserveCircle(c Circle) {
	for x := c.Center.X - c.Radius; x < c.Center.X+c.Radius; x += g.size {
		for y := c.Center.Y - c.Radius; y < c.Center.Y+c.Radius; y += g.size {
			g.Mark(CellOf(Point{X: x, Y: y}, g.size), KindCircle)
		}
	}
}
