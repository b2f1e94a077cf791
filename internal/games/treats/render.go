package treats

import "github.com/vovakirdan/treat-hunt/internal/core"

// Each grid cell is drawn as two terminal columns so the board keeps
// roughly square proportions.
const cellWidth = 2

// Glyph pairs per entity, left and right column.
var (
	glyphEmpty    = [cellWidth]rune{'·', ' '}
	glyphCircle   = [cellWidth]rune{'█', '█'}
	glyphTreat    = [cellWidth]rune{'▪', '▪'}
	glyphBigTreat = [cellWidth]rune{'■', '■'}
	glyphMine     = [cellWidth]rune{'×', '×'}
	glyphStar     = [cellWidth]rune{'*', '*'}
)

// ScreenRenderer draws the board onto a screen, one grid cell per
// cellWidth columns. The screen should be sized with CanvasSize.
type ScreenRenderer struct {
	dst  *core.Screen
	grid float64
}

// NewScreenRenderer creates a renderer for a canvas with the given cell size.
func NewScreenRenderer(dst *core.Screen, grid float64) *ScreenRenderer {
	return &ScreenRenderer{dst: dst, grid: grid}
}

// CanvasSize returns the screen size needed for a columns x rows grid.
func CanvasSize(columns, rows int) (w, h int) {
	return columns * cellWidth, rows
}

// Clear fills the board with the empty-cell pattern.
func (r *ScreenRenderer) Clear() {
	r.dst.Clear()
	for y := range r.dst.Height() {
		for x := 0; x < r.dst.Width(); x += cellWidth {
			r.put(x/cellWidth, y, glyphEmpty, core.ColorGray)
		}
	}
}

// DrawCircle fills every cell whose midpoint lies inside the circle. The
// cell under the center is always drawn so a small circle stays visible.
func (r *ScreenRenderer) DrawCircle(c Circle) {
	lo := CellOf(Point{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius}, r.grid)
	hi := CellOf(Point{X: c.Center.X + c.Radius, Y: c.Center.Y + c.Radius}, r.grid)
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			cell := Cell{X: x, Y: y}
			if c.Contains(cell.Midpoint(r.grid)) {
				r.put(x, y, glyphCircle, core.ColorCyan)
			}
		}
	}
	center := CellOf(c.Center, r.grid)
	r.put(center.X, center.Y, glyphCircle, core.ColorBrightCyan)
}

// DrawTreat draws a treat in its cell.
func (r *ScreenRenderer) DrawTreat(t Treat) {
	cell := CellOf(t.Center, r.grid)
	if t.Kind == TreatBig {
		r.put(cell.X, cell.Y, glyphBigTreat, core.ColorCoral)
		return
	}
	r.put(cell.X, cell.Y, glyphTreat, core.ColorOrange)
}

// DrawMine draws a mine in its cell.
func (r *ScreenRenderer) DrawMine(m Mine) {
	cell := CellOf(m.Center, r.grid)
	r.put(cell.X, cell.Y, glyphMine, core.ColorRed)
}

// DrawStar draws the star in its cell.
func (r *ScreenRenderer) DrawStar(s Star) {
	cell := CellOf(s.Center, r.grid)
	r.put(cell.X, cell.Y, glyphStar, core.ColorBrightYellow)
}

func (r *ScreenRenderer) put(cx, cy int, glyph [cellWidth]rune, c core.Color) {
	if cx < 0 || cy < 0 {
		return
	}
	for i, g := range glyph {
		r.dst.SetColored(cx*cellWidth+i, cy, g, c)
	}
}
