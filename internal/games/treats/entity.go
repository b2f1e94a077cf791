// Package treats implements Treat Hunt: a circle moves around a grid, grows
// by eating treats, shrinks and loses lives on mines, and wins by clearing
// every treat and reaching the star.
//
// The package holds pure game logic. Drawing goes through a Renderer and
// score, lives, time and outcome reports go through a Sink, both supplied
// by the platform.
package treats

import "github.com/vovakirdan/treat-hunt/internal/core"

// Point is a position on the canvas, in pixels.
type Point struct {
	X, Y float64
}

// EntityKind tags what occupies a grid cell.
type EntityKind int

const (
	KindNone EntityKind = iota
	KindCircle
	KindMine
	KindTreat
	KindBigTreat
	KindStar
)

func (k EntityKind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindMine:
		return "mine"
	case KindTreat:
		return "treat"
	case KindBigTreat:
		return "big treat"
	case KindStar:
		return "star"
	default:
		return "none"
	}
}

// TreatKind distinguishes regular treats from big ones.
type TreatKind int

const (
	TreatSmall TreatKind = iota
	TreatBig
)

func (k TreatKind) String() string {
	if k == TreatBig {
		return "big treat"
	}
	return "treat"
}

// EntityKind returns the grid tag for the treat kind.
func (k TreatKind) EntityKind() EntityKind {
	if k == TreatBig {
		return KindBigTreat
	}
	return KindTreat
}

// Circle is the player.
type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether p lies inside or on the circle.
// Treats and the star are tested as points, not shapes.
func (c Circle) Contains(p Point) bool {
	return core.DistSq(c.Center.X, c.Center.Y, p.X, p.Y) <= c.Radius*c.Radius
}

// Touches reports whether the circle overlaps the mine's blast radius.
func (c Circle) Touches(m Mine) bool {
	reach := c.Radius + m.OuterRadius
	return core.DistSq(c.Center.X, c.Center.Y, m.Center.X, m.Center.Y) <= reach*reach
}

// resize changes the radius by delta unless the result would leave [lo, hi].
func (c *Circle) resize(delta, lo, hi float64) {
	next := c.Radius + delta
	if next < lo || next > hi {
		return
	}
	c.Radius = next
}

// Treat is a collectible square.
type Treat struct {
	Center Point
	Kind   TreatKind
	Size   float64 // Side length of the square footprint
}

// TopLeft returns the corner of the treat's footprint.
func (t Treat) TopLeft() Point {
	return Point{X: t.Center.X - t.Size/2, Y: t.Center.Y - t.Size/2}
}

// Mine is a hazard. OuterRadius is the blast radius used for collisions.
type Mine struct {
	Center      Point
	Radius      float64
	OuterRadius float64
}

// Star is the goal, reachable once every treat is gone.
type Star struct {
	Center      Point
	Spikes      int
	OuterRadius float64
	InnerRadius float64
}
