package space

import (
	"math"

	"github.com/StevenRydell/littlespace/internal/core"
)

// Shape is the collision and drawing shape of a static target.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeSquare
)

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeSquare:
		return "square"
	default:
		return "unknown"
	}
}

// Target is a static shape that can be shot. For circles Size is the radius,
// for squares it is the half-extent.
type Target struct {
	Pos   core.Vec2
	Shape Shape
	Size  float64
}

// Hit reports whether point p is inside the target.
func (t Target) Hit(p core.Vec2) bool {
	switch t.Shape {
	case ShapeCircle:
		return t.Pos.Dist(p) <= t.Size
	case ShapeSquare:
		return math.Abs(p.X-t.Pos.X) <= t.Size && math.Abs(p.Y-t.Pos.Y) <= t.Size
	default:
		return false
	}
}
