// Package core provides fundamental types and utilities for the arcade platform.
// It contains no terminal or window dependencies to keep game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned cell rectangle used for HUD layout.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Vec2 is a point or direction in world space. World Y grows upward.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the vector magnitude.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Normalized returns the unit vector in the direction of v.
// The zero vector normalizes to itself.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// IsFinite reports whether both components are neither NaN nor infinite.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Bounds is a world rectangle anchored at the origin: [0, W] x [0, H].
type Bounds struct {
	W, H float64
}

// Contains reports whether p lies inside the bounds (edges inclusive).
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= 0 && p.X <= b.W && p.Y >= 0 && p.Y <= b.H
}

// Clamp pulls p inside the bounds.
func (b Bounds) Clamp(p Vec2) Vec2 {
	return Vec2{X: ClampF(p.X, 0, b.W), Y: ClampF(p.Y, 0, b.H)}
}

// Center returns the middle of the bounds.
func (b Bounds) Center() Vec2 {
	return Vec2{X: b.W / 2, Y: b.H / 2}
}

// HeadingVector returns the unit vector for a heading in degrees.
// Heading 0 points toward +Y, 90 toward +X.
func HeadingVector(deg float64) Vec2 {
	rad := deg * math.Pi / 180
	return Vec2{X: math.Sin(rad), Y: math.Cos(rad)}
}

// HeadingTo returns the heading in degrees of the direction (dx, dy).
func HeadingTo(d Vec2) float64 {
	return math.Atan2(d.X, d.Y) * 180 / math.Pi
}

// WrapDegrees maps an angle into [0, 360).
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		// tiny negatives round up to 360
		deg = 0
	}
	return deg
}

// AngleDelta returns the signed shortest rotation from `from` to `to`, in (-180, 180].
func AngleDelta(from, to float64) float64 {
	d := math.Mod(to-from, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
