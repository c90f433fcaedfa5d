package space

import "github.com/StevenRydell/littlespace/internal/core"

// Camera tracks the player with exponential smoothing. Pos is the
// bottom-left corner of the viewport in world coordinates.
type Camera struct {
	Pos       core.Vec2
	Target    core.Vec2
	Smoothing float64
	View      core.Bounds
	World     core.Bounds
}

// NewCamera creates a camera at the world origin.
func NewCamera(view, world core.Bounds, smoothing float64) *Camera {
	return &Camera{View: view, World: world, Smoothing: smoothing}
}

// Follow aims the camera so p is centred, keeping the viewport inside the world.
func (c *Camera) Follow(p core.Vec2) {
	c.Target = core.Vec2{
		X: core.ClampF(p.X-c.View.W/2, 0, c.World.W-c.View.W),
		Y: core.ClampF(p.Y-c.View.H/2, 0, c.World.H-c.View.H),
	}
}

// Update closes a Smoothing fraction of the gap to the target.
func (c *Camera) Update() {
	c.Pos = c.Pos.Add(c.Target.Sub(c.Pos).Scale(c.Smoothing))
}

// Snap jumps straight to the target.
func (c *Camera) Snap() {
	c.Pos = c.Target
}

// ToView converts a world point to viewport coordinates.
func (c *Camera) ToView(p core.Vec2) core.Vec2 {
	return p.Sub(c.Pos)
}

// Visible reports whether p lies within the viewport grown by margin on each side.
func (c *Camera) Visible(p core.Vec2, margin float64) bool {
	return p.X >= c.Pos.X-margin && p.X <= c.Pos.X+c.View.W+margin &&
		p.Y >= c.Pos.Y-margin && p.Y <= c.Pos.Y+c.View.H+margin
}
