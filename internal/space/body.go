package space

import (
	"fmt"
	"math"

	"github.com/StevenRydell/littlespace/internal/core"
)

// Body is the shared kinematic state of a ship.
type Body struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Heading  float64 // degrees, 0 = +Y
	Size     float64
	Cooldown float64 // seconds until the next shot; may dip below zero

	ThrustForward  bool
	ThrustBackward bool
}

// Nose returns the point one ship size ahead of the centre along the heading.
func (b *Body) Nose() core.Vec2 {
	return b.Pos.Add(core.HeadingVector(b.Heading).Scale(b.Size))
}

// Speed returns the magnitude of the velocity.
func (b *Body) Speed() float64 {
	return b.Vel.Len()
}

// Integrate advances the body by dt seconds: thrust along the heading,
// friction, the component and speed clamps, then position. The position is
// only moved when the result is finite and is always clamped into world.
// The shot cooldown counts down while positive.
//
// A velocity that stops being finite is zeroed and ErrNonFinite is returned
// after the rest of the update has run.
func (b *Body) Integrate(dt float64, phys Physics, world core.Bounds) error {
	var err error

	dir := 0.0
	if b.ThrustForward {
		dir++
	}
	if b.ThrustBackward {
		dir--
	}
	if dir != 0 {
		b.Vel = b.Vel.Add(core.HeadingVector(b.Heading).Scale(dir * phys.Acceleration * dt))
	}

	b.Vel = b.Vel.Scale(phys.Friction)
	b.Vel.X = core.ClampF(b.Vel.X, -phys.MaxVelocity, phys.MaxVelocity)
	b.Vel.Y = core.ClampF(b.Vel.Y, -phys.MaxVelocity, phys.MaxVelocity)

	if !b.Vel.IsFinite() {
		b.Vel = core.Vec2{}
		err = fmt.Errorf("space: integrate velocity: %w", ErrNonFinite)
	}

	if speed := b.Vel.Len(); speed > phys.MaxSpeed && speed > 0 {
		b.Vel = b.Vel.Scale(phys.MaxSpeed / speed)
	}

	if next := b.Pos.Add(b.Vel.Scale(dt)); next.IsFinite() {
		b.Pos = next
	}
	if !b.Pos.IsFinite() {
		b.Pos = world.Center()
		if err == nil {
			err = fmt.Errorf("space: integrate position: %w", ErrNonFinite)
		}
	}
	b.Pos = world.Clamp(b.Pos)

	if b.Cooldown > 0 {
		b.Cooldown -= dt
	}
	return err
}

// Direction returns the unit vector from one point to another.
// Coincident points have no direction and yield ErrDegenerate.
func Direction(from, to core.Vec2) (core.Vec2, error) {
	d := to.Sub(from)
	l := d.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return core.Vec2{}, fmt.Errorf("space: direction from %v to %v: %w", from, to, ErrDegenerate)
	}
	return d.Scale(1 / l), nil
}
