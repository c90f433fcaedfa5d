package space

import (
	"time"

	"github.com/StevenRydell/littlespace/internal/core"
)

// Controls is the player's input for one update.
type Controls struct {
	Left     bool
	Right    bool
	Forward  bool
	Backward bool
	Fire     bool
}

// ControlsFrom maps platform actions onto ship controls.
func ControlsFrom(in core.InputFrame) Controls {
	return Controls{
		Left:     in.Has(core.ActionLeft),
		Right:    in.Has(core.ActionRight),
		Forward:  in.Has(core.ActionUp),
		Backward: in.Has(core.ActionDown),
		Fire:     in.Has(core.ActionFire),
	}
}

// Player is the ship flown by the human.
type Player struct {
	Body
}

// NewPlayer places a player ship at rest, pointing up.
func NewPlayer(pos core.Vec2, size float64) *Player {
	return &Player{Body: Body{Pos: pos, Size: size}}
}

// Update turns and thrusts according to ctrl and integrates. dt is capped at
// the physics frame limit.
func (p *Player) Update(ctrl Controls, dt time.Duration, params *Params) error {
	sec := params.Physics.ClampDT(dt)

	if ctrl.Left {
		p.Heading -= params.Physics.RotationSpeed * sec
	}
	if ctrl.Right {
		p.Heading += params.Physics.RotationSpeed * sec
	}
	p.Heading = core.WrapDegrees(p.Heading)

	p.ThrustForward = ctrl.Forward
	p.ThrustBackward = ctrl.Backward

	return p.Integrate(sec, params.Physics, params.World)
}

// CanShoot reports whether the weapon has cooled down.
func (p *Player) CanShoot() bool {
	return p.Cooldown <= 0
}

// Shoot fires from the nose along the heading and restarts the cooldown.
// It reports false while the weapon is still cooling down.
func (p *Player) Shoot(bulletSpeed, cooldown float64) (Projectile, bool) {
	if !p.CanShoot() {
		return Projectile{}, false
	}
	p.Cooldown = cooldown

	dir := core.HeadingVector(p.Heading)
	return Projectile{
		Pos:     p.Nose(),
		Vel:     dir.Scale(bulletSpeed),
		Heading: p.Heading,
		Side:    SidePlayer,
	}, true
}
