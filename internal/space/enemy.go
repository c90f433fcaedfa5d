package space

import (
	"math"
	"math/rand"
	"time"

	"github.com/StevenRydell/littlespace/internal/core"
)

// Enemy is an AI ship that chases the player while keeping clear of its peers.
type Enemy struct {
	Body

	// Distance to the player measured at the start of the last update.
	LastDistance float64
	// Emergency is set while another enemy is inside the no-touch radius.
	Emergency bool
}

// NewEnemy places an enemy ship at rest, pointing up.
func NewEnemy(pos core.Vec2, size float64) *Enemy {
	return &Enemy{Body: Body{Pos: pos, Size: size}}
}

// separation sums the push away from every peer inside the separation radius.
// Peers inside the no-touch radius add a much stronger term and set emergency.
func (e *Enemy) separation(peers []*Enemy, ai AI) (force core.Vec2, emergency bool) {
	noTouch := e.Size * ai.CollisionFactor
	for _, other := range peers {
		if other == e {
			continue
		}
		away := e.Pos.Sub(other.Pos)
		d := away.Len()
		if d <= 0 {
			continue
		}
		n := away.Scale(1 / d)
		switch {
		case d < noTouch:
			emergency = true
			force = force.Add(n.Scale(ai.EmergencyForce * (noTouch - d) / noTouch))
		case d < ai.SeparationRadius:
			force = force.Add(n.Scale((ai.SeparationRadius - d) / ai.SeparationRadius))
		}
	}
	return force, emergency
}

// Update steers toward the player, away from peers, and integrates.
// peers may include e itself.
func (e *Enemy) Update(dt time.Duration, player *Body, peers []*Enemy, params *Params) error {
	sec := params.Physics.ClampDT(dt)
	ai := params.AI

	toPlayer := player.Pos.Sub(e.Pos)
	dist := toPlayer.Len()

	sep, emergency := e.separation(peers, ai)
	e.Emergency = emergency

	var desired core.Vec2
	if emergency {
		desired = sep
	} else {
		desired = toPlayer.Scale(ai.PursuitWeight).Add(sep.Scale(ai.SeparationWeight))
	}

	var want float64
	if math.Abs(desired.X) > 0.01 || math.Abs(desired.Y) > 0.01 {
		want = core.HeadingTo(desired)
	} else {
		want = core.HeadingTo(toPlayer)
	}

	if diff := core.AngleDelta(e.Heading, want); math.Abs(diff) > ai.TurnThreshold {
		step := params.Physics.RotationSpeed * ai.TurnFactor * sec
		switch {
		case math.Abs(diff) < step:
			e.Heading = want
		case diff > 0:
			e.Heading += step
		default:
			e.Heading -= step
		}
	}
	e.Heading = core.WrapDegrees(e.Heading)

	switch {
	case dist > ai.FollowDistance:
		e.ThrustForward, e.ThrustBackward = true, false
	case dist < ai.ReverseDistance:
		e.ThrustForward, e.ThrustBackward = false, true
	default:
		e.ThrustForward, e.ThrustBackward = false, false
	}

	err := e.Integrate(sec, params.Physics, params.World)
	e.LastDistance = dist
	if err != nil {
		return err
	}
	e.resolveOverlap(peers, e.Size*ai.CollisionFactor, params.World)
	return nil
}

// resolveOverlap moves e straight out of every peer closer than noTouch, so
// no pair stays inside that radius past one step. Coincident ships part
// along +X.
func (e *Enemy) resolveOverlap(peers []*Enemy, noTouch float64, world core.Bounds) {
	for _, other := range peers {
		if other == e {
			continue
		}
		away := e.Pos.Sub(other.Pos)
		d := away.Len()
		if !(d < noTouch) {
			// Also skips a peer whose position went NaN
			continue
		}
		n := core.V(1, 0)
		if d > 0 {
			n = away.Scale(1 / d)
		}
		e.Pos = world.Clamp(e.Pos.Add(n.Scale(noTouch - d)))
	}
}

// aimChance is the base shot probability for a given aim error in degrees.
func aimChance(errDeg float64) float64 {
	switch {
	case errDeg < 10:
		return 0.8
	case errDeg < 30:
		return 0.4
	case errDeg < 60:
		return 0.1
	default:
		return 0.02
	}
}

// ShotChance returns the probability that the enemy fires this frame, before
// the cooldown and range checks. scale is the difficulty multiplier.
func (e *Enemy) ShotChance(player *Body, ai AI, scale float64) float64 {
	aimErr := math.Abs(core.AngleDelta(e.Heading, core.HeadingTo(player.Pos.Sub(e.Pos))))
	distFactor := math.Max(0.3, 1-e.LastDistance/ai.FireRange)
	return aimChance(aimErr) * distFactor * scale
}

// WantsToFire decides whether to shoot this frame. It never fires while the
// cooldown runs or beyond the engagement range. One value is drawn from rng
// only when both checks pass.
func (e *Enemy) WantsToFire(rng *rand.Rand, player *Body, ai AI, scale float64) bool {
	if e.Cooldown > 0 {
		return false
	}
	if e.LastDistance > ai.FireRange {
		return false
	}
	return rng.Float64() < e.ShotChance(player, ai, scale)
}

// Fire launches a projectile from the nose at the player, restarting the
// cooldown with a random interval. Most shots lead the target by its velocity
// times the projectile's flight time.
func (e *Enemy) Fire(rng *rand.Rand, player *Body, ai AI, bulletSpeed float64) Projectile {
	e.Cooldown = ai.CooldownMin + rng.Float64()*(ai.CooldownMax-ai.CooldownMin)

	nose := e.Nose()
	aim := player.Pos
	if rng.Float64() < ai.LeadChance {
		flight := nose.Dist(player.Pos) / bulletSpeed
		aim = player.Pos.Add(player.Vel.Scale(flight))
	}

	dir, err := Direction(nose, aim)
	if err != nil {
		// Nose sits on the aim point; shoot straight ahead
		dir = core.HeadingVector(e.Heading)
	}

	return Projectile{
		Pos:     nose,
		Vel:     dir.Scale(bulletSpeed),
		Heading: core.HeadingTo(dir),
		Side:    SideEnemy,
	}
}
