package space

import (
	"time"

	"github.com/StevenRydell/littlespace/internal/core"
)

// Physics holds the movement tunables shared by every ship.
type Physics struct {
	Acceleration  float64       // units/s² along the heading while thrusting
	Friction      float64       // velocity multiplier applied once per update
	MaxSpeed      float64       // speed clamp after friction
	MaxVelocity   float64       // per-component clamp applied before the speed clamp
	RotationSpeed float64       // degrees per second
	MaxFrame      time.Duration // updates never integrate more than this
}

// DefaultPhysics returns the skirmish ship physics.
func DefaultPhysics() Physics {
	return Physics{
		Acceleration:  240,
		Friction:      0.995,
		MaxSpeed:      50,
		MaxVelocity:   1000,
		RotationSpeed: 90,
		MaxFrame:      100 * time.Millisecond,
	}
}

// ClampDT converts dt to seconds, capped at MaxFrame. Negative dt becomes 0.
func (p Physics) ClampDT(dt time.Duration) float64 {
	if dt < 0 {
		return 0
	}
	if p.MaxFrame > 0 && dt > p.MaxFrame {
		dt = p.MaxFrame
	}
	return dt.Seconds()
}

// AI holds enemy ship steering and firing tunables.
type AI struct {
	FollowDistance   float64 // thrust toward the player beyond this range
	ReverseDistance  float64 // back away inside this range
	TurnFactor       float64 // fraction of Physics.RotationSpeed
	SeparationRadius float64 // peers closer than this push each other apart
	CollisionFactor  float64 // no-touch radius in ship sizes
	EmergencyForce   float64
	PursuitWeight    float64
	SeparationWeight float64
	TurnThreshold    float64 // degrees; smaller heading errors are ignored
	FireRange        float64
	CooldownMin      float64 // seconds
	CooldownMax      float64
	LeadChance       float64 // probability a shot leads the target
}

// Spawning holds where new targets and enemy ships appear relative to the player.
type Spawning struct {
	MaxTargets        int
	TargetMinSize     float64
	TargetMaxSize     float64
	TargetMinDistance float64
	TargetMaxDistance float64
	TargetMargin      float64
	TargetAttempts    int

	MaxShips     int
	ShipDistance float64
	ShipJitter   float64
	ShipMargin   float64
}

// Params collects everything a World needs.
type Params struct {
	World    core.Bounds
	View     core.Bounds // viewport size
	Physics  Physics
	ShipSize float64

	BulletSpeed    float64
	PlayerCooldown float64 // seconds
	MaxBullets     int     // live player projectiles

	AI       AI
	Spawning Spawning

	CollisionInterval time.Duration
	CameraSmoothing   float64
}

// DefaultParams returns the skirmish tuning.
func DefaultParams() Params {
	return Params{
		World:          core.Bounds{W: 2000, H: 2000},
		View:           core.Bounds{W: 640, H: 360},
		Physics:        DefaultPhysics(),
		ShipSize:       3.75,
		BulletSpeed:    200,
		PlayerCooldown: 0.5,
		MaxBullets:     8,
		AI: AI{
			FollowDistance:   100,
			ReverseDistance:  50,
			TurnFactor:       0.8,
			SeparationRadius: 150,
			CollisionFactor:  3,
			EmergencyForce:   10,
			PursuitWeight:    0.4,
			SeparationWeight: 8,
			TurnThreshold:    5,
			FireRange:        200,
			CooldownMin:      0.8,
			CooldownMax:      2.5,
			LeadChance:       0.7,
		},
		Spawning: Spawning{
			MaxTargets:        2,
			TargetMinSize:     5,
			TargetMaxSize:     15,
			TargetMinDistance: 50,
			TargetMaxDistance: 200,
			TargetMargin:      25,
			TargetAttempts:    5,
			MaxShips:          2,
			ShipDistance:      150,
			ShipJitter:        50,
			ShipMargin:        50,
		},
		CollisionInterval: 16 * time.Millisecond,
		CameraSmoothing:   0.1,
	}
}
