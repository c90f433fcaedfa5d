// Package space holds the simulation shared by the flight and skirmish demos:
// Newtonian ships with friction, enemy steering, projectiles, throttled
// collision checks, the smoothed camera and the decorative environment.
//
// Nothing here draws or reads devices. World coordinates have y pointing up,
// headings are degrees with 0 along +Y and 90 along +X.
package space

import (
	"errors"
	"fmt"
)

var (
	// ErrNonFinite reports that a velocity or position stopped being a real number.
	ErrNonFinite = errors.New("non-finite value")
	// ErrDegenerate reports a geometric query with no defined answer,
	// such as a direction from a point to itself.
	ErrDegenerate = errors.New("degenerate geometry")
)

// EntityKind names what kind of entity produced a fault.
type EntityKind int

const (
	EntityPlayer EntityKind = iota
	EntityEnemy
	EntityProjectile
)

func (k EntityKind) String() string {
	switch k {
	case EntityPlayer:
		return "player"
	case EntityEnemy:
		return "enemy"
	case EntityProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// Fault records a per-entity update that failed and how the world recovered.
type Fault struct {
	Entity EntityKind
	Index  int // position in its collection at the time of the failure
	Err    error
}

func (f Fault) Error() string {
	return fmt.Sprintf("%s %d: %v", f.Entity, f.Index, f.Err)
}

func (f Fault) Unwrap() error {
	return f.Err
}
