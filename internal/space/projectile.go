package space

import "github.com/StevenRydell/littlespace/internal/core"

// Side says who fired a projectile.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

func (s Side) String() string {
	if s == SideEnemy {
		return "enemy"
	}
	return "player"
}

// Projectile flies in a straight line until it hits something or leaves the world.
type Projectile struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Heading float64 // for drawing orientation
	Side    Side
}

// Update moves the projectile by dt seconds.
func (p *Projectile) Update(dt float64) {
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
}

// OutOfBounds reports whether the projectile has left the world.
// A non-finite position counts as out.
func (p Projectile) OutOfBounds(world core.Bounds) bool {
	return !world.Contains(p.Pos)
}
