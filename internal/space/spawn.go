package space

import (
	"math"
	"math/rand"

	"github.com/StevenRydell/littlespace/internal/core"
)

// Spawner places new targets and enemy ships around the player.
type Spawner struct {
	rng    *rand.Rand
	params *Params
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, params *Params) *Spawner {
	return &Spawner{rng: rng, params: params}
}

func (s *Spawner) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// around returns the point dist away from center in a random direction.
func (s *Spawner) around(center core.Vec2, dist float64) core.Vec2 {
	angle := s.rng.Float64() * 2 * math.Pi
	return center.Add(core.V(math.Cos(angle), math.Sin(angle)).Scale(dist))
}

// Target tries a few random spots around near. A spot counts only if it is
// strictly inside the world margin after clamping, so targets never pile up
// against the edge. It reports false when every attempt fails.
func (s *Spawner) Target(near core.Vec2) (Target, bool) {
	sp := s.params.Spawning
	world := s.params.World
	m := sp.TargetMargin

	attempts := max(sp.TargetAttempts, 1)
	for range attempts {
		p := s.around(near, s.uniform(sp.TargetMinDistance, sp.TargetMaxDistance))
		p.X = core.ClampF(p.X, m, world.W-m)
		p.Y = core.ClampF(p.Y, m, world.H-m)

		if p.X <= m || p.X >= world.W-m || p.Y <= m || p.Y >= world.H-m {
			continue
		}

		shape := ShapeCircle
		if s.rng.Intn(2) == 1 {
			shape = ShapeSquare
		}
		return Target{
			Pos:   p,
			Shape: shape,
			Size:  s.uniform(sp.TargetMinSize, sp.TargetMaxSize),
		}, true
	}
	return Target{}, false
}

// Ship places an enemy ship roughly ShipDistance from near, kept ShipMargin
// inside the world.
func (s *Spawner) Ship(near core.Vec2) *Enemy {
	sp := s.params.Spawning
	world := s.params.World

	angle := s.rng.Float64() * 2 * math.Pi
	dist := sp.ShipDistance + s.uniform(-sp.ShipJitter, sp.ShipJitter)
	p := near.Add(core.V(math.Cos(angle), math.Sin(angle)).Scale(dist))
	p.X = core.ClampF(p.X, sp.ShipMargin, world.W-sp.ShipMargin)
	p.Y = core.ClampF(p.Y, sp.ShipMargin, world.H-sp.ShipMargin)

	return NewEnemy(p, s.params.ShipSize)
}
