package space

import (
	"math/rand"
	"time"

	"github.com/StevenRydell/littlespace/internal/core"
)

// DebrisPiece is a small spinning fragment that ships bounce off.
type DebrisPiece struct {
	Pos      core.Vec2
	Size     float64
	Rotation float64 // degrees
	Spin     float64 // degrees per second
	Color    core.Color
}

var debrisColors = []core.Color{core.ColorGray, core.ColorOrange, core.ColorBlue, core.ColorYellow}

// DebrisField is a cluster of fragments that pushes ships back on contact.
type DebrisField struct {
	Pos    core.Vec2
	Pieces []DebrisPiece

	Radius    float64 // quick-reject radius around Pos
	Margin    float64
	PushForce float64

	throttle Throttle
}

// DebrisSpec configures a debris field.
type DebrisSpec struct {
	Pieces    int
	Spread    float64
	Radius    float64
	Margin    float64
	PushForce float64
	Interval  time.Duration
}

// NewDebrisField scatters spec.Pieces fragments within ±Spread of pos.
func NewDebrisField(rng *rand.Rand, pos core.Vec2, spec DebrisSpec) *DebrisField {
	f := &DebrisField{
		Pos:       pos,
		Radius:    spec.Radius,
		Margin:    spec.Margin,
		PushForce: spec.PushForce,
		throttle:  Throttle{Interval: spec.Interval},
	}
	for range spec.Pieces {
		f.Pieces = append(f.Pieces, DebrisPiece{
			Pos:      pos.Add(core.V(uniform(rng, -spec.Spread, spec.Spread), uniform(rng, -spec.Spread, spec.Spread))),
			Size:     uniform(rng, 1, 4),
			Rotation: uniform(rng, 0, 360),
			Spin:     uniform(rng, -45, 45),
			Color:    debrisColors[rng.Intn(len(debrisColors))],
		})
	}
	return f
}

func (f *DebrisField) Position() core.Vec2 { return f.Pos }
func (f *DebrisField) CullRadius() float64 { return 60 }

func (f *DebrisField) Update(dt float64) {
	for i := range f.Pieces {
		f.Pieces[i].Rotation += f.Pieces[i].Spin * dt
	}
}

// Push checks b against the field at most once per throttle interval. On the
// first overlapping piece it adds PushForce·dt of velocity along the contact
// normal and moves b out by the overlap, then stops. Ships farther than
// Radius+Margin from the field centre are not checked. It reports whether a
// push happened.
func (f *DebrisField) Push(b *Body, dt time.Duration) bool {
	if !f.throttle.Tick(dt) {
		return false
	}

	reach := f.Radius + f.Margin
	d := b.Pos.Sub(f.Pos)
	if d.X*d.X+d.Y*d.Y > reach*reach {
		return false
	}

	for _, piece := range f.Pieces {
		contact := b.Size + piece.Size
		n, err := Direction(piece.Pos, b.Pos)
		if err != nil {
			continue
		}
		dist := b.Pos.Dist(piece.Pos)
		if dist >= contact {
			continue
		}
		b.Vel = b.Vel.Add(n.Scale(f.PushForce * dt.Seconds()))
		b.Pos = b.Pos.Add(n.Scale(contact - dist))
		return true
	}
	return false
}
