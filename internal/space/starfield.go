package space

import (
	"math/rand"

	"github.com/StevenRydell/littlespace/internal/core"
)

// Star is a fixed background point. Bright stars are larger and fully opaque.
type Star struct {
	Pos    core.Vec2
	Size   float64
	Bright bool
}

// Opacity returns the star's alpha in [0, 1].
func (s Star) Opacity() float64 {
	if s.Bright {
		return 1.0
	}
	return 0.6
}

// Starfield is the static backdrop scattered across the whole world.
type Starfield struct {
	Stars []Star
}

// NewStarfield scatters count stars on integer coordinates inside world.
// brightRatio of them, on average, are bright.
func NewStarfield(rng *rand.Rand, world core.Bounds, count int, brightRatio float64) *Starfield {
	stars := make([]Star, 0, count)
	for range count {
		p := core.V(float64(rng.Intn(int(world.W)+1)), float64(rng.Intn(int(world.H)+1)))
		if rng.Float64() < 1-brightRatio {
			stars = append(stars, Star{Pos: p, Size: 1.0})
		} else {
			stars = append(stars, Star{Pos: p, Size: 1.5, Bright: true})
		}
	}
	return &Starfield{Stars: stars}
}

// Visible returns the stars inside the camera's viewport.
func (f *Starfield) Visible(cam *Camera) []Star {
	var out []Star
	for _, s := range f.Stars {
		if cam.Visible(s.Pos, 0) {
			out = append(out, s)
		}
	}
	return out
}
