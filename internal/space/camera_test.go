package space

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StevenRydell/littlespace/internal/core"
)

func TestCameraFollowClampsToWorld(t *testing.T) {
	params := DefaultParams()
	cam := NewCamera(params.View, params.World, 0.1)

	tests := []struct {
		name string
		p    core.Vec2
		want core.Vec2
	}{
		{"centre", core.V(1000, 1000), core.V(680, 820)},
		{"bottom-left", core.V(10, 10), core.V(0, 0)},
		{"top-right", core.V(2000, 2000), core.V(1360, 1640)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cam.Follow(tc.p)
			assert.Equal(t, tc.want, cam.Target)
		})
	}
}

func TestCameraSmoothing(t *testing.T) {
	cam := NewCamera(core.Bounds{W: 640, H: 360}, core.Bounds{W: 2000, H: 2000}, 0.1)
	cam.Follow(core.V(1000, 1000))

	cam.Update()
	assert.InDelta(t, 68, cam.Pos.X, 1e-9)
	assert.InDelta(t, 82, cam.Pos.Y, 1e-9)

	for range 200 {
		cam.Update()
	}
	assert.InDelta(t, 680, cam.Pos.X, 1e-6)

	cam.Follow(core.V(0, 0))
	cam.Snap()
	assert.Equal(t, core.Vec2{}, cam.Pos)
}

func TestCameraViewAndVisibility(t *testing.T) {
	cam := NewCamera(core.Bounds{W: 640, H: 360}, core.Bounds{W: 2000, H: 2000}, 1)
	cam.Follow(core.V(1000, 1000))
	cam.Update()

	assert.Equal(t, core.V(320, 180), cam.ToView(core.V(1000, 1000)))
	assert.True(t, cam.Visible(core.V(680, 820), 0))
	assert.False(t, cam.Visible(core.V(670, 820), 0))
	assert.True(t, cam.Visible(core.V(670, 820), 10))
}

func TestSpawnerTargets(t *testing.T) {
	params := DefaultParams()
	s := NewSpawner(rand.New(rand.NewSource(4)), &params)
	sp := params.Spawning

	center := params.World.Center()
	for range 200 {
		tg, ok := s.Target(center)
		require.True(t, ok, "open space never runs out of attempts")
		d := tg.Pos.Dist(center)
		assert.GreaterOrEqual(t, d, sp.TargetMinDistance-1e-9)
		assert.LessOrEqual(t, d, sp.TargetMaxDistance+1e-9)
		assert.GreaterOrEqual(t, tg.Size, sp.TargetMinSize)
		assert.LessOrEqual(t, tg.Size, sp.TargetMaxSize)
	}

	m := sp.TargetMargin
	for range 200 {
		tg, ok := s.Target(core.V(0, 0))
		if !ok {
			continue
		}
		assert.True(t, tg.Pos.X > m && tg.Pos.X < params.World.W-m)
		assert.True(t, tg.Pos.Y > m && tg.Pos.Y < params.World.H-m)
	}
}

func TestSpawnerShips(t *testing.T) {
	params := DefaultParams()
	s := NewSpawner(rand.New(rand.NewSource(8)), &params)
	sp := params.Spawning

	center := params.World.Center()
	for range 200 {
		e := s.Ship(center)
		d := e.Pos.Dist(center)
		assert.GreaterOrEqual(t, d, sp.ShipDistance-sp.ShipJitter-1e-9)
		assert.LessOrEqual(t, d, sp.ShipDistance+sp.ShipJitter+1e-9)
		assert.Equal(t, params.ShipSize, e.Size)
	}

	for range 200 {
		e := s.Ship(core.V(2000, 0))
		assert.True(t, e.Pos.X >= sp.ShipMargin && e.Pos.X <= params.World.W-sp.ShipMargin)
		assert.True(t, e.Pos.Y >= sp.ShipMargin && e.Pos.Y <= params.World.H-sp.ShipMargin)
	}
}
