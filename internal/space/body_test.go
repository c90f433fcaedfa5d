package space

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StevenRydell/littlespace/internal/core"
)

const frame = time.Second / 60

func TestThrustFromRestNeverExceedsMaxSpeed(t *testing.T) {
	params := DefaultParams()
	p := NewPlayer(core.V(1000, 1000), params.ShipSize)

	lastY := p.Pos.Y
	for range 60 {
		require.NoError(t, p.Update(Controls{Forward: true}, frame, &params))
		assert.LessOrEqual(t, p.Speed(), params.Physics.MaxSpeed+1e-9)
		assert.Greater(t, p.Pos.Y, lastY, "thrusting along heading 0 moves +Y")
		lastY = p.Pos.Y
	}

	assert.InDelta(t, params.Physics.MaxSpeed, p.Speed(), 1e-6, "one second of thrust reaches the speed cap")
	assert.InDelta(t, 1000, p.Pos.X, 1e-9, "no sideways drift")
}

func TestIntegrateFrictionSlowsCoastingShip(t *testing.T) {
	params := DefaultParams()
	b := Body{Pos: core.V(500, 500), Vel: core.V(0, 40), Size: 3}

	require.NoError(t, b.Integrate(0.016, params.Physics, params.World))
	assert.InDelta(t, 40*0.995, b.Vel.Y, 1e-9)
}

func TestIntegrateClampsToWorld(t *testing.T) {
	params := DefaultParams()

	tests := []struct {
		name string
		pos  core.Vec2
		vel  core.Vec2
		want core.Vec2
	}{
		{"left edge", core.V(0.1, 100), core.V(-50, 0), core.V(0, 100)},
		{"top edge", core.V(100, 1999.9), core.V(0, 50), core.V(100, 2000)},
		{"corner", core.V(2000, 0), core.V(30, -30), core.V(2000, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Body{Pos: tc.pos, Vel: tc.vel}
			require.NoError(t, b.Integrate(0.1, params.Physics, params.World))
			assert.Equal(t, tc.want, b.Pos)
			assert.True(t, params.World.Contains(b.Pos))
		})
	}
}

func TestIntegrateNonFiniteVelocity(t *testing.T) {
	params := DefaultParams()
	b := Body{Pos: core.V(300, 300), Vel: core.V(math.NaN(), 1)}

	err := b.Integrate(0.016, params.Physics, params.World)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonFinite))
	assert.Equal(t, core.Vec2{}, b.Vel)
	assert.Equal(t, core.V(300, 300), b.Pos, "position is kept when velocity is reset")
}

func TestIntegrateComponentClampBeforeSpeedClamp(t *testing.T) {
	params := DefaultParams()
	b := Body{Pos: core.V(1000, 1000), Vel: core.V(math.Inf(1), 0)}

	// +Inf is clamped to MaxVelocity first, so the speed clamp can recover it
	require.NoError(t, b.Integrate(0.016, params.Physics, params.World))
	assert.InDelta(t, params.Physics.MaxSpeed, b.Vel.X, 1e-9)
}

func TestCooldownOnlyCountsDownWhilePositive(t *testing.T) {
	params := DefaultParams()

	b := Body{Pos: core.V(10, 10), Cooldown: 0.01}
	require.NoError(t, b.Integrate(0.016, params.Physics, params.World))
	assert.InDelta(t, -0.006, b.Cooldown, 1e-12, "last decrement may overshoot")

	require.NoError(t, b.Integrate(0.016, params.Physics, params.World))
	assert.InDelta(t, -0.006, b.Cooldown, 1e-12, "no further decrement once expired")
}

func TestPlayerRotationAndDTClamp(t *testing.T) {
	params := DefaultParams()
	p := NewPlayer(core.V(1000, 1000), params.ShipSize)

	// A stalled 2s frame counts as 100ms: 9 degrees at 90°/s
	require.NoError(t, p.Update(Controls{Right: true}, 2*time.Second, &params))
	assert.InDelta(t, 9, p.Heading, 1e-9)

	require.NoError(t, p.Update(Controls{Left: true}, 200*time.Millisecond, &params))
	assert.InDelta(t, 0, p.Heading, 1e-9)

	require.NoError(t, p.Update(Controls{Left: true}, 100*time.Millisecond, &params))
	assert.InDelta(t, 351, p.Heading, 1e-9, "heading wraps into [0, 360)")
}

func TestPlayerShoot(t *testing.T) {
	params := DefaultParams()
	p := NewPlayer(core.V(1000, 1000), params.ShipSize)
	p.Heading = 90

	shot, ok := p.Shoot(params.BulletSpeed, params.PlayerCooldown)
	require.True(t, ok)
	assert.InDelta(t, 1000+params.ShipSize, shot.Pos.X, 1e-9, "spawns at the nose")
	assert.InDelta(t, 1000, shot.Pos.Y, 1e-9)
	assert.InDelta(t, params.BulletSpeed, shot.Vel.X, 1e-9)
	assert.Equal(t, SidePlayer, shot.Side)
	assert.Equal(t, params.PlayerCooldown, p.Cooldown)

	_, ok = p.Shoot(params.BulletSpeed, params.PlayerCooldown)
	assert.False(t, ok, "cooldown blocks the second shot")
}

func TestControlsFrom(t *testing.T) {
	c := ControlsFrom(core.FrameOf(core.ActionUp, core.ActionLeft, core.ActionFire))
	assert.Equal(t, Controls{Forward: true, Left: true, Fire: true}, c)
}

func TestDirection(t *testing.T) {
	d, err := Direction(core.V(0, 0), core.V(0, 10))
	require.NoError(t, err)
	assert.Equal(t, core.V(0, 1), d)

	_, err = Direction(core.V(3, 3), core.V(3, 3))
	assert.ErrorIs(t, err, ErrDegenerate)
}
