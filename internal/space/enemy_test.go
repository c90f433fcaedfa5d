package space

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StevenRydell/littlespace/internal/core"
)

func TestEmergencyAvoidanceSteersApart(t *testing.T) {
	params := DefaultParams()
	player := &Body{Pos: core.V(1000, 1600)}

	a := NewEnemy(core.V(1000, 1000), params.ShipSize)
	b := NewEnemy(core.V(1005, 1000), params.ShipSize)
	peers := []*Enemy{a, b}

	_, emergency := b.separation(peers, params.AI)
	assert.True(t, emergency)

	// Each ship steers on its own; a is west of b, so it turns toward 270
	// and b toward 90
	aAlone, bAlone := *a, *b
	require.NoError(t, aAlone.Update(frame, player, []*Enemy{&aAlone, b}, &params))
	require.NoError(t, bAlone.Update(frame, player, []*Enemy{a, &bAlone}, &params))
	assert.True(t, aAlone.Emergency)
	assert.True(t, bAlone.Emergency)
	assert.Less(t, math.Abs(core.AngleDelta(aAlone.Heading, 270)), 90.0)
	assert.Less(t, math.Abs(core.AngleDelta(bAlone.Heading, 90)), 90.0)

	start := a.Pos.Dist(b.Pos)
	for range 90 {
		require.NoError(t, a.Update(frame, player, peers, &params))
		require.NoError(t, b.Update(frame, player, peers, &params))
	}
	assert.Greater(t, a.Pos.Dist(b.Pos), start)
}

func TestNoTouchRadiusClearsInOneStep(t *testing.T) {
	params := DefaultParams()
	noTouch := params.ShipSize * params.AI.CollisionFactor
	player := &Body{Pos: core.V(1000, 1600)}

	tests := []struct {
		name string
		b    core.Vec2
	}{
		{"side by side", core.V(1005, 1000)},
		{"stacked", core.V(1000, 1002)},
		{"coincident", core.V(1000, 1000)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewEnemy(core.V(1000, 1000), params.ShipSize)
			b := NewEnemy(tc.b, params.ShipSize)
			peers := []*Enemy{a, b}
			require.Less(t, a.Pos.Dist(b.Pos), noTouch)

			for step := range 30 {
				require.NoError(t, a.Update(frame, player, peers, &params))
				require.NoError(t, b.Update(frame, player, peers, &params))
				assert.GreaterOrEqual(t, a.Pos.Dist(b.Pos), noTouch-1e-9, "step %d", step)
			}
		})
	}
}

func TestSeparationFalloff(t *testing.T) {
	params := DefaultParams()
	e := NewEnemy(core.V(1000, 1000), params.ShipSize)

	near := NewEnemy(core.V(1000, 1075), params.ShipSize)
	far := NewEnemy(core.V(1000, 1300), params.ShipSize)

	force, emergency := e.separation([]*Enemy{e, near, far}, params.AI)
	assert.False(t, emergency)
	assert.InDelta(t, 0, force.X, 1e-9)
	assert.InDelta(t, -0.5, force.Y, 1e-9, "half-way into the radius pushes with strength 0.5")
}

func TestEnemyThrustZones(t *testing.T) {
	params := DefaultParams()

	tests := []struct {
		name     string
		dist     float64
		forward  bool
		backward bool
	}{
		{"too far", 150, true, false},
		{"in band", 75, false, false},
		{"too close", 30, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEnemy(core.V(1000, 1000), params.ShipSize)
			player := &Body{Pos: core.V(1000, 1000+tc.dist)}
			require.NoError(t, e.Update(frame, player, []*Enemy{e}, &params))
			assert.Equal(t, tc.forward, e.ThrustForward)
			assert.Equal(t, tc.backward, e.ThrustBackward)
			assert.InDelta(t, tc.dist, e.LastDistance, 1e-9)
		})
	}
}

func TestEnemyTurnThresholdAndSnap(t *testing.T) {
	params := DefaultParams()
	player := &Body{Pos: core.V(1000, 1100)}

	// 4 degrees off is inside the threshold: no turn
	e := NewEnemy(core.V(1000, 1000), params.ShipSize)
	e.Heading = 4
	require.NoError(t, e.Update(frame, player, nil, &params))
	assert.InDelta(t, 4, e.Heading, 1e-9)

	// Turn rate is 72°/s, so 100ms steps 7.2 degrees and snaps when closer
	e = NewEnemy(core.V(1000, 1000), params.ShipSize)
	e.Heading = 354
	require.NoError(t, e.Update(100*time.Millisecond, player, nil, &params))
	assert.InDelta(t, 0, e.Heading, 1e-9)
}

func TestAimChanceTiers(t *testing.T) {
	tests := []struct {
		errDeg float64
		want   float64
	}{
		{0, 0.8},
		{9.9, 0.8},
		{10, 0.4},
		{29, 0.4},
		{45, 0.1},
		{60, 0.02},
		{180, 0.02},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, aimChance(tc.errDeg), "error %v", tc.errDeg)
	}
}

func TestShotChanceDistanceFactor(t *testing.T) {
	params := DefaultParams()
	player := &Body{Pos: core.V(1000, 1050)}
	e := NewEnemy(core.V(1000, 1000), params.ShipSize)

	e.LastDistance = 50
	assert.InDelta(t, 0.8*0.75, e.ShotChance(player, params.AI, 1), 1e-9)

	e.LastDistance = 190
	assert.InDelta(t, 0.8*0.3, e.ShotChance(player, params.AI, 1), 1e-9, "factor floors at 0.3")

	assert.InDelta(t, 0.8*0.3*2, e.ShotChance(player, params.AI, 2), 1e-9, "difficulty scales the chance")
}

func TestWantsToFireGuards(t *testing.T) {
	params := DefaultParams()
	rng := rand.New(rand.NewSource(1))
	player := &Body{Pos: core.V(1000, 1010)}
	e := NewEnemy(core.V(1000, 1000), params.ShipSize)

	e.LastDistance = 250
	for range 100 {
		assert.False(t, e.WantsToFire(rng, player, params.AI, 10), "never fires beyond range")
	}

	e.LastDistance = 10
	e.Cooldown = 0.5
	for range 100 {
		assert.False(t, e.WantsToFire(rng, player, params.AI, 10), "never fires while cooling down")
	}

	e.Cooldown = 0
	// Aimed, close and scaled to certainty
	assert.True(t, e.WantsToFire(rng, player, params.AI, 10))
}

func TestFireDirectAim(t *testing.T) {
	params := DefaultParams()
	params.AI.LeadChance = 0
	rng := rand.New(rand.NewSource(7))

	e := NewEnemy(core.V(1000, 1000), params.ShipSize)
	player := &Body{Pos: core.V(1100, 1000), Vel: core.V(0, 40)}

	shot := e.Fire(rng, player, params.AI, params.BulletSpeed)
	assert.Equal(t, SideEnemy, shot.Side)
	assert.Equal(t, e.Nose(), shot.Pos)
	assert.InDelta(t, params.BulletSpeed, shot.Vel.Len(), 1e-9)

	want, err := Direction(shot.Pos, player.Pos)
	require.NoError(t, err)
	assert.InDelta(t, want.X, shot.Vel.Normalized().X, 1e-9)
	assert.InDelta(t, want.Y, shot.Vel.Normalized().Y, 1e-9)

	assert.GreaterOrEqual(t, e.Cooldown, params.AI.CooldownMin)
	assert.LessOrEqual(t, e.Cooldown, params.AI.CooldownMax)
}

func TestFireLeadsMovingTarget(t *testing.T) {
	params := DefaultParams()
	params.AI.LeadChance = 1
	rng := rand.New(rand.NewSource(7))

	e := NewEnemy(core.V(1000, 1000), params.ShipSize)
	e.Heading = 90
	player := &Body{Pos: core.V(1100, 1000), Vel: core.V(0, 40)}

	shot := e.Fire(rng, player, params.AI, params.BulletSpeed)
	assert.Greater(t, shot.Vel.Y, 0.0, "aims ahead of a target moving +Y")
}
