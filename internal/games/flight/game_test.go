package flight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StevenRydell/littlespace/internal/core"
	"github.com/StevenRydell/littlespace/internal/registry"
)

const frame = time.Second / 60

func newGame(t *testing.T, seed int64) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	rc := core.DefaultConfig()
	rc.Seed = seed
	g := New()
	g.Reset(rc)
	return g
}

func TestResetBuildsScene(t *testing.T) {
	g := newGame(t, 1)

	assert.Equal(t, core.V(1000, 1000), g.Player().Pos)
	env := g.Environment()
	assert.Len(t, env.Stars.Stars, 200)
	assert.Len(t, env.Planets, 4)
	assert.Len(t, env.Stations, 5)
	assert.Len(t, env.Debris, 3)
	assert.Equal(t, 0, g.State().Score)
}

func TestSceneFollowsSeed(t *testing.T) {
	a := newGame(t, 7)
	b := newGame(t, 7)
	c := newGame(t, 8)

	assert.Equal(t, a.Environment().Planets, b.Environment().Planets)
	assert.NotEqual(t, a.Environment().Planets, c.Environment().Planets)
}

func TestThrustFliesAndScores(t *testing.T) {
	g := newGame(t, 2)
	// Clear the scenery so debris cannot deflect the run
	g.Environment().Debris = nil

	startY := g.Player().Pos.Y
	for range 300 {
		g.Step(core.FrameOf(core.ActionUp), frame)
		require.LessOrEqual(t, g.Player().Speed(), 50+1e-9)
	}

	assert.Greater(t, g.Player().Pos.Y, startY)
	assert.GreaterOrEqual(t, g.State().Score, 1, "five seconds of thrust covers more than 100 units")
	assert.False(t, g.State().GameOver)
}

func TestDebrisPushEvent(t *testing.T) {
	g := newGame(t, 3)
	field := g.Environment().Debris[0]
	g.Player().Pos = field.Pieces[0].Pos.Add(core.V(1, 0))

	res := g.Step(core.NewInputFrame(), frame)
	assert.True(t, res.Has(core.EventDebrisPush))
}

func TestPauseFreezesShip(t *testing.T) {
	g := newGame(t, 4)
	g.Step(core.FrameOf(core.ActionPause), frame)

	for range 30 {
		g.Step(core.FrameOf(core.ActionUp), frame)
	}
	assert.Equal(t, core.V(1000, 1000), g.Player().Pos)
	assert.True(t, g.State().Paused)
}

func TestRestartResetsMidFlight(t *testing.T) {
	g := newGame(t, 3)
	g.Environment().Debris = nil
	for range 60 {
		g.Step(core.FrameOf(core.ActionUp), frame)
	}
	require.NotEqual(t, core.V(1000, 1000), g.Player().Pos)
	require.False(t, g.State().GameOver, "flight never ends")

	res := g.Step(core.FrameOf(core.ActionRestart), frame)
	assert.Equal(t, core.V(1000, 1000), g.Player().Pos)
	assert.Zero(t, g.Player().Speed())
	assert.Equal(t, 0, res.State.Score)
}

func TestRenderShowsShipAndHUD(t *testing.T) {
	g := newGame(t, 5)
	g.Environment().Debris = nil
	g.Step(core.NewInputFrame(), frame)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	assert.Contains(t, screen.String(), "↑")
	assert.Contains(t, screen.Row(0), "FPS:")
	assert.Contains(t, screen.Row(0), "X: 1000 Y: 1000")
}

func TestRegistered(t *testing.T) {
	assert.True(t, registry.Exists("flight"))
}
