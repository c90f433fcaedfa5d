// Package flight is the free-flight demo: one ship drifting through a large
// decorated world, pushed back by debris fields. There is nothing to shoot
// and no way to lose.
package flight

import (
	"math/rand"
	"time"

	"github.com/StevenRydell/littlespace/internal/config"
	"github.com/StevenRydell/littlespace/internal/core"
	"github.com/StevenRydell/littlespace/internal/games/view"
	"github.com/StevenRydell/littlespace/internal/registry"
	"github.com/StevenRydell/littlespace/internal/space"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the flight demo.
type Game struct {
	cfg     config.FlightConfig
	runtime core.RuntimeConfig
	params  space.Params

	player *space.Player
	camera *space.Camera
	env    *space.Environment

	distance float64 // world units flown
	paused   bool
	fps      view.FPSMeter
}

// New creates a new flight game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flight"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Flight"
}

// Reset builds a fresh scene from the runtime seed and puts the ship in the
// middle of it.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadFlight(configPath)
	if err != nil {
		cfg = config.DefaultFlightConfig()
	}
	g.cfg = cfg
	g.params = paramsFrom(cfg)

	rng := rand.New(rand.NewSource(runtime.Seed))
	g.env = space.GenerateEnvironment(rng, g.params.World, sceneFrom(cfg))

	g.player = space.NewPlayer(g.params.World.Center(), g.params.ShipSize)
	g.camera = space.NewCamera(g.params.View, g.params.World, g.params.CameraSmoothing)
	g.camera.Follow(g.player.Pos)
	g.camera.Snap()

	g.distance = 0
	g.paused = false
	g.fps = view.FPSMeter{}
}

func paramsFrom(cfg config.FlightConfig) space.Params {
	p := space.DefaultParams()
	p.World = core.Bounds{W: cfg.World.Width, H: cfg.World.Height}
	p.View = core.Bounds{W: cfg.World.ViewWidth, H: cfg.World.ViewHeight}
	p.Physics = physicsFrom(cfg.Physics)
	p.ShipSize = cfg.Ship.Size
	p.CameraSmoothing = cfg.Camera.Smoothing
	return p
}

func physicsFrom(c config.PhysicsConfig) space.Physics {
	return space.Physics{
		Acceleration:  c.Acceleration,
		Friction:      c.Friction,
		MaxSpeed:      c.MaxSpeed,
		MaxVelocity:   c.MaxVelocity,
		RotationSpeed: c.RotationSpeed,
		MaxFrame:      time.Duration(c.MaxFrameMS) * time.Millisecond,
	}
}

func sceneFrom(cfg config.FlightConfig) space.SceneSpec {
	s := cfg.Scenery
	return space.SceneSpec{
		Stars:        space.StarsSpec{Count: cfg.Stars.Count, BrightRatio: cfg.Stars.BrightRatio},
		Planets:      s.Planets,
		FogBanks:     s.FogBanks,
		Anomalies:    s.Anomalies,
		Asteroids:    s.Asteroids,
		Stations:     s.Stations,
		Pulsars:      s.Pulsars,
		Beacons:      s.Beacons,
		DebrisFields: s.DebrisFields,
		SolarFlares:  s.SolarFlares,
		Debris: space.DebrisSpec{
			Pieces:    cfg.Debris.Pieces,
			Spread:    cfg.Debris.Spread,
			Radius:    cfg.Debris.Radius,
			Margin:    cfg.Debris.Margin,
			PushForce: cfg.Debris.PushForce,
			Interval:  time.Duration(cfg.Debris.IntervalMS) * time.Millisecond,
		},
	}
}

// Player returns the ship.
func (g *Game) Player() *space.Player {
	return g.player
}

// Environment returns the decorated scene.
func (g *Game) Environment() *space.Environment {
	return g.env
}

// Step flies the ship, runs debris pushback, moves the camera and animates
// the scenery in view.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}
	g.fps.Tick(dt)
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	var events []core.Event
	before := g.player.Pos

	if err := g.player.Update(space.ControlsFrom(in), dt, &g.params); err != nil {
		g.player = space.NewPlayer(g.params.World.Center(), g.params.ShipSize)
		events = append(events, core.Event{Kind: core.EventFault, Detail: space.Fault{Entity: space.EntityPlayer, Err: err}.Error()})
		before = g.player.Pos
	}

	if g.env.PushBack(&g.player.Body, dt) {
		events = append(events, core.Event{Kind: core.EventDebrisPush})
	}
	g.distance += g.player.Pos.Dist(before)

	g.camera.Follow(g.player.Pos)
	g.camera.Update()
	g.env.Update(g.params.Physics.ClampDT(dt), g.camera)

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state. Score is distance flown in hundreds of units.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  int(g.distance / 100),
		Paused: g.paused,
	}
}

func init() {
	registry.Register("flight", func() registry.Game {
		return New()
	})
}
