// Package skirmish is the combat demo: the player's ship against static
// targets and enemy ships that chase, keep apart and shoot back.
package skirmish

import (
	"time"

	"github.com/StevenRydell/littlespace/internal/config"
	"github.com/StevenRydell/littlespace/internal/core"
	"github.com/StevenRydell/littlespace/internal/games/view"
	"github.com/StevenRydell/littlespace/internal/registry"
	"github.com/StevenRydell/littlespace/internal/space"
)

// GameState constants
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover" // shields ran out
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game implements the skirmish demo on top of space.World.
type Game struct {
	cfg        config.SkirmishConfig
	runtime    core.RuntimeConfig
	preset     config.DifficultyPreset // overrides the CLI preset when set
	difficulty *config.DifficultyManager

	world *space.World

	state   string
	score   int
	shields int
	ticks   int
	kills   int
	shots   int
	fps     view.FPSMeter
}

// New creates a new skirmish game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "skirmish"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Skirmish"
}

// Reset loads the config, applies the difficulty preset and builds a new
// world from the runtime seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadSkirmish(configPath)
	if err != nil {
		cfg = config.DefaultSkirmishConfig()
	}
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	if preset != "" {
		config.ApplySkirmishPreset(&cfg, preset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.world = space.NewWorld(ParamsFrom(cfg), runtime.Seed, space.StarsSpec{
		Count:       cfg.Stars.Count,
		BrightRatio: cfg.Stars.BrightRatio,
	})
	g.world.Camera.Follow(g.world.Player.Pos)
	g.world.Camera.Snap()

	g.state = StatePlaying
	g.score = 0
	g.shields = cfg.Gameplay.Shields
	g.ticks = 0
	g.kills = 0
	g.shots = 0
	g.fps = view.FPSMeter{}
}

// SetDifficulty picks the preset for this instance only. It takes effect
// on the next Reset.
func (g *Game) SetDifficulty(name string) error {
	p, err := config.ParsePreset(name)
	if err != nil {
		return err
	}
	g.preset = p
	return nil
}

// ParamsFrom translates a skirmish config into simulation parameters.
func ParamsFrom(cfg config.SkirmishConfig) space.Params {
	e, t := cfg.Enemies, cfg.Targets
	return space.Params{
		World: core.Bounds{W: cfg.World.Width, H: cfg.World.Height},
		View:  core.Bounds{W: cfg.World.ViewWidth, H: cfg.World.ViewHeight},
		Physics: space.Physics{
			Acceleration:  cfg.Physics.Acceleration,
			Friction:      cfg.Physics.Friction,
			MaxSpeed:      cfg.Physics.MaxSpeed,
			MaxVelocity:   cfg.Physics.MaxVelocity,
			RotationSpeed: cfg.Physics.RotationSpeed,
			MaxFrame:      time.Duration(cfg.Physics.MaxFrameMS) * time.Millisecond,
		},
		ShipSize:       cfg.Ship.Size,
		BulletSpeed:    cfg.Weapons.BulletSpeed,
		PlayerCooldown: cfg.Weapons.Cooldown,
		MaxBullets:     cfg.Weapons.MaxBullets,
		AI: space.AI{
			FollowDistance:   e.FollowDistance,
			ReverseDistance:  e.ReverseDistance,
			TurnFactor:       e.TurnFactor,
			SeparationRadius: e.SeparationRadius,
			CollisionFactor:  e.CollisionFactor,
			EmergencyForce:   e.EmergencyForce,
			PursuitWeight:    e.PursuitWeight,
			SeparationWeight: e.SeparationWeight,
			TurnThreshold:    e.TurnThreshold,
			FireRange:        e.FireRange,
			CooldownMin:      e.CooldownMin,
			CooldownMax:      e.CooldownMax,
			LeadChance:       e.LeadChance,
		},
		Spawning: space.Spawning{
			MaxTargets:        t.MaxTargets,
			TargetMinSize:     t.MinSize,
			TargetMaxSize:     t.MaxSize,
			TargetMinDistance: t.MinDistance,
			TargetMaxDistance: t.MaxDistance,
			TargetMargin:      t.Margin,
			TargetAttempts:    5,
			MaxShips:          e.MaxShips,
			ShipDistance:      e.SpawnDistance,
			ShipJitter:        e.SpawnJitter,
			ShipMargin:        e.SpawnMargin,
		},
		CollisionInterval: time.Duration(cfg.Collision.IntervalMS) * time.Millisecond,
		CameraSmoothing:   cfg.Camera.Smoothing,
	}
}

// World exposes the simulation, mainly for tests and the window frontend.
func (g *Game) World() *space.World {
	return g.world
}

// Shields returns the hits the player can still take.
func (g *Game) Shields() int {
	return g.shields
}

// Step advances the world and turns its report into score, shield loss and events.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePlaying:
			g.state = StatePaused
		case StatePaused:
			g.state = StatePlaying
		}
	}

	g.fps.Tick(dt)
	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}
	g.ticks++

	pressure := g.difficulty.At(g.cfg.Enemies.MaxShips, g.score, g.ticks)
	g.world.FireScale = pressure.FireScale
	g.world.SetShipCap(pressure.ShipCap)

	r := g.world.Step(space.ControlsFrom(in), dt)

	g.score += r.TargetsDestroyed*g.cfg.Gameplay.TargetScore + r.ShipsDestroyed*g.cfg.Gameplay.ShipScore
	g.kills += r.TargetsDestroyed + r.ShipsDestroyed
	g.shots += r.Shots
	g.shields -= r.PlayerHits

	events := reportEvents(r)
	if g.shields <= 0 {
		g.shields = 0
		g.state = StateGameOver
		events = append(events, core.Event{Kind: core.EventGameOver})
	}

	return core.StepResult{State: g.State(), Events: events}
}

// reportEvents emits one event per occurrence in r.
func reportEvents(r space.Report) []core.Event {
	var events []core.Event
	add := func(kind core.EventKind, n int) {
		for range n {
			events = append(events, core.Event{Kind: kind})
		}
	}
	add(core.EventShot, r.Shots)
	add(core.EventEnemyShot, r.EnemyShots)
	add(core.EventTargetDestroyed, r.TargetsDestroyed)
	add(core.EventShipDestroyed, r.ShipsDestroyed)
	add(core.EventPlayerHit, r.PlayerHits)
	for _, f := range r.Faults {
		events = append(events, core.Event{Kind: core.EventFault, Detail: f.Error()})
	}
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Stats returns the statistics of the current run.
func (g *Game) Stats() core.RunStats {
	return core.RunStats{
		Kills:    g.kills,
		Shots:    g.shots,
		Duration: g.world.Elapsed,
	}
}

func init() {
	registry.Register("skirmish", func() registry.Game {
		return New()
	})
}
