// Package circle is the smallest demo: a circle steered by the arrow keys
// around a fixed 640×360 surface.
package circle

import (
	"time"

	"github.com/StevenRydell/littlespace/internal/config"
	"github.com/StevenRydell/littlespace/internal/core"
	"github.com/StevenRydell/littlespace/internal/games/view"
	"github.com/StevenRydell/littlespace/internal/registry"
)

// CircleGlyph fills the circle's cells.
const CircleGlyph = '●'

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the circle toy.
type Game struct {
	cfg     config.CircleConfig
	runtime core.RuntimeConfig

	pos    core.Vec2
	paused bool
	ticks  int
	fps    view.FPSMeter
}

// New creates a new circle game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "circle"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Circle"
}

// Reset centres the circle.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadCircle(configPath)
	if err != nil {
		cfg = config.DefaultCircleConfig()
	}
	g.cfg = cfg

	g.pos = core.V(cfg.Screen.Width/2, cfg.Screen.Height/2)
	g.paused = false
	g.ticks = 0
	g.fps = view.FPSMeter{}
}

// Position returns the circle centre in surface units.
func (g *Game) Position() core.Vec2 {
	return g.pos
}

// Step moves the circle by a fixed step per held direction. Movement is per
// tick, not per second, so dt only feeds the FPS readout.
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
	g.ticks++

	r, step := g.cfg.Circle.Radius, g.cfg.Circle.Step
	w, h := g.cfg.Screen.Width, g.cfg.Screen.Height

	if in.Has(core.ActionUp) && g.pos.Y < h-r {
		g.pos.Y += step
	}
	if in.Has(core.ActionDown) && g.pos.Y > r {
		g.pos.Y -= step
	}
	if in.Has(core.ActionLeft) && g.pos.X > r {
		g.pos.X -= step
	}
	if in.Has(core.ActionRight) && g.pos.X < w-r {
		g.pos.X += step
	}
	// A step can overshoot the edge test; keep the whole circle on the surface
	g.pos.X = core.ClampF(g.pos.X, r, w-r)
	g.pos.Y = core.ClampF(g.pos.Y, r, h-r)

	return core.StepResult{State: g.State()}
}

// Render draws the circle scaled to the terminal, with the FPS readout on the top row.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	surface := core.Bounds{W: g.cfg.Screen.Width, H: g.cfg.Screen.Height}
	pr := view.NewProjector(dst, core.Vec2{}, surface, 1)
	pr.Disc(dst, g.pos, g.cfg.Circle.Radius, CircleGlyph, core.ColorWhite)

	view.HUD(dst, 0, "Arrows: move  P: pause  Q: quit", g.fps.String())

	if g.paused {
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

// State returns the current game state. The toy has no score and never ends.
func (g *Game) State() core.GameState {
	return core.GameState{Paused: g.paused}
}

func init() {
	registry.Register("circle", func() registry.Game {
		return New()
	})
}
