package flight

import (
	"fmt"
	"math"
	"strings"

	"github.com/StevenRydell/littlespace/internal/core"
	"github.com/StevenRydell/littlespace/internal/games/view"
	"github.com/StevenRydell/littlespace/internal/space"
)

// Scenery glyphs
const (
	FogGlyph     = '░'
	PlanetGlyph  = '█'
	FeatureGlyph = '▒'
	RockGlyph    = 'o'
	DebrisGlyph  = '▪'
	StationGlyph = '#'
	LightGlyph   = '●'
	BeaconGlyph  = '!'
	PulsarGlyph  = '✷'
	BeamGlyph    = '·'
	RingGlyph    = '○'
	FlareGlyph   = '~'
)

// Render draws the scene around the ship with the HUD on the top row.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	pr := view.NewProjector(dst, g.camera.Pos, g.params.View, 1)
	pr.Stars(dst, g.env.Stars.Visible(g.camera))

	for _, d := range g.env.Decorations() {
		if !g.camera.Visible(d.Position(), d.CullRadius()) {
			continue
		}
		drawDecoration(dst, pr, d)
	}

	pr.Ship(dst, &g.player.Body, view.PlayerColor)

	view.HUD(dst, 0, g.fps.String(), fmt.Sprintf("%s  Dist: %d", view.Coords(g.player.Pos), g.State().Score))

	if g.paused {
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

func drawDecoration(dst *core.Screen, pr view.Projector, d space.Decoration) {
	switch d := d.(type) {
	case *space.FogBank:
		for _, p := range d.Particles {
			pr.Plot(dst, p.Pos, FogGlyph, d.Color)
		}

	case *space.SolarFlare:
		c := core.ColorYellow
		if d.Intensity > 0.5 {
			c = core.ColorOrange
		}
		tip := d.Tip()
		const samples = 12
		for i := range samples + 1 {
			t := float64(i) / samples
			pr.Plot(dst, d.Pos.Add(tip.Sub(d.Pos).Scale(t)), FlareGlyph, c)
		}

	case *space.Planet:
		pr.Disc(dst, d.Pos, d.Size, PlanetGlyph, d.Scheme.Body)
		if d.HasFeature() {
			pr.Plot(dst, d.Pos.Add(core.V(d.Size*0.3, d.Size*0.2)), FeatureGlyph, d.Scheme.Detail)
		}

	case *space.DebrisField:
		for _, p := range d.Pieces {
			pr.Plot(dst, p.Pos, DebrisGlyph, p.Color)
		}

	case *space.AsteroidCluster:
		for _, r := range d.Rocks {
			c := core.ColorDarkGray
			if r.Gray > 140 {
				c = core.ColorGray
			}
			pr.Plot(dst, r.Pos, RockGlyph, c)
		}

	case *space.Station:
		pr.Square(dst, d.Pos, d.Size/2, StationGlyph, core.ColorGray)
		pr.Plot(dst, d.Pos, []rune(strings.ToUpper(d.Kind.String()))[0], core.ColorBrightWhite)
		if d.MainLight {
			pr.Plot(dst, d.Pos.Add(core.V(0, d.Size/2)), LightGlyph, core.ColorBrightRed)
		}
		if d.Secondary {
			pr.Plot(dst, d.Pos.Add(core.V(0, -d.Size/2)), LightGlyph, core.ColorBrightGreen)
		}

	case *space.Beacon:
		c := core.ColorDarkGray
		if d.On {
			c = core.ColorBrightRed
		}
		pr.Plot(dst, d.Pos, BeaconGlyph, c)

	case *space.Pulsar:
		reach := d.Size * d.Scale() * 2
		for _, a := range d.BeamAngles() {
			dir := core.HeadingVector(a)
			for i := 1; i <= 4; i++ {
				pr.Plot(dst, d.Pos.Add(dir.Scale(reach*float64(i)/4)), BeamGlyph, d.Color)
			}
		}
		pr.Plot(dst, d.Pos, PulsarGlyph, d.Color)

	case *space.Anomaly:
		r := d.Size * d.Scale()
		for k := range 6 {
			a := (d.Rotation + float64(k)*60) * math.Pi / 180
			pr.Plot(dst, d.Pos.Add(core.V(math.Sin(a), math.Cos(a)).Scale(r)), RingGlyph, d.Color)
		}
	}
}
