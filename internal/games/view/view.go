// Package view projects space simulation state onto the terminal cell grid.
// World coordinates have y pointing up; screen rows grow downward, so the
// projection flips the vertical axis.
package view

import (
	"fmt"
	"math"
	"time"

	"github.com/StevenRydell/littlespace/internal/core"
	"github.com/StevenRydell/littlespace/internal/space"
)

// Glyphs shared by the space demos.
const (
	ThrusterGlyph   = '*'
	ReverseGlyph    = '·'
	ShotGlyph       = '•'
	DimStarGlyph    = '.'
	BrightStarGlyph = '+'
)

// Palette for ships and projectiles.
const (
	PlayerColor     = core.ColorBrightWhite
	EnemyColor      = core.ColorBrightRed
	ThrusterColor   = core.ColorOrange
	ReverseColor    = core.ColorCyan
	PlayerShotColor = core.ColorBrightCyan
	EnemyShotColor  = core.ColorYellow
)

// arrows are indexed by heading octant, starting at 0° (+Y) and turning clockwise.
var arrows = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// octantSteps are the cell offsets for each octant, with rows growing downward.
var octantSteps = [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

func octant(heading float64) int {
	return int(math.Floor((core.WrapDegrees(heading)+22.5)/45)) % 8
}

// Arrow returns the 8-way arrow closest to heading.
func Arrow(heading float64) rune {
	return arrows[octant(heading)]
}

// Projector maps a viewport in world units onto a block of screen rows.
// Origin is the bottom-left corner of the viewport. Rows above Top are left
// for the HUD.
type Projector struct {
	Origin core.Vec2
	View   core.Bounds
	Cols   int
	Rows   int
	Top    int
}

// NewProjector fits view onto dst below a HUD of hudRows rows.
func NewProjector(dst *core.Screen, origin core.Vec2, view core.Bounds, hudRows int) Projector {
	return Projector{
		Origin: origin,
		View:   view,
		Cols:   dst.Width(),
		Rows:   max(dst.Height()-hudRows, 1),
		Top:    hudRows,
	}
}

// Cell returns the screen cell containing world point p. ok is false when p
// lies outside the viewport.
func (pr Projector) Cell(p core.Vec2) (x, y int, ok bool) {
	if pr.View.W <= 0 || pr.View.H <= 0 || !p.IsFinite() {
		return 0, 0, false
	}
	fx := (p.X - pr.Origin.X) / pr.View.W
	fy := (p.Y - pr.Origin.Y) / pr.View.H
	if fx < 0 || fx > 1 || fy < 0 || fy > 1 {
		return 0, 0, false
	}
	x = min(int(fx*float64(pr.Cols)), pr.Cols-1)
	row := min(int(fy*float64(pr.Rows)), pr.Rows-1)
	return x, pr.Top + pr.Rows - 1 - row, true
}

// CellSize returns the world size of one cell.
func (pr Projector) CellSize() (w, h float64) {
	return pr.View.W / float64(pr.Cols), pr.View.H / float64(pr.Rows)
}

// Plot draws r at world point p when it is visible.
func (pr Projector) Plot(dst *core.Screen, p core.Vec2, r rune, c core.Color) {
	if x, y, ok := pr.Cell(p); ok {
		dst.SetColor(x, y, r, c)
	}
}

// Disc fills every cell whose centre lies within radius of p. The cell
// containing p is always drawn, so small bodies stay visible.
func (pr Projector) Disc(dst *core.Screen, p core.Vec2, radius float64, r rune, c core.Color) {
	cw, ch := pr.CellSize()
	x0, y0, ok := pr.Cell(p)
	if ok {
		dst.SetColor(x0, y0, r, c)
	}
	for wy := p.Y - radius; wy <= p.Y+radius; wy += ch {
		for wx := p.X - radius; wx <= p.X+radius; wx += cw {
			cell := core.V(wx, wy)
			if cell.Dist(p) <= radius {
				pr.Plot(dst, cell, r, c)
			}
		}
	}
}

// Square fills the axis-aligned square of half-extent half around p.
func (pr Projector) Square(dst *core.Screen, p core.Vec2, half float64, r rune, c core.Color) {
	cw, ch := pr.CellSize()
	pr.Plot(dst, p, r, c)
	for wy := p.Y - half; wy <= p.Y+half; wy += ch {
		for wx := p.X - half; wx <= p.X+half; wx += cw {
			pr.Plot(dst, core.V(wx, wy), r, c)
		}
	}
}

// Ship draws b as an arrow with a thruster cell behind it while thrusting.
func (pr Projector) Ship(dst *core.Screen, b *space.Body, c core.Color) {
	x, y, ok := pr.Cell(b.Pos)
	if !ok {
		return
	}
	step := octantSteps[octant(b.Heading)]
	switch {
	case b.ThrustForward:
		dst.SetColor(x-step[0], y-step[1], ThrusterGlyph, ThrusterColor)
	case b.ThrustBackward:
		dst.SetColor(x-step[0], y-step[1], ReverseGlyph, ReverseColor)
	}
	dst.SetColor(x, y, Arrow(b.Heading), c)
}

// Shots draws projectiles in the colour of their side.
func (pr Projector) Shots(dst *core.Screen, shots []space.Projectile) {
	for _, s := range shots {
		c := PlayerShotColor
		if s.Side == space.SideEnemy {
			c = EnemyShotColor
		}
		pr.Plot(dst, s.Pos, ShotGlyph, c)
	}
}

// Stars draws the visible part of a starfield.
func (pr Projector) Stars(dst *core.Screen, stars []space.Star) {
	for _, s := range stars {
		if s.Bright {
			pr.Plot(dst, s.Pos, BrightStarGlyph, core.ColorWhite)
		} else {
			pr.Plot(dst, s.Pos, DimStarGlyph, core.ColorGray)
		}
	}
}

// HUD writes left-aligned and right-aligned text on row y.
func HUD(dst *core.Screen, y int, left, right string) {
	dst.DrawTextColor(0, y, left, core.ColorBrightGreen)
	dst.DrawTextColor(dst.Width()-len([]rune(right)), y, right, core.ColorWhite)
}

// Coords formats a position the way the HUD shows it.
func Coords(p core.Vec2) string {
	return fmt.Sprintf("X: %d Y: %d", int(p.X), int(p.Y))
}

// FPSMeter averages frame times over a short window so the HUD does not flicker.
type FPSMeter struct {
	frames int
	acc    time.Duration
	value  float64
}

// Tick records one frame of length dt.
func (m *FPSMeter) Tick(dt time.Duration) {
	if dt <= 0 {
		return
	}
	m.frames++
	m.acc += dt
	if m.acc >= 500*time.Millisecond || m.value == 0 {
		m.value = float64(m.frames) / m.acc.Seconds()
		m.frames = 0
		m.acc = 0
	}
}

// Value returns the most recent average, or 0 before the first frame.
func (m *FPSMeter) Value() float64 {
	return m.value
}

// String formats the meter for the HUD.
func (m *FPSMeter) String() string {
	if m.value == 0 {
		return "FPS: --"
	}
	return fmt.Sprintf("FPS: %.1f", m.value)
}
