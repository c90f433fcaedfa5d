package skirmish

import (
	"fmt"

	"github.com/StevenRydell/littlespace/internal/core"
	"github.com/StevenRydell/littlespace/internal/games/view"
	"github.com/StevenRydell/littlespace/internal/space"
)

// Target glyphs and colours
const (
	CircleTargetGlyph = '●'
	SquareTargetGlyph = '■'

	CircleTargetColor = core.ColorBrightRed
	SquareTargetColor = core.ColorBrightBlue
)

// Render draws the battlefield around the player, HUD on the top row.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w := g.world

	pr := view.NewProjector(dst, w.Camera.Pos, w.Params.View, 1)
	pr.Stars(dst, w.Stars.Visible(w.Camera))

	for _, t := range w.Targets {
		switch t.Shape {
		case space.ShapeCircle:
			pr.Disc(dst, t.Pos, t.Size, CircleTargetGlyph, CircleTargetColor)
		case space.ShapeSquare:
			pr.Square(dst, t.Pos, t.Size, SquareTargetGlyph, SquareTargetColor)
		}
	}

	pr.Shots(dst, w.Shots)
	pr.Shots(dst, w.EnemyShots)

	for _, e := range w.Enemies {
		pr.Ship(dst, &e.Body, view.EnemyColor)
	}
	pr.Ship(dst, &w.Player.Body, view.PlayerColor)

	g.renderHUD(dst)

	switch g.state {
	case StatePaused:
		dst.DrawMessage("PAUSED", "Press P to resume")
	case StateGameOver:
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	left := fmt.Sprintf("Shields: %d  Score: %d", g.shields, g.score)
	right := fmt.Sprintf("%s  %s", g.fps.String(), view.Coords(g.world.Player.Pos))
	view.HUD(dst, 0, left, right)
}
