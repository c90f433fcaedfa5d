// Package window runs the space demos in a desktop window with ebiten.
// The games still render into a core.Screen cell grid; each cell becomes a
// small coloured shape, and text rows are drawn with the debug font.
package window

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/StevenRydell/littlespace/internal/core"
	"github.com/StevenRydell/littlespace/internal/registry"
	"github.com/StevenRydell/littlespace/internal/storage"
)

// Cell size in pixels. The debug font is 6x16.
const (
	CellW = 8
	CellH = 16
)

// EventSink receives the events of every step, e.g. to play sounds.
type EventSink interface {
	PlayEvents(events []core.Event)
}

// Options tune the window beyond the runtime config.
type Options struct {
	// Logger receives fault and run events. Nil discards them.
	Logger *log.Logger

	// Sound plays step events. Nil keeps the window silent.
	Sound EventSink
}

// Frontend adapts a registry.Game to ebiten.Game.
type Frontend struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	logger *log.Logger
	sound  EventSink

	state    core.GameState
	ticks    int
	recorded bool
}

// NewFrontend creates a frontend for game. The game is reset immediately.
func NewFrontend(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) *Frontend {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	f := &Frontend{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		logger: logger.With("game", game.ID()),
		sound:  opts.Sound,
	}
	game.Reset(cfg)
	return f
}

// Update polls input and advances the game by one tick.
func (f *Frontend) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	frame := FrameFrom(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed,
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	f.step(frame, time.Second/time.Duration(ebiten.TPS()))
	return nil
}

func (f *Frontend) step(frame core.InputFrame, dt time.Duration) {
	result := f.game.Step(frame, dt)
	f.ticks++

	// A restart after game over starts a new run
	if f.recorded && !result.State.GameOver {
		f.recorded = false
		f.ticks = 1
	}
	f.state = result.State

	if f.sound != nil {
		f.sound.PlayEvents(result.Events)
	}
	for _, e := range result.Events {
		switch e.Kind {
		case core.EventFault:
			f.logger.Debug("simulation fault recovered", "detail", e.Detail)
		case core.EventGameOver:
			f.logger.Info("game over", "score", f.state.Score)
		}
	}

	if f.state.GameOver {
		f.finishRun()
	}
}

// finishRun records the score and run statistics once per run.
func (f *Frontend) finishRun() {
	if f.recorded || f.ticks == 0 {
		return
	}
	f.recorded = true

	if f.store == nil {
		return
	}

	score := f.game.State().Score
	if score > 0 {
		if _, err := f.store.SaveScore(f.game.ID(), score); err != nil {
			f.logger.Warn("could not save score", "error", err)
		}
	}
	if sr, ok := f.game.(registry.StatsReporter); ok {
		if _, err := f.store.SaveRun(f.game.ID(), score, sr.Stats()); err != nil {
			f.logger.Warn("could not save run", "error", err)
		}
	}
}

// Draw renders the game's cell grid into the window.
func (f *Frontend) Draw(dst *ebiten.Image) {
	dst.Fill(color.RGBA{A: 255})
	f.screen.Clear()
	f.game.Render(f.screen)
	DrawScreen(dst, f.screen)
}

// Layout sizes the cell grid to the window.
func (f *Frontend) Layout(outsideWidth, outsideHeight int) (int, int) {
	cols := max(outsideWidth/CellW, 1)
	rows := max(outsideHeight/CellH, 1)
	if cols != f.screen.Width() || rows != f.screen.Height() {
		f.screen.Resize(cols, rows)
		f.config.ScreenW = cols
		f.config.ScreenH = rows
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and plays game until it is closed or Q is pressed.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	f := NewFrontend(game, store, cfg, opts)

	ebiten.SetWindowSize(f.screen.Width()*CellW, f.screen.Height()*CellH)
	ebiten.SetWindowTitle(fmt.Sprintf("Little Space - %s", game.Title()))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(f.config.TickRate)

	err := ebiten.RunGame(f)
	f.finishRun()
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// FrameFrom builds an input frame from key state. Movement and fire follow
// the held state; the other actions trigger on the frame a key goes down.
func FrameFrom(pressed, justPressed func(ebiten.Key) bool, mouseFire bool) core.InputFrame {
	frame := core.NewInputFrame()
	for action, keys := range heldBindings {
		for _, k := range keys {
			if pressed(k) {
				frame.Set(action)
				break
			}
		}
	}
	for action, keys := range tapBindings {
		for _, k := range keys {
			if justPressed(k) {
				frame.Set(action)
				break
			}
		}
	}
	if mouseFire {
		frame.Set(core.ActionFire)
	}
	return frame
}

var heldBindings = map[core.Action][]ebiten.Key{
	core.ActionUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
	core.ActionDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
	core.ActionLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	core.ActionRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	core.ActionFire:  {ebiten.KeySpace, ebiten.KeyF},
}

var tapBindings = map[core.Action][]ebiten.Key{
	core.ActionPause:   {ebiten.KeyP, ebiten.KeyEscape},
	core.ActionRestart: {ebiten.KeyR},
	core.ActionConfirm: {ebiten.KeyEnter},
}

// arrowNoses points from a cell centre toward the tip of an arrow glyph, in
// screen pixels with y down.
var arrowNoses = map[rune][2]float32{
	'↑': {0, -1}, '↗': {1, -1}, '→': {1, 0}, '↘': {1, 1},
	'↓': {0, 1}, '↙': {-1, 1}, '←': {-1, 0}, '↖': {-1, -1},
}

// DrawScreen paints every non-blank cell of s onto dst. Runs of ASCII text
// use the debug font; other glyphs become filled shapes in the cell colour.
func DrawScreen(dst *ebiten.Image, s *core.Screen) {
	for y := range s.Height() {
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			if isText(cell.Rune) {
				start := x
				var run []rune
				for x < s.Width() && isText(s.GetCell(x, y).Rune) {
					run = append(run, s.GetCell(x, y).Rune)
					x++
				}
				ebitenutil.DebugPrintAt(dst, string(run), start*CellW, y*CellH)
				continue
			}
			if cell.Rune != ' ' && cell.Rune != 0 {
				drawGlyph(dst, x, y, cell)
			}
			x++
		}
	}
}

// isText reports whether r is drawn with the debug font. Spaces end a run;
// the next run starts at its own cell, so spacing is kept.
func isText(r rune) bool {
	return r > ' ' && r < 0x7f
}

func drawGlyph(dst *ebiten.Image, x, y int, cell core.Cell) {
	r, g, b := cell.Color.RGB()
	clr := color.RGBA{R: r, G: g, B: b, A: 255}

	px := float32(x * CellW)
	py := float32(y * CellH)
	cx := px + CellW/2
	cy := py + CellH/2

	switch cell.Rune {
	case '●':
		vector.DrawFilledCircle(dst, cx, cy, CellW/2, clr, true)
	case '•', '·':
		vector.DrawFilledCircle(dst, cx, cy, 1.5, clr, true)
	case '■':
		vector.DrawFilledRect(dst, px+1, cy-CellW/2+1, CellW-2, CellW-2, clr, false)
	default:
		if nose, ok := arrowNoses[cell.Rune]; ok {
			vector.DrawFilledRect(dst, cx-2, cy-2, 4, 4, clr, false)
			vector.DrawFilledRect(dst, cx+nose[0]*3-1, cy+nose[1]*5-1, 2, 2, clr, false)
			return
		}
		vector.DrawFilledRect(dst, px+2, cy-2, CellW-4, 4, clr, false)
	}
}
