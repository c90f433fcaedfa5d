package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/StevenRydell/littlespace/internal/core"
	"github.com/StevenRydell/littlespace/internal/registry"
	"github.com/StevenRydell/littlespace/internal/storage"
)

// Options tune a game model beyond the runtime config.
type Options struct {
	// Logger receives fault and run events. Nil discards them.
	Logger *log.Logger

	// HoldWindow is how long a key press counts as held. Zero uses core.DefaultHoldWindow.
	HoldWindow time.Duration

	// AllowBack lets B return to the menu while paused or after game over.
	AllowBack bool
}

// Model is the Bubble Tea model for running a space demo.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	logger    *log.Logger
	keyMapper *KeyMapper
	allowBack bool

	held    *core.HeldKeys
	pending core.InputFrame // one-shot actions since the last tick
	clock   frameClock
	now     func() time.Time

	gameState  core.GameState
	ticks      int
	quitting   bool
	backToMenu bool
	recorded   bool // Whether the current run has been saved
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
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

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		logger:    logger.With("game", game.ID()),
		keyMapper: NewKeyMapper(),
		allowBack: opts.AllowBack,
		held:      core.NewHeldKeys(opts.HoldWindow),
		pending:   core.NewInputFrame(),
		clock:     newFrameClock(cfg),
		now:       time.Now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "seed", m.config.Seed, "width", m.config.ScreenW, "height", m.config.ScreenH)

	return m.clock.next()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.finishRun()
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
	case action == core.ActionBack:
		if m.allowBack && (m.gameState.GameOver || m.gameState.Paused) {
			m.finishRun()
			m.backToMenu = true
		}
	case action.Continuous():
		// Terminals never report releases; HeldKeys expires the press
		m.held.Press(action, m.now())
	default:
		m.pending.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The demos project a fixed
// world viewport onto whatever grid they get, so the run carries on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	return m, nil
}

// handleTick advances the game by the real time elapsed since the last tick.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	dt := m.clock.advance(at)

	frame := m.pending.Clone()
	m.held.Fill(&frame, m.now())

	result := m.game.Step(frame, dt)
	m.pending.Clear()
	m.ticks++

	// A restart after game over starts a new run
	if m.recorded && !result.State.GameOver {
		m.recorded = false
		m.ticks = 1
		m.held.Reset()
	}
	m.gameState = result.State

	m.logEvents(result.Events)

	// Save the run on game over (once)
	if m.gameState.GameOver {
		m.finishRun()
	}

	return m, m.clock.next()
}

func (m *Model) logEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventFault:
			m.logger.Debug("simulation fault recovered", "detail", e.Detail)
		case core.EventGameOver:
			m.logger.Info("game over", "score", m.gameState.Score)
		}
	}
}

// finishRun records the score and run statistics for the current run.
// Runs that never ticked are not recorded.
func (m *Model) finishRun() {
	if m.recorded || m.ticks == 0 {
		return
	}
	m.recorded = true

	if m.store == nil {
		return
	}

	score := m.game.State().Score
	if score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), score); err != nil {
			m.logger.Warn("could not save score", "error", err)
		}
	}

	if sr, ok := m.game.(registry.StatsReporter); ok {
		if _, err := m.store.SaveRun(m.game.ID(), score, sr.Stats()); err != nil {
			m.logger.Warn("could not save run", "error", err)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".littlespace", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen)
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
