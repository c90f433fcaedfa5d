// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/StevenRydell/littlespace/internal/core"
)

// Game is the core interface that all space demos implement.
// Games contain pure logic with no platform dependencies (no Bubble Tea, no ebiten).
// The platform handles input mapping, timing, rendering and sound.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "circle", "skirmish").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by dt of wall-clock time.
	// Games clamp dt themselves so a stalled frame cannot tunnel entities.
	Step(in core.InputFrame, dt time.Duration) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// StatsReporter is implemented by games that keep per-run statistics.
// The platform records them when a run ends.
type StatsReporter interface {
	Stats() core.RunStats
}

// DifficultySetter is implemented by games with difficulty presets
// (easy, normal, hard, fixed). The preset applies from the next Reset.
type DifficultySetter interface {
	SetDifficulty(preset string) error
}

// ErrUnknownGame is returned by Create for an ID nothing registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// GameInfo describes a registered game. The flags record which optional
// interfaces its instances implement.
type GameInfo struct {
	ID         string
	Title      string
	Difficulty bool // implements DifficultySetter
	Stats      bool // implements StatsReporter
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory to the registry, usually from the game's
// init(). It builds one instance to learn the title and optional
// interfaces. Registering an ID twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	_, difficulty := g.(DifficultySetter)
	_, stats := g.(StatsReporter)
	entries[id] = entry{
		factory: f,
		info: GameInfo{
			ID:         id,
			Title:      g.Title(),
			Difficulty: difficulty,
			Stats:      stats,
		},
	}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Lookup returns the metadata of a registered game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create returns a fresh instance of the game registered as id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// unregister removes a game. Tests only.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(entries, id)
}
