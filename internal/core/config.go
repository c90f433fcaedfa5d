package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the platform (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDuration returns the nominal frame duration for the configured tick rate.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// RunStats summarises one play session for the run history.
type RunStats struct {
	Kills    int           // targets and ships destroyed
	Shots    int           // projectiles fired by the player
	Duration time.Duration // simulated time, pauses excluded
}

// EventKind identifies something notable that happened during a step.
type EventKind int

const (
	EventShot            EventKind = iota // player fired
	EventEnemyShot                        // an enemy ship fired
	EventTargetDestroyed                  // a static target was hit
	EventShipDestroyed                    // an enemy ship was hit
	EventPlayerHit                        // an enemy projectile reached the player
	EventDebrisPush                       // debris pushed the ship back
	EventFault                            // an entity update failed and was recovered
	EventGameOver
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventShot:
		return "shot"
	case EventEnemyShot:
		return "enemy_shot"
	case EventTargetDestroyed:
		return "target_destroyed"
	case EventShipDestroyed:
		return "ship_destroyed"
	case EventPlayerHit:
		return "player_hit"
	case EventDebrisPush:
		return "debris_push"
	case EventFault:
		return "fault"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a single occurrence reported by Game.Step.
// Platforms use events for sound effects and logging.
type Event struct {
	Kind   EventKind
	Detail string // optional context, e.g. the wrapped error for faults
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the result contains at least one event of kind k.
func (r StepResult) Has(k EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == k {
			return true
		}
	}
	return false
}
