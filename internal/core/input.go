package core

import (
	"time"

	"github.com/kamstrup/intmap"
)

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - thrust forward
	ActionDown           // S, Down arrow - thrust backward
	ActionLeft           // A, Left arrow - rotate left
	ActionRight          // D, Right arrow - rotate right
	ActionFire           // Space - shoot
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B - go back to menu
	ActionRestart        // R - restart the run
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Continuous reports whether the action stays active while its key is held.
// Other actions trigger once per key press.
func (a Action) Continuous() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight, ActionFire:
		return true
	}
	return false
}

var continuousActions = []Action{ActionUp, ActionDown, ActionLeft, ActionRight, ActionFire}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were held or triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were active this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds an input frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// DefaultHoldWindow is how long a key press counts as held without a repeat.
// Terminal key repeat usually fires every 30-50ms after an initial delay.
const DefaultHoldWindow = 120 * time.Millisecond

// HeldKeys approximates held-key state for terminals, which report presses but
// never releases. A continuous action stays held until no press or repeat for it
// has arrived within the hold window.
type HeldKeys struct {
	window time.Duration
	last   *intmap.Map[Action, time.Time]
}

// NewHeldKeys creates a tracker with the given hold window.
// A non-positive window falls back to DefaultHoldWindow.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HeldKeys{
		window: window,
		last:   intmap.New[Action, time.Time](len(continuousActions)),
	}
}

// Window returns the hold window.
func (h *HeldKeys) Window() time.Duration {
	return h.window
}

// Press records a press or key repeat of a at time now.
// Non-continuous actions are ignored.
func (h *HeldKeys) Press(a Action, now time.Time) {
	if !a.Continuous() {
		return
	}
	h.last.Put(a, now)
}

// Release forgets a, for frontends that do report releases.
func (h *HeldKeys) Release(a Action) {
	h.last.Del(a)
}

// Held reports whether a is still inside its hold window at time now.
func (h *HeldKeys) Held(a Action, now time.Time) bool {
	t, ok := h.last.Get(a)
	if !ok {
		return false
	}
	return now.Sub(t) <= h.window
}

// Fill sets every held action on f and drops expired ones.
func (h *HeldKeys) Fill(f *InputFrame, now time.Time) {
	for _, a := range continuousActions {
		if h.Held(a, now) {
			f.Set(a)
		} else {
			h.last.Del(a)
		}
	}
}

// Reset forgets all presses.
func (h *HeldKeys) Reset() {
	h.last.Clear()
}
