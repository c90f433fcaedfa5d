package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/StevenRydell/littlespace/internal/core"
)

// MenuAction is what a key does on a menu screen.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// gameKeys mirrors the window frontend's bindings so both feel the same.
var gameKeys = map[string]core.Action{
	"w":      core.ActionUp,
	"up":     core.ActionUp,
	"s":      core.ActionDown,
	"down":   core.ActionDown,
	"a":      core.ActionLeft,
	"left":   core.ActionLeft,
	"d":      core.ActionRight,
	"right":  core.ActionRight,
	" ":      core.ActionFire,
	"f":      core.ActionFire,
	"enter":  core.ActionConfirm,
	"b":      core.ActionBack,
	"p":      core.ActionPause,
	"esc":    core.ActionPause,
	"r":      core.ActionRestart,
	"q":      core.ActionQuit,
	"ctrl+c": core.ActionQuit,
}

var menuKeys = map[string]MenuAction{
	"w":      MenuActionUp,
	"up":     MenuActionUp,
	"k":      MenuActionUp,
	"s":      MenuActionDown,
	"down":   MenuActionDown,
	"j":      MenuActionDown,
	"enter":  MenuActionSelect,
	" ":      MenuActionSelect,
	"b":      MenuActionBack,
	"esc":    MenuActionBack,
	"tab":    MenuActionScoreboard,
	"q":      MenuActionQuit,
	"ctrl+c": MenuActionQuit,
}

// KeyMapper translates Bubble Tea key messages into game and menu actions.
// Each screen owns one, so bindings can be changed per screen.
type KeyMapper struct {
	game map[string]core.Action
	menu map[string]MenuAction
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	km := &KeyMapper{
		game: make(map[string]core.Action, len(gameKeys)),
		menu: make(map[string]MenuAction, len(menuKeys)),
	}
	for k, a := range gameKeys {
		km.game[k] = a
	}
	for k, a := range menuKeys {
		km.menu[k] = a
	}
	return km
}

// Bind maps key to action during play, replacing any previous binding.
func (km *KeyMapper) Bind(key string, action core.Action) {
	if action == core.ActionNone {
		delete(km.game, key)
		return
	}
	km.game[key] = action
}

// MapKey translates a key message to a game action and reports whether it
// asks to quit. Unbound keys give ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action = km.game[msg.String()]
	return action, action == core.ActionQuit
}

// MapKeyToMenuAction translates a key message to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return km.menu[msg.String()]
}
