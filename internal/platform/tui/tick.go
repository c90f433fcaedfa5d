// Package tui runs the space demos in a terminal with Bubble Tea. It owns
// the per-game loop, the menu session used locally and over SSH, the
// difficulty picker and the scoreboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/StevenRydell/littlespace/internal/core"
)

// maxFrameGap caps the step after a stall, e.g. a suspended terminal or a
// slow SSH link, so ships do not jump across the field.
const maxFrameGap = 250 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// frameClock turns tick arrival times into step durations.
type frameClock struct {
	last    time.Time
	nominal time.Duration
}

func newFrameClock(cfg core.RuntimeConfig) frameClock {
	return frameClock{nominal: cfg.TickDuration()}
}

// advance returns the time since the previous tick. The first tick, and any
// tick that arrives out of order, counts as one nominal frame.
func (c *frameClock) advance(at time.Time) time.Duration {
	dt := c.nominal
	if !c.last.IsZero() && at.After(c.last) {
		dt = min(at.Sub(c.last), maxFrameGap)
	}
	c.last = at
	return dt
}

// next schedules the following tick.
func (c frameClock) next() tea.Cmd {
	return tea.Tick(c.nominal, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
