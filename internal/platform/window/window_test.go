package window

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StevenRydell/littlespace/internal/core"
	"github.com/StevenRydell/littlespace/internal/storage"
)

type scriptedGame struct {
	steps  int
	over   bool
	score  int
	events []core.Event
}

func (g *scriptedGame) ID() string               { return "scripted" }
func (g *scriptedGame) Title() string            { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { *g = scriptedGame{} }
func (g *scriptedGame) Render(*core.Screen)      {}
func (g *scriptedGame) Stats() core.RunStats     { return core.RunStats{Kills: g.steps} }

func (g *scriptedGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.over}
}

func (g *scriptedGame) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if in.Has(core.ActionRestart) && g.over {
		g.over = false
		g.score = 0
	}
	g.steps++
	events := g.events
	g.events = nil
	return core.StepResult{State: g.State(), Events: events}
}

type recordingSink struct{ got []core.Event }

func (s *recordingSink) PlayEvents(events []core.Event) { s.got = append(s.got, events...) }

func keySet(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, want := range keys {
			if k == want {
				return true
			}
		}
		return false
	}
}

func TestFrameFrom(t *testing.T) {
	none := keySet()

	frame := FrameFrom(keySet(ebiten.KeyArrowUp, ebiten.KeyA), none, false)
	assert.True(t, frame.Has(core.ActionUp))
	assert.True(t, frame.Has(core.ActionLeft))
	assert.False(t, frame.Has(core.ActionFire))

	// Held P does nothing; only the press edge pauses
	frame = FrameFrom(keySet(ebiten.KeyP), none, false)
	assert.False(t, frame.Has(core.ActionPause))

	frame = FrameFrom(none, keySet(ebiten.KeyEscape, ebiten.KeyR), false)
	assert.True(t, frame.Has(core.ActionPause))
	assert.True(t, frame.Has(core.ActionRestart))

	frame = FrameFrom(none, none, true)
	assert.True(t, frame.Has(core.ActionFire), "mouse button fires")
}

func TestFrontendRecordsOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()

	g := &scriptedGame{}
	sink := &recordingSink{}
	f := NewFrontend(g, store, core.RuntimeConfig{ScreenW: 20, ScreenH: 10, Seed: 1}, Options{Sound: sink})

	g.events = []core.Event{{Kind: core.EventShot}}
	f.step(core.NewInputFrame(), time.Second/60)
	assert.Len(t, sink.got, 1)

	g.score = 50
	g.over = true
	f.step(core.NewInputFrame(), time.Second/60)
	f.step(core.NewInputFrame(), time.Second/60)
	f.finishRun()

	runs, err := store.RecentRuns("scripted", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 50, runs[0].Score)
	assert.Equal(t, 2, runs[0].Kills)

	// Restart begins a second run
	f.step(core.FrameOf(core.ActionRestart), time.Second/60)
	g.score = 10
	g.over = true
	f.step(core.NewInputFrame(), time.Second/60)

	runs, err = store.RecentRuns("scripted", 10)
	require.NoError(t, err)
	assert.Len(t, runs, 2)

	high, err := store.HighScore("scripted")
	require.NoError(t, err)
	assert.Equal(t, 50, high)
}

func TestLayoutResizesGrid(t *testing.T) {
	f := NewFrontend(&scriptedGame{}, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 10}, Options{})

	w, h := f.Layout(800, 480)
	assert.Equal(t, 800, w)
	assert.Equal(t, 480, h)
	assert.Equal(t, 100, f.screen.Width())
	assert.Equal(t, 30, f.screen.Height())
	assert.Equal(t, 100, f.config.ScreenW)
}

func TestIsText(t *testing.T) {
	assert.True(t, isText('S'))
	assert.True(t, isText(':'))
	assert.False(t, isText(' '))
	assert.False(t, isText('↑'))
	assert.False(t, isText('●'))
}
