package registry

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/StevenRydell/littlespace/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string               { return g.id }
func (g *stubGame) Title() string            { return strings.ToUpper(g.id) }
func (g *stubGame) Reset(core.RuntimeConfig) { g.state = core.GameState{} }
func (g *stubGame) Render(*core.Screen)      {}
func (g *stubGame) State() core.GameState    { return g.state }
func (g *stubGame) Step(core.InputFrame, time.Duration) core.StepResult {
	g.state.Score++
	return core.StepResult{State: g.state}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Game { return &stubGame{id: "zz-stub"} })
	defer unregister("zz-stub")

	if !Exists("zz-stub") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.Title() != "ZZ-STUB" {
		t.Errorf("Title() = %q, expected ZZ-STUB", g.Title())
	}

	// Each Create returns a fresh instance
	g.Step(core.NewInputFrame(), time.Millisecond)
	g2, _ := Create("zz-stub")
	if g2.State().Score != 0 {
		t.Error("Create should return independent instances")
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-stub" {
			found = true
			if info.Title != "ZZ-STUB" {
				t.Errorf("List title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("List should include registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does-not-exist")
	if err == nil {
		t.Fatal("expected error for unknown game")
	}
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("expected ErrUnknownGame, got %v", err)
	}
	if !strings.Contains(err.Error(), "does-not-exist") {
		t.Errorf("error should name the game, got %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
	defer unregister("zz-dup")

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
}

func TestListSorted(t *testing.T) {
	Register("zz-b", func() Game { return &stubGame{id: "zz-b"} })
	Register("zz-a", func() Game { return &stubGame{id: "zz-a"} })
	defer unregister("zz-a")
	defer unregister("zz-b")

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

type statsGame struct{ stubGame }

func (g *statsGame) Stats() core.RunStats { return core.RunStats{} }

func TestLookupRecordsCapabilities(t *testing.T) {
	Register("zz-plain", func() Game { return &stubGame{id: "zz-plain"} })
	Register("zz-stats", func() Game { return &statsGame{stubGame{id: "zz-stats"}} })
	defer unregister("zz-plain")
	defer unregister("zz-stats")

	info, ok := Lookup("zz-plain")
	if !ok {
		t.Fatal("Lookup should find zz-plain")
	}
	if info.Stats || info.Difficulty {
		t.Errorf("plain game should have no capabilities, got %+v", info)
	}

	info, _ = Lookup("zz-stats")
	if !info.Stats || info.Difficulty {
		t.Errorf("expected Stats only, got %+v", info)
	}
	if info.Title != "ZZ-STATS" {
		t.Errorf("Title = %q", info.Title)
	}

	if _, ok := Lookup("zz-missing"); ok {
		t.Error("Lookup should miss unknown IDs")
	}
}
