package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/StevenRydell/littlespace/internal/config"
)

func pickerUpdate(t *testing.T, m DifficultyModel, msg tea.Msg) (DifficultyModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	dm, ok := next.(DifficultyModel)
	if !ok {
		t.Fatalf("Update returned %T, want DifficultyModel", next)
	}
	return dm, cmd
}

func TestDifficultyPickerSelects(t *testing.T) {
	tests := []struct {
		downs int
		want  config.DifficultyPreset
	}{
		{0, config.DifficultyNormal},
		{1, config.DifficultyEasy},
		{2, config.DifficultyHard},
		{3, config.DifficultyFixed},
		{9, config.DifficultyFixed}, // cursor stops at the last option
	}

	for _, tt := range tests {
		m := NewDifficultyModel("Skirmish", 80, 24)
		for range tt.downs {
			m, _ = pickerUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
		}
		if m.Selected() != nil {
			t.Fatal("Expected no selection before Enter")
		}

		m, cmd := pickerUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		if got := m.Selected(); got == nil || *got != tt.want {
			t.Errorf("After %d downs: got %v, want %q", tt.downs, got, tt.want)
		}
		if cmd != nil {
			t.Error("Embedded picker should not quit the program")
		}
	}
}

func TestDifficultyPickerStandaloneQuitsOnSelect(t *testing.T) {
	m := NewDifficultyModel("Skirmish", 80, 24)
	m.standalone = true

	_, cmd := pickerUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("Expected the standalone picker to quit after a choice")
	}
}

func TestDifficultyPickerBackAndQuit(t *testing.T) {
	m := NewDifficultyModel("Skirmish", 80, 24)
	m, _ = pickerUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.WantsBack() || m.Selected() != nil {
		t.Error("Expected back without a selection")
	}

	m = NewDifficultyModel("Skirmish", 80, 24)
	m, cmd := pickerUpdate(t, m, runes("q"))
	if !m.IsQuitting() || cmd == nil {
		t.Error("Expected q to quit")
	}
	if m.View() != "" {
		t.Error("Expected empty view after quit")
	}
}

func TestDifficultyPickerView(t *testing.T) {
	m := NewDifficultyModel("Skirmish", 80, 24)
	view := m.View()

	for _, want := range []string{"S K I R M I S H", "Normal", "Easy", "Hard", "Fixed"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q", want)
		}
	}
}
