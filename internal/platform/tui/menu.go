package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/StevenRydell/littlespace/internal/core"
	"github.com/StevenRydell/littlespace/internal/registry"
	"github.com/StevenRydell/littlespace/internal/storage"
)

// MenuItem is one demo on the menu.
type MenuItem struct {
	GameID    string
	Title     string
	HighScore int
	Runs      int
	Presets   bool // asks for a difficulty before starting
}

// detail describes the item's history for the line under the list.
func (it MenuItem) detail() string {
	var parts []string
	if it.Runs == 0 {
		parts = append(parts, "not played yet")
	} else {
		parts = append(parts, fmt.Sprintf("best %d", it.HighScore), fmt.Sprintf("%d runs", it.Runs))
	}
	if it.Presets {
		parts = append(parts, "choose a difficulty")
	}
	return strings.Join(parts, "  |  ")
}

// MenuModel is the Bubble Tea model for the demo picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper

	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuItemStyle     = lipgloss.NewStyle().Padding(0, 2)
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 2)
	menuDetailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	menuFooterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var menuBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(1, 2)

// NewMenuModel lists every registered demo with its best score and run
// count from store, which may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, len(games))

	for i, g := range games {
		items[i] = MenuItem{GameID: g.ID, Title: g.Title, Presets: g.Difficulty}
		if store == nil {
			continue
		}
		if stats, err := store.GetGameStats(g.ID); err == nil {
			items[i].HighScore = stats.HighScore
			items[i].Runs = stats.Runs
		}
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// handleKey moves the cursor, wrapping at both ends, or records a choice
// for the session to act on.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.items)

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if n > 0 {
			m.cursor = (m.cursor + n - 1) % n
		}

	case MenuActionDown:
		if n > 0 {
			m.cursor = (m.cursor + 1) % n
		}

	case MenuActionSelect:
		if n > 0 {
			item := m.items[m.cursor]
			m.selected = &item
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	rows := make([]string, len(m.items))
	for i, item := range m.items {
		if i == m.cursor {
			rows[i] = menuSelectedStyle.Render(item.Title)
		} else {
			rows[i] = menuItemStyle.Render(item.Title)
		}
	}
	if len(rows) == 0 {
		rows = append(rows, menuDetailStyle.Render("No demos registered."))
	}
	box := menuBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("L I T T L E   S P A C E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, box))
	b.WriteString("\n")
	if len(m.items) > 0 {
		b.WriteString(centerText(menuDetailStyle.Render(m.items[m.cursor].detail()), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuFooterStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// centerText left-pads a single line so it sits in the middle of width
// columns. Styled text is measured by its visible width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
