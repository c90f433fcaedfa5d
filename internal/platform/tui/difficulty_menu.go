package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/StevenRydell/littlespace/internal/config"
	"github.com/StevenRydell/littlespace/internal/core"
)

type difficultyOption struct {
	preset config.DifficultyPreset
	label  string
	blurb  string
}

var difficultyOptions = []difficultyOption{
	{config.DifficultyNormal, "Normal", "Starts at 30%, ramps with score"},
	{config.DifficultyEasy, "Easy", "More shields, slow ramp"},
	{config.DifficultyHard, "Hard", "Fewer shields, starts at 70%"},
	{config.DifficultyFixed, "Fixed", "No ramp, config's starting level"},
}

// DifficultyModel lets users choose a difficulty preset before a game starts.
type DifficultyModel struct {
	title      string
	cursor     int
	width      int
	height     int
	keyMapper  *KeyMapper
	standalone bool
	selection  config.DifficultyPreset
	choosing   bool
	quitting   bool
	back       bool
}

// NewDifficultyModel creates a difficulty picker headed by the game title.
func NewDifficultyModel(title string, width, height int) DifficultyModel {
	return DifficultyModel{
		title:     title,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(difficultyOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = difficultyOptions[m.cursor].preset
		return m, m.done()
	case MenuActionBack:
		m.back = true
		return m, m.done()
	}
	return m, nil
}

func (m DifficultyModel) done() tea.Cmd {
	if m.standalone {
		return tea.Quit
	}
	return nil
}

// View renders the preset list.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(spaced(m.title)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range difficultyOptions {
		line := fmt.Sprintf("  %-7s %s", opt.label, opt.blurb)
		if i == m.cursor {
			line = menuSelectedStyle.Render(fmt.Sprintf("> %-7s %s", opt.label, opt.blurb))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuFooterStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// spaced puts a space between the letters of an upper-cased title.
func spaced(s string) string {
	return strings.Join(strings.Split(strings.ToUpper(s), ""), " ")
}

// Selected returns the chosen preset, or nil while still choosing.
func (m DifficultyModel) Selected() *config.DifficultyPreset {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// RunDifficultySelector shows the picker as its own program. It returns
// nil when the user backs out or quits.
func RunDifficultySelector(title string, cfg core.RuntimeConfig) (*config.DifficultyPreset, error) {
	model := NewDifficultyModel(title, cfg.ScreenW, cfg.ScreenH)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}
