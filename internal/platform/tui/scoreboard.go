package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/StevenRydell/littlespace/internal/registry"
	"github.com/StevenRydell/littlespace/internal/storage"
)

const (
	maxScores = 100
	maxRuns   = 50
)

// boardPage selects what the scoreboard table lists.
type boardPage int

const (
	pageScores boardPage = iota
	pageRuns
)

func (p boardPage) String() string {
	if p == pageRuns {
		return "RECENT RUNS"
	}
	return "HIGH SCORES"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Page     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.Page, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Page, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next demo"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev demo"),
		),
		Page: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "scores/runs"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 4)
	boardHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var boardFrameStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

var boardActiveTabStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229")).
	Background(lipgloss.Color("57")).
	Padding(0, 1)

// ScoreboardModel shows the best scores and the run history of each demo.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	page       boardPage
	store      *storage.Store

	scores []storage.ScoreEntry
	runs   []storage.RunRecord
	stats  *storage.GameStats

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width      int
	height     int
	quitting   bool
	goingBack  bool
	standalone bool // Runs as its own program and exits on back
}

// NewScoreboardModel creates a scoreboard showing the first registered demo.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.load()
	return m
}

// columns sizes the table for the current page. Date takes what is left.
func (m *ScoreboardModel) columns() []table.Column {
	dateW := min(max(m.width-60, 12), 18)
	if m.page == pageRuns {
		return []table.Column{
			{Title: "Score", Width: 8},
			{Title: "Kills", Width: 6},
			{Title: "Shots", Width: 6},
			{Title: "Acc", Width: 5},
			{Title: "Time", Width: 8},
			{Title: "Date", Width: dateW},
		}
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: dateW},
	}
}

func (m *ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the selected demo's scores, runs and totals and refills the table.
func (m *ScoreboardModel) load() {
	m.scores, m.runs, m.stats = nil, nil, nil
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.gameCursor].ID
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if runs, err := m.store.RecentRuns(id, maxRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.fillTable()
}

func (m *ScoreboardModel) fillTable() {
	var rows []table.Row
	if m.page == pageRuns {
		rows = make([]table.Row, len(m.runs))
		for i, r := range m.runs {
			rows[i] = table.Row{
				fmt.Sprintf("%d", r.Score),
				fmt.Sprintf("%d", r.Kills),
				fmt.Sprintf("%d", r.Shots),
				fmt.Sprintf("%.0f%%", r.Accuracy()*100),
				r.Duration.Round(time.Second).String(),
				r.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	} else {
		rows = make([]table.Row, len(m.scores))
		for i, s := range m.scores {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", s.Score),
				s.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	}

	// Columns must change before rows so row widths match
	m.table.SetRows(nil)
	m.table.SetColumns(m.columns())
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) moveGame(step int) {
	if len(m.games) == 0 {
		return
	}
	m.gameCursor = (m.gameCursor + step + len(m.games)) % len(m.games)
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.NextGame):
			m.moveGame(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			m.moveGame(-1)
			return m, nil

		case key.Matches(msg, m.keys.Page):
			m.page = 1 - m.page
			m.fillTable()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.newTable()
		m.fillTable()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render(m.page.String()), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boardFrameStyle.Render(m.body())))
	b.WriteString("\n")

	if line := m.statsLine(); line != "" {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString(boardHelpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// tabs lists the demos with the selected one highlighted. When they do not
// fit, only the selected one is shown between arrows.
func (m ScoreboardModel) tabs() string {
	if len(m.games) == 0 {
		return ""
	}
	parts := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.gameCursor {
			parts[i] = boardActiveTabStyle.Render(g.Title)
		} else {
			parts[i] = boardTabStyle.Render(g.Title)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if lipgloss.Width(line) > m.width-4 {
		return fmt.Sprintf("< %s >", m.games[m.gameCursor].Title)
	}
	return line
}

func (m ScoreboardModel) body() string {
	switch {
	case m.page == pageScores && len(m.scores) == 0:
		return boardEmptyStyle.Render("No scores recorded yet.\nPlay a demo to set a high score!")
	case m.page == pageRuns && len(m.runs) == 0:
		return boardEmptyStyle.Render("No runs recorded yet.")
	}
	return m.table.View()
}

// statsLine summarises the run history of the selected game.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.Runs == 0 {
		return ""
	}
	return fmt.Sprintf("Runs: %d  Kills: %d  Accuracy: %.0f%%  Played: %s",
		m.stats.Runs,
		m.stats.TotalKills,
		m.stats.Accuracy()*100,
		m.stats.PlayTime.Round(time.Second),
	)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as its own program.
func RunScoreboard(store *storage.Store, width, height int) error {
	model := NewScoreboardModel(store, width, height)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
