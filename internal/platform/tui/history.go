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

	"github.com/vovakirdan/starfield-pong/internal/core"
	"github.com/vovakirdan/starfield-pong/internal/storage"
)

// maxHistory is the number of matches loaded into the history table.
const maxHistory = 100

// HistoryKeyMap defines the key bindings for the match history screen.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the match history screen.
type HistoryModel struct {
	gameID   string
	matches  []storage.Match
	totals   *storage.Totals
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel loads the match history of a game into a table.
func NewHistoryModel(store *storage.Store, gameID string, width, height int) (HistoryModel, error) {
	matches, err := store.RecentMatches(gameID, maxHistory)
	if err != nil {
		return HistoryModel{}, err
	}
	totals, err := store.MatchTotals(gameID)
	if err != nil {
		return HistoryModel{}, err
	}

	m := HistoryModel{
		gameID:  gameID,
		matches: matches,
		totals:  totals,
		help:    help.New(),
		keys:    DefaultHistoryKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m, nil
}

// createTable creates a new table sized to the window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Ended", Width: 14},
		{Title: "Score", Width: 7},
		{Title: "Winner", Width: 8},
		{Title: "Length", Width: 8},
		{Title: "Rally", Width: 6},
		{Title: "Player", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-8, 3)),
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

// updateTableRows fills the table with the loaded matches.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.matches))
	for i, match := range m.matches {
		rows[i] = matchRow(match)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// matchRow formats one match for the table.
func matchRow(match storage.Match) table.Row {
	return table.Row{
		match.EndedAt.Format("Jan 02 15:04"),
		fmt.Sprintf("%d-%d", match.ScoreA, match.ScoreB),
		"Player " + match.Winner,
		match.Duration.Round(time.Second).String(),
		fmt.Sprintf("%d", match.LongestRally),
		match.Source,
	}
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("MATCH HISTORY"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(totalsLine(m.totals)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.matches) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		b.WriteString(boxStyle.Render(emptyStyle.Render("No matches recorded yet.\nFinish a round to start the history!")))
	} else {
		b.WriteString(boxStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// totalsLine summarises the per-side win counts.
func totalsLine(t *storage.Totals) string {
	if t == nil || t.Matches == 0 {
		return "No rounds played"
	}
	return fmt.Sprintf("%d rounds  |  Player A %d wins  |  Player B %d wins  |  longest rally %d",
		t.Matches, t.WinsA, t.WinsB, t.LongestRally)
}

// RunHistory runs the match history screen.
func RunHistory(store *storage.Store, gameID string, width, height int) error {
	model, err := NewHistoryModel(store, gameID, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
