package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// Journal layout constants
const (
	minWidthForTotals = 90  // Minimum width to show the totals panel
	totalsWidth       = 24  // Width of the totals panel
	maxJournalRuns    = 200 // Max runs to load
)

// JournalKeyMap defines the key bindings for the run journal.
type JournalKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k JournalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Top, k.Bottom, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k JournalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Top, k.Bottom, k.Quit}}
}

// DefaultJournalKeyMap returns default key bindings.
func DefaultJournalKeyMap() JournalKeyMap {
	return JournalKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "newest"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "oldest"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// JournalModel is the Bubble Tea model for browsing journaled runs.
type JournalModel struct {
	runs       []storage.RunEntry
	totals     *storage.Totals
	table      table.Model
	help       help.Model
	keys       JournalKeyMap
	width      int
	height     int
	showTotals bool
	quitting   bool
}

// NewJournalModel creates a journal browser over already loaded runs.
func NewJournalModel(runs []storage.RunEntry, totals *storage.Totals, width, height int) JournalModel {
	m := JournalModel{
		runs:       runs,
		totals:     totals,
		keys:       DefaultJournalKeyMap(),
		help:       help.New(),
		width:      width,
		height:     height,
		showTotals: width >= minWidthForTotals && totals != nil,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates the runs table sized to the terminal.
func (m *JournalModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 16},
		{Title: "Ticks", Width: 8},
		{Title: "Bricks", Width: 7},
		{Title: "Lost", Width: 5},
		{Title: "Launch", Width: 7},
		{Title: "World", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for title, help, and borders
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

// updateTableRows fills the table from the loaded runs.
func (m *JournalModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = JournalRow(r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// JournalRow formats one run as table cells.
func JournalRow(r storage.RunEntry) table.Row {
	return table.Row{
		r.StartedAt.Local().Format("Jan 02 15:04"),
		fmt.Sprintf("%d", r.Ticks),
		fmt.Sprintf("%d", r.BricksRemoved),
		fmt.Sprintf("%d", r.BallsLost),
		fmt.Sprintf("%d", r.Launches),
		fmt.Sprintf("%dx%d", r.ScreenW, r.ScreenH),
	}
}

// Init initializes the journal model.
func (m JournalModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal.
func (m JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Top):
			m.table.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.table.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showTotals = m.width >= minWidthForTotals && m.totals != nil
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the journal.
func (m JournalModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(fmt.Sprintf("RUN JOURNAL (%d)", len(m.runs))))
	b.WriteString("\n\n")

	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	content := panelStyle.Render(m.renderTableContent())
	if m.showTotals {
		totals := panelStyle.Width(totalsWidth).Render(m.renderTotals())
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, "  ", totals)
	}
	b.WriteString(content)

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m JournalModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nPlay a game to start the journal!")
	}
	return m.table.View()
}

// renderTotals renders the aggregate panel.
func (m JournalModel) renderTotals() string {
	t := m.totals
	var b strings.Builder
	b.WriteString("Totals\n")
	b.WriteString(strings.Repeat("-", totalsWidth-4))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Runs    %d\n", t.Runs)
	fmt.Fprintf(&b, "Ticks   %d\n", t.Ticks)
	fmt.Fprintf(&b, "Bricks  %d\n", t.BricksRemoved)
	fmt.Fprintf(&b, "Lost    %d\n", t.BallsLost)
	if !t.LastRun.IsZero() {
		fmt.Fprintf(&b, "Last    %s", t.LastRun.Local().Format("Jan 02"))
	}
	return b.String()
}

// RunJournal loads the journal from store and shows it until the user quits.
func RunJournal(store *storage.Store, width, height int) error {
	runs, err := store.RecentRuns(maxJournalRuns)
	if err != nil {
		return err
	}
	totals, err := store.Totals()
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewJournalModel(runs, totals, width, height), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
