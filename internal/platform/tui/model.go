package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// statusLines is the number of terminal rows below the playfield.
const statusLines = 2

// Options configures the terminal front end.
type Options struct {
	// HoldTicks is how long a move key stays held without a repeat.
	HoldTicks int

	// Width and Height are the initial terminal size, until the first
	// resize message arrives.
	Width, Height int

	Logger *log.Logger
}

// Model is the Bubble Tea model driving one breakout game.
type Model struct {
	game    *breakout.Game
	runtime core.RuntimeConfig
	screen  *core.Screen
	proj    Projection
	keys    KeyMap
	mapper  *KeyMapper
	help    help.Model
	frame   core.InputFrame
	logger  *log.Logger

	finished []breakout.Stats // Stats of games ended by restart
	paused   bool
	quitting bool
}

// NewModel creates a model for game.
func NewModel(game *breakout.Game, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	runtime := game.Runtime()
	holdTicks := opts.HoldTicks
	if holdTicks <= 0 {
		// Covers the usual 500ms initial auto-repeat delay
		holdTicks = runtime.TickRate * 6 / 10
	}

	keys := DefaultKeyMap()
	m := Model{
		game:    game,
		runtime: runtime,
		keys:    keys,
		mapper:  NewKeyMapper(keys, holdTicks),
		help:    help.New(),
		frame:   core.NewInputFrame(),
		logger:  logger,
	}
	m.resize(max(opts.Width, 20), max(opts.Height, 10))
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Restart):
		m.restart()
		return m, nil
	}

	if m.mapper.MapKey(msg, &m.frame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.runtime.TickRate)
	}

	m.mapper.Tick(&m.frame)
	res := m.game.Tick(m.runtime.TickSeconds(), m.frame)
	m.frame.Clear()

	if res.BallsLost > 0 {
		m.logger.Debug("ball lost", "tick", res.Tick)
	}
	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.runtime.TickRate)
}

// restart rebuilds the game, keeping the finished run's stats.
func (m *Model) restart() {
	m.finished = append(m.finished, m.game.Stats())
	if err := m.game.Reset(m.runtime); err != nil {
		m.logger.Error("restart failed", "err", err)
		return
	}
	m.mapper = NewKeyMapper(m.keys, m.mapper.holdTicks)
	m.frame.Clear()
	m.paused = false
}

// resize fits the playfield into the terminal, leaving room for the status lines.
func (m *Model) resize(width, height int) {
	rows := max(height-statusLines, 1)
	if m.screen == nil {
		m.screen = core.NewScreen(width, rows)
	} else {
		m.screen.Resize(width, rows)
	}
	m.proj = NewProjection(float64(m.runtime.ScreenW), float64(m.runtime.ScreenH), width, rows)
}

// Runs returns the stats of every game played in this model, current last.
func (m Model) Runs() []breakout.Stats {
	return append(append([]breakout.Stats(nil), m.finished...), m.game.Stats())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Rasterize(m.screen, m.game.Views(), m.proj)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteRune('\n')
	b.WriteString(statusStyle.Render(m.status()))
	b.WriteRune('\n')
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// status formats the one-line game summary.
func (m Model) status() string {
	s := m.game.Stats()
	state := "in play"
	switch {
	case m.paused:
		state = "paused"
	case m.game.Ball().Armed():
		state = "docked"
	}
	if m.game.Bricks().Cleared() {
		state = "cleared"
	}
	return fmt.Sprintf(" bricks %d/%d  lost %d  launches %d  %s",
		s.BricksRemaining, s.BricksTotal, s.BallsLost, s.Launches, state)
}

// Run starts the Bubble Tea program and blocks until the player quits.
// It returns the stats of every game played.
func Run(game *breakout.Game, opts Options) ([]breakout.Stats, error) {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.Runs(), nil
	}
	return []breakout.Stats{game.Stats()}, nil
}
