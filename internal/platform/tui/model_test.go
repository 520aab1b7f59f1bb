package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func newTestModel(t *testing.T) (Model, *breakout.Game) {
	t.Helper()
	g, err := breakout.New(config.DefaultBreakoutConfig(), core.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return NewModel(g, Options{Width: 80, Height: 32}), g
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelKeyThenTick(t *testing.T) {
	m, g := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, TickMsg(time.Now()))

	if v := g.Paddle().Velocity().X; v != 600 {
		t.Errorf("paddle vx = %v, expected 600", v)
	}
	if g.Stats().Ticks != 1 {
		t.Errorf("ticks = %d, expected 1", g.Stats().Ticks)
	}

	view := m.View()
	if !strings.Contains(view, "bricks 50/50") {
		t.Errorf("status line missing from view")
	}
}

func TestModelPauseSkipsTicks(t *testing.T) {
	m, g := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m = update(t, m, TickMsg(time.Now()))

	if g.Stats().Ticks != 0 {
		t.Errorf("ticks while paused = %d, expected 0", g.Stats().Ticks)
	}
	if !strings.Contains(m.View(), "paused") {
		t.Error("expected paused state in status line")
	}
}

func TestModelRestartKeepsRuns(t *testing.T) {
	m, g := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})

	runs := m.Runs()
	if len(runs) != 2 {
		t.Fatalf("runs = %d, expected 2", len(runs))
	}
	if runs[0].Launches != 1 || runs[0].Ticks != 1 {
		t.Errorf("finished run = %+v, expected 1 launch over 1 tick", runs[0])
	}
	if !g.Ball().Armed() {
		t.Error("restart should dock a fresh ball")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if view := next.(Model).View(); view != "" {
		t.Errorf("expected empty view after quit, got %q", view)
	}
}
