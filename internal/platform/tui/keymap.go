package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// KeyMap defines the key bindings for play.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Stop    key.Binding
	Launch  key.Binding
	Pause   key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Launch, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Stop, k.Launch},
		{k.Pause, k.Restart, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "move right"),
		),
		Stop: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "stop"),
		),
		Launch: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "launch"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// direction of a held move key
type direction int

const (
	dirNone direction = iota
	dirLeft
	dirRight
)

// KeyMapper turns key presses into game commands.
//
// Terminals report presses (and auto-repeats) but no releases, so a move key
// counts as held until holdTicks ticks pass without a repeat, or until the
// opposite or stop key is pressed.
type KeyMapper struct {
	keys      KeyMap
	holdTicks int

	held  direction
	quiet int // Ticks since the held key last repeated
}

// NewKeyMapper creates a mapper. holdTicks must cover the terminal's
// initial auto-repeat delay.
func NewKeyMapper(keys KeyMap, holdTicks int) *KeyMapper {
	return &KeyMapper{keys: keys, holdTicks: max(holdTicks, 1)}
}

// MapKey appends the commands for a key press to frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch {
	case key.Matches(msg, km.keys.Quit):
		frame.Push(core.CommandQuit)
		return true
	case key.Matches(msg, km.keys.Left):
		km.hold(dirLeft, frame)
	case key.Matches(msg, km.keys.Right):
		km.hold(dirRight, frame)
	case key.Matches(msg, km.keys.Stop):
		km.release(frame)
	case key.Matches(msg, km.keys.Launch):
		frame.Push(core.CommandLaunch)
	}
	return false
}

// Tick ages the held key and emits its stop command once it expires.
func (km *KeyMapper) Tick(frame *core.InputFrame) {
	if km.held == dirNone {
		return
	}
	km.quiet++
	if km.quiet >= km.holdTicks {
		km.release(frame)
	}
}

// Held reports whether a move key is currently considered down.
func (km *KeyMapper) Held() bool {
	return km.held != dirNone
}

func (km *KeyMapper) hold(d direction, frame *core.InputFrame) {
	km.quiet = 0
	if km.held == d {
		return
	}
	km.release(frame)
	km.held = d
	if d == dirLeft {
		frame.Push(core.CommandMoveLeftStart)
	} else {
		frame.Push(core.CommandMoveRightStart)
	}
}

func (km *KeyMapper) release(frame *core.InputFrame) {
	switch km.held {
	case dirLeft:
		frame.Push(core.CommandMoveLeftStop)
	case dirRight:
		frame.Push(core.CommandMoveRightStop)
	}
	km.held = dirNone
	km.quiet = 0
}
