package loop

import (
	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Script replays commands queued for given ticks. Polls are counted from 0.
type Script struct {
	frames map[uint64]core.InputFrame
	base   *core.AxisFrame
	poll   uint64
}

// NewScript creates an empty script.
func NewScript() *Script {
	return &Script{frames: make(map[uint64]core.InputFrame)}
}

// At queues commands for the poll with the given index.
func (s *Script) At(tick uint64, cmds ...core.Command) *Script {
	f := s.frames[tick]
	for _, c := range cmds {
		f.Push(c)
	}
	s.frames[tick] = f
	return s
}

// AxesAt attaches an analog sample to the poll with the given index.
func (s *Script) AxesAt(tick uint64, axes core.AxisFrame) *Script {
	f := s.frames[tick]
	f.SetAxes(axes)
	s.frames[tick] = f
	return s
}

// WithBaseline makes the script report an analog rest position.
func (s *Script) WithBaseline(base core.AxisFrame) *Script {
	s.base = &base
	return s
}

// Baseline implements Calibrator when a baseline was set.
func (s *Script) Baseline() (core.AxisFrame, bool) {
	if s.base == nil {
		return core.AxisFrame{}, false
	}
	return *s.base, true
}

// Poll returns the frame queued for the current poll.
func (s *Script) Poll() core.InputFrame {
	f := s.frames[s.poll]
	s.poll++
	return f.Clone()
}

// Autopilot keeps the paddle under the ball and launches whenever the ball
// is docked.
type Autopilot struct {
	game     *breakout.Game
	deadzone float64
	dir      int // -1 left, 0 idle, 1 right
}

// NewAutopilot creates an autopilot for game. The paddle rests while the
// ball is within deadzone units of its center.
func NewAutopilot(game *breakout.Game, deadzone float64) *Autopilot {
	return &Autopilot{game: game, deadzone: deadzone}
}

// Poll emits start/stop commands only when the steering direction changes.
func (a *Autopilot) Poll() core.InputFrame {
	f := core.NewInputFrame()
	ball := a.game.Ball()
	if ball.Armed() {
		f.Push(core.CommandLaunch)
	}

	dx := ball.Position().X - a.game.Paddle().Position().X
	dir := 0
	switch {
	case dx > a.deadzone:
		dir = 1
	case dx < -a.deadzone:
		dir = -1
	}
	if dir == a.dir {
		return f
	}

	switch a.dir {
	case -1:
		f.Push(core.CommandMoveLeftStop)
	case 1:
		f.Push(core.CommandMoveRightStop)
	}
	switch dir {
	case -1:
		f.Push(core.CommandMoveLeftStart)
	case 1:
		f.Push(core.CommandMoveRightStart)
	}
	a.dir = dir
	return f
}
