// Package loop drives a breakout game at a fixed rate: poll input, tick the
// game, draw the live body set.
package loop

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/physics"
)

// InputSource yields the input collected since the previous poll.
type InputSource interface {
	Poll() core.InputFrame
}

// Calibrator is an InputSource with an analog device that can report its
// rest position once, before the first tick.
type Calibrator interface {
	Baseline() (core.AxisFrame, bool)
}

// Renderer draws the live body set after each tick.
type Renderer interface {
	Draw(views []physics.BodyView)
}

// Options configures a Loop.
type Options struct {
	// MaxTicks stops the loop after this many ticks. Zero runs until quit.
	MaxTicks uint64

	// Logger receives session traces. Nil discards.
	Logger *log.Logger
}

// Loop owns the per-tick sequence for one game.
type Loop struct {
	game     *breakout.Game
	clock    Clock
	input    InputSource
	renderer Renderer
	maxTicks uint64
	logger   *log.Logger
}

// New creates a loop. A nil renderer draws nothing.
func New(game *breakout.Game, clock Clock, input InputSource, renderer Renderer, opts Options) *Loop {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if renderer == nil {
		renderer = NopRenderer{}
	}
	return &Loop{
		game:     game,
		clock:    clock,
		input:    input,
		renderer: renderer,
		maxTicks: opts.MaxTicks,
		logger:   logger,
	}
}

// Run ticks until a quit command, ctx cancellation, or the tick limit.
// It returns the game stats at exit; the error is non-nil only when ctx
// ended the run.
func (l *Loop) Run(ctx context.Context) (breakout.Stats, error) {
	if c, ok := l.input.(Calibrator); ok {
		if base, ok := c.Baseline(); ok {
			l.game.Calibrate(base)
			l.logger.Debug("analog calibrated", "baseline", base)
		}
	}

	l.renderer.Draw(l.game.Views())

	var ticks uint64
	for {
		if err := ctx.Err(); err != nil {
			return l.game.Stats(), err
		}
		if l.maxTicks > 0 && ticks >= l.maxTicks {
			l.logger.Debug("tick limit reached", "ticks", ticks)
			return l.game.Stats(), nil
		}

		dt := l.clock.Tick()
		res := l.game.Tick(dt, l.input.Poll())
		if res.Quit {
			l.logger.Debug("quit requested", "tick", res.Tick)
			return l.game.Stats(), nil
		}
		ticks++

		if res.BricksRemoved > 0 || res.BallsLost > 0 {
			l.logger.Debug("tick events", "tick", res.Tick,
				"bricks", res.BricksRemoved, "lost", res.BallsLost)
		}
		l.renderer.Draw(l.game.Views())
	}
}

// NopRenderer discards every frame.
type NopRenderer struct{}

// Draw does nothing.
func (NopRenderer) Draw([]physics.BodyView) {}
