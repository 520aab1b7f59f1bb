// Package breakout assembles the paddle, ball, bricks and walls on a physics
// world and advances them one fixed tick at a time.
package breakout

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/physics"
)

// TickResult reports what happened during one tick.
type TickResult struct {
	Tick          uint64
	Quit          bool
	Launched      bool
	Clamped       bool
	BricksRemoved int
	BallsLost     int
}

// Stats summarizes a game so far.
type Stats struct {
	Ticks           uint64
	SimTime         float64
	BricksTotal     int
	BricksRemaining int
	BallsLost       int
	Launches        int
}

// BricksRemoved returns how many bricks have been destroyed.
func (s Stats) BricksRemoved() int {
	return s.BricksTotal - s.BricksRemaining
}

// Options configures a new Game.
type Options struct {
	// Logger receives debug traces and warnings. Nil discards.
	Logger *log.Logger

	// Strict panics on invariant violations instead of logging them.
	Strict bool
}

// Game implements the breakout simulation.
type Game struct {
	cfg     config.BreakoutConfig
	runtime core.RuntimeConfig
	screenW float64
	screenH float64
	strict  bool
	logger  *log.Logger

	world    *physics.World
	paddle   *Paddle
	ball     *Ball
	bricks   *BrickField
	boundary *Boundary
	steering *Steering

	paddleVX      float64
	tick          uint64
	ballsLost     int
	launches      int
	quit          bool
	steeringWarns int

	// Per-tick counters, filled by collision handlers
	tickBricks int
	tickLost   int
}

// New creates a game for a viewport. Configuration preconditions are checked
// here; nothing is recovered from at runtime.
func New(cfg config.BreakoutConfig, runtime core.RuntimeConfig, logger *log.Logger) (*Game, error) {
	return NewWithOptions(cfg, runtime, Options{Logger: logger})
}

// NewWithOptions is New with full control over logging and strictness.
func NewWithOptions(cfg config.BreakoutConfig, runtime core.RuntimeConfig, opts Options) (*Game, error) {
	if err := cfg.Validate(runtime.ScreenW, runtime.ScreenH); err != nil {
		return nil, fmt.Errorf("breakout: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		cfg:    cfg,
		strict: opts.Strict,
		logger: logger,
	}
	if err := g.Reset(runtime); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset rebuilds the world from scratch: full brick grid, centered paddle,
// docked ball.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	if err := g.cfg.Validate(runtime.ScreenW, runtime.ScreenH); err != nil {
		return fmt.Errorf("breakout: %w", err)
	}
	if err := g.cfg.ValidateStep(runtime.ScreenH, runtime.TickSeconds()); err != nil {
		return fmt.Errorf("breakout: %w", err)
	}

	g.runtime = runtime
	g.screenW = float64(runtime.ScreenW)
	g.screenH = float64(runtime.ScreenH)
	g.paddleVX = 0
	g.tick = 0
	g.ballsLost = 0
	g.launches = 0
	g.quit = false
	g.steeringWarns = 0

	g.world = physics.NewWorld(physics.Options{
		Iterations: g.cfg.Physics.Iterations,
		Strict:     g.strict,
		Logger:     g.logger,
	})

	var err error
	g.paddle, err = NewPaddle(g.world, g.cfg.Paddle, g.cfg.PaddleLength(runtime.ScreenW), g.screenW)
	if err != nil {
		return err
	}
	if err := g.spawnBall(); err != nil {
		return err
	}
	g.bricks, err = NewBrickField(g.world, g.cfg.Bricks, g.screenW, g.screenH)
	if err != nil {
		return err
	}
	g.boundary = NewBoundary(g.world, g.cfg.Physics, g.screenW, g.screenH)

	g.steering = nil
	if g.cfg.Analog.Enabled {
		g.steering = NewSteering(g.cfg.Analog)
	}

	g.world.RegisterCollisionHandler(physics.CategoryBrick, physics.CategoryBall, physics.Handler{
		Separate: g.onBrickSeparate,
	})
	g.world.RegisterCollisionHandler(physics.CategoryBall, physics.CategoryBottom, physics.Handler{
		Separate: g.onBallLost,
	})

	g.logger.Debug("game reset",
		"screen", fmt.Sprintf("%dx%d", runtime.ScreenW, runtime.ScreenH),
		"paddle", g.paddle.Length(),
		"ball", g.ball.Radius(),
		"bricks", g.bricks.Total(),
	)
	return nil
}

// spawnBall places a fresh docked ball above the paddle.
func (g *Game) spawnBall() error {
	ball, err := SpawnBall(g.world, g.cfg.Ball, g.cfg.BallRadius(g.runtime.ScreenH),
		g.cfg.Physics.BallSpeed, g.paddle, g.screenW)
	if err != nil {
		return err
	}
	ball.Track(g.paddleVX)
	g.ball = ball
	return nil
}

// Tick advances the game by one fixed step of dt seconds.
//
// Order: commands, then World.Step (collision handlers run inside and their
// removals/respawns are applied before it returns), then the escaped-ball
// check, then analog steering, then the paddle clamp.
func (g *Game) Tick(dt float64, in core.InputFrame) TickResult {
	g.tickBricks, g.tickLost = 0, 0
	result := TickResult{}

	for _, cmd := range in.Commands {
		switch cmd {
		case core.CommandMoveLeftStart:
			g.setPaddleVelocity(-g.cfg.Physics.PaddleSpeed)
		case core.CommandMoveRightStart:
			g.setPaddleVelocity(g.cfg.Physics.PaddleSpeed)
		case core.CommandMoveLeftStop, core.CommandMoveRightStop:
			g.setPaddleVelocity(0)
		case core.CommandLaunch:
			if g.launch() {
				result.Launched = true
			}
		case core.CommandQuit:
			g.quit = true
		}
	}

	if g.quit {
		result.Tick = g.tick
		result.Quit = true
		return result
	}

	//nolint:errcheck // Step only fails when re-entered from a handler
	g.world.Step(dt)
	g.tick++

	if !g.ball.Armed() && !g.inPlayfield(g.ball.Position()) {
		pos := g.ball.Position()
		g.logger.Warn("ball left the playfield", "tick", g.tick, "x", pos.X, "y", pos.Y)
		g.loseBall(g.world)
	}

	if in.Axes != nil && g.steering != nil {
		if vx, ok := g.steering.Velocity(*in.Axes); ok {
			g.setPaddleVelocity(vx)
		} else {
			g.steeringWarns++
			g.logger.Warn("analog steering skipped: zero baseline axis", "baseline", g.steering.Baseline())
		}
	}

	result.Clamped = g.paddle.ClampToBounds(g.screenW)
	g.ball.Follow(g.paddle)
	g.checkInvariants()

	result.Tick = g.tick
	result.BricksRemoved = g.tickBricks
	result.BallsLost = g.tickLost
	return result
}

// setPaddleVelocity drives the paddle and, while docked, the ball with it.
func (g *Game) setPaddleVelocity(vx float64) {
	g.paddleVX = vx
	g.paddle.SetVelocity(vx)
	g.ball.Track(vx)
}

func (g *Game) launch() bool {
	if !g.ball.Launch(g.world, g.cfg.Physics.LaunchImpulse) {
		return false
	}
	g.launches++
	g.logger.Debug("ball launched", "tick", g.tick, "x", g.ball.Position().X)
	return true
}

func (g *Game) onBrickSeparate(w *physics.World, c physics.Contact) {
	if !g.bricks.Remove(w, c.A) {
		return
	}
	g.tickBricks++
	if brick, ok := c.A.UserData.(*Brick); ok {
		g.logger.Debug("brick removed", "col", brick.Col, "row", brick.Row, "left", g.bricks.Alive())
	}
}

func (g *Game) onBallLost(w *physics.World, c physics.Contact) {
	if g.ball == nil || c.A != g.ball.Body() {
		return
	}
	g.loseBall(w)
}

// loseBall takes the ball out of play and spawns a docked one once the world
// is unlocked.
func (g *Game) loseBall(w *physics.World) {
	lost := g.ball
	if err := lost.detach(w); err != nil {
		return
	}
	g.ballsLost++
	g.tickLost++

	w.Defer(func() {
		if err := g.spawnBall(); err != nil {
			g.logger.Error("ball respawn failed", "err", err)
			return
		}
		g.logger.Debug("ball respawned", "lost", g.ballsLost, "x", g.ball.Position().X)
	})
}

// inPlayfield reports whether p lies inside the viewport.
func (g *Game) inPlayfield(p physics.Vector) bool {
	return p.X >= 0 && p.X <= g.screenW && p.Y >= 0 && p.Y <= g.screenH
}

// checkInvariants verifies exactly one ball is in the world and that its dock
// constraint matches its state.
func (g *Game) checkInvariants() {
	balls := 0
	for _, b := range g.world.Bodies() {
		if _, ok := b.UserData.(*Ball); ok {
			balls++
		}
	}
	docks := g.world.ConstraintsOn(g.ball.Body())

	var err error
	switch {
	case balls != 1:
		err = fmt.Errorf("breakout: %d balls in world", balls)
	case g.ball.Armed() && docks != 1:
		err = fmt.Errorf("breakout: docked ball has %d constraints", docks)
	case !g.ball.Armed() && docks != 0:
		err = fmt.Errorf("breakout: launched ball has %d constraints", docks)
	}
	if err == nil {
		return
	}
	if g.strict {
		panic(err)
	}
	g.logger.Warn("invariant violation", "tick", g.tick, "err", err)
}

// Calibrate captures the analog rest baseline. No-op without analog steering.
func (g *Game) Calibrate(sample core.AxisFrame) {
	if g.steering == nil {
		return
	}
	g.steering.Calibrate(sample)
	if !g.steering.Usable() {
		g.logger.Warn("analog baseline has a zero axis; steering disabled", "baseline", sample)
	}
}

// Views returns the renderable live body set.
func (g *Game) Views() []physics.BodyView {
	return g.world.Views()
}

// Stats returns counters for the game so far.
func (g *Game) Stats() Stats {
	return Stats{
		Ticks:           g.tick,
		SimTime:         g.world.Time(),
		BricksTotal:     g.bricks.Total(),
		BricksRemaining: g.bricks.Alive(),
		BallsLost:       g.ballsLost,
		Launches:        g.launches,
	}
}

// Runtime returns the viewport the game was built for.
func (g *Game) Runtime() core.RuntimeConfig {
	return g.runtime
}

// Config returns the tunables the game was built with.
func (g *Game) Config() config.BreakoutConfig {
	return g.cfg
}

// Paddle returns the paddle.
func (g *Game) Paddle() *Paddle {
	return g.paddle
}

// Ball returns the ball currently in play.
func (g *Game) Ball() *Ball {
	return g.ball
}

// Bricks returns the brick field.
func (g *Game) Bricks() *BrickField {
	return g.bricks
}

// Quit reports whether a quit command has been received.
func (g *Game) Quit() bool {
	return g.quit
}
