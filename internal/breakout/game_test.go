package breakout

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/physics"
)

const testDT = 1.0 / 60.0

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 800, ScreenH: 600, TickRate: 60}
}

func newTestGame(t *testing.T, cfg config.BreakoutConfig) *Game {
	t.Helper()
	g, err := NewWithOptions(cfg, testRuntime(), Options{Strict: true})
	if err != nil {
		t.Fatalf("NewWithOptions failed: %v", err)
	}
	return g
}

func frame(cmds ...core.Command) core.InputFrame {
	f := core.NewInputFrame()
	for _, c := range cmds {
		f.Push(c)
	}
	return f
}

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNewLayout(t *testing.T) {
	g := newTestGame(t, config.DefaultBreakoutConfig())

	if got := g.Paddle().Length(); got != 200 {
		t.Errorf("paddle length = %v, expected 200", got)
	}
	if pos := g.Paddle().Position(); pos.X != 400 || pos.Y != 100 {
		t.Errorf("paddle at %v, expected (400, 100)", pos)
	}

	ball := g.Ball()
	if !ball.Armed() {
		t.Error("new ball should be docked")
	}
	if ball.Radius() != 15 {
		t.Errorf("ball radius = %v, expected 15", ball.Radius())
	}
	if pos := ball.Position(); pos.X != 400 || pos.Y != 119 {
		t.Errorf("ball at %v, expected (400, 119)", pos)
	}
	if n := g.world.ConstraintsOn(ball.Body()); n != 1 {
		t.Errorf("docked ball constraints = %d, expected 1", n)
	}

	if g.Bricks().Total() != 50 || g.Bricks().Alive() != 50 {
		t.Errorf("bricks total/alive = %d/%d, expected 50/50", g.Bricks().Total(), g.Bricks().Alive())
	}
}

func TestNewRejectsWidePaddle(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Paddle.LengthFraction = 1

	_, err := New(cfg, testRuntime(), nil)
	if !errors.Is(err, config.ErrPaddleTooWide) {
		t.Errorf("expected ErrPaddleTooWide, got %v", err)
	}
}

func TestNewRejectsEmptyViewport(t *testing.T) {
	_, err := New(config.DefaultBreakoutConfig(), core.RuntimeConfig{ScreenW: 0, ScreenH: 600}, nil)
	if !errors.Is(err, config.ErrInvalidViewport) {
		t.Errorf("expected ErrInvalidViewport, got %v", err)
	}
}

func TestNewRejectsLowTickRate(t *testing.T) {
	// At 10 Hz the ball covers 50 units per step, more than radius 15 plus
	// wall thickness 2.
	runtime := testRuntime()
	runtime.TickRate = 10
	_, err := New(config.DefaultBreakoutConfig(), runtime, nil)
	if !errors.Is(err, config.ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue, got %v", err)
	}

	runtime.TickRate = 30
	if _, err := New(config.DefaultBreakoutConfig(), runtime, nil); err != nil {
		t.Errorf("30 Hz rejected: %v", err)
	}
}

func TestPaddleMoveRight(t *testing.T) {
	g := newTestGame(t, config.DefaultBreakoutConfig())

	g.Tick(0.016, frame(core.CommandMoveRightStart))

	pos := g.Paddle().Position()
	if !near(pos.X, 409.6, 1e-6) || !near(pos.Y, 100, 1e-9) {
		t.Errorf("paddle at %v, expected (409.6, 100)", pos)
	}

	ball := g.Ball().Position()
	if !near(ball.X, pos.X, 1e-9) || !near(ball.Y, 119, 1e-9) {
		t.Errorf("docked ball at %v, expected (%v, 119)", ball, pos.X)
	}
	if v := g.Ball().Velocity(); v.X != 600 {
		t.Errorf("docked ball vx = %v, expected 600", v.X)
	}
}

func TestStopCommandHaltsPaddle(t *testing.T) {
	g := newTestGame(t, config.DefaultBreakoutConfig())

	g.Tick(testDT, frame(core.CommandMoveRightStart))
	g.Tick(testDT, frame(core.CommandMoveLeftStop))

	if v := g.Paddle().Velocity(); v.X != 0 {
		t.Errorf("paddle vx after stop = %v, expected 0", v.X)
	}

	g.Tick(testDT, frame(core.CommandMoveLeftStart))
	if v := g.Paddle().Velocity(); v.X != -600 {
		t.Errorf("paddle vx after left start = %v, expected -600", v.X)
	}
}

func TestPaddleStaysInBounds(t *testing.T) {
	g := newTestGame(t, config.DefaultBreakoutConfig())
	lo, hi := g.Paddle().Bounds(800)

	for _, cmd := range []core.Command{core.CommandMoveRightStart, core.CommandMoveLeftStart} {
		g.Tick(testDT, frame(cmd))
		for range 120 {
			g.Tick(testDT, frame())
			x := g.Paddle().Position().X
			if x < lo || x > hi {
				t.Fatalf("paddle x = %v, outside [%v, %v]", x, lo, hi)
			}
			if bx := g.Ball().Position().X; bx != x {
				t.Fatalf("docked ball x = %v, paddle x = %v", bx, x)
			}
		}
	}
	if lo < 100 || hi > 700 {
		t.Errorf("bounds [%v, %v] exceed [100, 700]", lo, hi)
	}
}

func TestLaunch(t *testing.T) {
	g := newTestGame(t, config.DefaultBreakoutConfig())

	res := g.Tick(testDT, frame(core.CommandLaunch))
	if !res.Launched {
		t.Error("expected Launched in tick result")
	}

	ball := g.Ball()
	if ball.Armed() {
		t.Error("ball should be launched")
	}
	if n := g.world.ConstraintsOn(ball.Body()); n != 0 {
		t.Errorf("launched ball constraints = %d, expected 0", n)
	}

	v := ball.Velocity()
	if !near(v.Length(), 500, 1e-6) {
		t.Errorf("ball speed = %v, expected 500", v.Length())
	}
	if v.Y <= 0 {
		t.Errorf("ball vy = %v, expected upward", v.Y)
	}

	res = g.Tick(testDT, frame(core.CommandLaunch))
	if res.Launched {
		t.Error("second launch should be a no-op")
	}
	if g.Stats().Launches != 1 {
		t.Errorf("launches = %d, expected 1", g.Stats().Launches)
	}
}

func TestTopWallRoundTrip(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Bricks.Rows = 0
	g := newTestGame(t, cfg)

	g.Tick(testDT, frame(core.CommandLaunch))

	bounced := false
	for range 200 {
		g.Tick(testDT, frame())
		if g.Ball().Velocity().Y < 0 {
			bounced = true
			break
		}
	}
	if !bounced {
		t.Fatal("ball never came back from the top wall")
	}

	for range 5 {
		g.Tick(testDT, frame())
	}
	v := g.Ball().Velocity()
	if v.Y >= 0 {
		t.Errorf("ball vy = %v, expected downward", v.Y)
	}
	if !near(v.Length(), 500, 1e-3) {
		t.Errorf("ball speed after bounce = %v, expected 500", v.Length())
	}
}

func TestBallSpeedRenormalizedEveryStep(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Bricks.Rows = 0
	g := newTestGame(t, cfg)
	g.Tick(testDT, frame(core.CommandLaunch))

	ball := g.Ball()
	var speeds []float64
	ball.Body().SetVelocityOverride(physics.OverrideFunc(func(v physics.Vector, dt float64) physics.Vector {
		out := ball.Apply(v, dt)
		speeds = append(speeds, out.Length())
		return out
	}))

	for range 300 {
		g.Tick(testDT, frame())
		if g.Ball() != ball {
			break
		}
		if s := ball.Velocity().Length(); !near(s, 500, 1e-9) {
			t.Fatalf("tick %d: ball speed = %v, expected 500", g.Stats().Ticks, s)
		}
	}

	if len(speeds) < 100 {
		t.Fatalf("override ran %d times, expected at least 100", len(speeds))
	}
	for i, s := range speeds {
		if !near(s, 500, 1e-6) {
			t.Fatalf("step %d: integrated speed = %v, expected 500", i, s)
		}
	}
}

func TestBallLossRespawns(t *testing.T) {
	g := newTestGame(t, config.DefaultBreakoutConfig())
	g.Tick(testDT, frame(core.CommandLaunch))

	lost := g.Ball()
	lost.Body().SetPosition(physics.Vec(150, 40))
	lost.Body().SetVelocity(physics.Vec(0, -500))

	var res TickResult
	for range 60 {
		res = g.Tick(testDT, frame())
		if res.BallsLost > 0 {
			break
		}
	}
	if res.BallsLost != 1 {
		t.Fatalf("BallsLost = %d, expected 1", res.BallsLost)
	}

	ball := g.Ball()
	if ball == lost {
		t.Fatal("expected a fresh ball")
	}
	if g.world.Contains(lost.Body()) {
		t.Error("lost ball still in world")
	}
	if !ball.Armed() {
		t.Error("respawned ball should be docked")
	}
	paddle := g.Paddle().Position()
	if pos := ball.Position(); pos.X != paddle.X || pos.Y != 119 {
		t.Errorf("respawned ball at %v, expected (%v, 119)", pos, paddle.X)
	}
	if n := g.world.ConstraintsOn(ball.Body()); n != 1 {
		t.Errorf("respawned ball constraints = %d, expected 1", n)
	}
	if g.Stats().BallsLost != 1 {
		t.Errorf("stats BallsLost = %d, expected 1", g.Stats().BallsLost)
	}
}

// hitBrick aims the ball straight up at brick and ticks until it is removed.
func TestEscapedBallIsLost(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Bricks.Rows = 0
	g := newTestGame(t, cfg)
	g.Tick(testDT, frame(core.CommandLaunch))

	escaped := g.Ball()
	escaped.Body().SetPosition(physics.Vec(400, 700))
	escaped.Body().SetVelocity(physics.Vec(0, 500))

	res := g.Tick(testDT, frame())

	if res.BallsLost != 1 || g.Stats().BallsLost != 1 {
		t.Errorf("balls lost = %d (tick %d), expected 1", g.Stats().BallsLost, res.BallsLost)
	}
	if g.world.Contains(escaped.Body()) {
		t.Error("escaped ball still in world")
	}
	ball := g.Ball()
	if ball == escaped || !ball.Armed() {
		t.Fatal("expected a fresh docked ball")
	}
	if p := ball.Position(); !near(p.X, 400, 1e-9) || !near(p.Y, 119, 1e-9) {
		t.Errorf("respawned ball at %v, expected (400, 119)", p)
	}
}

func hitBrick(t *testing.T, g *Game, brick *Brick) int {
	t.Helper()
	ball := g.Ball().Body()
	pos := brick.Body().Position()
	ball.SetPosition(physics.Vec(pos.X, pos.Y-60))
	ball.SetVelocity(physics.Vec(0, 500))

	removed := 0
	for range 30 {
		removed += g.Tick(testDT, frame()).BricksRemoved
		if !brick.Alive() {
			return removed
		}
	}
	t.Fatalf("brick %d,%d was never removed", brick.Col, brick.Row)
	return removed
}

func TestBrickRemoval(t *testing.T) {
	g := newTestGame(t, config.DefaultBreakoutConfig())
	g.Tick(testDT, frame(core.CommandLaunch))

	var targets []*Brick
	for _, b := range g.Bricks().Bricks() {
		if b.Row == 0 && (b.Col == 0 || b.Col == 4 || b.Col == 9) {
			targets = append(targets, b)
		}
	}
	if len(targets) != 3 {
		t.Fatalf("found %d target bricks, expected 3", len(targets))
	}

	removed := 0
	for _, b := range targets {
		removed += hitBrick(t, g, b)
	}

	if removed != 3 {
		t.Errorf("BricksRemoved sum = %d, expected 3", removed)
	}
	if g.Bricks().Alive() != 47 {
		t.Errorf("bricks alive = %d, expected 47", g.Bricks().Alive())
	}

	gone := make(map[physics.ID]bool)
	for _, b := range targets {
		gone[b.Body().ID()] = true
	}
	bricks := 0
	for _, v := range g.Views() {
		if gone[v.ID] {
			t.Errorf("removed brick %d still in view set", v.ID)
		}
		if len(v.Shapes) > 0 && v.Shapes[0].Category == physics.CategoryBrick {
			bricks++
		}
	}
	if bricks != 47 {
		t.Errorf("view set has %d bricks, expected 47", bricks)
	}
}

func TestBrickRemoveIdempotent(t *testing.T) {
	g := newTestGame(t, config.DefaultBreakoutConfig())
	brick := g.Bricks().Bricks()[0]

	if !g.Bricks().Remove(g.world, brick.Body()) {
		t.Fatal("first removal should succeed")
	}
	if g.Bricks().Remove(g.world, brick.Body()) {
		t.Error("second removal should be a no-op")
	}
	if g.Bricks().Alive() != 49 {
		t.Errorf("bricks alive = %d, expected 49", g.Bricks().Alive())
	}
	if g.world.Contains(brick.Body()) {
		t.Error("removed brick still in world")
	}
}

func TestLaunchKeepsDockOnFailure(t *testing.T) {
	g := newTestGame(t, config.DefaultBreakoutConfig())
	ball := g.Ball()

	// A dock that is no longer in the world cannot be removed again.
	if err := g.world.RemoveConstraint(ball.dock); err != nil {
		t.Fatalf("RemoveConstraint failed: %v", err)
	}

	if ball.Launch(g.world, g.cfg.Physics.LaunchImpulse) {
		t.Fatal("Launch succeeded without a removable dock")
	}
	if !ball.Armed() || ball.dock == nil {
		t.Error("failed launch left the ball undocked")
	}
	if v := ball.Velocity(); v.Y != 0 {
		t.Errorf("failed launch applied an impulse: vy = %v", v.Y)
	}
}

func TestQuit(t *testing.T) {
	g := newTestGame(t, config.DefaultBreakoutConfig())

	res := g.Tick(testDT, frame(core.CommandQuit))
	if !res.Quit || !g.Quit() {
		t.Error("expected quit")
	}
	if g.Stats().Ticks != 0 {
		t.Errorf("ticks = %d, expected no step after quit", g.Stats().Ticks)
	}
}

func TestAnalogSteering(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Analog.Enabled = true
	g := newTestGame(t, cfg)
	g.Calibrate(core.AxisFrame{-1, -1, -1, -1})

	in := frame()
	in.SetAxes(core.AxisFrame{0, 0, -1, -1})
	g.Tick(testDT, in)

	if v := g.Paddle().Velocity(); v.X != 6000 {
		t.Errorf("paddle vx = %v, expected 6000", v.X)
	}
	if v := g.Ball().Velocity(); v.X != 6000 {
		t.Errorf("docked ball vx = %v, expected 6000", v.X)
	}
}

func TestAnalogZeroBaselineKeepsDiscrete(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Analog.Enabled = true
	g := newTestGame(t, cfg)
	g.Calibrate(core.AxisFrame{-1, 0, -1, -1})

	in := frame(core.CommandMoveRightStart)
	in.SetAxes(core.AxisFrame{0, 0, -1, -1})
	g.Tick(testDT, in)

	if v := g.Paddle().Velocity(); v.X != 600 {
		t.Errorf("paddle vx = %v, expected discrete 600", v.X)
	}
}

func TestSingleBallInvariant(t *testing.T) {
	g := newTestGame(t, config.DefaultBreakoutConfig())

	for i := range 3000 {
		in := frame()
		if g.Ball().Armed() {
			in.Push(core.CommandLaunch)
		}
		switch i % 90 {
		case 0:
			in.Push(core.CommandMoveLeftStart)
		case 45:
			in.Push(core.CommandMoveRightStart)
		}
		g.Tick(testDT, in)

		balls := 0
		for _, b := range g.world.Bodies() {
			if _, ok := b.UserData.(*Ball); ok {
				balls++
			}
		}
		if balls != 1 {
			t.Fatalf("tick %d: %d balls in world", i, balls)
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Bricks.Rows = 0

	// Steer while docked, then launch and let the ball run
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = frame()
		switch i {
		case 5:
			inputs[i].Push(core.CommandMoveLeftStart)
		case 20:
			inputs[i].Push(core.CommandMoveLeftStop)
		case 30:
			inputs[i].Push(core.CommandLaunch)
		}
	}

	run := func() Snapshot {
		g := newTestGame(t, cfg)
		for _, in := range inputs {
			g.Tick(testDT, in)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Tick != 600 {
		t.Errorf("snapshot tick = %d, expected 600", snap1.Tick)
	}
	if snap1.PaddleX != snap2.PaddleX || snap1.BallY != snap2.BallY {
		t.Errorf("Determinism failed: positions differ")
	}
}

func TestSnapshotHashChanges(t *testing.T) {
	g := newTestGame(t, config.DefaultBreakoutConfig())
	before := g.Snapshot()

	g.Tick(testDT, frame(core.CommandMoveRightStart))
	after := g.Snapshot()

	if before.Hash() == after.Hash() {
		t.Error("hash should change after the paddle moves")
	}
	if before.BricksAlive() != 50 {
		t.Errorf("BricksAlive = %d, expected 50", before.BricksAlive())
	}
}

func TestReset(t *testing.T) {
	g := newTestGame(t, config.DefaultBreakoutConfig())
	g.Tick(testDT, frame(core.CommandLaunch))
	g.Bricks().Remove(g.world, g.Bricks().Bricks()[3].Body())

	if err := g.Reset(testRuntime()); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if g.Stats().Ticks != 0 || g.Bricks().Alive() != 50 || !g.Ball().Armed() {
		t.Errorf("reset state: ticks=%d alive=%d armed=%v", g.Stats().Ticks, g.Bricks().Alive(), g.Ball().Armed())
	}
}
