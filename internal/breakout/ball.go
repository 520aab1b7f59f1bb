package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/physics"
)

// Ball is the circular body in play.
//
// Docked (armed): held on a groove above the paddle and moved with it.
// Launched: free, with its speed renormalized every physics step.
type Ball struct {
	body   *physics.Body
	radius float64
	armed  bool
	dock   *physics.Constraint
	cruise physics.OverrideFunc
	dockY  float64
}

// SpawnBall creates a docked ball above the paddle and adds it, with its dock
// groove, to the world.
func SpawnBall(w *physics.World, cfg config.BreakoutBall, radius, speed float64, paddle *Paddle, screenW float64) (*Ball, error) {
	b := &Ball{
		radius: radius,
		armed:  true,
		cruise: physics.ConstantSpeed(speed),
		dockY:  paddle.y + radius + cfg.DockMargin,
	}

	b.body = physics.NewDynamicBody(cfg.Mass, physics.MomentForCircle(cfg.Mass, radius))
	b.body.Attach(physics.Circle(radius), physics.ShapeOptions{
		Category:   physics.CategoryBall,
		Elasticity: cfg.Elasticity,
		Friction:   cfg.Friction,
	})
	b.body.SetVelocityOverride(b)
	b.body.UserData = b
	b.body.SetPosition(physics.Vec(paddle.Position().X, b.dockY))

	if err := w.AddBody(b.body); err != nil {
		return nil, fmt.Errorf("breakout: add ball: %w", err)
	}

	half := math.Floor(paddle.length / 2)
	b.dock = physics.NewGrooveJoint(w.Static(), b.body,
		physics.Vec(half, b.dockY), physics.Vec(screenW-half, b.dockY), physics.Vec(0, 0))
	if err := w.AddConstraint(b.dock); err != nil {
		return nil, fmt.Errorf("breakout: add ball dock: %w", err)
	}

	return b, nil
}

// Armed reports whether the ball is docked on the paddle.
func (b *Ball) Armed() bool {
	return b.armed
}

// Radius returns the ball radius.
func (b *Ball) Radius() float64 {
	return b.radius
}

// Body returns the underlying physics body.
func (b *Ball) Body() *physics.Body {
	return b.body
}

// Position returns the ball center.
func (b *Ball) Position() physics.Vector {
	return b.body.Position()
}

// Velocity returns the ball velocity.
func (b *Ball) Velocity() physics.Vector {
	return b.body.Velocity()
}

// Apply keeps the launched ball at cruise speed; a docked ball is untouched.
func (b *Ball) Apply(v physics.Vector, dt float64) physics.Vector {
	if b.armed {
		return v
	}
	return b.cruise(v, dt)
}

// Track mirrors the paddle while docked. No-op once launched.
func (b *Ball) Track(vx float64) {
	if !b.armed {
		return
	}
	b.body.SetVelocity(physics.Vec(vx, 0))
}

// Follow snaps a docked ball above the paddle center.
func (b *Ball) Follow(p *Paddle) {
	if !b.armed {
		return
	}
	b.body.SetPosition(physics.Vec(p.Position().X, b.dockY))
}

// Launch releases a docked ball: drop the dock groove, disarm, and kick it
// upward. Returns false if the ball was already launched or the dock could
// not be removed, in which case the ball stays docked.
func (b *Ball) Launch(w *physics.World, impulse float64) bool {
	if !b.armed {
		return false
	}
	if err := w.RemoveConstraint(b.dock); err != nil {
		return false
	}
	b.armed = false
	b.dock = nil
	b.body.ApplyImpulse(physics.Vec(0, impulse))
	return true
}

// detach removes the ball from the world, dropping its dock first if it is
// still docked.
func (b *Ball) detach(w *physics.World) error {
	if b.dock != nil {
		//nolint:errcheck // A dock already gone is fine here
		w.RemoveConstraint(b.dock)
		b.dock = nil
		b.armed = false
	}
	return w.RemoveBody(b.body)
}
