package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/physics"
)

// Paddle is a non-rotating dynamic body held on a horizontal groove.
type Paddle struct {
	body   *physics.Body
	groove *physics.Constraint
	length float64
	y      float64
}

// NewPaddle creates the paddle centered on the screen and adds it, with its
// groove, to the world.
func NewPaddle(w *physics.World, cfg config.BreakoutPaddle, length, screenW float64) (*Paddle, error) {
	half := math.Floor(length / 2)

	body := physics.NewDynamicBody(cfg.Mass, physics.InfiniteMoment)
	body.Attach(
		physics.Segment(physics.Vec(-half, 0), physics.Vec(half, 0), cfg.Thickness),
		physics.ShapeOptions{
			Category:   physics.CategoryPaddle,
			Elasticity: cfg.Elasticity,
			Friction:   cfg.Friction,
		},
	)
	body.SetPosition(physics.Vec(math.Floor(screenW/2), cfg.Height))

	if err := w.AddBody(body); err != nil {
		return nil, fmt.Errorf("breakout: add paddle: %w", err)
	}

	groove := physics.NewGrooveJoint(w.Static(), body,
		physics.Vec(half, cfg.Height), physics.Vec(screenW-half, cfg.Height), physics.Vec(0, 0))
	if err := w.AddConstraint(groove); err != nil {
		return nil, fmt.Errorf("breakout: add paddle groove: %w", err)
	}

	return &Paddle{body: body, groove: groove, length: length, y: cfg.Height}, nil
}

// Length returns the paddle length.
func (p *Paddle) Length() float64 {
	return p.length
}

// Position returns the paddle center.
func (p *Paddle) Position() physics.Vector {
	return p.body.Position()
}

// Velocity returns the paddle velocity.
func (p *Paddle) Velocity() physics.Vector {
	return p.body.Velocity()
}

// SetVelocity sets the horizontal velocity; the groove removes any vertical part.
func (p *Paddle) SetVelocity(vx float64) {
	p.body.SetVelocity(physics.Vec(vx, 0))
}

// Bounds returns the clamp range of the paddle center for a screen width.
// The range keeps a one-unit inset from the groove ends.
func (p *Paddle) Bounds(screenW float64) (lo, hi float64) {
	half := math.Floor(p.length / 2)
	return half + 1, screenW - half - 1
}

// ClampToBounds hard-clamps the paddle center after a step, since the groove
// does not stop the body at its ends within one step.
// Returns true if the position was changed.
func (p *Paddle) ClampToBounds(screenW float64) bool {
	lo, hi := p.Bounds(screenW)
	pos := p.body.Position()
	x := core.Clamp(pos.X, lo, hi)
	if x == pos.X && pos.Y == p.y {
		return false
	}
	p.body.SetPosition(physics.Vec(x, p.y))
	return true
}
