package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/physics"
)

// Boundary is the three reflecting walls plus the bottom loss sensor, all
// attached to the world's static body.
type Boundary struct {
	Bottom *physics.Shape
	Top    *physics.Shape
	Left   *physics.Shape
	Right  *physics.Shape
}

// NewBoundary attaches the walls for a viewport. The bottom segment is a
// sensor: it reports contacts but never deflects the ball.
func NewBoundary(w *physics.World, cfg config.BreakoutPhysics, screenW, screenH float64) *Boundary {
	static := w.Static()
	wall := physics.ShapeOptions{Category: physics.CategoryNone, Elasticity: cfg.WallElasticity}
	r := cfg.WallThickness

	return &Boundary{
		Bottom: static.Attach(
			physics.Segment(physics.Vec(0, 1), physics.Vec(screenW, 1), r),
			physics.ShapeOptions{Category: physics.CategoryBottom, Sensor: true},
		),
		Top: static.Attach(
			physics.Segment(physics.Vec(0, screenH-1), physics.Vec(screenW, screenH-1), r), wall),
		Left: static.Attach(
			physics.Segment(physics.Vec(1, 0), physics.Vec(1, screenH), r), wall),
		Right: static.Attach(
			physics.Segment(physics.Vec(screenW-1, 0), physics.Vec(screenW-1, screenH), r), wall),
	}
}
