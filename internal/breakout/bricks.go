package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/physics"
)

// BrickSpec is the placement of one brick in world units.
type BrickSpec struct {
	Row, Col      int
	X, Y          float64 // Center
	Width, Height float64
}

// Layout computes the brick grid for a viewport. Columns are evenly spread
// between the side margins; rows stack upward from the band start.
func Layout(cfg config.BreakoutBricks, screenW, screenH float64) []BrickSpec {
	if cfg.Columns <= 0 || cfg.Rows <= 0 {
		return nil
	}

	margin := cfg.MarginFraction * screenW
	width := (screenW - 2*margin) / float64(cfg.Columns)
	height := cfg.HeightFraction * screenH
	bandY := cfg.BandStart * screenH

	specs := make([]BrickSpec, 0, cfg.Columns*cfg.Rows)
	for col := 0; col < cfg.Columns; col++ {
		for row := 0; row < cfg.Rows; row++ {
			specs = append(specs, BrickSpec{
				Row:    row,
				Col:    col,
				X:      math.Floor(float64(col)*width + margin + width/2),
				Y:      math.Floor(float64(row)*height + bandY),
				Width:  math.Floor(width) - cfg.Gap,
				Height: math.Floor(height) - cfg.Gap,
			})
		}
	}
	return specs
}

// Brick is one destructible block.
type Brick struct {
	BrickSpec
	body  *physics.Body
	alive bool
}

// Alive reports whether the brick is still in play.
func (b *Brick) Alive() bool {
	return b.alive
}

// Body returns the brick's kinematic body.
func (b *Brick) Body() *physics.Body {
	return b.body
}

// BrickField tracks the bricks of one game.
type BrickField struct {
	bricks []*Brick
	byBody map[*physics.Body]*Brick
	alive  int
}

// NewBrickField lays out the grid and adds every brick to the world.
func NewBrickField(w *physics.World, cfg config.BreakoutBricks, screenW, screenH float64) (*BrickField, error) {
	specs := Layout(cfg, screenW, screenH)
	f := &BrickField{
		bricks: make([]*Brick, 0, len(specs)),
		byBody: make(map[*physics.Body]*Brick, len(specs)),
	}

	for _, spec := range specs {
		body := physics.NewKinematicBody()
		body.Attach(physics.Box(spec.Width, spec.Height), physics.ShapeOptions{
			Category:   physics.CategoryBrick,
			Elasticity: cfg.Elasticity,
		})
		body.SetPosition(physics.Vec(spec.X, spec.Y))

		brick := &Brick{BrickSpec: spec, body: body, alive: true}
		body.UserData = brick
		if err := w.AddBody(body); err != nil {
			return nil, fmt.Errorf("breakout: add brick %d,%d: %w", spec.Col, spec.Row, err)
		}

		f.bricks = append(f.bricks, brick)
		f.byBody[body] = brick
		f.alive++
	}

	return f, nil
}

// Remove takes the brick owning body out of play. Removing an unknown or
// already removed brick is a no-op that returns false.
func (f *BrickField) Remove(w *physics.World, body *physics.Body) bool {
	brick, ok := f.byBody[body]
	if !ok || !brick.alive {
		return false
	}
	if err := w.RemoveBody(body); err != nil {
		return false
	}
	brick.alive = false
	f.alive--
	return true
}

// Alive returns the number of bricks still in play.
func (f *BrickField) Alive() int {
	return f.alive
}

// Total returns the number of bricks the field started with.
func (f *BrickField) Total() int {
	return len(f.bricks)
}

// Bricks returns every brick, removed ones included, in layout order.
func (f *BrickField) Bricks() []*Brick {
	return f.bricks
}

// Cleared reports whether every brick has been removed.
func (f *BrickField) Cleared() bool {
	return f.alive == 0
}
