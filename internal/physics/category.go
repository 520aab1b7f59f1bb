// Package physics wraps the Chipmunk2D port (github.com/jakecoffman/cp) behind a
// small world API: owned bodies and shapes, groove constraints, per-body velocity
// overrides, and collision handlers keyed by a closed set of categories.
package physics

import "github.com/jakecoffman/cp"

// Category tags a shape for collision dispatch.
// The set is closed; values double as cp collision types.
type Category uint8

const (
	CategoryNone   Category = iota // Untagged (side and top walls)
	CategoryBall                   // The ball
	CategoryBrick                  // Destructible bricks
	CategoryBottom                 // The loss sensor below the paddle
	CategoryPaddle                 // The player's paddle
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case CategoryNone:
		return "none"
	case CategoryBall:
		return "ball"
	case CategoryBrick:
		return "brick"
	case CategoryBottom:
		return "bottom"
	case CategoryPaddle:
		return "paddle"
	default:
		return "unknown"
	}
}

func (c Category) collisionType() cp.CollisionType {
	return cp.CollisionType(c)
}

// Kind is the body simulation type.
type Kind uint8

const (
	KindDynamic Kind = iota
	KindKinematic
	KindStatic
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindDynamic:
		return "dynamic"
	case KindKinematic:
		return "kinematic"
	case KindStatic:
		return "static"
	default:
		return "unknown"
	}
}
