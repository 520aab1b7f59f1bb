package physics

import "github.com/jakecoffman/cp"

// Constraint restricts the relative motion of two bodies.
type Constraint struct {
	a, b       *Body
	constraint *cp.Constraint
	world      *World
}

// NewGrooveJoint pins anchor (local to b) onto the segment grooveA-grooveB
// (local to a). With the world's static body as a, b slides along a fixed line.
func NewGrooveJoint(a, b *Body, grooveA, grooveB, anchor Vector) *Constraint {
	return &Constraint{
		a:          a,
		b:          b,
		constraint: cp.NewGrooveJoint(a.body, b.body, grooveA, grooveB, anchor),
	}
}

// Bodies returns the two constrained bodies.
func (c *Constraint) Bodies() (*Body, *Body) {
	return c.a, c.b
}

// References reports whether the constraint involves body.
func (c *Constraint) References(body *Body) bool {
	return c.a == body || c.b == body
}

// Active reports whether the constraint is currently in a world.
func (c *Constraint) Active() bool {
	return c.world != nil
}
