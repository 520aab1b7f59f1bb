package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Vector is the 2D vector type used throughout the world.
type Vector = cp.Vector

// Vec is shorthand for building a Vector.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// ID identifies a body within a World. Zero means "not yet added".
type ID uint64

// GeometryKind selects the collision primitive of a shape.
type GeometryKind uint8

const (
	GeometryCircle GeometryKind = iota
	GeometrySegment
	GeometryBox
)

// Geometry describes a shape in body-local coordinates.
type Geometry struct {
	Kind   GeometryKind
	Radius float64 // Circle radius, or segment half-thickness
	A, B   Vector  // Segment endpoints
	Width  float64 // Box width
	Height float64 // Box height
}

// Circle returns a circle geometry centered on the body.
func Circle(radius float64) Geometry {
	return Geometry{Kind: GeometryCircle, Radius: radius}
}

// Segment returns a thick line geometry from a to b.
func Segment(a, b Vector, radius float64) Geometry {
	return Geometry{Kind: GeometrySegment, A: a, B: b, Radius: radius}
}

// Box returns an axis-aligned box geometry centered on the body.
func Box(width, height float64) Geometry {
	return Geometry{Kind: GeometryBox, Width: width, Height: height}
}

// ShapeOptions holds the material and tagging of a shape.
type ShapeOptions struct {
	Category   Category
	Elasticity float64
	Friction   float64
	Sensor     bool // Reports contacts but applies no response
}

// Shape is collision geometry bound to exactly one Body.
type Shape struct {
	Geometry Geometry
	Options  ShapeOptions

	body  *Body
	shape *cp.Shape
}

// Body returns the owning body.
func (s *Shape) Body() *Body {
	return s.body
}

// Category returns the shape's collision category.
func (s *Shape) Category() Category {
	return s.Options.Category
}

// Body is a rigid body owned by a World once added.
type Body struct {
	id       ID
	kind     Kind
	body     *cp.Body
	shapes   []*Shape
	override VelocityOverride
	world    *World

	// UserData is free for the owning component.
	UserData any
}

// NewDynamicBody creates a body driven by the integrator.
// Pass math.Inf(1) as moment for a body that never rotates.
func NewDynamicBody(mass, moment float64) *Body {
	b := &Body{kind: KindDynamic, body: cp.NewBody(mass, moment)}
	b.body.UserData = b
	return b
}

// NewKinematicBody creates a body that moves only by its own velocity
// and is unaffected by collisions.
func NewKinematicBody() *Body {
	b := &Body{kind: KindKinematic, body: cp.NewKinematicBody()}
	b.body.UserData = b
	return b
}

// MomentForCircle returns the rotational inertia of a solid disc.
func MomentForCircle(mass, radius float64) float64 {
	return cp.MomentForCircle(mass, 0, radius, cp.Vector{})
}

// InfiniteMoment is the inertia of a body that never rotates.
var InfiniteMoment = math.Inf(1)

// ID returns the body identifier assigned by its world.
func (b *Body) ID() ID {
	return b.id
}

// Kind returns the body simulation type.
func (b *Body) Kind() Kind {
	return b.kind
}

// Shapes returns the shapes attached to the body.
func (b *Body) Shapes() []*Shape {
	return b.shapes
}

// Position returns the body's center of gravity in world coordinates.
func (b *Body) Position() Vector {
	return b.body.Position()
}

// SetPosition teleports the body.
func (b *Body) SetPosition(p Vector) {
	b.body.SetPosition(p)
}

// Velocity returns the linear velocity.
func (b *Body) Velocity() Vector {
	return b.body.Velocity()
}

// SetVelocity sets the linear velocity.
func (b *Body) SetVelocity(v Vector) {
	b.body.SetVelocityVector(v)
}

// ApplyImpulse applies an impulse at the body's center.
func (b *Body) ApplyImpulse(impulse Vector) {
	b.body.ApplyImpulseAtLocalPoint(impulse, cp.Vector{})
}

// Mass returns the body's mass.
func (b *Body) Mass() float64 {
	return b.body.Mass()
}

// SetVelocityOverride installs (or clears, with nil) the strategy that rewrites
// velocity at the end of each step, after the contact solver. Only dynamic
// bodies are overridden.
func (b *Body) SetVelocityOverride(o VelocityOverride) {
	b.override = o
}

// Attach binds a new shape to the body. If the body is already in a world the
// shape joins the simulation immediately.
func (b *Body) Attach(geom Geometry, opts ShapeOptions) *Shape {
	s := &Shape{Geometry: geom, Options: opts, body: b}

	switch geom.Kind {
	case GeometryCircle:
		s.shape = cp.NewCircle(b.body, geom.Radius, cp.Vector{})
	case GeometrySegment:
		s.shape = cp.NewSegment(b.body, geom.A, geom.B, geom.Radius)
	case GeometryBox:
		s.shape = cp.NewBox(b.body, geom.Width, geom.Height, 0)
	}

	s.shape.UserData = s
	s.shape.SetElasticity(opts.Elasticity)
	s.shape.SetFriction(opts.Friction)
	s.shape.SetCollisionType(opts.Category.collisionType())
	s.shape.SetSensor(opts.Sensor)

	b.shapes = append(b.shapes, s)
	if b.world != nil {
		b.world.addShape(s)
	}
	return s
}
