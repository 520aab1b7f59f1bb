package physics

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
)

var (
	// ErrBodyInUse is returned when removing a body that a live constraint references.
	ErrBodyInUse = errors.New("physics: body referenced by a live constraint")
	// ErrNotInWorld is returned when removing something the world does not own.
	ErrNotInWorld = errors.New("physics: not in this world")
	// ErrAlreadyAdded is returned when adding something the world already owns.
	ErrAlreadyAdded = errors.New("physics: already in a world")
	// ErrWorldLocked is returned when Step is re-entered from a handler.
	ErrWorldLocked = errors.New("physics: world is stepping")
)

// Options configures a new World.
type Options struct {
	// Iterations is the solver iteration count (cp default is 10).
	Iterations int

	// Strict turns invariant violations into panics instead of logged skips.
	Strict bool

	// Logger receives debug traces and violation warnings. Nil discards.
	Logger *log.Logger
}

// Contact is a colliding pair reported to a handler, ordered as registered.
type Contact struct {
	A, B           *Body
	ShapeA, ShapeB *Shape
}

// Handler observes the first and last contact frame of a category pair.
// Either callback may be nil. Callbacks run synchronously inside Step.
type Handler struct {
	Begin    func(w *World, c Contact)
	Separate func(w *World, c Contact)
}

// registration is one resolved (category pair, handler) entry.
type registration struct {
	A, B    Category
	Handler Handler
}

// World owns every body, shape and constraint of the simulation.
//
// Mutations requested while the world is locked (inside Step or while it is
// detaching a body) are queued and applied, in order, before Step returns.
type World struct {
	space  *cp.Space
	static *Body

	bodies      []*Body
	constraints []*Constraint
	handlers    []registration

	locked   int
	pending  []func()
	removing map[*Body]bool

	nextID ID
	steps  uint64
	time   float64

	strict bool
	logger *log.Logger
}

// NewWorld creates an empty world with no gravity.
func NewWorld(opts Options) *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	if opts.Iterations > 0 {
		space.Iterations = uint(opts.Iterations)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w := &World{
		space:    space,
		removing: make(map[*Body]bool),
		strict:   opts.Strict,
		logger:   logger,
	}

	w.static = &Body{kind: KindStatic, body: space.StaticBody, world: w}
	space.StaticBody.UserData = w.static
	w.nextID++
	w.static.id = w.nextID

	return w
}

// Static returns the world's immovable body. Shapes attached to it join the
// world at once.
func (w *World) Static() *Body {
	return w.static
}

// Steps returns the number of completed steps.
func (w *World) Steps() uint64 {
	return w.steps
}

// Time returns the simulated time in seconds.
func (w *World) Time() float64 {
	return w.time
}

// Contains reports whether body is currently owned by the world and not
// scheduled for removal.
func (w *World) Contains(body *Body) bool {
	return body != nil && body.world == w && !w.removing[body]
}

// Bodies returns the live non-static bodies in insertion order.
func (w *World) Bodies() []*Body {
	return slices.Clone(w.bodies)
}

// ConstraintsOn returns how many live constraints reference body.
func (w *World) ConstraintsOn(body *Body) int {
	n := 0
	for _, c := range w.constraints {
		if c.References(body) {
			n++
		}
	}
	return n
}

// AddBody hands ownership of body and its shapes to the world.
func (w *World) AddBody(body *Body) error {
	if body.world != nil {
		return w.violation(ErrAlreadyAdded, "add body", "body", body.id)
	}
	if w.locked > 0 {
		w.pending = append(w.pending, func() { w.addBody(body) })
		return nil
	}
	w.addBody(body)
	return nil
}

func (w *World) addBody(body *Body) {
	if body.world != nil {
		return
	}
	w.nextID++
	body.id = w.nextID
	body.world = w
	w.space.AddBody(body.body)
	for _, s := range body.shapes {
		w.addShape(s)
	}
	w.bodies = append(w.bodies, body)
}

func (w *World) addShape(s *Shape) {
	if w.locked > 0 {
		w.pending = append(w.pending, func() { w.addShape(s) })
		return
	}
	if !w.space.ContainsShape(s.shape) {
		w.space.AddShape(s.shape)
	}
}

// RemoveBody detaches body and its shapes. Removing a body that is no longer
// in the world is a no-op that returns ErrNotInWorld. Inside Step the removal
// is queued; repeated requests for the same body collapse into one.
func (w *World) RemoveBody(body *Body) error {
	if body == nil || body.world != w || body == w.static {
		return ErrNotInWorld
	}
	if w.removing[body] {
		return nil
	}
	if w.locked > 0 {
		w.removing[body] = true
		w.pending = append(w.pending, func() {
			//nolint:errcheck // Violations are logged (or panic in strict mode)
			w.removeBody(body)
		})
		return nil
	}
	err := w.removeBody(body)
	w.flush()
	return err
}

func (w *World) removeBody(body *Body) error {
	if body.world != w {
		delete(w.removing, body)
		return ErrNotInWorld
	}
	if n := w.ConstraintsOn(body); n > 0 {
		delete(w.removing, body)
		return w.violation(ErrBodyInUse, "remove body", "body", body.id, "constraints", n)
	}

	// cp reports separation for the body's open contacts while its shapes are
	// removed; keep it marked so those contacts are dropped as stale.
	w.removing[body] = true
	defer delete(w.removing, body)

	w.locked++
	for _, s := range body.shapes {
		if w.space.ContainsShape(s.shape) {
			w.space.RemoveShape(s.shape)
		}
	}
	if w.space.ContainsBody(body.body) {
		w.space.RemoveBody(body.body)
	}
	w.locked--

	body.world = nil
	if i := slices.Index(w.bodies, body); i >= 0 {
		w.bodies = slices.Delete(w.bodies, i, i+1)
	}
	w.logger.Debug("body removed", "body", body.id, "kind", body.kind)
	return nil
}

// AddConstraint activates c. Both bodies must already be in the world.
func (w *World) AddConstraint(c *Constraint) error {
	if c.world != nil {
		return w.violation(ErrAlreadyAdded, "add constraint")
	}
	if w.locked > 0 {
		w.pending = append(w.pending, func() { w.addConstraint(c) })
		return nil
	}
	w.addConstraint(c)
	return nil
}

func (w *World) addConstraint(c *Constraint) {
	if c.world != nil {
		return
	}
	c.world = w
	w.space.AddConstraint(c.constraint)
	w.constraints = append(w.constraints, c)
}

// RemoveConstraint deactivates c.
func (w *World) RemoveConstraint(c *Constraint) error {
	if c == nil || c.world != w {
		return ErrNotInWorld
	}
	if w.locked > 0 {
		w.pending = append(w.pending, func() { w.removeConstraint(c) })
		return nil
	}
	w.removeConstraint(c)
	w.flush()
	return nil
}

func (w *World) removeConstraint(c *Constraint) {
	if c.world != w {
		return
	}
	w.locked++
	if w.space.ContainsConstraint(c.constraint) {
		w.space.RemoveConstraint(c.constraint)
	}
	w.locked--

	c.world = nil
	if i := slices.Index(w.constraints, c); i >= 0 {
		w.constraints = slices.Delete(w.constraints, i, i+1)
	}
}

// Defer runs fn once the current step finishes, after any queued removals
// requested before it. Outside Step it runs immediately.
func (w *World) Defer(fn func()) {
	if w.locked > 0 {
		w.pending = append(w.pending, fn)
		return
	}
	fn()
	w.flush()
}

// RegisterCollisionHandler installs h for contacts between shapes of
// categories a and b. Contacts are reported with A in category a.
func (w *World) RegisterCollisionHandler(a, b Category, h Handler) {
	ch := w.space.NewCollisionHandler(a.collisionType(), b.collisionType())
	if h.Begin != nil {
		begin := h.Begin
		ch.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
			if c, ok := w.contact(arb); ok {
				begin(w, c)
			}
			return true
		}
	}
	if h.Separate != nil {
		separate := h.Separate
		ch.SeparateFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
			if c, ok := w.contact(arb); ok {
				separate(w, c)
			}
		}
	}
	w.handlers = append(w.handlers, registration{A: a, B: b, Handler: h})
}

// contact resolves an arbiter to wrapped bodies. Pairs involving a body that
// has left (or is leaving) the world are stale and dropped.
func (w *World) contact(arb *cp.Arbiter) (Contact, bool) {
	sa, sb := arb.Shapes()
	a, okA := sa.UserData.(*Shape)
	b, okB := sb.UserData.(*Shape)
	if !okA || !okB {
		return Contact{}, false
	}
	if !w.Contains(a.body) || !w.Contains(b.body) {
		w.logger.Debug("stale contact dropped", "a", a.Category(), "b", b.Category())
		return Contact{}, false
	}
	return Contact{A: a.body, B: b.body, ShapeA: a, ShapeB: b}, true
}

// Step advances the simulation by dt seconds. Collision handlers run inside;
// mutations they request are applied before Step returns.
func (w *World) Step(dt float64) error {
	if w.locked > 0 {
		return w.violation(ErrWorldLocked, "step")
	}

	w.locked++
	w.space.Step(dt)
	w.applyOverrides(dt)
	w.locked--

	w.steps++
	w.time += dt
	w.flush()
	return nil
}

// applyOverrides rewrites the velocity of every dynamic body that carries an
// override. It runs once per step, after integration and contact resolution,
// so the stepped velocity is the one the override produced.
func (w *World) applyOverrides(dt float64) {
	for _, b := range w.bodies {
		if b.kind != KindDynamic || b.override == nil || w.removing[b] {
			continue
		}
		b.body.SetVelocityVector(b.override.Apply(b.body.Velocity(), dt))
	}
}

// flush drains mutations queued while the world was locked. Work queued by
// the drained functions themselves is appended and drained in the same pass.
func (w *World) flush() {
	for len(w.pending) > 0 && w.locked == 0 {
		fn := w.pending[0]
		w.pending = w.pending[1:]
		fn()
	}
}

// violation reports an invariant violation: a panic in strict mode, a logged
// skip otherwise.
func (w *World) violation(err error, op string, keyvals ...any) error {
	if w.strict {
		panic(fmt.Errorf("%s: %w", op, err))
	}
	w.logger.Warn("invariant violation skipped", append([]any{"op", op, "err", err}, keyvals...)...)
	return err
}
