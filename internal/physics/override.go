package physics

// VelocityOverride rewrites a body's velocity once per physics step, after the
// integrator and the contact solver have run.
type VelocityOverride interface {
	Apply(v Vector, dt float64) Vector
}

// OverrideFunc adapts a plain function to VelocityOverride.
type OverrideFunc func(v Vector, dt float64) Vector

// Apply calls f.
func (f OverrideFunc) Apply(v Vector, dt float64) Vector {
	return f(v, dt)
}

// minDirection is the speed below which a velocity has no usable direction.
const minDirection = 1e-9

// ConstantSpeed returns an override that keeps the direction of travel and
// discards any change of magnitude. A body at rest stays at rest.
func ConstantSpeed(speed float64) OverrideFunc {
	return func(v Vector, _ float64) Vector {
		length := v.Length()
		if length < minDirection {
			return v
		}
		return v.Mult(speed / length)
	}
}
