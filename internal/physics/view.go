package physics

// ShapeView is the renderable description of one shape.
type ShapeView struct {
	Geometry Geometry
	Category Category
	Sensor   bool
}

// BodyView is the renderable description of one body and its shapes.
// Positions are in world units with +Y up.
type BodyView struct {
	ID       ID
	Kind     Kind
	Position Vector
	Velocity Vector
	Shapes   []ShapeView
}

// View describes a single body.
func (b *Body) View() BodyView {
	v := BodyView{
		ID:       b.id,
		Kind:     b.kind,
		Position: b.Position(),
		Velocity: b.Velocity(),
		Shapes:   make([]ShapeView, 0, len(b.shapes)),
	}
	for _, s := range b.shapes {
		v.Shapes = append(v.Shapes, ShapeView{
			Geometry: s.Geometry,
			Category: s.Options.Category,
			Sensor:   s.Options.Sensor,
		})
	}
	return v
}

// Views returns the full live set for a renderer: the static body first,
// then every other body in insertion order.
func (w *World) Views() []BodyView {
	views := make([]BodyView, 0, len(w.bodies)+1)
	if len(w.static.shapes) > 0 {
		views = append(views, w.static.View())
	}
	for _, b := range w.bodies {
		views = append(views, b.View())
	}
	return views
}
