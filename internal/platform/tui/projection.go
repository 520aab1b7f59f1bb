package tui

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Projection maps world units (origin bottom-left, +Y up) onto terminal
// cells (origin top-left, +row down).
type Projection struct {
	toCell  mgl64.Mat3
	toWorld mgl64.Mat3
	cols    int
	rows    int
}

// NewProjection fits a worldW x worldH viewport into cols x rows cells.
func NewProjection(worldW, worldH float64, cols, rows int) Projection {
	cols = max(cols, 1)
	rows = max(rows, 1)
	sx := float64(cols) / worldW
	sy := float64(rows) / worldH

	toCell := mgl64.Translate2D(0, float64(rows)).Mul3(mgl64.Scale2D(sx, -sy))
	return Projection{
		toCell:  toCell,
		toWorld: toCell.Inv(),
		cols:    cols,
		rows:    rows,
	}
}

// Size returns the cell grid dimensions.
func (p Projection) Size() (cols, rows int) {
	return p.cols, p.rows
}

// Point projects a world point to fractional cell coordinates.
func (p Projection) Point(x, y float64) (cx, cy float64) {
	v := p.toCell.Mul3x1(mgl64.Vec3{x, y, 1})
	return v[0], v[1]
}

// Cell projects a world point to the cell containing it.
func (p Projection) Cell(x, y float64) (col, row int) {
	cx, cy := p.Point(x, y)
	return int(math.Floor(cx)), int(math.Floor(cy))
}

// cellCenter maps the center of a cell back to world units.
func (p Projection) cellCenter(col, row int) (x, y float64) {
	v := p.toWorld.Mul3x1(mgl64.Vec3{float64(col) + 0.5, float64(row) + 0.5, 1})
	return v[0], v[1]
}

// Extent converts a world width and height to a cell span of at least one.
func (p Projection) Extent(w, h float64) (cols, rows int) {
	sx := p.toCell.At(0, 0)
	sy := -p.toCell.At(1, 1)
	return max(int(math.Round(w*sx)), 1), max(int(math.Round(h*sy)), 1)
}
