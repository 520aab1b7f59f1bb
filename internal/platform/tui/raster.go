package tui

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/physics"
)

// Glyphs for rasterized shapes
const (
	PaddleChar = '='
	BallChar   = '●'
	WallChar   = '█'
	LossChar   = '·'
)

// BrickGlyphs are used by brick row (cycling through).
var BrickGlyphs = []rune{'█', '▓', '▒', '░'}

// BrickColors are used by brick row (cycling through).
var BrickColors = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
}

// Rasterize draws every shape of the view set into screen. Walls and the
// loss sensor come first so moving bodies draw over them.
func Rasterize(screen *core.Screen, views []physics.BodyView, proj Projection) {
	screen.Clear()
	for _, v := range views {
		for _, s := range v.Shapes {
			drawShape(screen, v, s, proj)
		}
	}
}

func drawShape(screen *core.Screen, v physics.BodyView, s physics.ShapeView, proj Projection) {
	g := s.Geometry
	pos := v.Position

	switch g.Kind {
	case physics.GeometrySegment:
		x0, y0 := proj.Cell(pos.X+g.A.X, pos.Y+g.A.Y)
		x1, y1 := proj.Cell(pos.X+g.B.X, pos.Y+g.B.Y)
		cols, rows := proj.Size()
		x0, x1 = core.Clamp(x0, 0, cols-1), core.Clamp(x1, 0, cols-1)
		y0, y1 = core.Clamp(y0, 0, rows-1), core.Clamp(y1, 0, rows-1)

		switch {
		case s.Sensor:
			screen.DrawLine(x0, y0, x1, y1, LossChar, core.ColorGray)
		case s.Category == physics.CategoryPaddle:
			screen.DrawLine(x0, y0, x1, y1, PaddleChar, core.ColorBrightCyan)
		default:
			screen.DrawLine(x0, y0, x1, y1, WallChar, core.ColorGray)
		}

	case physics.GeometryBox:
		w, h := proj.Extent(g.Width, g.Height)
		left, top := proj.Cell(pos.X-g.Width/2, pos.Y+g.Height/2)
		row := top % len(BrickColors)
		if row < 0 {
			row = -row
		}
		glyph := BrickGlyphs[row%len(BrickGlyphs)]
		screen.FillRect(core.NewRect(left, top, w, h), glyph, BrickColors[row])

	case physics.GeometryCircle:
		col, row := proj.Cell(pos.X, pos.Y)
		screen.SetColored(col, row, BallChar, core.ColorBrightWhite)
	}
}
