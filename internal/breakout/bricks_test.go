package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

func TestLayoutGrid(t *testing.T) {
	specs := Layout(config.DefaultBreakoutConfig().Bricks, 800, 600)

	if len(specs) != 50 {
		t.Fatalf("Layout returned %d bricks, expected 50", len(specs))
	}

	first := specs[0]
	if first.X != 76 || first.Y != 450 {
		t.Errorf("first brick at (%v, %v), expected (76, 450)", first.X, first.Y)
	}
	if first.Width != 67 || first.Height != 13 {
		t.Errorf("brick size %vx%v, expected 67x13", first.Width, first.Height)
	}

	last := specs[len(specs)-1]
	if last.Col != 9 || last.Row != 4 {
		t.Errorf("last brick is %d,%d, expected 9,4", last.Col, last.Row)
	}
	if last.X != 724 || last.Y != 522 {
		t.Errorf("last brick at (%v, %v), expected (724, 522)", last.X, last.Y)
	}
}

func TestLayoutEmptyGrid(t *testing.T) {
	cfg := config.DefaultBreakoutConfig().Bricks
	cfg.Columns = 0

	if specs := Layout(cfg, 800, 600); len(specs) != 0 {
		t.Errorf("Layout returned %d bricks for zero columns", len(specs))
	}
}

func TestLayoutNoOverlap(t *testing.T) {
	specs := Layout(config.DefaultBreakoutConfig().Bricks, 800, 600)

	for i, a := range specs {
		for _, b := range specs[i+1:] {
			dx := a.X - b.X
			dy := a.Y - b.Y
			if dx < 0 {
				dx = -dx
			}
			if dy < 0 {
				dy = -dy
			}
			if dx < (a.Width+b.Width)/2 && dy < (a.Height+b.Height)/2 {
				t.Fatalf("bricks %d,%d and %d,%d overlap", a.Col, a.Row, b.Col, b.Row)
			}
		}
	}
}
