package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestRasterizeGame(t *testing.T) {
	g, err := breakout.New(config.DefaultBreakoutConfig(), core.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	screen := core.NewScreen(80, 30)
	Rasterize(screen, g.Views(), NewProjection(800, 600, 80, 30))
	out := screen.String()

	if n := strings.Count(out, string(BallChar)); n != 1 {
		t.Errorf("expected exactly one ball glyph, got %d", n)
	}
	if !strings.ContainsRune(out, PaddleChar) {
		t.Error("expected paddle glyph")
	}
	if !strings.ContainsRune(out, LossChar) {
		t.Error("expected loss sensor glyph")
	}

	// Paddle row: world y=100 lands on row 25
	if row := screen.Row(25); !strings.ContainsRune(row, PaddleChar) {
		t.Errorf("paddle not on row 25: %q", row)
	}
	// Top wall on row 0
	if row := screen.Row(0); strings.Count(row, string(WallChar)) < 70 {
		t.Errorf("top wall missing from row 0: %q", row)
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	screen := core.NewScreen(3, 2)
	screen.SetColored(0, 0, 'x', core.ColorRed)
	screen.Set(1, 1, 'y')

	out := RenderScreen(screen)
	if !strings.Contains(out, "x") || !strings.Contains(out, "y") {
		t.Errorf("rendered output lost content: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}
