package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestSteeringVelocity(t *testing.T) {
	s := NewSteering(config.DefaultBreakoutConfig().Analog)

	tests := []struct {
		name string
		raw  core.AxisFrame
		want float64
	}{
		{"at rest", core.AxisFrame{-1, -1, -1, -1}, 0},
		{"left track pushed", core.AxisFrame{0, 0, -1, -1}, 6000},
		{"right track pushed", core.AxisFrame{-1, -1, 0, 0}, -6000},
		{"half left", core.AxisFrame{-0.5, -0.5, -1, -1}, 3000},
		{"both tracks", core.AxisFrame{0, 0, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := s.Velocity(tt.raw)
			if !ok {
				t.Fatal("Velocity reported an unusable baseline")
			}
			if got != tt.want {
				t.Errorf("Velocity(%v) = %v, expected %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestSteeringZeroBaseline(t *testing.T) {
	s := NewSteering(config.DefaultBreakoutConfig().Analog)
	s.Calibrate(core.AxisFrame{-1, -1, 0, -1})

	if s.Usable() {
		t.Error("baseline with a zero axis should be unusable")
	}
	if _, ok := s.Velocity(core.AxisFrame{}); ok {
		t.Error("Velocity should refuse a zero baseline")
	}
}

func TestSteeringCalibrate(t *testing.T) {
	s := NewSteering(config.DefaultBreakoutConfig().Analog)
	s.Calibrate(core.AxisFrame{-2, -2, -2, -2})

	got, ok := s.Velocity(core.AxisFrame{-1, -1, -2, -2})
	if !ok {
		t.Fatal("Velocity reported an unusable baseline")
	}
	// Left axes normalize to 0.5, right to 0
	if got != 3000 {
		t.Errorf("Velocity = %v, expected 3000", got)
	}
}
