package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Steering maps a four-axis analog sample (two axes per track) to a paddle
// velocity, relative to a baseline captured at rest.
type Steering struct {
	baseline core.AxisFrame
	gain     float64
	scale    float64
}

// NewSteering creates steering with the configured baseline.
func NewSteering(cfg config.BreakoutAnalog) *Steering {
	return &Steering{
		baseline: core.AxisFrame(cfg.Baseline),
		gain:     cfg.Gain,
		scale:    cfg.Scale,
	}
}

// Calibrate replaces the rest baseline.
func (s *Steering) Calibrate(sample core.AxisFrame) {
	s.baseline = sample
}

// Baseline returns the rest baseline.
func (s *Steering) Baseline() core.AxisFrame {
	return s.baseline
}

// Usable reports whether every baseline axis is non-zero.
func (s *Steering) Usable() bool {
	for _, b := range s.baseline {
		if b == 0 {
			return false
		}
	}
	return true
}

// Velocity converts a raw sample to a horizontal paddle velocity.
// Each axis is normalized as 1 - raw/baseline; the track averages are
// differenced and scaled. ok is false when the baseline is degenerate.
func (s *Steering) Velocity(raw core.AxisFrame) (vx float64, ok bool) {
	if !s.Usable() {
		return 0, false
	}

	var axis core.AxisFrame
	for i := range raw {
		axis[i] = 1 - raw[i]/s.baseline[i]
	}
	left := (axis[0] + axis[1]) / 2
	right := (axis[2] + axis[3]) / 2
	return s.gain * (left - right) * s.scale, true
}
