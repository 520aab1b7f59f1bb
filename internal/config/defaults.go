package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Physics: BreakoutPhysics{
			BallSpeed:      500,
			PaddleSpeed:    600,
			LaunchImpulse:  10,
			WallElasticity: 0.99,
			WallThickness:  2,
			Iterations:     10,
		},
		Paddle: BreakoutPaddle{
			LengthFraction: 0.25,
			Height:         100,
			Mass:           10,
			Thickness:      4,
			Elasticity:     1.0,
			Friction:       1.0,
		},
		Ball: BreakoutBall{
			RadiusFraction: 0.025,
			DockMargin:     4,
			Mass:           1,
			Elasticity:     1.0,
			Friction:       1.0,
		},
		Bricks: BreakoutBricks{
			Columns:        10,
			Rows:           5,
			MarginFraction: 0.05,
			BandStart:      0.75,
			HeightFraction: 0.03,
			Gap:            5,
			Elasticity:     1.0,
		},
		Analog: BreakoutAnalog{
			Enabled:  false,
			Gain:     15,
			Scale:    400,
			Baseline: [4]float64{-1, -1, -1, -1},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
