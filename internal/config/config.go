// Package config provides YAML-based configuration loading for the breakout
// simulation.
package config

// BreakoutConfig contains all tunables of the simulation.
type BreakoutConfig struct {
	Physics BreakoutPhysics `yaml:"physics"`
	Paddle  BreakoutPaddle  `yaml:"paddle"`
	Ball    BreakoutBall    `yaml:"ball"`
	Bricks  BreakoutBricks  `yaml:"bricks"`
	Analog  BreakoutAnalog  `yaml:"analog"`
}

// BreakoutPhysics defines world-level and speed parameters.
type BreakoutPhysics struct {
	BallSpeed      float64 `yaml:"ball_speed"`      // Launched ball speed, units/s
	PaddleSpeed    float64 `yaml:"paddle_speed"`    // Discrete-key paddle speed, units/s
	LaunchImpulse  float64 `yaml:"launch_impulse"`  // Upward impulse applied on launch
	WallElasticity float64 `yaml:"wall_elasticity"` // Top/left/right walls
	WallThickness  float64 `yaml:"wall_thickness"`  // Segment radius of every boundary
	Iterations     int     `yaml:"iterations"`      // Solver iterations per step
}

// BreakoutPaddle defines the paddle body.
type BreakoutPaddle struct {
	LengthFraction float64 `yaml:"length_fraction"` // Of screen width
	Height         float64 `yaml:"height"`          // Y of the paddle track
	Mass           float64 `yaml:"mass"`
	Thickness      float64 `yaml:"thickness"` // Segment radius
	Elasticity     float64 `yaml:"elasticity"`
	Friction       float64 `yaml:"friction"`
}

// BreakoutBall defines the ball body.
type BreakoutBall struct {
	RadiusFraction float64 `yaml:"radius_fraction"` // Of screen height
	DockMargin     float64 `yaml:"dock_margin"`     // Gap between paddle line and docked ball
	Mass           float64 `yaml:"mass"`
	Elasticity     float64 `yaml:"elasticity"`
	Friction       float64 `yaml:"friction"`
}

// BreakoutBricks defines the brick grid layout.
type BreakoutBricks struct {
	Columns        int     `yaml:"columns"`
	Rows           int     `yaml:"rows"`
	MarginFraction float64 `yaml:"margin_fraction"` // Horizontal margin, of screen width
	BandStart      float64 `yaml:"band_start"`      // Lowest row, of screen height
	HeightFraction float64 `yaml:"height_fraction"` // Row height, of screen height
	Gap            float64 `yaml:"gap"`             // Inset per axis between bricks
	Elasticity     float64 `yaml:"elasticity"`
}

// BreakoutAnalog defines the optional analog steering.
type BreakoutAnalog struct {
	Enabled  bool       `yaml:"enabled"`
	Gain     float64    `yaml:"gain"`
	Scale    float64    `yaml:"scale"`
	Baseline [4]float64 `yaml:"baseline"` // Used when no calibration sample is taken
}

// PaddleLength returns the paddle length for a screen width, in whole units.
func (c BreakoutConfig) PaddleLength(screenW int) float64 {
	return float64(int(c.Paddle.LengthFraction * float64(screenW)))
}

// BallRadius returns the ball radius for a screen height, in whole units.
func (c BreakoutConfig) BallRadius(screenH int) float64 {
	return float64(int(c.Ball.RadiusFraction * float64(screenH)))
}
