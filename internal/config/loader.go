package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidViewport is returned for a non-positive viewport.
	ErrInvalidViewport = errors.New("config: viewport must be positive")
	// ErrPaddleTooWide is returned when the paddle cannot move inside the viewport.
	ErrPaddleTooWide = errors.New("config: paddle length must be less than screen width")
	// ErrInvalidValue is returned for an out-of-range tunable.
	ErrInvalidValue = errors.New("config: invalid value")
)

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.breakout/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("breakout.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/breakout.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	embedded := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(defaultBreakoutYAML, &embedded); err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", "configs", filename)
}

// Validate checks the setup preconditions for a viewport. The simulation does
// not recover from these at runtime.
func (c BreakoutConfig) Validate(screenW, screenH int) error {
	if screenW <= 0 || screenH <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidViewport, screenW, screenH)
	}
	if length := c.PaddleLength(screenW); length <= 0 || length >= float64(screenW) {
		return fmt.Errorf("%w: length %.0f, width %d", ErrPaddleTooWide, length, screenW)
	}
	if c.BallRadius(screenH) <= 0 {
		return fmt.Errorf("%w: ball radius rounds to zero at height %d", ErrInvalidValue, screenH)
	}
	if c.Physics.BallSpeed <= 0 {
		return fmt.Errorf("%w: ball_speed %v", ErrInvalidValue, c.Physics.BallSpeed)
	}
	if c.Paddle.Mass <= 0 || c.Ball.Mass <= 0 {
		return fmt.Errorf("%w: masses must be positive", ErrInvalidValue)
	}
	if c.Bricks.Columns < 0 || c.Bricks.Rows < 0 {
		return fmt.Errorf("%w: negative brick grid %dx%d", ErrInvalidValue, c.Bricks.Columns, c.Bricks.Rows)
	}
	return nil
}

// ValidateStep checks that a launched ball cannot cross a wall in one step of
// dt seconds. Collisions are detected at step boundaries only, so a ball that
// travels its radius plus the wall thickness per step can pass through.
func (c BreakoutConfig) ValidateStep(screenH int, dt float64) error {
	travel := c.Physics.BallSpeed * dt
	if reach := c.BallRadius(screenH) + c.Physics.WallThickness; travel >= reach {
		return fmt.Errorf("%w: ball travels %.1f units per step, walls catch under %.1f (raise the tick rate)",
			ErrInvalidValue, travel, reach)
	}
	return nil
}
