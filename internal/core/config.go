package core

// RuntimeConfig contains what the platform supplies before the simulation is
// built. The viewport is fixed for the lifetime of a game.
type RuntimeConfig struct {
	ScreenW  int // Viewport width in world units
	ScreenH  int // Viewport height in world units
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  800,
		ScreenH:  600,
		TickRate: 60,
	}
}

// TickSeconds returns the nominal duration of one tick.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}
