package loop

import "time"

// Clock paces the loop. Tick blocks until the next tick is due and returns
// the step length in seconds.
type Clock interface {
	Tick() float64
}

// RealClock paces ticks to wall time with a time.Ticker. The returned step
// is always the nominal 1/hz, so late ticks never stretch dt.
type RealClock struct {
	ticker *time.Ticker
	dt     float64
}

// NewRealClock creates a clock firing hz times per second.
func NewRealClock(hz int) *RealClock {
	if hz <= 0 {
		hz = 60
	}
	return &RealClock{
		ticker: time.NewTicker(time.Second / time.Duration(hz)),
		dt:     1.0 / float64(hz),
	}
}

// Tick waits for the next ticker fire.
func (c *RealClock) Tick() float64 {
	<-c.ticker.C
	return c.dt
}

// Stop releases the ticker.
func (c *RealClock) Stop() {
	c.ticker.Stop()
}

// FixedClock returns a constant step without waiting. Used for headless runs.
type FixedClock struct {
	DT    float64
	ticks uint64
}

// NewFixedClock creates a non-blocking clock for hz ticks per simulated second.
func NewFixedClock(hz int) *FixedClock {
	if hz <= 0 {
		hz = 60
	}
	return &FixedClock{DT: 1.0 / float64(hz)}
}

// Tick returns the fixed step immediately.
func (c *FixedClock) Tick() float64 {
	c.ticks++
	return c.DT
}

// Ticks returns how many steps the clock has handed out.
func (c *FixedClock) Ticks() uint64 {
	return c.ticks
}
