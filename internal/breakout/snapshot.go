package breakout

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot is the observable simulation state at a tick boundary.
// Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick      uint64
	PaddleX   float64
	PaddleVX  float64
	BallX     float64
	BallY     float64
	BallVX    float64
	BallVY    float64
	BallArmed bool
	BallsLost int
	Launches  int

	// Alive flags in layout order (column-major)
	BrickData []bool
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	bricks := g.bricks.Bricks()
	brickData := make([]bool, len(bricks))
	for i, b := range bricks {
		brickData[i] = b.Alive()
	}

	paddle := g.paddle.Position()
	ballPos := g.ball.Position()
	ballVel := g.ball.Velocity()

	return Snapshot{
		Tick:      g.tick,
		PaddleX:   paddle.X,
		PaddleVX:  g.paddle.Velocity().X,
		BallX:     ballPos.X,
		BallY:     ballPos.Y,
		BallVX:    ballVel.X,
		BallVY:    ballVel.Y,
		BallArmed: g.ball.Armed(),
		BallsLost: g.ballsLost,
		Launches:  g.launches,
		BrickData: brickData,
	}
}

// BricksAlive counts the live bricks in the snapshot.
func (snap *Snapshot) BricksAlive() int {
	n := 0
	for _, alive := range snap.BrickData {
		if alive {
			n++
		}
	}
	return n
}

// Hash returns an FNV-1a hash of the snapshot for determinism testing.
// Floats are hashed by their exact bit patterns.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:]) //nolint:errcheck // hash.Hash never errors
	}

	put(snap.Tick)
	for _, f := range []float64{snap.PaddleX, snap.PaddleVX, snap.BallX, snap.BallY, snap.BallVX, snap.BallVY} {
		put(math.Float64bits(f))
	}
	if snap.BallArmed {
		put(1)
	} else {
		put(0)
	}
	put(uint64(snap.BallsLost)) //#nosec G115 -- hash computation
	put(uint64(snap.Launches))  //#nosec G115 -- hash computation

	for _, alive := range snap.BrickData {
		if alive {
			put(1)
		} else {
			put(0)
		}
	}

	return h.Sum64()
}
