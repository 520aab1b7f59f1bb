package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/loop"
)

var (
	flagTicks    uint64
	flagSimW     int
	flagSimH     int
	flagRealtime bool
	flagIdle     bool
	flagDeadzone float64
	flagSave     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless and print the outcome",
	Long: `Run the simulation without a terminal UI. An autopilot keeps the paddle
under the ball and launches it whenever it is docked.

Examples:
  breakout sim --ticks 3600
  breakout sim --ticks 600 --idle
  breakout sim --realtime --log-level debug
  breakout sim --save`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().Uint64Var(&flagTicks, "ticks", 3600, "Number of ticks to run (0 = until interrupted)")
	simCmd.Flags().IntVar(&flagSimW, "world-w", 800, "World width in units")
	simCmd.Flags().IntVar(&flagSimH, "world-h", 600, "World height in units")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks to wall time")
	simCmd.Flags().BoolVar(&flagIdle, "idle", false, "No input at all; the ball stays docked")
	simCmd.Flags().Float64Var(&flagDeadzone, "deadzone", 10, "Autopilot dead zone in world units")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Record the run in the journal")
}

func runSim(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return err
	}

	runtime := core.RuntimeConfig{ScreenW: flagSimW, ScreenH: flagSimH, TickRate: flagFPS}
	game, err := breakout.NewWithOptions(cfg, runtime, breakout.Options{Logger: logger, Strict: flagStrict})
	if err != nil {
		return err
	}

	var clock loop.Clock
	if flagRealtime {
		rc := loop.NewRealClock(runtime.TickRate)
		defer rc.Stop()
		clock = rc
	} else {
		clock = loop.NewFixedClock(runtime.TickRate)
	}

	var input loop.InputSource = loop.NewAutopilot(game, flagDeadzone)
	if flagIdle {
		input = loop.NewScript()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	started := time.Now()
	logger.Info("simulation start", "world", fmt.Sprintf("%dx%d", runtime.ScreenW, runtime.ScreenH),
		"ticks", flagTicks, "realtime", flagRealtime)

	stats, err := loop.New(game, clock, input, nil, loop.Options{MaxTicks: flagTicks, Logger: logger}).Run(ctx)
	if err != nil {
		logger.Warn("simulation interrupted", "error", err)
	}

	logger.Info("simulation end", "elapsed", time.Since(started).Round(time.Millisecond))
	printStats(stats)

	if flagSave {
		saveRuns(logger, runtime, started, []breakout.Stats{stats})
	}
	return nil
}

func printStats(s breakout.Stats) {
	fmt.Printf("Ticks:           %d\n", s.Ticks)
	fmt.Printf("Simulated time:  %.2fs\n", s.SimTime)
	fmt.Printf("Bricks removed:  %d/%d\n", s.BricksRemoved(), s.BricksTotal)
	fmt.Printf("Balls lost:      %d\n", s.BallsLost)
	fmt.Printf("Launches:        %d\n", s.Launches)
}
