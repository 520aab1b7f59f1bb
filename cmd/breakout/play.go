package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// World units per terminal cell. Cells are about twice as tall as wide.
const (
	unitsPerCol = 10
	unitsPerRow = 20
)

var (
	flagWorldW int
	flagWorldH int
	flagHold   int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game sized to the terminal.

Controls:
  ←/A, →/D   - Move the paddle (held while the key repeats)
  ↓/S        - Stop the paddle
  Space/↑    - Launch the docked ball
  P/Esc      - Pause
  R          - Restart
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Examples:
  breakout play
  breakout play --world-w 800 --world-h 600
  breakout play --hold 20`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagWorldW, "world-w", 0, "World width in units (0 = from terminal size)")
	playCmd.Flags().IntVar(&flagWorldH, "world-h", 0, "World height in units (0 = from terminal size)")
	playCmd.Flags().IntVar(&flagHold, "hold", 0, "Ticks a move key stays held without a repeat (0 = auto)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  flagWorldW,
		ScreenH:  flagWorldH,
		TickRate: flagFPS,
	}
	if runtime.ScreenW <= 0 {
		runtime.ScreenW = width * unitsPerCol
	}
	if runtime.ScreenH <= 0 {
		runtime.ScreenH = max(height-2, 1) * unitsPerRow
	}

	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return err
	}

	game, err := breakout.NewWithOptions(cfg, runtime, breakout.Options{Logger: logger, Strict: flagStrict})
	if err != nil {
		return err
	}

	logger.Info("session start", "world", fmt.Sprintf("%dx%d", runtime.ScreenW, runtime.ScreenH),
		"terminal", fmt.Sprintf("%dx%d", width, height), "fps", runtime.TickRate)
	started := time.Now()

	runs, err := tui.Run(game, tui.Options{
		HoldTicks: flagHold,
		Width:     width,
		Height:    height,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	logger.Info("session end", "games", len(runs), "elapsed", time.Since(started).Round(time.Second))
	saveRuns(logger, runtime, started, runs)
	return nil
}

// saveRuns journals every game that ran at least one tick. Best effort.
func saveRuns(logger *log.Logger, runtime core.RuntimeConfig, started time.Time, runs []breakout.Stats) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run journal", "error", err)
		return
	}
	defer store.Close()

	for _, s := range runs {
		if s.Ticks == 0 {
			continue
		}
		if _, err := store.SaveRun(journalEntry(runtime, started, s)); err != nil {
			logger.Warn("could not save run", "error", err)
		}
	}
}

// journalEntry converts game stats to a journal row.
func journalEntry(runtime core.RuntimeConfig, started time.Time, s breakout.Stats) storage.RunEntry {
	return storage.RunEntry{
		StartedAt:     started,
		Ticks:         s.Ticks,
		BricksRemoved: s.BricksRemoved(),
		BallsLost:     s.BallsLost,
		Launches:      s.Launches,
		ScreenW:       runtime.ScreenW,
		ScreenH:       runtime.ScreenH,
	}
}
