// breakout is a fixed-step ball-and-paddle simulation with a terminal front end.
//
// Usage:
//
//	breakout play            - Play in the terminal
//	breakout sim             - Run headless with an autopilot and print stats
//	breakout runs            - Show the run journal (--tui to browse it)
//	breakout config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--config <path>    - Custom configuration YAML
//	--db <path>        - Set journal path (default: ~/.breakout/runs.db)
//	--log-level <lvl>  - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
	flagStrict   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - a rigid-body ball and paddle game in your terminal",
	Long: `Breakout runs a ball-and-paddle simulation on a 2D rigid-body physics
engine at a fixed tick rate and draws it in the terminal.

Available commands:
  play     - Play in the terminal
  sim      - Run headless and print the outcome
  runs     - Show the run journal
  config   - Print the default configuration

Examples:
  breakout play
  breakout play --fps 30 --config ./my-breakout.yaml
  breakout sim --ticks 3600
  breakout runs`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breakout/runs.db", "Path to run journal database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "Panic on simulation invariant violations")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. If quiet is set and no log file was
// given, output is discarded so it cannot tear the terminal UI.
func newLogger(quiet bool) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closer := func() {}

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	case quiet:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		closer()
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	return logger, closer, nil
}
