package main

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestJournalEntry(t *testing.T) {
	started := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	runtime := core.RuntimeConfig{ScreenW: 800, ScreenH: 440, TickRate: 60}
	stats := breakout.Stats{Ticks: 900, BricksTotal: 50, BricksRemaining: 42, BallsLost: 2, Launches: 3}

	e := journalEntry(runtime, started, stats)

	if e.BricksRemoved != 8 {
		t.Errorf("BricksRemoved = %d, expected 8", e.BricksRemoved)
	}
	if e.Ticks != 900 || e.BallsLost != 2 || e.Launches != 3 {
		t.Errorf("unexpected entry %+v", e)
	}
	if e.ScreenW != 800 || e.ScreenH != 440 || !e.StartedAt.Equal(started) {
		t.Errorf("unexpected viewport or time in %+v", e)
	}
}

func TestRootCommandWiring(t *testing.T) {
	want := map[string]bool{"play": false, "sim": false, "runs": false, "config": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRunsFlags(t *testing.T) {
	for _, name := range []string{"limit", "clear", "tui"} {
		if runsCmd.Flags().Lookup(name) == nil {
			t.Errorf("runs flag --%s not registered", name)
		}
	}
}
