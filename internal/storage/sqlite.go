// Package storage provides a SQLite run journal for breakout sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db *sql.DB
}

// RunEntry is the summary of one finished session. Nothing is restored
// from it; it only records what happened.
type RunEntry struct {
	ID            int64
	StartedAt     time.Time
	Ticks         uint64
	BricksRemoved int
	BallsLost     int
	Launches      int
	ScreenW       int
	ScreenH       int
}

// Totals aggregates every journaled run.
type Totals struct {
	Runs          int
	Ticks         int64
	BricksRemoved int64
	BallsLost     int64
	LastRun       time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at DATETIME NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			bricks_removed INTEGER NOT NULL DEFAULT 0,
			balls_lost INTEGER NOT NULL DEFAULT 0,
			launches INTEGER NOT NULL DEFAULT 0,
			screen_w INTEGER NOT NULL,
			screen_h INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run RunEntry) (int64, error) {
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (started_at, ticks, bricks_removed, balls_lost, launches, screen_w, screen_h)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.StartedAt.UTC().Format(time.DateTime),
		int64(run.Ticks), //#nosec G115 -- tick counts fit in int64
		run.BricksRemoved,
		run.BallsLost,
		run.Launches,
		run.ScreenW,
		run.ScreenH,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, started_at, ticks, bricks_removed, balls_lost, launches, screen_w, screen_h
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var startedAt any
		var ticks int64
		if err := rows.Scan(&e.ID, &startedAt, &ticks, &e.BricksRemoved, &e.BallsLost,
			&e.Launches, &e.ScreenW, &e.ScreenH); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Ticks = uint64(ticks) //#nosec G115 -- stored from a uint64
		e.StartedAt = parseTime(startedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Totals aggregates every journaled run.
func (s *Store) Totals() (*Totals, error) {
	t := &Totals{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(ticks), 0), COALESCE(SUM(bricks_removed), 0), COALESCE(SUM(balls_lost), 0)
		 FROM runs`,
	).Scan(&t.Runs, &t.Ticks, &t.BricksRemoved, &t.BallsLost)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get totals: %w", err)
	}

	var last any
	err = s.db.QueryRow(`SELECT started_at FROM runs ORDER BY id DESC LIMIT 1`).Scan(&last)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last run: %w", err)
	}
	if err == nil {
		t.LastRun = parseTime(last)
	}

	return t, nil
}

// ClearRuns deletes every journaled run.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(time.DateTime, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
