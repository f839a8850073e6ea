// Package storage keeps the run history in a local SQLite database.
// The simulation never touches it; the shell records a row when a run
// ends and reads the table back for the title screen. A failed open
// disables history for the session, nothing else.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store wraps the SQLite connection
type Store struct {
	conn *sql.DB
}

// RunRow is one completed run
type RunRow struct {
	ID        int64
	Score     int
	Kills     int
	Waves     int
	Zone      int
	PlayTime  int // seconds
	Seed      uint64
	CreatedAt time.Time
}

// Open opens (or creates) the history database
func Open(path string) (*Store, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history db: %w", err)
	}

	// WAL keeps the insert at game-over from blocking on a reader
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to set journal mode: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to migrate history db: %w", err)
	}
	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.conn.Close()
}

// migrate creates tables if they don't exist
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		score INTEGER NOT NULL DEFAULT 0,
		kills INTEGER NOT NULL DEFAULT 0,
		waves INTEGER NOT NULL DEFAULT 0,
		zone INTEGER NOT NULL DEFAULT 0,
		play_time INTEGER NOT NULL DEFAULT 0,
		seed INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// RecordRun inserts a completed run and returns its ID
func (s *Store) RecordRun(r RunRow) (int64, error) {
	res, err := s.conn.Exec(
		"INSERT INTO runs (score, kills, waves, zone, play_time, seed) VALUES (?, ?, ?, ?, ?, ?)",
		r.Score, r.Kills, r.Waves, r.Zone, r.PlayTime, int64(r.Seed),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// TopRuns returns the highest-scoring runs, best first. Ties go to the
// earlier run; a matched high score never displaces the original.
func (s *Store) TopRuns(limit int) ([]RunRow, error) {
	rows, err := s.conn.Query(`
		SELECT id, score, kills, waves, zone, play_time, seed, created_at
		FROM runs
		ORDER BY score DESC, created_at ASC, id ASC
		LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []RunRow
	for rows.Next() {
		var r RunRow
		var seed int64
		if err := rows.Scan(&r.ID, &r.Score, &r.Kills, &r.Waves, &r.Zone, &r.PlayTime, &seed, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.Seed = uint64(seed)
		result = append(result, r)
	}
	return result, rows.Err()
}

// BestScore returns the highest recorded score, 0 for an empty table
func (s *Store) BestScore() (int, error) {
	var best int
	err := s.conn.QueryRow("SELECT COALESCE(MAX(score), 0) FROM runs").Scan(&best)
	return best, err
}

// RunCount returns the number of recorded runs
func (s *Store) RunCount() (int, error) {
	var count int
	err := s.conn.QueryRow("SELECT COUNT(*) FROM runs").Scan(&count)
	return count, err
}
