// Package store keeps a history of solved answers in a SQLite database.
//
// Each run is keyed by day and input checksum, so a later run can tell
// whether a code change altered the answer for the same input.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// ErrNotFound is returned when no stored run matches a query.
var ErrNotFound = errors.New("store: no stored run")

// Run is one recorded solve.
type Run struct {
	ID       int64         `json:"id"`
	Day      int           `json:"day"`
	Part1    string        `json:"part1"`
	Part2    string        `json:"part2"`
	InputSum string        `json:"input_sum"`
	Duration time.Duration `json:"duration_ns"`
	SolvedAt time.Time     `json:"solved_at"`
}

// Store wraps the history database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the database at path, creating its directory.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite has a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	s := &Store{db: db, path: path}

	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if err := s.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		day INTEGER NOT NULL,
		part1 TEXT NOT NULL,
		part2 TEXT NOT NULL,
		input_sum TEXT NOT NULL,
		duration_ns INTEGER NOT NULL,
		solved_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_day ON runs(day, solved_at);
	CREATE INDEX IF NOT EXISTS idx_runs_input ON runs(day, input_sum);
	`

	_, err := s.db.ExecContext(context.Background(), schema)
	return err
}

// Record inserts r and returns it with ID set. A zero SolvedAt is replaced
// by the current time.
func (s *Store) Record(ctx context.Context, r Run) (Run, error) {
	if r.SolvedAt.IsZero() {
		r.SolvedAt = time.Now()
	}

	res, err := s.db.ExecContext(ctx, `
	INSERT INTO runs (day, part1, part2, input_sum, duration_ns, solved_at)
	VALUES (?, ?, ?, ?, ?, ?)`,
		r.Day, r.Part1, r.Part2, r.InputSum, int64(r.Duration), r.SolvedAt.UnixNano(),
	)
	if err != nil {
		return r, fmt.Errorf("failed to record run: %w", err)
	}
	if r.ID, err = res.LastInsertId(); err != nil {
		return r, fmt.Errorf("failed to read run id: %w", err)
	}

	return r, nil
}

// Latest returns the most recent run of day for the given input checksum,
// or ErrNotFound.
func (s *Store) Latest(ctx context.Context, day int, inputSum string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
	SELECT id, day, part1, part2, input_sum, duration_ns, solved_at
	FROM runs
	WHERE day = ? AND input_sum = ?
	ORDER BY solved_at DESC, id DESC
	LIMIT 1`, day, inputSum)

	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: day %d", ErrNotFound, day)
	}
	if err != nil {
		return Run{}, fmt.Errorf("failed to get latest run: %w", err)
	}

	return r, nil
}

// History returns up to limit runs of day, newest first. limit <= 0 means all.
func (s *Store) History(ctx context.Context, day, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
	SELECT id, day, part1, part2, input_sum, duration_ns, solved_at
	FROM runs
	WHERE day = ?
	ORDER BY solved_at DESC, id DESC
	LIMIT ?`, day, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		r        Run
		duration int64
		solvedAt int64
	)
	if err := sc.Scan(&r.ID, &r.Day, &r.Part1, &r.Part2, &r.InputSum, &duration, &solvedAt); err != nil {
		return Run{}, err
	}
	r.Duration = time.Duration(duration)
	r.SolvedAt = time.Unix(0, solvedAt)

	return r, nil
}
