package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    started_at TEXT NOT NULL,
    finished_at TEXT NOT NULL,
    target_dir TEXT NOT NULL,
    threshold_days INTEGER NOT NULL,
    moved INTEGER NOT NULL DEFAULT 0,
    skipped_locked INTEGER NOT NULL DEFAULT 0,
    skipped_exists INTEGER NOT NULL DEFAULT 0,
    cancelled INTEGER NOT NULL DEFAULT 0,
    failed INTEGER NOT NULL DEFAULT 0,
    status TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS outcomes (
    run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    path TEXT NOT NULL,
    label TEXT NOT NULL DEFAULT '',
    result TEXT NOT NULL,
    detail TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_outcomes_run ON outcomes(run_id);
`

// Run is one recorded invocation.
type Run struct {
	ID            string
	StartedAt     time.Time
	FinishedAt    time.Time
	TargetDir     string
	ThresholdDays int
	Moved         int
	SkippedLocked int
	SkippedExists int
	Cancelled     int
	Failed        int
	Status        string
}

// OutcomeRecord is one per-file result within a run.
type OutcomeRecord struct {
	Path   string
	Label  string
	Result string
	Detail string
}

// Store manages run history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database at path,
// creating parent directories as needed.
func Open(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("history database path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// RecordRun stores a run and its outcomes in one transaction. A zero
// run ID is assigned a fresh UUID; the stored ID is returned.
func (s *Store) RecordRun(ctx context.Context, run Run, outcomes []OutcomeRecord) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin history transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx, `
        INSERT INTO runs (id, started_at, finished_at, target_dir, threshold_days,
            moved, skipped_locked, skipped_exists, cancelled, failed, status)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.StartedAt.UTC().Format(time.RFC3339),
		run.FinishedAt.UTC().Format(time.RFC3339),
		run.TargetDir,
		run.ThresholdDays,
		run.Moved,
		run.SkippedLocked,
		run.SkippedExists,
		run.Cancelled,
		run.Failed,
		run.Status,
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for i, outcome := range outcomes {
		_, err = tx.ExecContext(ctx, `
            INSERT INTO outcomes (run_id, position, path, label, result, detail)
            VALUES (?, ?, ?, ?, ?, ?)`,
			run.ID, i, outcome.Path, outcome.Label, outcome.Result, outcome.Detail,
		)
		if err != nil {
			return "", fmt.Errorf("insert outcome %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit history transaction: %w", err)
	}
	return run.ID, nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, started_at, finished_at, target_dir, threshold_days,
            moved, skipped_locked, skipped_exists, cancelled, failed, status
        FROM runs ORDER BY started_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var started, finished string
		if err := rows.Scan(&run.ID, &started, &finished, &run.TargetDir, &run.ThresholdDays,
			&run.Moved, &run.SkippedLocked, &run.SkippedExists, &run.Cancelled, &run.Failed, &run.Status); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.StartedAt, _ = time.Parse(time.RFC3339, started)
		run.FinishedAt, _ = time.Parse(time.RFC3339, finished)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// RunOutcomes returns the per-file records of one run in plan order.
func (s *Store) RunOutcomes(ctx context.Context, runID string) ([]OutcomeRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT path, label, result, detail
        FROM outcomes WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("query outcomes: %w", err)
	}
	defer rows.Close()

	var records []OutcomeRecord
	for rows.Next() {
		var rec OutcomeRecord
		if err := rows.Scan(&rec.Path, &rec.Label, &rec.Result, &rec.Detail); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
