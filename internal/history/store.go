// Package history persists validation run results to a SQLite database so
// past runs can be listed and compared. Writes are serialized across
// processes with an advisory lock file beside the database.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/meredith/csvcheck/internal/filelock"
	"github.com/meredith/csvcheck/internal/report"
)

//go:embed schema.sql
var schemaSQL string

// Run is one recorded csvcheck invocation.
type Run struct {
	ID        int64
	RunID     string
	Root      string
	Files     int
	Rows      int
	Errors    int
	Warnings  int
	StartedAt time.Time
}

// FileRecord is the stored result of one file within a run. Errors is kept
// as the full message list so past runs stay inspectable.
type FileRecord struct {
	ID         int64
	RunID      string
	Path       string
	RowCount   int
	ErrorCount int
	Errors     []string
}

// Store manages the SQLite run history database.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore opens (and initializes, if needed) the history database.
// ":memory:" is accepted for tests.
func NewStore(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// busy_timeout first so subsequent statements wait on locks instead
	// of failing immediately.
	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRun stores a run and its per-file results. The write is guarded by
// a lock file beside the database so concurrent invocations do not
// interleave their inserts.
func (s *Store) RecordRun(ctx context.Context, root string, results []report.FileResult) (*Run, error) {
	if s.dbPath != ":memory:" {
		lock := filelock.NewFileLock(s.dbPath + ".lock")
		if err := lock.Lock(); err != nil {
			return nil, err
		}
		defer lock.Unlock()
	}

	summary := report.Summarize(results)
	run := &Run{
		RunID:     uuid.NewString(),
		Root:      root,
		Files:     summary.Files,
		Rows:      summary.Rows,
		Errors:    summary.Errors,
		Warnings:  summary.Warnings,
		StartedAt: time.Now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, root, files, rows, errors, warnings, started_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.RunID, run.Root, run.Files, run.Rows, run.Errors, run.Warnings, run.StartedAt)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}
	run.ID, err = res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id: %w", err)
	}

	for _, r := range results {
		errorsJSON, err := json.Marshal(r.Outcome.Errors)
		if err != nil {
			return nil, fmt.Errorf("marshal errors for %s: %w", r.Path, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO file_results (run_id, path, row_count, error_count, errors)
			 VALUES (?, ?, ?, ?, ?)`,
			run.RunID, r.Path, r.Outcome.RowCount, len(r.Outcome.Errors), string(errorsJSON)); err != nil {
			return nil, fmt.Errorf("insert file result for %s: %w", r.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit run: %w", err)
	}

	return run, nil
}

// ListRuns returns the most recent runs, newest first. limit <= 0 means all.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]*Run, error) {
	query := `SELECT id, run_id, root, files, rows, errors, warnings, started_at
		FROM runs ORDER BY id DESC`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run := &Run{}
		if err := rows.Scan(&run.ID, &run.RunID, &run.Root, &run.Files, &run.Rows, &run.Errors, &run.Warnings, &run.StartedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// FileResults returns the per-file records of a run, in insert order.
func (s *Store) FileResults(ctx context.Context, runID string) ([]*FileRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, run_id, path, row_count, error_count, errors
		 FROM file_results WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("query file results: %w", err)
	}
	defer rows.Close()

	var records []*FileRecord
	for rows.Next() {
		rec := &FileRecord{}
		var errorsJSON string
		if err := rows.Scan(&rec.ID, &rec.RunID, &rec.Path, &rec.RowCount, &rec.ErrorCount, &errorsJSON); err != nil {
			return nil, fmt.Errorf("scan file result: %w", err)
		}
		if err := json.Unmarshal([]byte(errorsJSON), &rec.Errors); err != nil {
			return nil, fmt.Errorf("unmarshal errors for %s: %w", rec.Path, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Prune deletes all but the keep most recent runs and their file results.
// keep <= 0 disables pruning.
func (s *Store) Prune(ctx context.Context, keep int) error {
	if keep <= 0 {
		return nil
	}

	_, err := s.db.ExecContext(ctx,
		`DELETE FROM file_results WHERE run_id IN (
			SELECT run_id FROM runs WHERE id NOT IN (
				SELECT id FROM runs ORDER BY id DESC LIMIT ?
			)
		)`, keep)
	if err != nil {
		return fmt.Errorf("prune file results: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`DELETE FROM runs WHERE id NOT IN (
			SELECT id FROM runs ORDER BY id DESC LIMIT ?
		)`, keep)
	if err != nil {
		return fmt.Errorf("prune runs: %w", err)
	}
	return nil
}
