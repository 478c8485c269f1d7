package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// AuditStore records extraction runs and per-document outcomes so a
// batch can be audited after the fact.
type AuditStore struct {
	db     *sql.DB
	logger *slog.Logger
}

const auditSchema = `
CREATE TABLE IF NOT EXISTS runs (
	id           TEXT PRIMARY KEY,
	input_dir    TEXT NOT NULL,
	started_at   TEXT NOT NULL,
	finished_at  TEXT,
	status       TEXT NOT NULL DEFAULT 'RUNNING',
	documents    INTEGER NOT NULL DEFAULT 0,
	failures     INTEGER NOT NULL DEFAULT 0,
	rows_written INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS documents (
	run_id      TEXT NOT NULL REFERENCES runs(id),
	source_file TEXT NOT NULL,
	pages       INTEGER NOT NULL DEFAULT 0,
	precincts   INTEGER NOT NULL DEFAULT 0,
	contests    INTEGER NOT NULL DEFAULT 0,
	row_count   INTEGER NOT NULL DEFAULT 0,
	error       TEXT NOT NULL DEFAULT '',
	finished_at TEXT NOT NULL,
	PRIMARY KEY (run_id, source_file)
);
`

// OpenSQLite opens the audit database with WAL mode enabled and ensures
// the schema exists.
func OpenSQLite(ctx context.Context, path string, logger *slog.Logger) (*AuditStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable wal: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := db.ExecContext(ctx, auditSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create audit schema: %w", err)
	}
	logger.Debug("audit store open", "path", path)
	return &AuditStore{db: db, logger: logger}, nil
}

func (s *AuditStore) Close() error {
	return s.db.Close()
}

// BeginRun inserts the run in RUNNING state.
func (s *AuditStore) BeginRun(ctx context.Context, runID uuid.UUID, inputDir string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, input_dir, started_at) VALUES (?, ?, ?)`,
		runID.String(), inputDir, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("begin run: %w", err)
	}
	return nil
}

// FinishRun records the terminal state of a run.
func (s *AuditStore) FinishRun(ctx context.Context, runID uuid.UUID, status string, documents, failures, rows int) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE runs SET finished_at = ?, status = ?, documents = ?, failures = ?, rows_written = ? WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339), status, documents, failures, rows, runID.String())
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

// DocumentOutcome is one document's result within a run.
type DocumentOutcome struct {
	SourceFile string
	Pages      int
	Precincts  int
	Contests   int
	Rows       int
	Err        string
}

// RecordDocument upserts one document outcome for a run.
func (s *AuditStore) RecordDocument(ctx context.Context, runID uuid.UUID, out DocumentOutcome) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (run_id, source_file, pages, precincts, contests, row_count, error, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (run_id, source_file) DO UPDATE SET
		   pages = excluded.pages, precincts = excluded.precincts,
		   contests = excluded.contests, row_count = excluded.row_count,
		   error = excluded.error, finished_at = excluded.finished_at`,
		runID.String(), out.SourceFile, out.Pages, out.Precincts, out.Contests,
		out.Rows, out.Err, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("record document: %w", err)
	}
	return nil
}

// RunSummary is one row of RecentRuns.
type RunSummary struct {
	ID        string
	InputDir  string
	StartedAt string
	Status    string
	Documents int
	Failures  int
	Rows      int
}

// RecentRuns lists the latest runs, newest first.
func (s *AuditStore) RecentRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, input_dir, started_at, status, documents, failures, rows_written
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.InputDir, &r.StartedAt, &r.Status, &r.Documents, &r.Failures, &r.Rows); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
