// Package postgres persists finished pipeline runs for later review.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/deepnoodle-ai/brief"
)

// ErrNotFound is returned when a run id has no stored record.
var ErrNotFound = errors.New("run not found")

// RunRecord is one persisted pipeline run. Brief is nil for failed
// runs; Warnings and Errors mirror the run state.
type RunRecord struct {
	RunID     string              `json:"run_id"`
	Status    brief.RunStatus     `json:"status"`
	Prompt    string              `json:"prompt"`
	Language  string              `json:"language"`
	Brief     *brief.ContentBrief `json:"brief,omitempty"`
	Warnings  []string            `json:"warnings,omitempty"`
	Errors    []string            `json:"errors,omitempty"`
	Duration  time.Duration       `json:"duration"`
	CreatedAt time.Time           `json:"created_at"`
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id      TEXT PRIMARY KEY,
	status      TEXT NOT NULL,
	prompt      TEXT NOT NULL,
	language    TEXT NOT NULL,
	brief       JSONB,
	warnings    JSONB,
	errors      JSONB,
	duration_ms BIGINT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS runs_created_at_idx ON runs (created_at DESC);
`

// Store saves run records in PostgreSQL.
type Store struct {
	db *sql.DB
}

// NewStore opens a connection with the given DSN and ensures the
// schema exists.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	store := &Store{db: db}
	if err := store.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// NewStoreWithDB wraps an existing connection, for tests.
func NewStoreWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun stores the outcome of one pipeline run. Saving the same run
// id again replaces the record.
func (s *Store) SaveRun(ctx context.Context, record *RunRecord) error {
	briefJSON, err := marshalNullable(record.Brief)
	if err != nil {
		return fmt.Errorf("failed to encode brief: %w", err)
	}
	warningsJSON, err := json.Marshal(record.Warnings)
	if err != nil {
		return fmt.Errorf("failed to encode warnings: %w", err)
	}
	errorsJSON, err := json.Marshal(record.Errors)
	if err != nil {
		return fmt.Errorf("failed to encode errors: %w", err)
	}

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (run_id, status, prompt, language, brief, warnings, errors, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (run_id) DO UPDATE SET
			status = EXCLUDED.status,
			brief = EXCLUDED.brief,
			warnings = EXCLUDED.warnings,
			errors = EXCLUDED.errors,
			duration_ms = EXCLUDED.duration_ms`,
		record.RunID, string(record.Status), record.Prompt, record.Language,
		briefJSON, warningsJSON, errorsJSON,
		record.Duration.Milliseconds(), createdAt)
	if err != nil {
		return fmt.Errorf("failed to save run %s: %w", record.RunID, err)
	}
	return nil
}

// GetRun retrieves one run by id.
func (s *Store) GetRun(ctx context.Context, runID string) (*RunRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT run_id, status, prompt, language, brief, warnings, errors, duration_ms, created_at
		FROM runs WHERE run_id = $1`, runID)
	record, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return record, err
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]*RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, status, prompt, language, brief, warnings, errors, duration_ms, created_at
		FROM runs ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var records []*RunRecord
	for rows.Next() {
		record, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*RunRecord, error) {
	var record RunRecord
	var status string
	var briefJSON, warningsJSON, errorsJSON []byte
	var durationMS int64
	err := row.Scan(&record.RunID, &status, &record.Prompt, &record.Language,
		&briefJSON, &warningsJSON, &errorsJSON, &durationMS, &record.CreatedAt)
	if err != nil {
		return nil, err
	}
	record.Status = brief.RunStatus(status)
	record.Duration = time.Duration(durationMS) * time.Millisecond
	if len(briefJSON) > 0 {
		if err := json.Unmarshal(briefJSON, &record.Brief); err != nil {
			return nil, fmt.Errorf("failed to decode brief for run %s: %w", record.RunID, err)
		}
	}
	if len(warningsJSON) > 0 {
		if err := json.Unmarshal(warningsJSON, &record.Warnings); err != nil {
			return nil, fmt.Errorf("failed to decode warnings for run %s: %w", record.RunID, err)
		}
	}
	if len(errorsJSON) > 0 {
		if err := json.Unmarshal(errorsJSON, &record.Errors); err != nil {
			return nil, fmt.Errorf("failed to decode errors for run %s: %w", record.RunID, err)
		}
	}
	return &record, nil
}

func marshalNullable(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	if b, ok := v.(*brief.ContentBrief); ok && b == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return data, nil
}
