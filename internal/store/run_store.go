package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	mdwerror "github.com/msto63/ffparse/foundation/core/error"
)

// Run is one recorded CLI invocation
type Run struct {
	ID         string        `json:"id"`
	StartedAt  time.Time     `json:"started_at"`
	Command    string        `json:"command"`
	Input      string        `json:"input"`
	TokenCount int           `json:"token_count"`
	Success    bool          `json:"success"`
	Diagnostic string        `json:"diagnostic,omitempty"`
	Duration   time.Duration `json:"duration"`
}

// RunStore defines the interface for run history persistence
type RunStore interface {
	Record(ctx context.Context, run *Run) error
	List(ctx context.Context, limit int) ([]*Run, error)
	Get(ctx context.Context, id string) (*Run, error)
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
	Close() error
}

// SQLiteRunStore implements RunStore using SQLite
type SQLiteRunStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// SQLiteConfig holds configuration for the SQLite store
type SQLiteConfig struct {
	Path string
}

// DefaultConfig returns default configuration
func DefaultConfig() SQLiteConfig {
	return SQLiteConfig{
		Path: "./data/history.db",
	}
}

// NewSQLiteRunStore opens (and creates if needed) the history database
func NewSQLiteRunStore(cfg SQLiteConfig) (*SQLiteRunStore, error) {
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, dbError(err, "failed to create directory", "store.Open").WithDetail("path", dir)
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, dbError(err, "failed to open database", "store.Open").WithDetail("path", cfg.Path)
	}

	store := &SQLiteRunStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, dbError(err, "failed to initialize schema", "store.Open").WithDetail("path", cfg.Path)
	}

	return store, nil
}

func (s *SQLiteRunStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at DATETIME NOT NULL,
		command TEXT NOT NULL,
		input TEXT,
		token_count INTEGER NOT NULL DEFAULT 0,
		success INTEGER NOT NULL,
		diagnostic TEXT,
		duration_ms INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record stores run; empty ID and zero StartedAt are filled in
func (s *SQLiteRunStore) Record(ctx context.Context, run *Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}
	run.StartedAt = run.StartedAt.UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, command, input, token_count, success, diagnostic, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.StartedAt, run.Command, run.Input, run.TokenCount, run.Success, run.Diagnostic, run.Duration.Milliseconds())
	if err != nil {
		return dbError(err, "failed to insert run", "store.Record").WithRunID(run.ID)
	}

	return nil
}

// List returns the most recent runs first; limit <= 0 returns all
func (s *SQLiteRunStore) List(ctx context.Context, limit int) ([]*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, started_at, command, input, token_count, success, diagnostic, duration_ms
		FROM runs ORDER BY started_at DESC`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "failed to query runs", "store.List")
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, dbError(err, "failed to scan run", "store.List")
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// Get returns a single run by ID
func (s *SQLiteRunStore) Get(ctx context.Context, id string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, started_at, command, input, token_count, success, diagnostic, duration_ms
		FROM runs WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, mdwerror.New("run not found").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("store.Get").
			WithRunID(id)
	}
	if err != nil {
		return nil, dbError(err, "failed to get run", "store.Get").WithRunID(id)
	}
	return run, nil
}

// Prune deletes runs started before now minus olderThan
func (s *SQLiteRunStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan).UTC()

	result, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE started_at < ?`, cutoff)
	if err != nil {
		return 0, dbError(err, "failed to prune runs", "store.Prune")
	}
	deleted, _ := result.RowsAffected()

	return deleted, nil
}

// Close closes the database connection
func (s *SQLiteRunStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row rowScanner) (*Run, error) {
	var run Run
	var input, diagnostic sql.NullString
	var durationMS int64

	if err := row.Scan(&run.ID, &run.StartedAt, &run.Command, &input, &run.TokenCount,
		&run.Success, &diagnostic, &durationMS); err != nil {
		return nil, err
	}

	run.Input = input.String
	run.Diagnostic = diagnostic.String
	run.Duration = time.Duration(durationMS) * time.Millisecond
	return &run, nil
}

func dbError(err error, message, operation string) *mdwerror.Error {
	return mdwerror.Wrap(err, message).
		WithCode(mdwerror.CodeDatabaseError).
		WithOperation(operation)
}
