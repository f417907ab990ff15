package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	dderror "github.com/JangHwanPark/DahDit/foundation/core/error"
	"github.com/JangHwanPark/DahDit/foundation/dahdit"
	"github.com/JangHwanPark/DahDit/foundation/dahdit/diag"
)

// RunRecord is a stored interpreter run
type RunRecord struct {
	ID              string            `json:"id"`
	File            string            `json:"file"`
	StartedAt       time.Time         `json:"started_at"`
	Duration        time.Duration     `json:"duration"`
	Statements      int               `json:"statements"`
	Executed        int               `json:"executed"`
	DiagnosticCount int               `json:"diagnostic_count"`
	Diagnostics     []diag.Diagnostic `json:"diagnostics,omitempty"`
}

// Failed reports whether the run produced diagnostics
func (r *RunRecord) Failed() bool {
	return r.DiagnosticCount > 0
}

// RunFilter defines criteria for listing runs
type RunFilter struct {
	File       string
	FailedOnly bool
	Since      time.Time
	Limit      int
	Offset     int
}

// RunStore defines the interface for run history persistence
type RunStore interface {
	Record(ctx context.Context, result *dahdit.Result) error
	List(ctx context.Context, filter RunFilter) ([]*RunRecord, error)
	Get(ctx context.Context, id string) (*RunRecord, error)

	// Statistics
	Stats(ctx context.Context) (map[string]interface{}, error)

	// Maintenance
	Vacuum(ctx context.Context) error
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

// NewSQLiteRunStore opens (and if needed creates) the history database
func NewSQLiteRunStore(cfg SQLiteConfig) (*SQLiteRunStore, error) {
	// Ensure directory exists
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, dbError(err, "failed to create directory").WithDetail("path", dir)
	}

	// Open database with WAL mode
	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, dbError(err, "failed to open database").WithDetail("path", cfg.Path)
	}

	store := &SQLiteRunStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, dbError(err, "failed to initialize schema").WithDetail("path", cfg.Path)
	}

	return store, nil
}

// initSchema creates the necessary tables
func (s *SQLiteRunStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		file TEXT NOT NULL,
		started_at DATETIME NOT NULL,
		duration_ns INTEGER NOT NULL,
		statements INTEGER NOT NULL,
		executed INTEGER NOT NULL,
		diagnostic_count INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS diagnostics (
		run_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		file TEXT NOT NULL,
		line_no INTEGER NOT NULL,
		column_no INTEGER NOT NULL,
		kind TEXT NOT NULL,
		message TEXT NOT NULL,
		PRIMARY KEY (run_id, seq)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at DESC);
	CREATE INDEX IF NOT EXISTS idx_runs_file ON runs(file);
	CREATE INDEX IF NOT EXISTS idx_diagnostics_kind ON diagnostics(kind);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record stores a run together with all of its diagnostics
func (s *SQLiteRunStore) Record(ctx context.Context, result *dahdit.Result) error {
	if result == nil {
		return dderror.New("cannot record a nil result").WithCode(dderror.CodeInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	startedAt := result.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return dbError(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, file, started_at, duration_ns, statements, executed, diagnostic_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, result.RunID, result.File, startedAt.UTC(), int64(result.Duration),
		result.Statements, result.Executed, len(result.Diagnostics))
	if err != nil {
		return dbError(err, "failed to insert run").WithDetail("run_id", result.RunID)
	}

	if len(result.Diagnostics) > 0 {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO diagnostics (run_id, seq, file, line_no, column_no, kind, message)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return dbError(err, "failed to prepare statement")
		}
		defer stmt.Close()

		for i, d := range result.Diagnostics {
			if _, err := stmt.ExecContext(ctx, result.RunID, i, d.File, d.Line, d.Column,
				string(d.Kind), d.Message); err != nil {
				return dbError(err, "failed to insert diagnostic").WithDetail("run_id", result.RunID)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return dbError(err, "failed to commit transaction")
	}
	return nil
}

// List returns runs matching the filter, newest first. Diagnostics are not
// loaded; use Get for a single run's details.
func (s *SQLiteRunStore) List(ctx context.Context, filter RunFilter) ([]*RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, file, started_at, duration_ns, statements, executed, diagnostic_count FROM runs WHERE 1=1`
	var args []interface{}

	if filter.File != "" {
		query += " AND file = ?"
		args = append(args, filter.File)
	}
	if filter.FailedOnly {
		query += " AND diagnostic_count > 0"
	}
	if !filter.Since.IsZero() {
		query += " AND started_at >= ?"
		args = append(args, filter.Since.UTC())
	}

	query += " ORDER BY started_at DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	} else if filter.Offset > 0 {
		query += " LIMIT -1"
	}
	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "failed to query runs")
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
	if err := rows.Err(); err != nil {
		return nil, dbError(err, "failed to iterate runs")
	}

	return records, nil
}

// Get returns one run with its diagnostics in report order
func (s *SQLiteRunStore) Get(ctx context.Context, id string) (*RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, file, started_at, duration_ns, statements, executed, diagnostic_count
		FROM runs WHERE id = ?
	`, id)
	record, err := scanRun(row)
	if err != nil {
		if dderror.HasCode(err, dderror.CodeNotFound) {
			return nil, dderror.Newf("run %s not found", id).
				WithCode(dderror.CodeNotFound).
				WithDetail("run_id", id)
		}
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT file, line_no, column_no, kind, message
		FROM diagnostics WHERE run_id = ? ORDER BY seq
	`, id)
	if err != nil {
		return nil, dbError(err, "failed to query diagnostics").WithDetail("run_id", id)
	}
	defer rows.Close()

	for rows.Next() {
		var d diag.Diagnostic
		var kind string
		if err := rows.Scan(&d.File, &d.Line, &d.Column, &kind, &d.Message); err != nil {
			return nil, dbError(err, "failed to scan diagnostic")
		}
		d.Kind = diag.Kind(kind)
		record.Diagnostics = append(record.Diagnostics, d)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(err, "failed to iterate diagnostics")
	}

	return record, nil
}

// Stats returns run history statistics
func (s *SQLiteRunStore) Stats(ctx context.Context) (map[string]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := make(map[string]interface{})

	var total, failed int64
	if err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(CASE WHEN diagnostic_count > 0 THEN 1 ELSE 0 END), 0) FROM runs
	`).Scan(&total, &failed); err != nil {
		return nil, dbError(err, "failed to count runs")
	}
	stats["total_runs"] = total
	stats["failed_runs"] = failed

	rows, err := s.db.QueryContext(ctx, `SELECT kind, COUNT(*) FROM diagnostics GROUP BY kind`)
	if err != nil {
		return nil, dbError(err, "failed to count diagnostics")
	}
	defer rows.Close()

	byKind := make(map[string]int64)
	for rows.Next() {
		var kind string
		var count int64
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, dbError(err, "failed to scan diagnostic count")
		}
		byKind[kind] = count
	}
	stats["diagnostics_by_kind"] = byKind

	return stats, nil
}

// Vacuum optimizes the database
func (s *SQLiteRunStore) Vacuum(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, "VACUUM"); err != nil {
		return dbError(err, "failed to vacuum database")
	}
	return nil
}

// Prune removes runs that started before now minus olderThan, along with
// their diagnostics. It returns the number of runs deleted.
func (s *SQLiteRunStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan).UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, dbError(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM diagnostics WHERE run_id IN (SELECT id FROM runs WHERE started_at < ?)
	`, cutoff); err != nil {
		return 0, dbError(err, "failed to prune diagnostics")
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM runs WHERE started_at < ?`, cutoff)
	if err != nil {
		return 0, dbError(err, "failed to prune runs")
	}
	deleted, _ := result.RowsAffected()

	if err := tx.Commit(); err != nil {
		return 0, dbError(err, "failed to commit transaction")
	}
	return deleted, nil
}

// Close closes the database connection
func (s *SQLiteRunStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row scanner) (*RunRecord, error) {
	var record RunRecord
	var durationNS int64
	err := row.Scan(&record.ID, &record.File, &record.StartedAt, &durationNS,
		&record.Statements, &record.Executed, &record.DiagnosticCount)
	if err == sql.ErrNoRows {
		return nil, dderror.New("run not found").WithCode(dderror.CodeNotFound)
	}
	if err != nil {
		return nil, dbError(err, "failed to scan run")
	}
	record.Duration = time.Duration(durationNS)
	return &record, nil
}

func dbError(err error, message string) *dderror.Error {
	return dderror.Wrap(err, message).WithCode(dderror.CodeDatabaseError)
}

// MemoryRunStore is an in-memory implementation for testing and for
// sessions without a history database
type MemoryRunStore struct {
	mu   sync.RWMutex
	runs map[string]*RunRecord
}

// NewMemoryRunStore creates a new in-memory run store
func NewMemoryRunStore() *MemoryRunStore {
	return &MemoryRunStore{runs: make(map[string]*RunRecord)}
}

// Record stores a run in memory
func (s *MemoryRunStore) Record(ctx context.Context, result *dahdit.Result) error {
	if result == nil {
		return dderror.New("cannot record a nil result").WithCode(dderror.CodeInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.runs[result.RunID]; exists {
		return dderror.Newf("run %s already recorded", result.RunID).
			WithCode(dderror.CodeDatabaseError).
			WithDetail("run_id", result.RunID)
	}

	startedAt := result.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now()
	}
	s.runs[result.RunID] = &RunRecord{
		ID:              result.RunID,
		File:            result.File,
		StartedAt:       startedAt.UTC(),
		Duration:        result.Duration,
		Statements:      result.Statements,
		Executed:        result.Executed,
		DiagnosticCount: len(result.Diagnostics),
		Diagnostics:     append([]diag.Diagnostic(nil), result.Diagnostics...),
	}
	return nil
}

// List returns matching runs, newest first, without diagnostics
func (s *MemoryRunStore) List(ctx context.Context, filter RunFilter) ([]*RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []*RunRecord
	for _, run := range s.runs {
		if filter.File != "" && run.File != filter.File {
			continue
		}
		if filter.FailedOnly && !run.Failed() {
			continue
		}
		if !filter.Since.IsZero() && run.StartedAt.Before(filter.Since) {
			continue
		}
		summary := *run
		summary.Diagnostics = nil
		records = append(records, &summary)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].StartedAt.After(records[j].StartedAt)
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(records) {
			return nil, nil
		}
		records = records[filter.Offset:]
	}
	if filter.Limit > 0 && len(records) > filter.Limit {
		records = records[:filter.Limit]
	}
	return records, nil
}

// Get returns one run with its diagnostics
func (s *MemoryRunStore) Get(ctx context.Context, id string) (*RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[id]
	if !ok {
		return nil, dderror.Newf("run %s not found", id).
			WithCode(dderror.CodeNotFound).
			WithDetail("run_id", id)
	}
	record := *run
	record.Diagnostics = append([]diag.Diagnostic(nil), run.Diagnostics...)
	return &record, nil
}

// Stats returns run history statistics
func (s *MemoryRunStore) Stats(ctx context.Context) (map[string]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var failed int64
	byKind := make(map[string]int64)
	for _, run := range s.runs {
		if run.Failed() {
			failed++
		}
		for _, d := range run.Diagnostics {
			byKind[string(d.Kind)]++
		}
	}

	return map[string]interface{}{
		"total_runs":          int64(len(s.runs)),
		"failed_runs":         failed,
		"diagnostics_by_kind": byKind,
	}, nil
}

// Vacuum is a no-op for the memory store
func (s *MemoryRunStore) Vacuum(ctx context.Context) error {
	return nil
}

// Prune removes runs older than the given duration
func (s *MemoryRunStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	var deleted int64
	for id, run := range s.runs {
		if run.StartedAt.Before(cutoff) {
			delete(s.runs, id)
			deleted++
		}
	}
	return deleted, nil
}

// Close is a no-op for the memory store
func (s *MemoryRunStore) Close() error {
	return nil
}
