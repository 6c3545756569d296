// Package store persists task lifecycle state in an embedded SQLite
// database. The store is single-writer by convention: all mutations
// flow through the progress manager's DB writer goroutine, while
// reads may run concurrently.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/electric-power/algo-service/pkg/types"
)

const (
	lockRetries      = 3
	lockRetryInitial = 50 * time.Millisecond
)

// TaskStore is the SQLite-backed task state store
type TaskStore struct {
	db *sql.DB
}

// Open opens (creating if necessary) the task database at
// <dataDir>/tasks.db with WAL journaling and relaxed fsync.
func Open(dataDir string) (*TaskStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	dbPath := filepath.Join(dataDir, "tasks.db")

	dsn := "file:" + dbPath +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &TaskStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database
func (s *TaskStore) Close() error {
	return s.db.Close()
}

// migrate creates the tasks table and applies the one-shot
// error_message column fix for databases created by older builds.
func (s *TaskStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS tasks (
			task_id       TEXT PRIMARY KEY,
			scheme_code   TEXT,
			status        TEXT,
			percentage    INTEGER,
			message       TEXT,
			error_message TEXT,
			data_ref      TEXT,
			created_at    INTEGER,
			updated_at    INTEGER
		)`)
	if err != nil {
		return fmt.Errorf("failed to create tasks table: %w", err)
	}

	rows, err := s.db.Query(`PRAGMA table_info(tasks)`)
	if err != nil {
		return fmt.Errorf("failed to inspect tasks table: %w", err)
	}
	defer rows.Close()

	hasErrorColumn := false
	for rows.Next() {
		var (
			cid       int
			name, typ string
			notNull   int
			dflt      sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return err
		}
		if name == "error_message" {
			hasErrorColumn = true
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if !hasErrorColumn {
		if _, err := s.db.Exec(`ALTER TABLE tasks ADD COLUMN error_message TEXT`); err != nil {
			return fmt.Errorf("failed to add error_message column: %w", err)
		}
	}
	return nil
}

// execRetry runs a statement, retrying transient lock errors with
// exponential backoff (50ms, 100ms, 200ms).
func (s *TaskStore) execRetry(query string, args ...any) (sql.Result, error) {
	var res sql.Result

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = lockRetryInitial
	bo.RandomizationFactor = 0
	bo.Multiplier = 2

	op := func() error {
		var err error
		res, err = s.db.Exec(query, args...)
		if err != nil && isLocked(err) {
			return err // retryable
		}
		if err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}

	if err := backoff.Retry(op, backoff.WithMaxRetries(bo, lockRetries)); err != nil {
		return nil, err
	}
	return res, nil
}

func isLocked(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "locked") ||
		strings.Contains(strings.ToLower(err.Error()), "busy")
}

// UpsertStart inserts or resets a task row marking it RUNNING.
func (s *TaskStore) UpsertStart(taskID, schemeCode, dataRef string) error {
	now := types.NowMillis()
	_, err := s.execRetry(`
		INSERT INTO tasks (task_id, scheme_code, status, percentage, message, error_message, data_ref, created_at, updated_at)
		VALUES (?, ?, ?, 0, 'Initializing', '', ?, ?, ?)
		ON CONFLICT(task_id) DO UPDATE SET
			scheme_code = excluded.scheme_code,
			status      = excluded.status,
			percentage  = excluded.percentage,
			message     = excluded.message,
			error_message = excluded.error_message,
			data_ref    = excluded.data_ref,
			updated_at  = excluded.updated_at`,
		taskID, schemeCode, string(types.TaskRunning), dataRef, now, now)
	if err != nil {
		return fmt.Errorf("failed to upsert task %s: %w", taskID, err)
	}
	return nil
}

const terminalGuard = `status NOT IN ('SUCCESS', 'FAILED', 'CANCELLED')`

// UpdateProgress updates the progress columns of a task. A missing
// row is created first, then updated. Rows already in a terminal
// state are left untouched.
func (s *TaskStore) UpdateProgress(taskID string, percentage int, message string, status types.TaskStatus) error {
	if status == "" {
		status = types.TaskRunning
	}
	res, err := s.execRetry(`
		UPDATE tasks SET percentage = ?, message = ?, status = ?, updated_at = ?
		WHERE task_id = ? AND `+terminalGuard,
		percentage, message, string(status), types.NowMillis(), taskID)
	if err != nil {
		return fmt.Errorf("failed to update progress for %s: %w", taskID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		existing, err := s.Get(taskID)
		if err != nil {
			return err
		}
		if existing != nil {
			// terminal row, nothing to do
			return nil
		}
		if err := s.UpsertStart(taskID, "", ""); err != nil {
			return err
		}
		return s.UpdateProgress(taskID, percentage, message, status)
	}
	return nil
}

// Finish writes a terminal state. A missing row is created and then
// finished, so finish is safe to call for tasks that never started.
// Finishing an already-terminal task is a no-op, which makes terminal
// writes idempotent.
func (s *TaskStore) Finish(taskID string, status types.TaskStatus, message, errorMessage string) error {
	res, err := s.execRetry(`
		UPDATE tasks SET percentage = 100, message = ?, status = ?, error_message = ?, updated_at = ?
		WHERE task_id = ? AND `+terminalGuard,
		message, string(status), errorMessage, types.NowMillis(), taskID)
	if err != nil {
		return fmt.Errorf("failed to finish task %s: %w", taskID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		existing, err := s.Get(taskID)
		if err != nil {
			return err
		}
		if existing != nil {
			// already terminal, keep the first outcome
			return nil
		}
		if err := s.UpsertStart(taskID, "", ""); err != nil {
			return err
		}
		return s.Finish(taskID, status, message, errorMessage)
	}
	return nil
}

const taskColumns = `task_id, scheme_code, status, percentage, message, error_message, data_ref, created_at, updated_at`

func scanTask(scanner interface{ Scan(...any) error }) (*types.TaskRecord, error) {
	var rec types.TaskRecord
	var status string
	err := scanner.Scan(
		&rec.TaskID, &rec.SchemeCode, &status, &rec.Percentage,
		&rec.Message, &rec.ErrorMessage, &rec.DataRef,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	rec.Status = types.TaskStatus(status)
	return &rec, err
}

// Get returns the record for taskID, or nil when unknown.
func (s *TaskStore) Get(taskID string) (*types.TaskRecord, error) {
	row := s.db.QueryRow(`SELECT `+taskColumns+` FROM tasks WHERE task_id = ?`, taskID)
	rec, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task %s: %w", taskID, err)
	}
	return rec, nil
}

// List returns all task records ordered by updated_at descending.
func (s *TaskStore) List() ([]*types.TaskRecord, error) {
	rows, err := s.db.Query(`SELECT ` + taskColumns + ` FROM tasks ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var records []*types.TaskRecord
	for rows.Next() {
		rec, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
