package task

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

const archiveSchema = `
CREATE TABLE IF NOT EXISTS archived_tasks (
	id           TEXT PRIMARY KEY,
	title        TEXT NOT NULL,
	description  TEXT NOT NULL,
	creator_id   TEXT NOT NULL DEFAULT '',
	assignee_id  TEXT NOT NULL DEFAULT '',
	status       TEXT NOT NULL,
	priority     INTEGER NOT NULL DEFAULT 1,
	parent_id    TEXT NOT NULL DEFAULT '',
	results      TEXT NOT NULL DEFAULT '{}',
	created_at   DATETIME NOT NULL,
	updated_at   DATETIME NOT NULL,
	completed_at DATETIME
);
`

// SQLiteArchive keeps a durable record of finished tasks. It is written
// once per task at completion and is never the source of truth; the
// in-memory Registry is.
type SQLiteArchive struct {
	db *sql.DB
}

// NewSQLiteArchive opens (or creates) the archive database at dbPath and
// ensures the table exists. The caller is responsible for calling Close.
func NewSQLiteArchive(dbPath string) (*SQLiteArchive, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	db.SetMaxOpenConns(1) // prevent SQLITE_BUSY
	if _, err := db.Exec(archiveSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create archive schema: %w", err)
	}
	return &SQLiteArchive{db: db}, nil
}

// Close releases the underlying database connection.
func (a *SQLiteArchive) Close() error { return a.db.Close() }

// Save records a task snapshot, replacing any earlier snapshot of the
// same task.
func (a *SQLiteArchive) Save(t *Task) error {
	results, _ := json.Marshal(t.Results)
	_, err := a.db.Exec(`
		INSERT OR REPLACE INTO archived_tasks
			(id, title, description, creator_id, assignee_id, status, priority,
			 parent_id, results, created_at, updated_at, completed_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		t.ID, t.Title, t.Description, t.CreatorID, t.AssigneeID,
		string(t.Status), int(t.Priority), t.ParentID, string(results),
		t.CreatedAt, t.UpdatedAt, nullTime(t.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("archive task: %w", err)
	}
	return nil
}

// Get retrieves an archived task by ID.
func (a *SQLiteArchive) Get(id string) (*Task, error) {
	row := a.db.QueryRow(`SELECT id, title, description, creator_id, assignee_id,
		status, priority, parent_id, results, created_at, updated_at, completed_at
		FROM archived_tasks WHERE id = ?`, id)
	t, err := scanArchived(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("archived task %s not found", id)
	}
	return t, err
}

// List returns all archived tasks, most urgent first, then oldest first.
func (a *SQLiteArchive) List() ([]*Task, error) {
	rows, err := a.db.Query(`SELECT id, title, description, creator_id, assignee_id,
		status, priority, parent_id, results, created_at, updated_at, completed_at
		FROM archived_tasks ORDER BY priority DESC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list archived tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*Task
	for rows.Next() {
		t, err := scanArchived(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// scanner abstracts sql.Row and sql.Rows for scanArchived.
type scanner interface {
	Scan(dest ...any) error
}

func scanArchived(s scanner) (*Task, error) {
	var t Task
	var status, resultsJSON string
	var priority int
	var completedAt sql.NullTime

	err := s.Scan(
		&t.ID, &t.Title, &t.Description, &t.CreatorID, &t.AssigneeID,
		&status, &priority, &t.ParentID, &resultsJSON,
		&t.CreatedAt, &t.UpdatedAt, &completedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Status = Status(status)
	t.Priority = Priority(priority)
	t.Results = make(map[string]string)
	_ = json.Unmarshal([]byte(resultsJSON), &t.Results)
	if completedAt.Valid {
		t.CompletedAt = &completedAt.Time
	}
	return &t, nil
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
