// Package task defines the work-item model, the in-memory registry, the
// priority work queue, and the SQLite archive for finished tasks.
package task

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusBlocked    Status = "blocked"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Priority determines scheduling order. Critical is dispatched first.
type Priority int

const (
	PriorityLow      Priority = 0
	PriorityMedium   Priority = 1
	PriorityHigh     Priority = 2
	PriorityCritical Priority = 3
)

// Rank returns the queue ordering key: lower rank dequeues first.
func (p Priority) Rank() int { return int(PriorityCritical - p) }

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityHigh:
		return "high"
	case PriorityCritical:
		return "critical"
	default:
		return "medium"
	}
}

// Task is a unit of work produced by the orchestrator or a pipeline stage.
type Task struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	CreatorID    string            `json:"creator_id"`
	AssigneeID   string            `json:"assignee_id,omitempty"`
	Status       Status            `json:"status"`
	Priority     Priority          `json:"priority"`
	Dependencies []string          `json:"dependencies,omitempty"`
	Subtasks     []string          `json:"subtasks,omitempty"`
	ParentID     string            `json:"parent_task_id,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	CompletedAt  *time.Time        `json:"completed_at,omitempty"`
	Results      map[string]string `json:"results"` // agent ID -> produced content
}

// New creates a pending task with a fresh ID and timestamps.
func New(title, description, creatorID string, priority Priority) *Task {
	now := time.Now().UTC()
	return &Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		CreatorID:   creatorID,
		Status:      StatusPending,
		Priority:    priority,
		CreatedAt:   now,
		UpdatedAt:   now,
		Results:     make(map[string]string),
	}
}

// Complete marks the task completed and stamps both timestamps.
func (t *Task) Complete() {
	now := time.Now().UTC()
	t.Status = StatusCompleted
	t.CompletedAt = &now
	t.UpdatedAt = now
}

// Clone returns a deep copy detached from the original's maps and slices.
func (t *Task) Clone() *Task {
	c := *t
	if t.Dependencies != nil {
		c.Dependencies = append([]string(nil), t.Dependencies...)
	}
	if t.Subtasks != nil {
		c.Subtasks = append([]string(nil), t.Subtasks...)
	}
	if t.CompletedAt != nil {
		ts := *t.CompletedAt
		c.CompletedAt = &ts
	}
	if t.Results != nil {
		c.Results = make(map[string]string, len(t.Results))
		for id, out := range t.Results {
			c.Results[id] = out
		}
	}
	return &c
}
