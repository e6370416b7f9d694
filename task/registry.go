package task

import (
	"fmt"
	"sync"
)

// Registry is the process-wide source of truth for tasks. Tasks are added
// when created and retained for the lifetime of the simulation; they are
// never removed. Get and List return deep copies snapshotted under the
// registry lock; all writes to a registered task go through Mutate, so
// concurrent readers never observe a partial write.
type Registry struct {
	mu    sync.RWMutex
	tasks map[string]*Task
	order []string // insertion order, for deterministic listing
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tasks: make(map[string]*Task)}
}

// Add inserts a task. Adding an ID twice is a programming error.
func (r *Registry) Add(t *Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[t.ID]; ok {
		return fmt.Errorf("task %s already registered", t.ID)
	}
	r.tasks[t.ID] = t
	r.order = append(r.order, t.ID)
	return nil
}

// Get retrieves a snapshot of a task by ID.
func (r *Registry) Get(id string) (*Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tasks[id]
	if !ok {
		return nil, false
	}
	return t.Clone(), true
}

// Mutate runs fn on the live task under the registry lock. This is the
// only way to modify a registered task; Get and List hand out copies.
func (r *Registry) Mutate(id string, fn func(*Task)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return false
	}
	fn(t)
	return true
}

// List returns snapshots of all tasks in insertion order.
func (r *Registry) List() []*Task {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Task, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.tasks[id].Clone())
	}
	return out
}

// Len returns the number of registered tasks.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks)
}
