package office

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aioffice/aioffice/agent"
	"github.com/aioffice/aioffice/task"
)

// state is the on-disk snapshot of a simulation run.
type state struct {
	Agents []*agent.Agent `json:"agents"`
	Tasks  []*task.Task   `json:"tasks"`
}

// SaveState writes the roster and every registered task to path as JSON.
func (o *Office) SaveState(path string) error {
	snapshot := state{
		Agents: o.Agents(),
		Tasks:  o.tasks.List(),
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	o.logger.Info("state saved", "path", path, "tasks", len(snapshot.Tasks))
	return nil
}

// LoadState restores a previous snapshot: tasks re-enter the registry
// (pending ones rejoin the queue) and agent progress fields are merged
// onto the roster by ID. A missing or malformed file starts the office
// empty with a warning rather than failing.
func (o *Office) LoadState(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read state file: %w", err)
	}

	var snapshot state
	if err := json.Unmarshal(data, &snapshot); err != nil {
		o.logger.Warn("state file malformed, starting empty", "path", path, "error", err)
		return nil
	}

	for _, t := range snapshot.Tasks {
		if err := o.tasks.Add(t); err != nil {
			o.logger.Warn("skipping duplicate task from state file", "task", t.ID)
			continue
		}
		if t.Status == task.StatusPending {
			o.queue.Enqueue(t)
		}
	}
	for _, saved := range snapshot.Agents {
		a, ok := o.byID[saved.ID]
		if !ok {
			o.logger.Warn("state file names unknown agent", "agent", saved.ID)
			continue
		}
		a.CurrentTaskID = saved.CurrentTaskID
		a.TaskHistory = saved.TaskHistory
		a.Knowledge = saved.Knowledge
	}
	o.logger.Info("state loaded", "path", path, "tasks", len(snapshot.Tasks))
	return nil
}
