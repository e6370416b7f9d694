package office

import (
	"context"
	"fmt"
	"time"

	"github.com/aioffice/aioffice/agent"
	"github.com/aioffice/aioffice/task"
)

// dispatchIdle is how long the dispatch loop sleeps when the queue is
// empty or a task cannot be assigned yet.
const dispatchIdle = 500 * time.Millisecond

// RunDispatch is the automatic assignment loop: it drains the work
// queue in priority order, assigns each pending task to a suitable
// agent, and processes it to completion. Tasks that are no longer
// pending when dequeued are skipped. Runs until ctx is cancelled.
func (o *Office) RunDispatch(ctx context.Context) {
	for ctx.Err() == nil {
		id, ok := o.queue.Dequeue()
		if !ok {
			if !idle(ctx, dispatchIdle) {
				return
			}
			continue
		}
		t, ok := o.tasks.Get(id)
		if !ok {
			o.logger.Warn("queued task missing from registry", "task", id)
			continue
		}
		if t.Status != task.StatusPending {
			continue
		}

		a := o.assignee(t)
		if a == nil {
			// Leave the task pending and retry later.
			o.sink.Status(fmt.Sprintf("No suitable agent for task: %s", t.Title))
			o.queue.Enqueue(t)
			if !idle(ctx, dispatchIdle) {
				return
			}
			continue
		}

		o.assign(t, a)
		if err := o.runtime.ProcessTask(ctx, a, t); err != nil {
			return
		}
		o.archiveTask(t)
	}
}

// assignee resolves the agent for a task: an explicit assignee wins,
// otherwise the keyword-based selection chain.
func (o *Office) assignee(t *task.Task) *agent.Agent {
	if t.AssigneeID != "" {
		if a, ok := o.byID[t.AssigneeID]; ok {
			return a
		}
	}
	return o.findSuitableAgent(t)
}

// assign records the assignee and moves the task to in_progress.
func (o *Office) assign(t *task.Task, a *agent.Agent) {
	o.tasks.Mutate(t.ID, func(tk *task.Task) {
		tk.AssigneeID = a.ID
		tk.Status = task.StatusInProgress
		tk.UpdatedAt = time.Now().UTC()
	})
	o.sink.Status(fmt.Sprintf("Assigned task '%s' to %s", t.Title, a.Name))
	o.logger.Info("task assigned", "task", t.ID, "agent", a.ID)
}

// archiveTask saves the registry's current snapshot of the task; the
// caller's local view may be stale.
func (o *Office) archiveTask(t *task.Task) {
	if o.archive == nil {
		return
	}
	snap, ok := o.tasks.Get(t.ID)
	if !ok {
		snap = t
	}
	if err := o.archive.Save(snap); err != nil {
		o.logger.Warn("failed to archive task", "task", t.ID, "error", err)
	}
}

// idle sleeps for d; the false return means ctx was cancelled.
func idle(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
