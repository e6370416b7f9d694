// Package agent defines agent descriptors, the pipeline role table, and
// the runtime that processes tasks on an agent's behalf.
package agent

// Category classifies an agent's generic behavior. It is fixed at
// creation and drives both the decision keywords and eligibility for
// automatic task assignment.
type Category string

const (
	CategoryCoder       Category = "coder"
	CategoryAnalyst     Category = "analyst"
	CategoryImage       Category = "image"
	CategoryText        Category = "text"
	CategoryCoordinator Category = "coordinator"
)

// Agent is a worker descriptor. The roster is fixed at startup; only
// CurrentTaskID, TaskHistory, and Knowledge mutate during a run.
type Agent struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Role          Role           `json:"role"`
	Category      Category       `json:"category"`
	Skills        []string       `json:"skills,omitempty"`
	Traits        []string       `json:"personality_traits,omitempty"`
	Tools         []string       `json:"preferred_tools,omitempty"`
	Collaborators []string       `json:"collaborators,omitempty"`
	ReportsTo     string         `json:"reports_to,omitempty"`
	CurrentTaskID string         `json:"current_task_id,omitempty"`
	TaskHistory   []string       `json:"task_history,omitempty"`
	Knowledge     map[string]any `json:"knowledge_base,omitempty"`
}
