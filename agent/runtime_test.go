package agent

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aioffice/aioffice/provider/mock"
	"github.com/aioffice/aioffice/task"
)

func testDelays() Delays {
	return Delays{
		Work:       time.Millisecond,
		Chat:       time.Millisecond,
		Generation: time.Second,
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		category Category
		desc     string
		want     string
	}{
		{CategoryCoder, "Build a website for a bakery", "coding"},
		{CategoryCoder, "Write some HTML and CSS", "coding"},
		{CategoryCoder, "Organize the filing cabinet", "thinking"},
		{CategoryAnalyst, "Analyze campaign data", "analyzing"},
		{CategoryImage, "Generate a hero image", "generating image"},
		{CategoryText, "Write blog content", "analyzing text"},
		{CategoryCoordinator, "Coordinate the launch", "thinking"},
	}
	for _, tt := range tests {
		a := &Agent{Name: "Test", Category: tt.category}
		if got := Decide(a, tt.desc); got != tt.want {
			t.Errorf("Decide(%s, %q) = %q, want %q", tt.category, tt.desc, got, tt.want)
		}
	}
}

func TestProcessTask(t *testing.T) {
	a := &Agent{ID: "web_dev1", Name: "Alex Carter", Role: RoleWebDeveloper, Category: CategoryCoder}
	r := NewRuntime(Config{
		Generator: mock.New("=== HTML/CSS/JavaScript CODE ===\n<html></html>"),
		Delays:    testDelays(),
	})

	tk := task.New("Website Skeleton", "Build the website skeleton", "pm1", task.PriorityHigh)
	if err := r.ProcessTask(context.Background(), a, tk); err != nil {
		t.Fatalf("ProcessTask: %v", err)
	}

	if tk.Status != task.StatusCompleted {
		t.Errorf("status = %s, want %s", tk.Status, task.StatusCompleted)
	}
	if tk.CompletedAt == nil {
		t.Error("CompletedAt not set")
	}
	if got := tk.Results["web_dev1"]; !strings.Contains(got, "<html>") {
		t.Errorf("Results[web_dev1] = %q, want generated content", got)
	}
	if a.CurrentTaskID != "" {
		t.Errorf("CurrentTaskID = %q, want empty after completion", a.CurrentTaskID)
	}
	if len(a.TaskHistory) != 1 || a.TaskHistory[0] != tk.ID {
		t.Errorf("TaskHistory = %v, want [%s]", a.TaskHistory, tk.ID)
	}
}

func TestProcessTask_FallbackOnGenerationFailure(t *testing.T) {
	a := &Agent{ID: "client1", Name: "Avery Green", Role: RoleClientAdvisor, Category: CategoryText}
	r := NewRuntime(Config{
		Generator: &mock.Failing{Err: errors.New("connection refused")},
		Delays:    testDelays(),
	})

	tk := task.New("Client Brief", "Gather requirements for a cooking website", "client1", task.PriorityHigh)
	if err := r.ProcessTask(context.Background(), a, tk); err != nil {
		t.Fatalf("ProcessTask: %v", err)
	}

	if tk.Status != task.StatusCompleted {
		t.Errorf("status = %s, want completed despite generation failure", tk.Status)
	}
	if got := tk.Results["client1"]; !strings.Contains(got, "=== CLIENT BRIEF ===") {
		t.Errorf("Results[client1] = %q, want fallback brief", got)
	}
}

func TestProcessTask_OverwritesOnlyOwnResult(t *testing.T) {
	a := &Agent{ID: "web_dev1", Name: "Alex Carter", Role: RoleWebDeveloper, Category: CategoryCoder}
	r := NewRuntime(Config{
		Generator: mock.New("first draft", "second draft"),
		Delays:    testDelays(),
	})

	tk := task.New("Website Skeleton", "Build the website skeleton", "pm1", task.PriorityHigh)
	tk.Results["ux_ui1"] = "layout ready"

	if err := r.ProcessTask(context.Background(), a, tk); err != nil {
		t.Fatalf("ProcessTask: %v", err)
	}
	if got := tk.Results["web_dev1"]; got != "first draft" {
		t.Errorf("Results[web_dev1] = %q, want first draft", got)
	}

	// Re-processing replaces the agent's own slot and nothing else.
	if err := r.ProcessTask(context.Background(), a, tk); err != nil {
		t.Fatalf("ProcessTask (again): %v", err)
	}
	if got := tk.Results["web_dev1"]; got != "second draft" {
		t.Errorf("Results[web_dev1] = %q, want second draft", got)
	}
	if got := tk.Results["ux_ui1"]; got != "layout ready" {
		t.Errorf("Results[ux_ui1] = %q, another agent's slot was touched", got)
	}
	if len(tk.Results) != 2 {
		t.Errorf("Results has %d entries, want 2", len(tk.Results))
	}
}

func TestProcessTask_Cancelled(t *testing.T) {
	a := &Agent{ID: "web_dev1", Name: "Alex Carter", Role: RoleWebDeveloper, Category: CategoryCoder}
	r := NewRuntime(Config{
		Generator: mock.New(),
		Delays:    Delays{Work: time.Minute, Chat: time.Millisecond, Generation: time.Second},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	tk := task.New("Website Skeleton", "Build the website skeleton", "pm1", task.PriorityHigh)
	if err := r.ProcessTask(ctx, a, tk); err == nil {
		t.Fatal("expected cancellation error")
	}
	if tk.Status == task.StatusCompleted {
		t.Error("task should not complete after cancellation")
	}
}

func TestProcessTask_ChatbotOverride(t *testing.T) {
	a := &Agent{ID: "chatbot1", Name: "RoboAssist", Role: RoleChatbot, Category: CategoryText}
	r := NewRuntime(Config{
		Generator: mock.New("should not be used"),
		Delays:    testDelays(),
	})

	tk := task.New("Chatbot Deployment", "Override: ship the minimal FAQ bot", "client1", task.PriorityMedium)
	if err := r.ProcessTask(context.Background(), a, tk); err != nil {
		t.Fatalf("ProcessTask: %v", err)
	}
	want := "[USER OVERRIDE] ship the minimal FAQ bot"
	if got := tk.Results["chatbot1"]; got != want {
		t.Errorf("Results[chatbot1] = %q, want %q", got, want)
	}
}

func TestGatherOutputs(t *testing.T) {
	registry := task.NewRegistry()
	parent := task.New("Project Plan", "Plan the website", "pm1", task.PriorityHigh)
	parent.Results = map[string]string{
		"web_dev1": "skeleton ready",
		"ux_ui1":   "layout ready",
	}
	if err := registry.Add(parent); err != nil {
		t.Fatalf("Add: %v", err)
	}

	names := map[string]string{"web_dev1": "Alex Carter", "ux_ui1": "Taylor Kim"}
	r := NewRuntime(Config{
		Registry: registry,
		Delays:   testDelays(),
		NameOf: func(id string) string {
			if n, ok := names[id]; ok {
				return n
			}
			return id
		},
	})

	child := task.New("Integration & Testing", "Integrate everything", "pm1", task.PriorityHigh)
	child.ParentID = parent.ID

	got := r.gatherOutputs(child)
	if len(got) != 2 {
		t.Fatalf("gathered %d outputs, want 2", len(got))
	}
	// Stable order: sorted by agent ID, so ux_ui1 before web_dev1.
	if !strings.HasPrefix(got[0], "--- Taylor Kim ---") {
		t.Errorf("first output = %q, want Taylor Kim's", got[0])
	}
	if !strings.HasPrefix(got[1], "--- Alex Carter ---") {
		t.Errorf("second output = %q, want Alex Carter's", got[1])
	}
}

func TestProcessTask_IntegratorPrependsReport(t *testing.T) {
	a := &Agent{ID: "integrator1", Name: "Pat Morgan", Role: RoleIntegrator, Category: CategoryCoordinator}
	r := NewRuntime(Config{
		Generator: mock.New("=== HTML CODE ===\n<html></html>"),
		Delays:    testDelays(),
	})

	tk := task.New("Integration & Testing", "Integrate all components", "pm1", task.PriorityHigh)
	if err := r.ProcessTask(context.Background(), a, tk); err != nil {
		t.Fatalf("ProcessTask: %v", err)
	}
	got := tk.Results["integrator1"]
	if !strings.Contains(got, "=== INTEGRATOR MASTER REPORT ===") {
		t.Errorf("result missing master report: %q", got)
	}
	if !strings.Contains(got, "=== FINAL WEBSITE CODE ===") {
		t.Errorf("result missing final code section: %q", got)
	}
}
