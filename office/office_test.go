package office

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/aioffice/aioffice/agent"
	"github.com/aioffice/aioffice/provider"
	"github.com/aioffice/aioffice/provider/mock"
	"github.com/aioffice/aioffice/task"
)

func testRoster() []*agent.Agent {
	return []*agent.Agent{
		{ID: "web_dev1", Name: "Alex Carter", Role: agent.RoleWebDeveloper, Category: agent.CategoryCoder},
		{ID: "ux_ui1", Name: "Taylor Kim", Role: agent.RoleUXUIDesigner, Category: agent.CategoryImage},
		{ID: "copywriter1", Name: "Morgan Lee", Role: agent.RoleCopywriter, Category: agent.CategoryText},
		{ID: "marketing1", Name: "Jordan Smith", Role: agent.RoleMarketingStrategist, Category: agent.CategoryCoordinator},
		{ID: "data_analyst1", Name: "Casey Brown", Role: agent.RoleDataAnalyst, Category: agent.CategoryAnalyst},
		{ID: "chatbot1", Name: "RoboAssist", Role: agent.RoleChatbot, Category: agent.CategoryText},
		{ID: "graphic1", Name: "Samira Patel", Role: agent.RoleGraphicDesigner, Category: agent.CategoryImage},
		{ID: "devops1", Name: "Chris Nguyen", Role: agent.RoleDevOps, Category: agent.CategoryCoder},
		{ID: "pm1", Name: "Jamie Evans", Role: agent.RoleProjectManager, Category: agent.CategoryCoordinator},
		{ID: "client1", Name: "Avery Green", Role: agent.RoleClientAdvisor, Category: agent.CategoryText},
		{ID: "integrator1", Name: "Pat Morgan", Role: agent.RoleIntegrator, Category: agent.CategoryCoordinator},
		{ID: "mobile1", Name: "Riley Fox", Role: agent.RoleMobileTesting, Category: agent.CategoryCoder},
		{ID: "feedback1", Name: "Dana White", Role: agent.RoleFeedbackQA, Category: agent.CategoryCoordinator},
	}
}

func testOffice(t *testing.T, roster []*agent.Agent, gen provider.Generator) *Office {
	t.Helper()
	o, err := New(Config{
		Agents:    roster,
		Generator: gen,
		Logger:    slog.New(slog.DiscardHandler),
		Delays: agent.Delays{
			Work:       time.Millisecond,
			Chat:       time.Millisecond,
			Generation: 100 * time.Millisecond,
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return o
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("empty roster should be rejected")
	}
	dup := []*agent.Agent{
		{ID: "a1", Name: "One", Role: agent.RoleWebDeveloper, Category: agent.CategoryCoder},
		{ID: "a1", Name: "Two", Role: agent.RoleCopywriter, Category: agent.CategoryText},
	}
	if _, err := New(Config{Agents: dup}); err == nil {
		t.Error("duplicate agent IDs should be rejected")
	}
}

func TestAgentByRole(t *testing.T) {
	o := testOffice(t, testRoster(), mock.New())

	a, err := o.AgentByRole(agent.RoleIntegrator)
	if err != nil {
		t.Fatalf("AgentByRole: %v", err)
	}
	if a.ID != "integrator1" {
		t.Errorf("agent = %s, want integrator1", a.ID)
	}

	// Case-insensitive match.
	if _, err := o.AgentByRole(agent.Role("web developer")); err != nil {
		t.Errorf("case-insensitive lookup failed: %v", err)
	}

	_, err = o.AgentByRole(agent.Role("Astronaut"))
	var missing *agent.RoleNotFoundError
	if !errors.As(err, &missing) {
		t.Fatalf("err = %v, want RoleNotFoundError", err)
	}
	if missing.Role != agent.Role("Astronaut") {
		t.Errorf("missing role = %q", missing.Role)
	}
}

func TestFindSuitableAgent(t *testing.T) {
	o := testOffice(t, testRoster(), mock.New())

	tests := []struct {
		title  string
		desc   string
		wantID string
	}{
		{"Build site", "Create a website with HTML and CSS", "web_dev1"},
		{"Numbers", "Analyze the traffic statistics", "data_analyst1"},
		{"Visuals", "Design a logo and banner", "ux_ui1"},
		{"Words", "Write blog content and copy", "copywriter1"},
		{"Misc", "Organize the quarterly planning meeting", "marketing1"}, // first coordinator
	}
	for _, tt := range tests {
		tk := task.New(tt.title, tt.desc, "user", task.PriorityMedium)
		got := o.findSuitableAgent(tk)
		if got == nil || got.ID != tt.wantID {
			gotID := "<none>"
			if got != nil {
				gotID = got.ID
			}
			t.Errorf("findSuitableAgent(%q) = %s, want %s", tt.desc, gotID, tt.wantID)
		}
	}
}

func TestSubmitProject(t *testing.T) {
	// A failing generator exercises the deterministic fallback path for
	// every stage.
	o := testOffice(t, testRoster(), &mock.Failing{Err: errors.New("backend down")})

	summary, err := o.SubmitProject(context.Background(), "Cooking Site", "Create a cooking website with recipes.", task.PriorityHigh)
	if err != nil {
		t.Fatalf("SubmitProject: %v", err)
	}

	if !strings.HasPrefix(summary, "=== FINAL PRODUCT ===") {
		t.Errorf("summary should start with the final product header, got %q", summary[:40])
	}
	for _, marker := range []string{
		"=== INTEGRATOR MASTER REPORT ===",
		"=== HOSTING & DEPLOYMENT ===",
		"=== MOBILE TESTING ===",
		"=== FEEDBACK & QA ===",
		"=== MARKETING CAMPAIGN ===",
		"=== DATA ANALYSIS ===",
		"=== CHATBOT STATUS ===",
	} {
		if !strings.Contains(summary, marker) {
			t.Errorf("summary missing %q", marker)
		}
	}

	// The creative fan-out must have written every result into the plan
	// task before integration.
	var plan, integration *task.Task
	for _, tk := range o.Tasks().List() {
		if strings.HasPrefix(tk.Title, "Project Plan:") {
			plan = tk
		}
		if strings.HasPrefix(tk.Title, "Integration & Testing:") {
			integration = tk
		}
	}
	if plan == nil {
		t.Fatal("plan task not registered")
	}
	// Plan's own result plus the four creative results.
	for _, id := range []string{"pm1", "web_dev1", "ux_ui1", "copywriter1", "graphic1"} {
		if _, ok := plan.Results[id]; !ok {
			t.Errorf("plan task missing result from %s", id)
		}
	}

	// The integration stage works from the plan's output, not the raw
	// project description.
	if integration == nil {
		t.Fatal("integration task not registered")
	}
	if integration.Description != plan.Results["pm1"] {
		t.Errorf("integration description = %q, want the plan result", integration.Description)
	}

	// Every pipeline task completed.
	for _, tk := range o.Tasks().List() {
		if tk.Status != task.StatusCompleted {
			t.Errorf("task %q status = %s, want completed", tk.Title, tk.Status)
		}
	}
}

func TestSubmitProject_SequentialCreative(t *testing.T) {
	o, err := New(Config{
		Agents:             testRoster(),
		Generator:          mock.New(),
		Logger:             slog.New(slog.DiscardHandler),
		SequentialCreative: true,
		Delays: agent.Delays{
			Work:       time.Millisecond,
			Chat:       time.Millisecond,
			Generation: 100 * time.Millisecond,
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	summary, err := o.SubmitProject(context.Background(), "Shop", "Build a website for a shop.", task.PriorityMedium)
	if err != nil {
		t.Fatalf("SubmitProject: %v", err)
	}
	if !strings.Contains(summary, "=== CHATBOT STATUS ===") {
		t.Error("summary incomplete")
	}
}

func TestSubmitProject_MissingIntegrator(t *testing.T) {
	var roster []*agent.Agent
	for _, a := range testRoster() {
		if a.Role != agent.RoleIntegrator {
			roster = append(roster, a)
		}
	}
	o := testOffice(t, roster, mock.New())

	_, err := o.SubmitProject(context.Background(), "Site", "Build a website.", task.PriorityMedium)
	var missing *agent.RoleNotFoundError
	if !errors.As(err, &missing) {
		t.Fatalf("err = %v, want RoleNotFoundError", err)
	}
	if missing.Role != agent.RoleIntegrator {
		t.Errorf("missing role = %q, want integrator", missing.Role)
	}

	// The stages that ran before the failure stay completed in the
	// registry: brief, plan, and the four creative tasks.
	finished := o.Tasks().List()
	if len(finished) != 6 {
		t.Errorf("registry holds %d tasks, want 6", len(finished))
	}
	for _, tk := range finished {
		if tk.Status != task.StatusCompleted {
			t.Errorf("task %q status = %s, want completed", tk.Title, tk.Status)
		}
	}
}

func TestSubmitProject_MissingCreativeRoleSkipped(t *testing.T) {
	var roster []*agent.Agent
	for _, a := range testRoster() {
		if a.Role != agent.RoleGraphicDesigner {
			roster = append(roster, a)
		}
	}
	o := testOffice(t, roster, mock.New())

	if _, err := o.SubmitProject(context.Background(), "Site", "Build a website.", task.PriorityMedium); err != nil {
		t.Fatalf("missing creative role should be skipped, got %v", err)
	}

	var plan *task.Task
	for _, tk := range o.Tasks().List() {
		if strings.HasPrefix(tk.Title, "Project Plan:") {
			plan = tk
		}
	}
	if plan == nil {
		t.Fatal("plan task not registered")
	}
	if _, ok := plan.Results["graphic1"]; ok {
		t.Error("skipped stage should leave no result")
	}
	if _, ok := plan.Results["web_dev1"]; !ok {
		t.Error("remaining creative stages should still run")
	}
}

func TestDispatch(t *testing.T) {
	o := testOffice(t, testRoster(), mock.New())

	created, err := o.CreateTask("Landing page", "Build a small website for the launch", "user", task.PriorityHigh)
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		o.RunDispatch(ctx)
		close(done)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if tk, ok := o.Tasks().Get(created.ID); ok && tk.Status == task.StatusCompleted {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	tk, _ := o.Tasks().Get(created.ID)
	if tk.Status != task.StatusCompleted {
		t.Fatalf("task status = %s, want completed", tk.Status)
	}
	if tk.AssigneeID != "web_dev1" {
		t.Errorf("assignee = %s, want web_dev1 (coding keywords)", tk.AssigneeID)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch loop did not stop after cancellation")
	}
}

func TestDispatch_SkipsNonPending(t *testing.T) {
	o := testOffice(t, testRoster(), mock.New())

	created, err := o.CreateTask("Stale", "Build a website", "user", task.PriorityLow)
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	o.Tasks().Mutate(created.ID, func(tk *task.Task) {
		tk.Status = task.StatusCompleted
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	o.RunDispatch(ctx)

	got, _ := o.Tasks().Get(created.ID)
	if got.AssigneeID != "" {
		t.Error("completed task should not be assigned")
	}
}

func TestAssignMarksInProgress(t *testing.T) {
	o := testOffice(t, testRoster(), mock.New())

	created, err := o.CreateTask("Landing page", "Build a website", "user", task.PriorityMedium)
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	a, _ := o.Agent("web_dev1")
	o.assign(created, a)

	got, _ := o.Tasks().Get(created.ID)
	if got.AssigneeID != "web_dev1" {
		t.Errorf("assignee = %s, want web_dev1", got.AssigneeID)
	}
	if got.Status != task.StatusInProgress {
		t.Errorf("status = %s, want in_progress at assignment", got.Status)
	}
}

func TestCreateTask_ReturnsSnapshot(t *testing.T) {
	o := testOffice(t, testRoster(), mock.New())

	created, err := o.CreateTask("Landing page", "Build a website", "user", task.PriorityMedium)
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	created.Status = task.StatusFailed
	created.Results["web_dev1"] = "tampered"

	got, _ := o.Tasks().Get(created.ID)
	if got.Status != task.StatusPending {
		t.Errorf("status = %s, writing to the returned task must not reach the registry", got.Status)
	}
	if len(got.Results) != 0 {
		t.Error("results written on the returned task must not reach the registry")
	}
}
