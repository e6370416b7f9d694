package agent

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/aioffice/aioffice/comms"
	"github.com/aioffice/aioffice/provider"
	"github.com/aioffice/aioffice/status"
	"github.com/aioffice/aioffice/task"
)

// Delays controls the simulated pacing of agent work.
type Delays struct {
	Work       time.Duration // pause simulating the work itself
	Chat       time.Duration // pause between chatter exchanges
	Generation time.Duration // upper bound on a single generation call
}

// DefaultDelays returns the standard simulation pacing.
func DefaultDelays() Delays {
	return Delays{
		Work:       2 * time.Second,
		Chat:       500 * time.Millisecond,
		Generation: 60 * time.Second,
	}
}

// Config configures a Runtime. Bus and Peers may be nil to disable
// chatter; Registry may be nil to disable integrator gathering.
type Config struct {
	Bus       *comms.Bus
	Generator provider.Generator
	Registry  *task.Registry
	Sink      status.Sink
	Logger    *slog.Logger
	Delays    Delays
	// Peers returns the other agents in the roster, in roster order.
	Peers func(excludeID string) []*Agent
	// NameOf resolves an agent ID to a display name.
	NameOf func(id string) string
}

// Runtime executes tasks on behalf of agents: it announces work,
// exchanges chatter with the team, produces content through the
// generator, and falls back to canned content when generation fails.
// One Runtime is shared by the whole roster.
type Runtime struct {
	bus      *comms.Bus
	gen      provider.Generator
	registry *task.Registry
	sink     status.Sink
	logger   *slog.Logger
	delays   Delays
	peers    func(excludeID string) []*Agent
	nameOf   func(id string) string
}

// NewRuntime creates a Runtime from cfg, filling in defaults for any
// nil sink or logger and zero delays.
func NewRuntime(cfg Config) *Runtime {
	if cfg.Sink == nil {
		cfg.Sink = status.Nop{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Delays == (Delays{}) {
		cfg.Delays = DefaultDelays()
	}
	return &Runtime{
		bus:      cfg.Bus,
		gen:      cfg.Generator,
		registry: cfg.Registry,
		sink:     cfg.Sink,
		logger:   cfg.Logger,
		delays:   cfg.Delays,
		peers:    cfg.Peers,
		nameOf:   cfg.NameOf,
	}
}

// Decide classifies the action an agent takes for a task description.
// Classification is keyword-based on the agent's category and is purely
// informational.
func Decide(a *Agent, description string) string {
	desc := strings.ToLower(description)
	contains := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(desc, w) {
				return true
			}
		}
		return false
	}
	switch a.Category {
	case CategoryCoder:
		if contains("code", "program", "website", "web", "html", "css", "javascript", "app", "application", "site") {
			return "coding"
		}
	case CategoryAnalyst:
		if contains("analyze", "analys", "data") {
			return "analyzing"
		}
	case CategoryImage:
		if contains("image", "picture", "graphic") {
			return "generating image"
		}
	case CategoryText:
		if contains("text", "content", "article") {
			return "analyzing text"
		}
	}
	return "thinking"
}

// ProcessTask runs the full work cycle for one task: announce, chatter,
// simulated work delay, content production, and completion. Generation
// failure is absorbed with fallback content; the only error returned is
// context cancellation, which leaves the task as it was at that moment.
func (r *Runtime) ProcessTask(ctx context.Context, a *Agent, t *task.Task) error {
	action := Decide(a, t.Description)
	r.logger.Debug("processing task", "agent", a.Name, "task", t.ID, "action", action)

	r.sink.Communication(fmt.Sprintf("[%s] Starting work on task: %s", a.Name, t.Title))
	r.sink.Status(fmt.Sprintf("%s working on task: %s", a.Name, t.Title))
	r.sink.WorkStarted(a.Name)

	a.CurrentTaskID = t.ID
	r.mutateTask(t, func(tk *task.Task) {
		tk.Status = task.StatusInProgress
		tk.UpdatedAt = time.Now().UTC()
	})

	if err := r.chatter(ctx, a, t); err != nil {
		return err
	}
	if err := sleepCtx(ctx, r.delays.Work); err != nil {
		return err
	}

	content := r.produce(ctx, a, t)
	if ctx.Err() != nil {
		return ctx.Err()
	}

	r.mutateTask(t, func(tk *task.Task) {
		if tk.Results == nil {
			tk.Results = make(map[string]string)
		}
		tk.Results[a.ID] = content
		tk.Complete()
	})
	a.CurrentTaskID = ""
	a.TaskHistory = append(a.TaskHistory, t.ID)

	r.sink.WorkStopped(a.Name)
	r.sink.Status(fmt.Sprintf("%s completed task: %s (%s)", a.Name, t.Title, action))
	r.sink.Communication(fmt.Sprintf("[%s] Completed task: %s", a.Name, t.Title))
	return nil
}

// mutateTask applies fn under the registry lock when the task is
// registered, so registry readers never observe a partial write. An
// unregistered task has no concurrent observers and is written directly.
func (r *Runtime) mutateTask(t *task.Task, fn func(*task.Task)) {
	if r.registry != nil && r.registry.Mutate(t.ID, fn) {
		return
	}
	fn(t)
}

// chatter runs one round of team small talk: the working agent opens an
// exchange with each peer that has something to say, and the peer
// replies after a short pause. Pairs with no template are skipped.
func (r *Runtime) chatter(ctx context.Context, a *Agent, t *task.Task) error {
	if r.bus == nil || r.peers == nil {
		return nil
	}
	for _, other := range r.peers(a.ID) {
		opening := teamMessage(a, other)
		if opening == "" {
			continue
		}
		r.bus.Publish(comms.NewMessage(a.ID, other.ID, opening, t.ID))
		if err := sleepCtx(ctx, r.delays.Chat); err != nil {
			return err
		}
		if reply := responseMessage(other, a); reply != "" {
			r.bus.Publish(comms.NewMessage(other.ID, a.ID, reply, t.ID))
		}
	}
	return nil
}

// produce generates the task content, falling back to canned content on
// any generation failure.
func (r *Runtime) produce(ctx context.Context, a *Agent, t *task.Task) string {
	if override, ok := chatbotOverride(t.Description); ok && a.Role == RoleChatbot {
		return override
	}

	content := ""
	if r.gen != nil {
		genCtx, cancel := context.WithTimeout(ctx, r.delays.Generation)
		defer cancel()
		out, err := r.gen.Generate(genCtx, r.roleContext(a), r.instruction(a, t))
		if err != nil {
			r.logger.Warn("generation failed, using fallback content",
				"agent", a.Name, "provider", r.gen.Name(), "error", err)
		} else {
			content = out
		}
	}
	if content == "" {
		content = Fallback(a, t.Description)
	}

	if a.Role == RoleIntegrator {
		content = integratorReport + "\n\n=== FINAL WEBSITE CODE ===\n" + content
	}
	return content
}

const integratorReport = "=== INTEGRATOR MASTER REPORT ===\n" +
	"- Quality control: All modules checked\n" +
	"- Dependencies: Layout changes trigger SEO/content updates\n" +
	"- Strategic decisions: Approved\n" +
	"- Final product: Ready for client presentation\n"

func (r *Runtime) roleContext(a *Agent) string {
	return fmt.Sprintf("You are %s, %s. Your skills: %s.", a.Name, a.Role, strings.Join(a.Skills, ", "))
}

func (r *Runtime) instruction(a *Agent, t *task.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Task: %s\n", t.Description)
	if a.Role == RoleIntegrator {
		fmt.Fprintf(&b, "You are a senior fullstack developer. Based on the following project requirements and agent outputs, generate a complete, modern, responsive website.\n")
		fmt.Fprintf(&b, "Generate ONLY actual HTML, CSS, and JavaScript code. Output ONLY the code blocks.\n")
		fmt.Fprintf(&b, "PROJECT: %s\n", t.Title)
		fmt.Fprintf(&b, "DESCRIPTION: %s\n", t.Description)
		fmt.Fprintf(&b, "AGENT OUTPUTS:\n%s\n", strings.Join(r.gatherOutputs(t), "\n"))
		b.WriteString("Format your response EXACTLY as:\n=== HTML CODE ===\n...\n=== CSS CODE ===\n...\n=== JAVASCRIPT CODE ===\n...\n")
		return b.String()
	}
	b.WriteString(a.Role.Instruction())
	return b.String()
}

// gatherOutputs collects sibling results from the parent task, in agent
// ID order so the assembled prompt is stable.
func (r *Runtime) gatherOutputs(t *task.Task) []string {
	if r.registry == nil || t.ParentID == "" {
		return nil
	}
	results := make(map[string]string)
	r.registry.Mutate(t.ParentID, func(parent *task.Task) {
		for id, out := range parent.Results {
			results[id] = out
		}
	})
	ids := make([]string, 0, len(results))
	for id := range results {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	outputs := make([]string, 0, len(ids))
	for _, id := range ids {
		name := id
		if r.nameOf != nil {
			name = r.nameOf(id)
		}
		outputs = append(outputs, fmt.Sprintf("--- %s ---\n%s", name, results[id]))
	}
	return outputs
}

// HandleMessage returns the bus handler for a: it surfaces the message
// on the status sink and acknowledges polite requests.
func (r *Runtime) HandleMessage(a *Agent) comms.Handler {
	return func(_ context.Context, msg *comms.Message) {
		from := msg.From
		if r.nameOf != nil {
			from = r.nameOf(msg.From)
		}
		r.sink.Communication(fmt.Sprintf("%s received message from %s: %s", a.Name, from, msg.Content))
		if r.bus != nil && strings.Contains(strings.ToLower(msg.Content), "please") {
			reply := fmt.Sprintf("%s: I received your request, starting to work!", a.Name)
			r.bus.Publish(comms.NewMessage(a.ID, msg.From, reply, msg.TaskID))
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
