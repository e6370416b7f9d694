// Package office wires the roster, task registry, work queue, message
// bus, and agent runtime into the simulated company and drives the
// website delivery pipeline.
package office

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/aioffice/aioffice/agent"
	"github.com/aioffice/aioffice/comms"
	"github.com/aioffice/aioffice/provider"
	"github.com/aioffice/aioffice/status"
	"github.com/aioffice/aioffice/task"
)

// Archiver persists finished tasks. The SQLite archive implements it;
// nil disables archiving.
type Archiver interface {
	Save(t *task.Task) error
}

// Config assembles an Office.
type Config struct {
	Agents    []*agent.Agent
	Generator provider.Generator
	Sink      status.Sink
	Logger    *slog.Logger
	Delays    agent.Delays
	Archive   Archiver

	// SequentialCreative runs the creative stage one agent at a time
	// instead of concurrently.
	SequentialCreative bool
}

// Office is the simulated company: a fixed roster of agents sharing one
// task registry, one work queue, and one message bus.
type Office struct {
	roster  []*agent.Agent // insertion order
	byID    map[string]*agent.Agent
	tasks   *task.Registry
	queue   *task.Queue
	bus     *comms.Bus
	runtime *agent.Runtime
	sink    status.Sink
	logger  *slog.Logger
	archive Archiver

	sequentialCreative bool
}

// New builds an Office from cfg. The roster must be non-empty and free
// of duplicate IDs; each agent's bus handler is registered here.
func New(cfg Config) (*Office, error) {
	if len(cfg.Agents) == 0 {
		return nil, fmt.Errorf("office: empty roster")
	}
	if cfg.Sink == nil {
		cfg.Sink = status.Nop{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	o := &Office{
		byID:               make(map[string]*agent.Agent, len(cfg.Agents)),
		tasks:              task.NewRegistry(),
		queue:              task.NewQueue(),
		sink:               cfg.Sink,
		logger:             cfg.Logger,
		archive:            cfg.Archive,
		sequentialCreative: cfg.SequentialCreative,
	}
	for _, a := range cfg.Agents {
		if _, ok := o.byID[a.ID]; ok {
			return nil, fmt.Errorf("office: duplicate agent ID %q", a.ID)
		}
		o.roster = append(o.roster, a)
		o.byID[a.ID] = a
		o.sink.Status(fmt.Sprintf("Added agent: %s (%s)", a.Name, a.Role))
	}

	o.bus = comms.NewBus(o, cfg.Sink, cfg.Logger)
	o.runtime = agent.NewRuntime(agent.Config{
		Bus:       o.bus,
		Generator: cfg.Generator,
		Registry:  o.tasks,
		Sink:      cfg.Sink,
		Logger:    cfg.Logger,
		Delays:    cfg.Delays,
		Peers:     o.peers,
		NameOf:    o.nameOf,
	})
	for _, a := range o.roster {
		o.bus.Register(a.ID, o.runtime.HandleMessage(a))
	}
	return o, nil
}

// Agents returns the roster in insertion order.
func (o *Office) Agents() []*agent.Agent {
	out := make([]*agent.Agent, len(o.roster))
	copy(out, o.roster)
	return out
}

// Agent looks up a roster member by ID.
func (o *Office) Agent(id string) (*agent.Agent, bool) {
	a, ok := o.byID[id]
	return a, ok
}

// AgentName implements comms.Resolver.
func (o *Office) AgentName(id string) (string, bool) {
	a, ok := o.byID[id]
	if !ok {
		return "", false
	}
	return a.Name, true
}

// AgentByRole returns the first roster member with the role, matched
// case-insensitively.
func (o *Office) AgentByRole(role agent.Role) (*agent.Agent, error) {
	for _, a := range o.roster {
		if strings.EqualFold(string(a.Role), string(role)) {
			return a, nil
		}
	}
	return nil, &agent.RoleNotFoundError{Role: role}
}

// Tasks returns the shared task registry.
func (o *Office) Tasks() *task.Registry { return o.tasks }

// Bus returns the shared message bus; run it with Bus().Run(ctx).
func (o *Office) Bus() *comms.Bus { return o.bus }

// CreateTask registers a new pending task and admits it to the work
// queue for automatic assignment. The returned task is a snapshot; the
// dispatch loop may already be working on the registered one.
func (o *Office) CreateTask(title, description, creatorID string, priority task.Priority) (*task.Task, error) {
	t := task.New(title, description, creatorID, priority)
	if err := o.tasks.Add(t); err != nil {
		return nil, err
	}
	snap := t.Clone()
	o.queue.Enqueue(t)
	o.sink.Status(fmt.Sprintf("Created task: %s (priority: %s)", title, priority))
	o.logger.Info("task created", "task", t.ID, "title", title, "priority", priority.String())
	return snap, nil
}

func (o *Office) peers(excludeID string) []*agent.Agent {
	out := make([]*agent.Agent, 0, len(o.roster)-1)
	for _, a := range o.roster {
		if a.ID != excludeID {
			out = append(out, a)
		}
	}
	return out
}

func (o *Office) nameOf(id string) string {
	if a, ok := o.byID[id]; ok {
		return a.Name
	}
	return id
}

var (
	codingKeywords   = []string{"code", "program", "website", "web", "html", "css", "javascript", "react", "vue", "app", "application", "site"}
	analysisKeywords = []string{"analy", "data", "statistics", "report", "dashboard", "analytics"}
	imageKeywords    = []string{"image", "picture", "photo", "graphic", "design", "logo", "banner", "mockup"}
	textKeywords     = []string{"text", "content", "copy", "writing", "article", "blog", "seo", "copywriting"}
)

// findSuitableAgent picks an agent for an unassigned task: keyword
// categories first, then any coordinator, then the first roster member.
// With a non-empty roster it always finds someone.
func (o *Office) findSuitableAgent(t *task.Task) *agent.Agent {
	haystack := strings.ToLower(t.Description) + " " + strings.ToLower(t.Title)
	matches := func(keywords []string) bool {
		for _, k := range keywords {
			if strings.Contains(haystack, k) {
				return true
			}
		}
		return false
	}
	byCategory := func(c agent.Category) *agent.Agent {
		for _, a := range o.roster {
			if a.Category == c {
				return a
			}
		}
		return nil
	}

	if matches(codingKeywords) {
		if a := byCategory(agent.CategoryCoder); a != nil {
			return a
		}
	}
	if matches(analysisKeywords) {
		if a := byCategory(agent.CategoryAnalyst); a != nil {
			return a
		}
	}
	if matches(imageKeywords) {
		if a := byCategory(agent.CategoryImage); a != nil {
			return a
		}
	}
	if matches(textKeywords) {
		if a := byCategory(agent.CategoryText); a != nil {
			return a
		}
	}
	if a := byCategory(agent.CategoryCoordinator); a != nil {
		return a
	}
	if len(o.roster) > 0 {
		return o.roster[0]
	}
	return nil
}
