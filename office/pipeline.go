package office

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aioffice/aioffice/agent"
	"github.com/aioffice/aioffice/sections"
	"github.com/aioffice/aioffice/task"
)

// creativeStages are the fan-out stages that run off the project plan.
// A missing creative role is skipped rather than aborting the project.
var creativeStages = []struct {
	role  agent.Role
	title string
}{
	{agent.RoleWebDeveloper, "Website Skeleton"},
	{agent.RoleUXUIDesigner, "UI/UX Layout"},
	{agent.RoleCopywriter, "Website Content"},
	{agent.RoleGraphicDesigner, "Website Graphics"},
}

// SubmitProject runs the full website delivery pipeline for one project
// and returns the final product summary. Stages run in a fixed order:
// brief, plan, the creative fan-out, integration, then the launch chain
// (hosting, mobile testing, QA, marketing, data analysis, chatbot).
// A missing non-creative role aborts with *agent.RoleNotFoundError.
func (o *Office) SubmitProject(ctx context.Context, title, description string, priority task.Priority) (string, error) {
	o.sink.Status(fmt.Sprintf("Project submitted: %s", title))
	o.logger.Info("project submitted", "title", title, "priority", priority.String())

	brief, err := o.runStage(ctx, agent.RoleClientAdvisor, "Client Brief: "+title, description, "user", "", priority)
	if err != nil {
		return "", err
	}

	plan, err := o.runStage(ctx, agent.RoleProjectManager, "Project Plan: "+title, brief.result, brief.agentID, "", priority)
	if err != nil {
		return "", err
	}

	if err := o.runCreative(ctx, title, plan, priority); err != nil {
		return "", err
	}

	integration, err := o.runStage(ctx, agent.RoleIntegrator, "Integration & Testing: "+title, plan.result, plan.agentID, plan.taskID, priority)
	if err != nil {
		return "", err
	}
	if code, ok := sections.Find(integration.result, "FINAL WEBSITE CODE"); ok {
		o.sink.Status(fmt.Sprintf("Final website code assembled (%d bytes)", len(code)))
	}

	hosting, err := o.runStage(ctx, agent.RoleDevOps, "Hosting & Deployment: "+title, integration.result, integration.agentID, integration.taskID, priority)
	if err != nil {
		return "", err
	}

	mobile, err := o.runStage(ctx, agent.RoleMobileTesting, "Mobile Testing: "+title, integration.result, integration.agentID, integration.taskID, priority)
	if err != nil {
		return "", err
	}

	feedback, err := o.runStage(ctx, agent.RoleFeedbackQA, "Feedback & QA: "+title, mobile.result, mobile.agentID, mobile.taskID, priority)
	if err != nil {
		return "", err
	}

	marketing, err := o.runStage(ctx, agent.RoleMarketingStrategist, "Marketing Campaign: "+title, feedback.result, feedback.agentID, feedback.taskID, priority)
	if err != nil {
		return "", err
	}

	analysis, err := o.runStage(ctx, agent.RoleDataAnalyst, "Data Analysis: "+title, marketing.result, marketing.agentID, marketing.taskID, priority)
	if err != nil {
		return "", err
	}

	chatbot, err := o.runStage(ctx, agent.RoleChatbot, "Chatbot Deployment: "+title,
		"The website is live. Start answering visitor questions!", integration.agentID, integration.taskID, priority)
	if err != nil {
		return "", err
	}

	summary := fmt.Sprintf("=== FINAL PRODUCT ===\n\n%s\n\n=== HOSTING & DEPLOYMENT ===\n%s\n\n=== MOBILE TESTING ===\n%s\n\n=== FEEDBACK & QA ===\n%s\n\n=== MARKETING CAMPAIGN ===\n%s\n\n=== DATA ANALYSIS ===\n%s\n\n=== CHATBOT STATUS ===\n%s",
		integration.result, hosting.result, mobile.result, feedback.result, marketing.result, analysis.result, chatbot.result)

	o.sink.Status(fmt.Sprintf("Project completed: %s", title))
	o.logger.Info("project completed", "title", title)
	return summary, nil
}

// stageOutcome carries what later stages need from a finished one.
type stageOutcome struct {
	taskID  string
	agentID string
	result  string
}

// runStage executes one pipeline stage end to end: resolve the role,
// create and register the stage task, process it, and archive it.
func (o *Office) runStage(ctx context.Context, role agent.Role, title, description, creatorID, parentID string, priority task.Priority) (*stageOutcome, error) {
	a, err := o.AgentByRole(role)
	if err != nil {
		return nil, err
	}
	t := task.New(title, description, creatorID, priority)
	t.ParentID = parentID
	if err := o.tasks.Add(t); err != nil {
		return nil, err
	}
	o.assign(t, a)
	if err := o.runtime.ProcessTask(ctx, a, t); err != nil {
		return nil, err
	}
	o.archiveTask(t)
	return &stageOutcome{taskID: t.ID, agentID: a.ID, result: t.Results[a.ID]}, nil
}

// runCreative fans the creative stages out from the project plan. Each
// finished stage writes its result into the plan task's Results under
// the registry lock, where the integrator later gathers them. Stages
// run concurrently unless the office is configured sequential; roster
// gaps in creative roles are skipped.
func (o *Office) runCreative(ctx context.Context, projectTitle string, plan *stageOutcome, priority task.Priority) error {
	run := func(role agent.Role, stageTitle string) error {
		outcome, err := o.runStage(ctx, role, fmt.Sprintf("%s for: %s", stageTitle, projectTitle),
			plan.result, plan.agentID, plan.taskID, priority)
		if err != nil {
			var missing *agent.RoleNotFoundError
			if errors.As(err, &missing) {
				o.logger.Warn("creative stage skipped, role not in roster", "role", string(role))
				return nil
			}
			return err
		}
		o.tasks.Mutate(plan.taskID, func(parent *task.Task) {
			if parent.Results == nil {
				parent.Results = make(map[string]string)
			}
			parent.Results[outcome.agentID] = outcome.result
		})
		return nil
	}

	if o.sequentialCreative {
		for _, stage := range creativeStages {
			if err := run(stage.role, stage.title); err != nil {
				return err
			}
		}
		return nil
	}

	var (
		wg   sync.WaitGroup
		errs = make([]error, len(creativeStages))
	)
	for i, stage := range creativeStages {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = run(stage.role, stage.title)
		}()
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
