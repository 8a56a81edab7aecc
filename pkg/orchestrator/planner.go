package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gianmatteo-arcana/engine-lever/pkg/config"
	"github.com/gianmatteo-arcana/engine-lever/pkg/llm"
	"github.com/gianmatteo-arcana/engine-lever/pkg/models"
	"github.com/gianmatteo-arcana/engine-lever/pkg/services"
)

// plannerActor identifies the planner on the entries it writes.
const plannerActor = "planner"

// Planner turns a task's template goals into an execution plan. The plan
// comes from the LLM when it produces a valid one, and from a fixed
// three-phase fallback when it does not, so a task never stalls on a bad plan.
type Planner struct {
	gateway *llm.Gateway
	agents  *config.AgentRegistry
	entries *services.EntryService
	model   string
}

// NewPlanner creates a planner. model may be empty to use the gateway default.
func NewPlanner(gateway *llm.Gateway, agents *config.AgentRegistry, entries *services.EntryService, model string) *Planner {
	return &Planner{
		gateway: gateway,
		agents:  agents,
		entries: entries,
		model:   model,
	}
}

// Plan produces and records an execution plan for the task. The plan_created
// entry both sets the typed plan and merges it into task data, so projecting
// the history reproduces exactly what the dispatcher executed.
func (p *Planner) Plan(ctx context.Context, tc *models.TaskContext) (*models.ExecutionPlan, error) {
	plan, rawOutput, planErr := p.propose(ctx, tc)
	if planErr != nil {
		slog.Warn("Planner output rejected, using fallback plan",
			"task_id", tc.TaskID, "error", planErr)
		p.recordValidationFailure(ctx, tc, rawOutput, planErr)
		plan = p.fallbackPlan()
		if len(plan.Phases) == 0 {
			return nil, fmt.Errorf("no agents available for fallback plan")
		}
	}

	planMap, err := planToMap(plan)
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan: %w", err)
	}

	_, err = p.entries.AppendWithRetry(ctx, models.AppendEntryRequest{
		TaskID:    tc.TaskID,
		Actor:     models.SystemActor(plannerActor),
		Operation: models.OpPlanCreated,
		Data:      map[string]any{"plan": planMap},
		Reasoning: planReasoning(plan, planErr),
		Trigger: models.Trigger{
			Kind:   models.TriggerKindSystemEvent,
			Source: plannerActor,
		},
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to record plan: %w", err)
	}

	return plan, nil
}

// propose asks the LLM for a plan and validates it. Returns the raw model
// output alongside any error so failures can be recorded for the audit trail.
func (p *Planner) propose(ctx context.Context, tc *models.TaskContext) (*models.ExecutionPlan, string, error) {
	prompt, err := p.buildPrompt(tc)
	if err != nil {
		return nil, "", err
	}

	var plan models.ExecutionPlan
	err = p.gateway.CompleteJSON(ctx, llm.Request{
		Model: p.model,
		Messages: []llm.Message{
			{Role: "system", Content: plannerSystemPrompt},
			{Role: "user", Content: prompt},
		},
	}, &plan)
	if err != nil {
		return nil, "", fmt.Errorf("planner llm call failed: %w", err)
	}

	raw, _ := json.Marshal(plan)
	if err := p.validate(&plan); err != nil {
		return nil, string(raw), err
	}
	return &plan, string(raw), nil
}

// validate enforces the structural rules the dispatcher depends on.
func (p *Planner) validate(plan *models.ExecutionPlan) error {
	if len(plan.Phases) == 0 {
		return fmt.Errorf("plan has no phases")
	}
	for i := range plan.Phases {
		phase := &plan.Phases[i]
		if phase.PhaseID == "" {
			return fmt.Errorf("phase %d has no phase_id", i)
		}
		if len(phase.RequiredAgents) == 0 {
			return fmt.Errorf("phase %q names no agents", phase.PhaseID)
		}
		for _, want := range phase.RequiredAgents {
			if !p.resolvable(want) {
				return fmt.Errorf("phase %q requires %q which matches no configured agent", phase.PhaseID, want)
			}
		}
	}
	if _, err := TopoSort(plan); err != nil {
		return err
	}
	return nil
}

// resolvable reports whether a required_agents entry names a configured
// agent ID or a capability at least one agent declares.
func (p *Planner) resolvable(want string) bool {
	if p.agents.Has(want) {
		return true
	}
	return len(p.agents.FindByCapability(want)) > 0
}

// fallbackPlan is the fixed collect → validate → finalize pipeline, reduced
// to the capabilities that actually have agents configured.
func (p *Planner) fallbackPlan() *models.ExecutionPlan {
	stages := []struct {
		id, name, capability string
	}{
		{"data_collection", "Collect data", "data_collection"},
		{"validation", "Validate data", "validation"},
		{"completion", "Finalize", "completion"},
	}

	plan := &models.ExecutionPlan{}
	var prev string
	for _, stage := range stages {
		if len(p.agents.FindByCapability(stage.capability)) == 0 {
			continue
		}
		phase := models.PlanPhase{
			PhaseID:        stage.id,
			Name:           stage.name,
			RequiredAgents: []string{stage.capability},
		}
		if prev != "" {
			phase.Prerequisites = []string{prev}
		}
		plan.Phases = append(plan.Phases, phase)
		prev = stage.id
	}
	return plan
}

func (p *Planner) recordValidationFailure(ctx context.Context, tc *models.TaskContext, rawOutput string, planErr error) {
	if rawOutput == "" {
		rawOutput = "(no decodable output)"
	}
	_, err := p.entries.AppendWithRetry(ctx, models.AppendEntryRequest{
		TaskID:    tc.TaskID,
		Actor:     models.SystemActor(plannerActor),
		Operation: models.OpPlanValidationFailed,
		Reasoning: planErr.Error(),
		Trigger: models.Trigger{
			Kind:    models.TriggerKindSystemEvent,
			Source:  plannerActor,
			Details: truncate(rawOutput, 2000),
		},
	}, 3)
	if err != nil {
		slog.Warn("Failed to record plan_validation_failed", "task_id", tc.TaskID, "error", err)
	}
}

func (p *Planner) buildPrompt(tc *models.TaskContext) (string, error) {
	dataJSON, err := json.MarshalIndent(tc.State.Data, "", "  ")
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("Task template: ")
	sb.WriteString(tc.Template.Name)
	sb.WriteString("\n")
	if tc.Template.Description != "" {
		sb.WriteString(tc.Template.Description)
		sb.WriteString("\n")
	}

	sb.WriteString("\nGoals:\n")
	for _, goal := range tc.Template.Goals {
		sb.WriteString("- ")
		sb.WriteString(goal)
		sb.WriteString("\n")
	}
	if len(tc.Template.SuccessCriteria) > 0 {
		sb.WriteString("\nSuccess criteria:\n")
		for _, c := range tc.Template.SuccessCriteria {
			sb.WriteString("- ")
			sb.WriteString(c)
			sb.WriteString("\n")
		}
	}
	if len(tc.Template.RequiredFields) > 0 {
		sb.WriteString("\nRequired data fields: ")
		sb.WriteString(strings.Join(tc.Template.RequiredFields, ", "))
		sb.WriteString("\n")
	}

	sb.WriteString("\nData accumulated so far:\n")
	sb.Write(dataJSON)
	sb.WriteString("\n\nAvailable agents:\n")
	for _, id := range p.agents.IDs() {
		cfg, err := p.agents.Get(id)
		if err != nil {
			continue
		}
		fmt.Fprintf(&sb, "- %s (capabilities: %s)", id, strings.Join(cfg.Capabilities, ", "))
		if cfg.Role != "" {
			sb.WriteString(": ")
			sb.WriteString(cfg.Role)
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

func planToMap(plan *models.ExecutionPlan) (map[string]any, error) {
	buf, err := json.Marshal(plan)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(buf, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func planReasoning(plan *models.ExecutionPlan, planErr error) string {
	ids := make([]string, 0, len(plan.Phases))
	for i := range plan.Phases {
		ids = append(ids, plan.Phases[i].PhaseID)
	}
	if planErr != nil {
		return fmt.Sprintf("Fallback plan (%s), planner output rejected: %v", strings.Join(ids, " -> "), planErr)
	}
	return "Planned phases: " + strings.Join(ids, " -> ")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}

const plannerSystemPrompt = `You are the execution planner of a task
orchestration engine. Decompose the task goals into phases executed by the
available agents.

Respond with a single JSON object:
{
  "phases": [
    {
      "phase_id": "snake_case_id",
      "name": "Human name",
      "description": "what this phase accomplishes",
      "required_agents": ["agent id or capability"],
      "prerequisites": ["phase_id", ...],
      "goals": ["...", ...],
      "parallel": false
    }
  ]
}

Rules:
- every required_agents entry must be an agent id or capability from the list provided
- prerequisites may only reference phase_ids declared in this plan, no cycles
- set "parallel": true only when a phase's agents can run independently
- prefer few meaningful phases over many trivial ones
No prose outside the JSON object.`
