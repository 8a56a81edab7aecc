package orchestrator

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gianmatteo-arcana/engine-lever/pkg/config"
	"github.com/gianmatteo-arcana/engine-lever/pkg/llm"
	"github.com/gianmatteo-arcana/engine-lever/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedLLM serves canned responses in order, repeating the last one.
type scriptedLLM struct {
	mu        sync.Mutex
	responses []string
	calls     []llm.Request
}

func (s *scriptedLLM) Complete(_ context.Context, req llm.Request) (*llm.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, req)
	idx := len(s.calls) - 1
	if idx >= len(s.responses) {
		idx = len(s.responses) - 1
	}
	return &llm.Response{Content: s.responses[idx], Model: "test"}, nil
}

func (s *scriptedLLM) Close() error { return nil }

func gatewayOver(client llm.Client) *llm.Gateway {
	return llm.NewGateway(client, llm.GatewayConfig{
		Timeout:       5 * time.Second,
		MaxAttempts:   1,
		MaxConcurrent: 4,
	})
}

func testRegistry() *config.AgentRegistry {
	return config.NewAgentRegistry(map[string]*config.AgentConfig{
		"collector": {
			Version:      "1.0.0",
			Capabilities: []string{"data_collection"},
			Instructions: []string{"collect"},
		},
		"validator": {
			Version:      "1.0.0",
			Capabilities: []string{"validation"},
			Instructions: []string{"validate"},
		},
	})
}

func testTaskContext() *models.TaskContext {
	return &models.TaskContext{
		TaskID:     "task-1",
		TenantID:   "tenant-1",
		TemplateID: "business_onboarding",
		Template: &models.TemplateSnapshot{
			TemplateID:     "business_onboarding",
			Name:           "Business onboarding",
			InitialPhase:   "initialization",
			Goals:          []string{"Identify the legal entity"},
			RequiredFields: []string{"business.legal_name"},
		},
		State: &models.TaskState{
			Status: models.StatusActive,
			Phase:  "initialization",
			Data:   map[string]any{"business": map[string]any{"legal_name": "Acme"}},
		},
	}
}

func TestPlannerPropose(t *testing.T) {
	t.Run("valid plan from the model", func(t *testing.T) {
		client := &scriptedLLM{responses: []string{
			`{"phases":[
				{"phase_id":"collect","name":"Collect","required_agents":["collector"]},
				{"phase_id":"verify","name":"Verify","required_agents":["validation"],"prerequisites":["collect"]}
			]}`,
		}}
		p := NewPlanner(gatewayOver(client), testRegistry(), nil, "")

		plan, _, err := p.propose(context.Background(), testTaskContext())
		require.NoError(t, err)
		require.Len(t, plan.Phases, 2)
		assert.Equal(t, "collect", plan.Phases[0].PhaseID)
	})

	t.Run("prompt carries template and agent roster", func(t *testing.T) {
		client := &scriptedLLM{responses: []string{
			`{"phases":[{"phase_id":"p","required_agents":["collector"]}]}`,
		}}
		p := NewPlanner(gatewayOver(client), testRegistry(), nil, "")

		_, _, err := p.propose(context.Background(), testTaskContext())
		require.NoError(t, err)

		require.Len(t, client.calls, 1)
		prompt := client.calls[0].Messages[1].Content
		assert.Contains(t, prompt, "Business onboarding")
		assert.Contains(t, prompt, "Identify the legal entity")
		assert.Contains(t, prompt, "business.legal_name")
		assert.Contains(t, prompt, "collector")
		assert.Contains(t, prompt, "validator")
	})

	t.Run("unresolvable agent rejected", func(t *testing.T) {
		client := &scriptedLLM{responses: []string{
			`{"phases":[{"phase_id":"p","required_agents":["no_such_agent"]}]}`,
		}}
		p := NewPlanner(gatewayOver(client), testRegistry(), nil, "")

		_, raw, err := p.propose(context.Background(), testTaskContext())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no_such_agent")
		assert.NotEmpty(t, raw)
	})

	t.Run("cyclic prerequisites rejected", func(t *testing.T) {
		client := &scriptedLLM{responses: []string{
			`{"phases":[
				{"phase_id":"a","required_agents":["collector"],"prerequisites":["b"]},
				{"phase_id":"b","required_agents":["collector"],"prerequisites":["a"]}
			]}`,
		}}
		p := NewPlanner(gatewayOver(client), testRegistry(), nil, "")

		_, _, err := p.propose(context.Background(), testTaskContext())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cycle")
	})
}

func TestPlannerValidate(t *testing.T) {
	p := NewPlanner(nil, testRegistry(), nil, "")

	t.Run("empty plan", func(t *testing.T) {
		err := p.validate(&models.ExecutionPlan{})
		assert.ErrorContains(t, err, "no phases")
	})

	t.Run("missing phase id", func(t *testing.T) {
		err := p.validate(planOf(models.PlanPhase{RequiredAgents: []string{"collector"}}))
		assert.ErrorContains(t, err, "no phase_id")
	})

	t.Run("no agents named", func(t *testing.T) {
		err := p.validate(planOf(models.PlanPhase{PhaseID: "p"}))
		assert.ErrorContains(t, err, "names no agents")
	})

	t.Run("capability reference resolves", func(t *testing.T) {
		err := p.validate(planOf(models.PlanPhase{PhaseID: "p", RequiredAgents: []string{"validation"}}))
		assert.NoError(t, err)
	})
}

func TestPlannerFallbackPlan(t *testing.T) {
	t.Run("reduced to capabilities with agents", func(t *testing.T) {
		p := NewPlanner(nil, testRegistry(), nil, "")
		plan := p.fallbackPlan()

		// No completion-capable agent is configured, so that stage drops out.
		require.Len(t, plan.Phases, 2)
		assert.Equal(t, "data_collection", plan.Phases[0].PhaseID)
		assert.Equal(t, "validation", plan.Phases[1].PhaseID)
		assert.Equal(t, []string{"data_collection"}, plan.Phases[1].Prerequisites)

		_, err := TopoSort(plan)
		assert.NoError(t, err)
	})

	t.Run("empty registry yields empty plan", func(t *testing.T) {
		p := NewPlanner(nil, config.NewAgentRegistry(nil), nil, "")
		assert.Empty(t, p.fallbackPlan().Phases)
	})
}

func TestPlanReasoning(t *testing.T) {
	plan := planOf(
		models.PlanPhase{PhaseID: "a"},
		models.PlanPhase{PhaseID: "b"},
	)
	assert.Equal(t, "Planned phases: a -> b", planReasoning(plan, nil))
	assert.True(t, strings.HasPrefix(
		planReasoning(plan, assert.AnError),
		"Fallback plan (a -> b), planner output rejected:"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "lo…", truncate("long text", 2))
}

func TestAdvisorHeuristics(t *testing.T) {
	t.Run("nil advisor falls back to heuristic", func(t *testing.T) {
		var a *Advisor
		advice := a.Advise(context.Background(), testTaskContext(), models.SubtaskFailure{
			ErrorKind: models.ErrKindTimeout,
		}, 3)
		assert.Equal(t, DecisionFailTask, advice.Decision)
	})

	t.Run("no agents available fails the task", func(t *testing.T) {
		advice := heuristicAdvice(models.SubtaskFailure{ErrorKind: models.ErrKindNoAgentsAvailable})
		assert.Equal(t, DecisionFailTask, advice.Decision)
	})

	t.Run("non-retryable kinds escalate", func(t *testing.T) {
		advice := heuristicAdvice(models.SubtaskFailure{ErrorKind: models.ErrKindContractViolation})
		assert.Equal(t, DecisionEscalateToUser, advice.Decision)
	})
}

func TestAdvisorAdvise(t *testing.T) {
	failure := models.SubtaskFailure{
		RequestID: "req-1",
		AgentID:   "collector",
		PhaseID:   "collect",
		ErrorKind: models.ErrKindTimeout,
		Message:   "agent run timed out",
	}

	t.Run("accepts a known decision", func(t *testing.T) {
		client := &scriptedLLM{responses: []string{
			`{"decision":"Retry_With_Alternative_Agent","rationale":"the validator can also collect"}`,
		}}
		a := NewAdvisor(gatewayOver(client), "")

		advice := a.Advise(context.Background(), testTaskContext(), failure, 3)
		assert.Equal(t, DecisionRetryAlternative, advice.Decision)
	})

	t.Run("unknown decision falls back to heuristic", func(t *testing.T) {
		client := &scriptedLLM{responses: []string{
			`{"decision":"reboot_the_universe","rationale":"why not"}`,
		}}
		a := NewAdvisor(gatewayOver(client), "")

		advice := a.Advise(context.Background(), testTaskContext(), failure, 3)
		assert.Equal(t, DecisionFailTask, advice.Decision)
	})
}
