package orchestrator

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/gianmatteo-arcana/engine-lever/pkg/agent"
	"github.com/gianmatteo-arcana/engine-lever/pkg/config"
	"github.com/gianmatteo-arcana/engine-lever/pkg/events"
	"github.com/gianmatteo-arcana/engine-lever/pkg/models"
	"github.com/gianmatteo-arcana/engine-lever/pkg/rendezvous"
	"github.com/gianmatteo-arcana/engine-lever/pkg/services"
	testdb "github.com/gianmatteo-arcana/engine-lever/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dispatcherFixture struct {
	dispatcher *Dispatcher
	tasks      *services.TaskService
	entries    *services.EntryService
	uiRequests *services.UIRequestService
	broker     *events.Broker
	client     *scriptedLLM
	taskID     string
}

// newDispatcherFixture wires a full dispatch stack over a scripted LLM: the
// script serves the planner first, then each agent invocation in order.
func newDispatcherFixture(t *testing.T, responses []string, defaults *config.Defaults) *dispatcherFixture {
	db := testdb.NewTestClient(t)
	entries := services.NewEntryService(db.Client, nil)
	templates := config.NewTemplateRegistry(map[string]*config.TemplateConfig{
		"business_onboarding": {
			Name:           "Business onboarding",
			InitialPhase:   "initialization",
			Goals:          []string{"Identify the legal entity"},
			RequiredFields: []string{"business.legal_name", "business.entity_type", "contact.email"},
		},
	})
	tasks := services.NewTaskService(db.Client, templates, entries, nil)
	uiRequests := services.NewUIRequestService(db.Client, nil)
	broker := events.NewBroker(nil)

	client := &scriptedLLM{responses: responses}
	gateway := gatewayOver(client)
	registry := testRegistry()

	runtime := agent.NewRuntime(registry, gateway, nil, entries, 4)
	planner := NewPlanner(gateway, registry, entries, "")
	advisor := NewAdvisor(nil, "")
	rdv := rendezvous.New(uiRequests, broker)

	task, err := tasks.Create(context.Background(), models.CreateTaskRequest{
		TenantID:   "tenant-1",
		TemplateID: "business_onboarding",
		InitialData: map[string]any{
			"business": map[string]any{"legal_name": "Acme"},
		},
		Actor: models.UserActor("user-1"),
	})
	require.NoError(t, err)

	return &dispatcherFixture{
		dispatcher: NewDispatcher(tasks, entries, runtime, planner, advisor, rdv, registry, defaults),
		tasks:      tasks,
		entries:    entries,
		uiRequests: uiRequests,
		broker:     broker,
		client:     client,
		taskID:     task.ID,
	}
}

func (f *dispatcherFixture) state(t *testing.T) *models.TaskState {
	t.Helper()
	tc, err := f.tasks.LoadContextUnscoped(context.Background(), f.taskID)
	require.NoError(t, err)
	return tc.State
}

func (f *dispatcherFixture) operations(t *testing.T) []string {
	t.Helper()
	history, err := f.entries.List(context.Background(), f.taskID)
	require.NoError(t, err)
	ops := make([]string, len(history))
	for i, e := range history {
		ops[i] = e.Operation
	}
	return ops
}

func countOp(ops []string, op string) int {
	n := 0
	for _, o := range ops {
		if o == op {
			n++
		}
	}
	return n
}

const twoPhasePlan = `{"phases":[
	{"phase_id":"collect","name":"Collect","required_agents":["collector"]},
	{"phase_id":"verify","name":"Verify","required_agents":["validation"],"prerequisites":["collect"]}
]}`

func completedEnvelope(data map[string]any) string {
	buf, _ := json.Marshal(map[string]any{
		"status":    "completed",
		"data":      data,
		"reasoning": "done",
	})
	return string(buf)
}

func TestDispatcherRun(t *testing.T) {
	f := newDispatcherFixture(t, []string{
		twoPhasePlan,
		completedEnvelope(map[string]any{"business": map[string]any{"entity_type": "LLC"}}),
		completedEnvelope(map[string]any{"contact": map[string]any{"email": "ops@acme.test"}}),
	}, nil)
	ctx := context.Background()

	require.NoError(t, f.dispatcher.Run(ctx, f.taskID))

	state := f.state(t)
	assert.Equal(t, models.StatusCompleted, state.Status)
	assert.Equal(t, 100, state.Completeness)
	assert.True(t, state.CompletedPhases["collect"])
	assert.True(t, state.CompletedPhases["verify"])
	assert.Empty(t, state.ActiveAgents)

	// Agent results are merged into task data in phase order.
	business := state.Data["business"].(map[string]any)
	assert.Equal(t, "Acme", business["legal_name"])
	assert.Equal(t, "LLC", business["entity_type"])

	ops := f.operations(t)
	assert.Equal(t, models.OpTaskCreated, ops[0])
	assert.Equal(t, models.OpPlanCreated, ops[1])
	assert.Equal(t, models.OpTaskCompleted, ops[len(ops)-1])
	assert.Equal(t, 2, countOp(ops, models.OpPhaseStarted))
	assert.Equal(t, 2, countOp(ops, models.OpSubtaskDispatched))
	assert.Equal(t, 2, countOp(ops, models.OpSubtaskCompleted))
	assert.Equal(t, 2, countOp(ops, models.OpPhaseCompleted))

	// Planner call plus one call per subtask.
	assert.Len(t, f.client.calls, 3)

	t.Run("rerun on a terminal task is a no-op", func(t *testing.T) {
		before := len(f.operations(t))
		require.NoError(t, f.dispatcher.Run(ctx, f.taskID))
		assert.Len(t, f.operations(t), before)
		assert.Len(t, f.client.calls, 3)
	})
}

func TestDispatcherResume(t *testing.T) {
	// Only the validator envelope is scripted: the plan is already recorded
	// and the first phase already completed, as after a mid-run crash.
	f := newDispatcherFixture(t, []string{
		completedEnvelope(map[string]any{"verified": true}),
	}, nil)
	ctx := context.Background()

	var plan models.ExecutionPlan
	require.NoError(t, json.Unmarshal([]byte(twoPhasePlan), &plan))
	planMap, err := planToMap(&plan)
	require.NoError(t, err)

	seed := []struct {
		op   string
		data map[string]any
	}{
		{models.OpPlanCreated, map[string]any{"plan": planMap}},
		{models.OpPhaseStarted, map[string]any{"phase": "collect"}},
		{models.OpSubtaskDispatched, map[string]any{
			"request_id": SubtaskRequestID(f.taskID, "collect", "collector"),
			"agent_id":   "collector",
			"phase_id":   "collect",
		}},
		{models.OpSubtaskCompleted, map[string]any{
			"request_id": SubtaskRequestID(f.taskID, "collect", "collector"),
			"agent_id":   "collector",
			"phase_id":   "collect",
			"result":     map[string]any{"business": map[string]any{"entity_type": "LLC"}},
		}},
		{models.OpPhaseCompleted, map[string]any{"phase": "collect"}},
	}
	for _, s := range seed {
		_, err := f.entries.Append(ctx, models.AppendEntryRequest{
			TaskID:           f.taskID,
			ExpectedSequence: -1,
			Actor:            models.SystemActor("dispatcher"),
			Operation:        s.op,
			Data:             s.data,
		})
		require.NoError(t, err)
	}

	require.NoError(t, f.dispatcher.Run(ctx, f.taskID))

	state := f.state(t)
	assert.Equal(t, models.StatusCompleted, state.Status)

	// The completed phase was not re-dispatched: one agent call, no planner call.
	require.Len(t, f.client.calls, 1)
	assert.NotContains(t, f.client.calls[0].Messages[0].Content, "execution planner")
}

func TestDispatcherNeedsInput(t *testing.T) {
	singlePhasePlan := `{"phases":[{"phase_id":"collect","name":"Collect","required_agents":["collector"]}]}`
	needsInput, _ := json.Marshal(map[string]any{
		"status":    "needs_input",
		"reasoning": "email is missing",
		"ui_requests": []map[string]any{{
			"request_id":    "ui-1",
			"template_kind": models.UIKindForm,
			"semantic_data": map[string]any{"data_path": "contact", "fields": []string{"email"}},
		}},
	})

	f := newDispatcherFixture(t, []string{
		singlePhasePlan,
		string(needsInput),
		completedEnvelope(map[string]any{"business": map[string]any{"entity_type": "LLC"}}),
	}, nil)
	ctx := context.Background()

	// Play the user: answer the request as soon as the dispatch opens it.
	responderDone := make(chan error, 1)
	go func() {
		deadline := time.Now().Add(10 * time.Second)
		for time.Now().Before(deadline) {
			pending, err := f.uiRequests.ListPending(ctx, f.taskID)
			if err == nil && len(pending) > 0 {
				_, err = f.uiRequests.SubmitResponse(ctx, f.taskID, models.UIResponse{
					RequestID: pending[0].ID,
					Payload:   map[string]any{"email": "ops@acme.test"},
					Actor:     models.UserActor("user-1"),
				})
				if err == nil {
					payload, _ := json.Marshal(map[string]any{
						"type":       events.EventTypeUIResponseReceived,
						"request_id": pending[0].ID,
					})
					f.broker.Broadcast(events.TaskChannel(f.taskID), payload)
				}
				responderDone <- err
				return
			}
			time.Sleep(20 * time.Millisecond)
		}
		responderDone <- context.DeadlineExceeded
	}()

	require.NoError(t, f.dispatcher.Run(ctx, f.taskID))
	require.NoError(t, <-responderDone)

	state := f.state(t)
	assert.Equal(t, models.StatusCompleted, state.Status)
	assert.Empty(t, state.PendingRequests)

	// The user's answer landed at the request's data_path before the agent
	// was re-invoked.
	contact := state.Data["contact"].(map[string]any)
	assert.Equal(t, "ops@acme.test", contact["email"])

	ops := f.operations(t)
	assert.Equal(t, 1, countOp(ops, models.OpUIRequestCreated))
	assert.Equal(t, 1, countOp(ops, models.OpUIResponseReceived))
	// Dispatched once; needs_input does not close the subtask.
	assert.Equal(t, 1, countOp(ops, models.OpSubtaskDispatched))
	assert.Equal(t, 1, countOp(ops, models.OpSubtaskCompleted))
}

func TestDispatcherFallbackPlan(t *testing.T) {
	f := newDispatcherFixture(t, []string{
		"the model rambles instead of planning",
		"still no json here",
		completedEnvelope(map[string]any{"business": map[string]any{"entity_type": "LLC"}}),
		completedEnvelope(map[string]any{"contact": map[string]any{"email": "ops@acme.test"}}),
	}, nil)
	ctx := context.Background()

	require.NoError(t, f.dispatcher.Run(ctx, f.taskID))

	state := f.state(t)
	assert.Equal(t, models.StatusCompleted, state.Status)

	// The fallback pipeline replaced the rejected output.
	require.NotNil(t, state.Plan)
	require.Len(t, state.Plan.Phases, 2)
	assert.Equal(t, "data_collection", state.Plan.Phases[0].PhaseID)
	assert.Equal(t, "validation", state.Plan.Phases[1].PhaseID)

	ops := f.operations(t)
	failedIdx := -1
	createdIdx := -1
	for i, op := range ops {
		switch op {
		case models.OpPlanValidationFailed:
			failedIdx = i
		case models.OpPlanCreated:
			createdIdx = i
		}
	}
	require.GreaterOrEqual(t, failedIdx, 0)
	require.GreaterOrEqual(t, createdIdx, 0)
	assert.Less(t, failedIdx, createdIdx, "rejection is recorded before the fallback plan")
}

func TestDispatcherRetriesExhausted(t *testing.T) {
	defaults := config.DefaultDefaults()
	defaults.MaxSubtaskRetries = 1

	errorEnvelope, _ := json.Marshal(map[string]any{
		"status":    "error",
		"reasoning": "registry unreachable",
		"error":     map[string]any{"kind": models.ErrKindCallFailed, "message": "registry unreachable"},
	})

	f := newDispatcherFixture(t, []string{
		`{"phases":[{"phase_id":"collect","name":"Collect","required_agents":["collector"]}]}`,
		string(errorEnvelope),
	}, defaults)
	ctx := context.Background()

	require.NoError(t, f.dispatcher.Run(ctx, f.taskID))

	state := f.state(t)
	assert.Equal(t, models.StatusFailed, state.Status)

	ops := f.operations(t)
	// Initial attempt plus one retry, then the failure policy gives up.
	assert.Equal(t, 2, countOp(ops, models.OpSubtaskFailed))
	assert.Equal(t, 1, countOp(ops, models.OpTaskFailed))

	task, err := f.tasks.Get(ctx, "tenant-1", f.taskID)
	require.NoError(t, err)
	require.NotNil(t, task.ErrorMessage)
	assert.Contains(t, *task.ErrorMessage, "phase collect failed")
}

func TestDispatcherEscalation(t *testing.T) {
	// A validation failure skips the retry loop and goes to the user; once
	// acknowledged, the agent is re-invoked.
	errorEnvelope, _ := json.Marshal(map[string]any{
		"status":    "error",
		"reasoning": "input rejected",
		"error":     map[string]any{"kind": models.ErrKindValidation, "message": "input rejected"},
	})

	f := newDispatcherFixture(t, []string{
		`{"phases":[{"phase_id":"collect","name":"Collect","required_agents":["collector"]}]}`,
		string(errorEnvelope),
		completedEnvelope(map[string]any{"business": map[string]any{"entity_type": "LLC"}}),
	}, nil)
	ctx := context.Background()

	responderDone := make(chan error, 1)
	go func() {
		deadline := time.Now().Add(10 * time.Second)
		for time.Now().Before(deadline) {
			pending, err := f.uiRequests.ListPending(ctx, f.taskID)
			if err == nil && len(pending) > 0 {
				_, err = f.uiRequests.SubmitResponse(ctx, f.taskID, models.UIResponse{
					RequestID: pending[0].ID,
					Payload:   map[string]any{"acknowledged": true},
					Actor:     models.UserActor("user-1"),
				})
				if err == nil {
					payload, _ := json.Marshal(map[string]any{
						"type":       events.EventTypeUIResponseReceived,
						"request_id": pending[0].ID,
					})
					f.broker.Broadcast(events.TaskChannel(f.taskID), payload)
				}
				responderDone <- err
				return
			}
			time.Sleep(20 * time.Millisecond)
		}
		responderDone <- context.DeadlineExceeded
	}()

	require.NoError(t, f.dispatcher.Run(ctx, f.taskID))
	require.NoError(t, <-responderDone)

	state := f.state(t)
	assert.Equal(t, models.StatusCompleted, state.Status)

	ops := f.operations(t)
	// No mechanical retry before the escalation, one re-dispatch after it.
	assert.Equal(t, 1, countOp(ops, models.OpSubtaskFailed))
	assert.Equal(t, 2, countOp(ops, models.OpSubtaskDispatched))
	assert.Equal(t, 1, countOp(ops, models.OpUIRequestCreated))
	assert.Equal(t, 1, countOp(ops, models.OpUIResponseReceived))
}

func TestDispatcherPersistentFailureBounded(t *testing.T) {
	// The agent fails with the same non-retryable error after every
	// escalation; the failure policy must give up instead of cycling.
	defaults := config.DefaultDefaults()
	defaults.MaxFailureRounds = 2

	errorEnvelope, _ := json.Marshal(map[string]any{
		"status":    "error",
		"reasoning": "input rejected",
		"error":     map[string]any{"kind": models.ErrKindValidation, "message": "input rejected"},
	})

	f := newDispatcherFixture(t, []string{
		`{"phases":[{"phase_id":"collect","name":"Collect","required_agents":["collector"]}]}`,
		string(errorEnvelope),
	}, defaults)
	ctx := context.Background()

	// Acknowledge every escalation as soon as it opens.
	stop := make(chan struct{})
	go func() {
		for {
			select {
			case <-stop:
				return
			case <-time.After(20 * time.Millisecond):
			}
			pending, err := f.uiRequests.ListPending(ctx, f.taskID)
			if err != nil {
				continue
			}
			for _, p := range pending {
				if _, err := f.uiRequests.SubmitResponse(ctx, f.taskID, models.UIResponse{
					RequestID: p.ID,
					Payload:   map[string]any{"acknowledged": true},
					Actor:     models.UserActor("user-1"),
				}); err == nil {
					payload, _ := json.Marshal(map[string]any{
						"type":       events.EventTypeUIResponseReceived,
						"request_id": p.ID,
					})
					f.broker.Broadcast(events.TaskChannel(f.taskID), payload)
				}
			}
		}
	}()
	defer close(stop)

	require.NoError(t, f.dispatcher.Run(ctx, f.taskID))

	state := f.state(t)
	assert.Equal(t, models.StatusFailed, state.Status)

	ops := f.operations(t)
	// One failure per policy round plus the final one that hits the cap;
	// each answered escalation is a distinct request.
	assert.Equal(t, 3, countOp(ops, models.OpSubtaskFailed))
	assert.Equal(t, 2, countOp(ops, models.OpUIRequestCreated))
	assert.Equal(t, 1, countOp(ops, models.OpTaskFailed))

	task, err := f.tasks.Get(ctx, "tenant-1", f.taskID)
	require.NoError(t, err)
	require.NotNil(t, task.ErrorMessage)
	assert.Contains(t, *task.ErrorMessage, "failure policy exhausted")
}

func TestSelectAgentVersionTieBreak(t *testing.T) {
	registry := config.NewAgentRegistry(map[string]*config.AgentConfig{
		"alpha": {Version: "9.0.0", Capabilities: []string{"data_collection"}, Instructions: []string{"collect"}},
		"beta":  {Version: "10.0.0", Capabilities: []string{"data_collection"}, Instructions: []string{"collect"}},
		"gamma": {Version: "10.0.0", Capabilities: []string{"data_collection"}, Instructions: []string{"collect"}},
	})
	d := &Dispatcher{agents: registry}

	id, err := d.selectAgent("data_collection", nil)
	require.NoError(t, err)
	assert.Equal(t, "beta", id, "highest numeric version wins, ties break to the smallest id")

	id, err = d.selectAgent("data_collection", map[string]bool{"beta": true})
	require.NoError(t, err)
	assert.Equal(t, "gamma", id)
}

func TestCompareVersions(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"10.0.0", "9.0.0", 1},
		{"1.2", "1.2.1", -1},
		{"1.2.3", "1.2.3", 0},
		{"2.1", "2.0.9", 1},
		{"1.0", "1.0-rc", -1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, compareVersions(tc.a, tc.b), "%s vs %s", tc.a, tc.b)
		assert.Equal(t, -tc.want, compareVersions(tc.b, tc.a), "%s vs %s reversed", tc.b, tc.a)
	}
}
