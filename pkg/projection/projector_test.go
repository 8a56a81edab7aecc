package projection

import (
	"testing"

	"github.com/gianmatteo-arcana/engine-lever/ent"
	"github.com/gianmatteo-arcana/engine-lever/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(seq int, op string, data map[string]any) *ent.ContextEntry {
	return &ent.ContextEntry{
		SequenceNumber: seq,
		Operation:      op,
		Data:           data,
	}
}

func testTemplate() *models.TemplateSnapshot {
	return &models.TemplateSnapshot{
		TemplateID:     "business_onboarding",
		Name:           "Business onboarding",
		InitialPhase:   "initialization",
		RequiredFields: []string{"business.legal_name", "business.entity_type", "contact.email"},
	}
}

func TestProject_EmptyHistory(t *testing.T) {
	state := Project(testTemplate(), nil)

	assert.Equal(t, models.StatusCreated, state.Status)
	assert.Equal(t, InitialPhase, state.Phase)
	assert.Equal(t, 0, state.Completeness)
	assert.Empty(t, state.Data)
	assert.Empty(t, state.PendingRequests)
	assert.Empty(t, state.ActiveAgents)
}

func TestProject_TaskCreated(t *testing.T) {
	state := Project(testTemplate(), []*ent.ContextEntry{
		entry(1, models.OpTaskCreated, map[string]any{
			"business": map[string]any{"legal_name": "Acme Corp"},
		}),
	})

	assert.Equal(t, models.StatusActive, state.Status)
	assert.Equal(t, "initialization", state.Phase)
	assert.Equal(t, "Acme Corp", state.Data["business"].(map[string]any)["legal_name"])
	// 1 of 3 required fields present
	assert.Equal(t, 33, state.Completeness)
}

func TestProject_PlanCreated(t *testing.T) {
	planData := map[string]any{
		"phases": []any{
			map[string]any{
				"phase_id":        "collect",
				"name":            "Collect",
				"required_agents": []any{"data_collection"},
			},
			map[string]any{
				"phase_id":        "verify",
				"required_agents": []any{"validation"},
				"prerequisites":   []any{"collect"},
			},
		},
	}
	state := Project(testTemplate(), []*ent.ContextEntry{
		entry(1, models.OpTaskCreated, nil),
		entry(2, models.OpPlanCreated, map[string]any{"plan": planData}),
	})

	require.NotNil(t, state.Plan)
	require.Len(t, state.Plan.Phases, 2)
	assert.Equal(t, "collect", state.Plan.Phases[0].PhaseID)
	assert.Equal(t, []string{"collect"}, state.Plan.Phases[1].Prerequisites)
}

func TestProject_UndecodablePlanYieldsNil(t *testing.T) {
	state := Project(testTemplate(), []*ent.ContextEntry{
		entry(1, models.OpTaskCreated, nil),
		entry(2, models.OpPlanCreated, map[string]any{"plan": "not a plan"}),
	})
	assert.Nil(t, state.Plan)
}

func TestProject_PhaseLifecycle(t *testing.T) {
	state := Project(testTemplate(), []*ent.ContextEntry{
		entry(1, models.OpTaskCreated, nil),
		entry(2, models.OpPhaseStarted, map[string]any{"phase": "collect"}),
		entry(3, models.OpPhaseCompleted, map[string]any{"phase": "collect"}),
		entry(4, models.OpPhaseStarted, map[string]any{"phase": "verify"}),
	})

	assert.Equal(t, "verify", state.Phase)
	assert.True(t, state.StartedPhases["collect"])
	assert.True(t, state.StartedPhases["verify"])
	assert.True(t, state.CompletedPhases["collect"])
	assert.False(t, state.CompletedPhases["verify"])
}

func TestProject_SubtaskLifecycle(t *testing.T) {
	dispatch := map[string]any{
		"request_id": "req-1",
		"agent_id":   "onboarding_agent",
		"phase_id":   "collect",
	}

	t.Run("dispatched appears in active agents", func(t *testing.T) {
		state := Project(testTemplate(), []*ent.ContextEntry{
			entry(1, models.OpTaskCreated, nil),
			entry(2, models.OpSubtaskDispatched, dispatch),
		})
		require.Contains(t, state.ActiveAgents, "req-1")
		assert.Equal(t, "onboarding_agent", state.ActiveAgents["req-1"].AgentID)
		assert.Equal(t, "collect", state.ActiveAgents["req-1"].PhaseID)
	})

	t.Run("completed clears the dispatch and merges the result", func(t *testing.T) {
		state := Project(testTemplate(), []*ent.ContextEntry{
			entry(1, models.OpTaskCreated, nil),
			entry(2, models.OpSubtaskDispatched, dispatch),
			entry(3, models.OpSubtaskCompleted, map[string]any{
				"request_id": "req-1",
				"result": map[string]any{
					"business": map[string]any{"entity_type": "llc"},
				},
			}),
		})
		assert.Empty(t, state.ActiveAgents)
		assert.Equal(t, "llc", state.Data["business"].(map[string]any)["entity_type"])
	})

	t.Run("failed clears the dispatch and records the failure", func(t *testing.T) {
		state := Project(testTemplate(), []*ent.ContextEntry{
			entry(1, models.OpTaskCreated, nil),
			entry(2, models.OpSubtaskDispatched, dispatch),
			entry(3, models.OpSubtaskFailed, map[string]any{
				"request_id": "req-1",
				"agent_id":   "onboarding_agent",
				"phase_id":   "collect",
				"error_kind": models.ErrKindTimeout,
				"message":    "llm call timed out",
			}),
		})
		assert.Empty(t, state.ActiveAgents)
		require.Len(t, state.Failures, 1)
		assert.Equal(t, models.ErrKindTimeout, state.Failures[0].ErrorKind)
		assert.Equal(t, 1, state.SubtaskFailureCount("collect", "req-1"))
		assert.Equal(t, 0, state.SubtaskFailureCount("collect", "other"))
	})

	t.Run("cancelled clears the dispatch without a failure", func(t *testing.T) {
		state := Project(testTemplate(), []*ent.ContextEntry{
			entry(1, models.OpTaskCreated, nil),
			entry(2, models.OpSubtaskDispatched, dispatch),
			entry(3, models.OpSubtaskCancelled, map[string]any{"request_id": "req-1"}),
		})
		assert.Empty(t, state.ActiveAgents)
		assert.Empty(t, state.Failures)
	})
}

func TestProject_UIRequestLifecycle(t *testing.T) {
	created := map[string]any{
		"request_id":           "ui-1",
		"template_kind":        models.UIKindForm,
		"priority":             models.PriorityMedium,
		"originating_agent_id": "onboarding_agent",
		"semantic_data":        map[string]any{"data_path": "contact"},
	}

	t.Run("created request flips status to waiting_for_input", func(t *testing.T) {
		state := Project(testTemplate(), []*ent.ContextEntry{
			entry(1, models.OpTaskCreated, nil),
			entry(2, models.OpUIRequestCreated, created),
		})
		assert.Equal(t, models.StatusWaitingForInput, state.Status)
		require.Contains(t, state.PendingRequests, "ui-1")
		assert.Equal(t, models.UIKindForm, state.PendingRequests["ui-1"].TemplateKind)
		assert.Equal(t, 2, state.PendingRequests["ui-1"].Sequence)
	})

	t.Run("response merges the payload at data_path and reverts to active", func(t *testing.T) {
		state := Project(testTemplate(), []*ent.ContextEntry{
			entry(1, models.OpTaskCreated, nil),
			entry(2, models.OpUIRequestCreated, created),
			entry(3, models.OpUIResponseReceived, map[string]any{
				"request_id": "ui-1",
				"data_path":  "contact",
				"payload":    map[string]any{"email": "ops@acme.test"},
			}),
		})
		assert.Equal(t, models.StatusActive, state.Status)
		assert.Empty(t, state.PendingRequests)
		assert.Equal(t, "ops@acme.test", state.Data["contact"].(map[string]any)["email"])
	})

	t.Run("cancellation clears the request without merging data", func(t *testing.T) {
		state := Project(testTemplate(), []*ent.ContextEntry{
			entry(1, models.OpTaskCreated, nil),
			entry(2, models.OpUIRequestCreated, created),
			entry(3, models.OpUIRequestCancelled, map[string]any{"request_id": "ui-1"}),
		})
		assert.Equal(t, models.StatusActive, state.Status)
		assert.Empty(t, state.PendingRequests)
		assert.NotContains(t, state.Data, "contact")
	})

	t.Run("status stays waiting while any request is pending", func(t *testing.T) {
		second := map[string]any{
			"request_id":    "ui-2",
			"template_kind": models.UIKindConfirmation,
		}
		state := Project(testTemplate(), []*ent.ContextEntry{
			entry(1, models.OpTaskCreated, nil),
			entry(2, models.OpUIRequestCreated, created),
			entry(3, models.OpUIRequestCreated, second),
			entry(4, models.OpUIResponseReceived, map[string]any{
				"request_id": "ui-1",
				"payload":    map[string]any{},
			}),
		})
		assert.Equal(t, models.StatusWaitingForInput, state.Status)
	})
}

func TestProject_TerminalStatuses(t *testing.T) {
	t.Run("completed forces completeness to 100", func(t *testing.T) {
		state := Project(testTemplate(), []*ent.ContextEntry{
			entry(1, models.OpTaskCreated, nil),
			entry(2, models.OpTaskCompleted, nil),
		})
		assert.Equal(t, models.StatusCompleted, state.Status)
		assert.Equal(t, 100, state.Completeness)
	})

	t.Run("terminal status survives a later pending request", func(t *testing.T) {
		state := Project(testTemplate(), []*ent.ContextEntry{
			entry(1, models.OpTaskCreated, nil),
			entry(2, models.OpTaskCancelled, nil),
			entry(3, models.OpUIRequestCreated, map[string]any{
				"request_id":    "ui-1",
				"template_kind": models.UIKindForm,
			}),
		})
		assert.Equal(t, models.StatusCancelled, state.Status)
	})

	t.Run("failed keeps measured completeness", func(t *testing.T) {
		state := Project(testTemplate(), []*ent.ContextEntry{
			entry(1, models.OpTaskCreated, map[string]any{
				"business": map[string]any{"legal_name": "Acme", "entity_type": "llc"},
			}),
			entry(2, models.OpTaskFailed, map[string]any{"message": "boom"}),
		})
		assert.Equal(t, models.StatusFailed, state.Status)
		assert.Equal(t, 66, state.Completeness)
	})
}

func TestProject_UnknownOperationMergesData(t *testing.T) {
	state := Project(testTemplate(), []*ent.ContextEntry{
		entry(1, models.OpTaskCreated, nil),
		entry(2, "custom_annotation", map[string]any{"notes": "checked manually"}),
	})
	assert.Equal(t, "checked manually", state.Data["notes"])
}

func TestProject_Deterministic(t *testing.T) {
	entries := []*ent.ContextEntry{
		entry(1, models.OpTaskCreated, map[string]any{"a": 1.0}),
		entry(2, models.OpPhaseStarted, map[string]any{"phase": "collect"}),
		entry(3, models.OpSubtaskDispatched, map[string]any{
			"request_id": "r1", "agent_id": "x", "phase_id": "collect",
		}),
		entry(4, models.OpSubtaskCompleted, map[string]any{
			"request_id": "r1",
			"result":     map[string]any{"b": map[string]any{"c": "v"}},
		}),
		entry(5, models.OpPhaseCompleted, map[string]any{"phase": "collect"}),
	}

	first := Project(testTemplate(), entries)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Project(testTemplate(), entries))
	}
}

func TestProjectAt_TimeTravel(t *testing.T) {
	entries := []*ent.ContextEntry{
		entry(1, models.OpTaskCreated, nil),
		entry(2, models.OpPhaseStarted, map[string]any{"phase": "collect"}),
		entry(3, models.OpTaskCompleted, nil),
	}

	atTwo := ProjectAt(testTemplate(), entries, 2)
	assert.Equal(t, models.StatusActive, atTwo.Status)
	assert.Equal(t, "collect", atTwo.Phase)

	atThree := ProjectAt(testTemplate(), entries, 3)
	assert.Equal(t, models.StatusCompleted, atThree.Status)
}
