// Package projection computes a task's current state from its event history.
// Project is a pure fold: identical entries yield identical state, bit for
// bit, in any process. Nothing here reads the database or the clock.
package projection

import (
	"encoding/json"

	"github.com/gianmatteo-arcana/engine-lever/ent"
	"github.com/gianmatteo-arcana/engine-lever/pkg/models"
)

// InitialPhase is the phase of a task before its task_created entry is applied.
const InitialPhase = "initialization"

// Project folds the full entry list into the current task state.
func Project(template *models.TemplateSnapshot, entries []*ent.ContextEntry) *models.TaskState {
	state := newInitialState()
	for _, e := range entries {
		apply(state, template, e)
		normalizeStatus(state)
	}
	state.Completeness = completeness(state, template)
	return state
}

// ProjectAt folds only entries with sequence_number <= seq (time travel).
func ProjectAt(template *models.TemplateSnapshot, entries []*ent.ContextEntry, seq int) *models.TaskState {
	truncated := make([]*ent.ContextEntry, 0, len(entries))
	for _, e := range entries {
		if e.SequenceNumber <= seq {
			truncated = append(truncated, e)
		}
	}
	return Project(template, truncated)
}

func newInitialState() *models.TaskState {
	return &models.TaskState{
		Status:          models.StatusCreated,
		Phase:           InitialPhase,
		Completeness:    0,
		Data:            map[string]any{},
		PendingRequests: map[string]*models.PendingUIRequest{},
		ActiveAgents:    map[string]*models.ActiveSubtask{},
		StartedPhases:   map[string]bool{},
		CompletedPhases: map[string]bool{},
	}
}

func apply(state *models.TaskState, template *models.TemplateSnapshot, e *ent.ContextEntry) {
	switch e.Operation {
	case models.OpTaskCreated:
		state.Status = models.StatusActive
		if template != nil && template.InitialPhase != "" {
			state.Phase = template.InitialPhase
		}
		state.Data = DeepMerge(state.Data, e.Data)

	case models.OpPlanCreated:
		state.Data = DeepMerge(state.Data, e.Data)
		if raw, ok := e.Data["plan"]; ok {
			state.Plan = decodePlan(raw)
		}

	case models.OpPhaseStarted:
		if phase := stringField(e.Data, "phase"); phase != "" {
			state.Phase = phase
			state.StartedPhases[phase] = true
		}

	case models.OpPhaseCompleted:
		if phase := stringField(e.Data, "phase"); phase != "" {
			state.CompletedPhases[phase] = true
		}

	case models.OpSubtaskDispatched:
		requestID := stringField(e.Data, "request_id")
		if requestID == "" {
			return
		}
		state.ActiveAgents[requestID] = &models.ActiveSubtask{
			AgentID:   stringField(e.Data, "agent_id"),
			PhaseID:   stringField(e.Data, "phase_id"),
			RequestID: requestID,
		}

	case models.OpSubtaskCompleted:
		delete(state.ActiveAgents, stringField(e.Data, "request_id"))
		if result, ok := e.Data["result"].(map[string]any); ok {
			state.Data = DeepMerge(state.Data, result)
		}

	case models.OpSubtaskFailed:
		requestID := stringField(e.Data, "request_id")
		delete(state.ActiveAgents, requestID)
		state.Failures = append(state.Failures, models.SubtaskFailure{
			AgentID:   stringField(e.Data, "agent_id"),
			PhaseID:   stringField(e.Data, "phase_id"),
			RequestID: requestID,
			ErrorKind: stringField(e.Data, "error_kind"),
			Message:   stringField(e.Data, "message"),
		})

	case models.OpSubtaskCancelled:
		delete(state.ActiveAgents, stringField(e.Data, "request_id"))

	case models.OpUIRequestCreated:
		requestID := stringField(e.Data, "request_id")
		if requestID == "" {
			return
		}
		pending := &models.PendingUIRequest{
			RequestID:    requestID,
			TemplateKind: stringField(e.Data, "template_kind"),
			Priority:     stringField(e.Data, "priority"),
			AgentID:      stringField(e.Data, "originating_agent_id"),
			Sequence:     e.SequenceNumber,
		}
		if sd, ok := e.Data["semantic_data"].(map[string]any); ok {
			pending.SemanticData = sd
		}
		state.PendingRequests[requestID] = pending

	case models.OpUIResponseReceived:
		requestID := stringField(e.Data, "request_id")
		delete(state.PendingRequests, requestID)
		if payload, ok := e.Data["payload"].(map[string]any); ok {
			state.Data = MergeAtPath(state.Data, stringField(e.Data, "data_path"), payload)
		}

	case models.OpUIRequestCancelled:
		delete(state.PendingRequests, stringField(e.Data, "request_id"))

	case models.OpTaskCompleted:
		state.Status = models.StatusCompleted

	case models.OpTaskFailed:
		state.Status = models.StatusFailed

	case models.OpTaskCancelled:
		state.Status = models.StatusCancelled

	default:
		// Unknown operations still contribute their data payload.
		state.Data = DeepMerge(state.Data, e.Data)
	}
}

// normalizeStatus derives waiting_for_input from the pending-request set.
// Terminal statuses are never overridden.
func normalizeStatus(state *models.TaskState) {
	if models.IsTerminalStatus(state.Status) || state.Status == models.StatusCreated {
		return
	}
	if len(state.PendingRequests) > 0 {
		state.Status = models.StatusWaitingForInput
	} else if state.Status == models.StatusWaitingForInput {
		state.Status = models.StatusActive
	}
}

// completeness is required_fields_present / required_fields_total × 100,
// rounded down. A task_completed event forces 100.
func completeness(state *models.TaskState, template *models.TemplateSnapshot) int {
	if state.Status == models.StatusCompleted {
		return 100
	}
	if template == nil || len(template.RequiredFields) == 0 {
		return 0
	}
	present := 0
	for _, field := range template.RequiredFields {
		if _, ok := LookupPath(state.Data, field); ok {
			present++
		}
	}
	return present * 100 / len(template.RequiredFields)
}

// decodePlan converts the plan payload (generic JSON maps) into a typed plan.
// A payload that does not decode yields nil rather than a partial plan.
func decodePlan(raw any) *models.ExecutionPlan {
	buf, err := json.Marshal(map[string]any{"plan": raw})
	if err != nil {
		return nil
	}
	var wrapper struct {
		Plan *models.ExecutionPlan `json:"plan"`
	}
	if err := json.Unmarshal(buf, &wrapper); err != nil {
		return nil
	}
	return wrapper.Plan
}

func stringField(data map[string]any, key string) string {
	if data == nil {
		return ""
	}
	s, _ := data[key].(string)
	return s
}
