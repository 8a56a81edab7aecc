package models

// TaskState is the deterministic projection of a task's event history.
// It is recomputed on every read and never cached across appends.
type TaskState struct {
	Status          string                       `json:"status"`
	Phase           string                       `json:"phase"`
	Completeness    int                          `json:"completeness"` // 0–100
	Data            map[string]any               `json:"data"`
	Plan            *ExecutionPlan               `json:"plan,omitempty"`
	PendingRequests map[string]*PendingUIRequest `json:"pending_user_interactions"`
	ActiveAgents    map[string]*ActiveSubtask    `json:"active_agents"`
	StartedPhases   map[string]bool              `json:"started_phases"`
	CompletedPhases map[string]bool              `json:"completed_phases"`
	Failures        []SubtaskFailure             `json:"failures,omitempty"`
}

// PendingUIRequest is a UI request not yet responded to, as projected from
// ui_request_created entries without a matching response or cancellation.
type PendingUIRequest struct {
	RequestID    string         `json:"request_id"`
	TemplateKind string         `json:"template_kind"`
	Priority     string         `json:"priority"`
	SemanticData map[string]any `json:"semantic_data,omitempty"`
	AgentID      string         `json:"originating_agent_id,omitempty"`
	Sequence     int            `json:"sequence_number"`
}

// ActiveSubtask is an in-flight dispatch: a subtask_dispatched entry without
// a terminal subtask_* entry yet.
type ActiveSubtask struct {
	AgentID   string `json:"agent_id"`
	PhaseID   string `json:"phase_id"`
	RequestID string `json:"request_id"`
}

// SubtaskFailure records a subtask_failed entry in the projection, keyed for
// the dispatcher's retry accounting.
type SubtaskFailure struct {
	AgentID   string `json:"agent_id"`
	PhaseID   string `json:"phase_id"`
	RequestID string `json:"request_id"`
	ErrorKind string `json:"error_kind,omitempty"`
	Message   string `json:"message,omitempty"`
}

// PhaseTerminal reports whether the given phase has completed.
func (s *TaskState) PhaseTerminal(phaseID string) bool {
	return s.CompletedPhases[phaseID]
}

// SubtaskFailureCount returns how many times the given subtask has failed.
func (s *TaskState) SubtaskFailureCount(phaseID, requestID string) int {
	n := 0
	for _, f := range s.Failures {
		if f.PhaseID == phaseID && f.RequestID == requestID {
			n++
		}
	}
	return n
}
