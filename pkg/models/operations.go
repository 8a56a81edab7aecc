package models

// Context entry operations. The projector gives each a specific transition;
// any operation outside this set deep-merges its data payload and nothing else.
const (
	OpTaskCreated        = "task_created"
	OpPlanCreated        = "plan_created"
	OpPhaseStarted       = "phase_started"
	OpPhaseCompleted     = "phase_completed"
	OpSubtaskDispatched  = "subtask_dispatched"
	OpSubtaskCompleted   = "subtask_completed"
	OpSubtaskFailed      = "subtask_failed"
	OpSubtaskCancelled   = "subtask_cancelled"
	OpUIRequestCreated   = "ui_request_created"
	OpUIResponseReceived = "ui_response_received"
	OpUIRequestCancelled = "ui_request_cancelled"
	OpTaskCompleted      = "task_completed"
	OpTaskFailed         = "task_failed"
	OpTaskCancelled      = "task_cancelled"

	// Audit-only operations. No data payload; they exist for the record.
	OpAgentResponse        = "agent_response"
	OpPlanValidationFailed = "plan_validation_failed"
	OpRecoveryDecision     = "recovery_decision"
)

// Task statuses, aligned with the task row enum.
const (
	StatusCreated         = "created"
	StatusActive          = "active"
	StatusWaitingForInput = "waiting_for_input"
	StatusCompleted       = "completed"
	StatusFailed          = "failed"
	StatusCancelled       = "cancelled"
)

// IsTerminalStatus reports whether a task status admits no further
// state-changing entries.
func IsTerminalStatus(status string) bool {
	switch status {
	case StatusCompleted, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// Error kinds recorded on failure entries and agent error envelopes.
const (
	ErrKindValidation         = "validation_error"
	ErrKindUnknownInstruction = "unknown_instruction"
	ErrKindContractViolation  = "contract_violation"
	ErrKindCallFailed         = "call_failed"
	ErrKindParseFailed        = "parse_failed"
	ErrKindRateLimited        = "rate_limited"
	ErrKindBusy               = "busy"
	ErrKindTimeout            = "timeout"
	ErrKindCancelled          = "cancelled"
	ErrKindNoAgentsAvailable  = "no_agents_available"
	ErrKindRecoveryTimeout    = "recovery_timeout"
)

// NonRetryableErrorKind reports whether an agent error kind should bypass the
// retry machinery and go straight to escalation or task failure.
func NonRetryableErrorKind(kind string) bool {
	switch kind {
	case ErrKindUnknownInstruction, ErrKindContractViolation, ErrKindValidation:
		return true
	}
	return false
}
