// Package agent executes subtasks against configured specialized agents.
// An agent is configuration plus an LLM call: the runtime renders the agent's
// prompt, completes it through the gateway, validates the response envelope
// against the agent's contract, and runs any tool calls it produced.
package agent

import "github.com/gianmatteo-arcana/engine-lever/pkg/models"

// Response statuses an agent may return.
const (
	StatusCompleted  = "completed"
	StatusNeedsInput = "needs_input"
	StatusDelegated  = "delegated"
	StatusError      = "error"
)

// RequestContext carries the situational hints an agent receives alongside
// its instruction.
type RequestContext struct {
	Urgency            string `json:"urgency,omitempty"`
	DeviceType         string `json:"device_type,omitempty"`
	UserProgress       string `json:"user_progress,omitempty"`
	SubtaskDescription string `json:"subtask_description,omitempty"`
	ExpectedOutput     string `json:"expected_output,omitempty"`
	SuccessCriteria    string `json:"success_criteria,omitempty"`
}

// Request is a subtask dispatched to one agent.
type Request struct {
	RequestID   string         `json:"request_id"`
	TaskID      string         `json:"task_id"`
	AgentID     string         `json:"agent_id"`
	Instruction string         `json:"instruction"`
	Data        map[string]any `json:"data,omitempty"`
	Context     RequestContext `json:"context"`
}

// ResponseError describes an agent-reported failure.
type ResponseError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Response is the agent's envelope back to the dispatcher.
//
// Status semantics:
//   - completed: Data holds the result, merged into task state
//   - needs_input: UIRequests holds at least one request to put to the user
//   - delegated: NextAgent names the agent to hand the subtask to
//   - error: Error describes what went wrong
type Response struct {
	Status     string                 `json:"status"`
	Data       map[string]any         `json:"data,omitempty"`
	UIRequests []models.UIRequestSpec `json:"ui_requests,omitempty"`
	Reasoning  string                 `json:"reasoning,omitempty"`
	NextAgent  string                 `json:"next_agent,omitempty"`
	Confidence float64                `json:"confidence,omitempty"`
	Error      *ResponseError         `json:"error,omitempty"`
	ToolCalls  []ToolCallRecord       `json:"tool_calls,omitempty"`
}

// ToolCallRecord is one tool invocation the agent requested, with its outcome
// filled in by the runtime.
type ToolCallRecord struct {
	Tool    string         `json:"tool"`
	Args    map[string]any `json:"args,omitempty"`
	Success bool           `json:"success"`
	Result  map[string]any `json:"result,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// ErrorResponse builds an error envelope.
func ErrorResponse(kind, message string) *Response {
	return &Response{
		Status: StatusError,
		Error: &ResponseError{
			Kind:    kind,
			Message: message,
		},
	}
}
