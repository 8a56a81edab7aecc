package events

import "time"

// BasePayload carries the fields common to every event payload.
// Type discriminates the payload shape; TaskID routes it.
type BasePayload struct {
	Type      string    `json:"type"`
	TaskID    string    `json:"task_id"`
	Timestamp time.Time `json:"timestamp"`
}

// EntryAppendedPayload announces a new context entry. Subscribers re-fetch
// entries since their last sequence rather than trusting the payload, so the
// feed stays correct even when a NOTIFY is truncated or dropped.
type EntryAppendedPayload struct {
	BasePayload
	EntryID        string `json:"entry_id"`
	SequenceNumber int    `json:"sequence_number"`
	Operation      string `json:"operation"`
	ActorKind      string `json:"actor_kind"`
	ActorID        string `json:"actor_id"`
}

// TaskStatusPayload announces a task status or phase transition.
type TaskStatusPayload struct {
	BasePayload
	Status string `json:"status"`
	Phase  string `json:"phase,omitempty"`
}

// UIRequestCreatedPayload announces a new pending UI request.
type UIRequestCreatedPayload struct {
	BasePayload
	RequestID    string `json:"request_id"`
	TemplateKind string `json:"template_kind"`
	Priority     string `json:"priority"`
}

// UIResponseReceivedPayload announces a user response. The waiting
// dispatcher resumes on this event.
type UIResponseReceivedPayload struct {
	BasePayload
	RequestID string `json:"request_id"`
}

// UIRequestCancelledPayload announces a cancelled UI request.
type UIRequestCancelledPayload struct {
	BasePayload
	RequestID string `json:"request_id"`
	Reason    string `json:"reason,omitempty"`
}

// NewBasePayload builds the common payload header.
func NewBasePayload(eventType, taskID string) BasePayload {
	return BasePayload{
		Type:      eventType,
		TaskID:    taskID,
		Timestamp: time.Now().UTC(),
	}
}
