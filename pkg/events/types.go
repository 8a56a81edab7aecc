// Package events provides real-time event delivery via PostgreSQL
// NOTIFY/LISTEN for cross-pod distribution, plus an in-process broker that
// fans notifications out to local subscribers (API feeds, the UI-input
// rendezvous).
//
// Persistent events are written to the events table and broadcast in the
// same transaction, so a NOTIFY is never observed for an uncommitted row and
// late subscribers can catch up by id. Transient events are NOTIFY only.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// A context entry was appended to a task's history.
	EventTypeEntryAppended = "entry.appended"

	// Task lifecycle: status and phase transitions.
	EventTypeTaskStatus = "task.status"

	// UI rendezvous lifecycle.
	EventTypeUIRequestCreated   = "ui_request.created"
	EventTypeUIResponseReceived = "ui_response.received"
	EventTypeUIRequestCancelled = "ui_request.cancelled"
)

// GlobalTasksChannel is the channel for task-level status events.
// The task list page subscribes to this for real-time updates.
const GlobalTasksChannel = "tasks"

// TaskChannel returns the channel name for a specific task's events.
// Format: "task:{task_id}"
func TaskChannel(taskID string) string {
	return "task:" + taskID
}
