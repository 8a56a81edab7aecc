package models

import "time"

// CreateTaskRequest contains fields for creating a task.
type CreateTaskRequest struct {
	TaskID      string         `json:"task_id,omitempty"` // optional; generated when empty
	TenantID    string         `json:"tenant_id"`
	TemplateID  string         `json:"template_id"`
	InitialData map[string]any `json:"initial_data,omitempty"`
	Actor       Actor          `json:"actor"`
}

// TaskFilters narrows task list queries. TenantID is mandatory; there is no
// cross-tenant listing.
type TaskFilters struct {
	TenantID   string
	Status     string
	TemplateID string
	Limit      int
	Offset     int
}

// TaskContext is the read-facing aggregate: identity, template snapshot, and
// the state projected from the full event history at LatestSequence.
type TaskContext struct {
	TaskID         string            `json:"task_id"`
	TenantID       string            `json:"tenant_id"`
	TemplateID     string            `json:"template_id"`
	CreatedAt      time.Time         `json:"created_at"`
	Template       *TemplateSnapshot `json:"template"`
	State          *TaskState        `json:"state"`
	LatestSequence int               `json:"latest_sequence"`
}
