package models

// UI request template kinds, a closed enumeration. semantic_data carries the
// agent's intent, the front end owns presentation.
const (
	UIKindForm         = "form"
	UIKindConfirmation = "confirmation"
	UIKindSelection    = "selection"
	UIKindUpload       = "upload"
	UIKindProgress     = "progress"
	UIKindError        = "error"
	UIKindSuccess      = "success"
	UIKindWaiting      = "waiting"
)

// UI request priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// UIRequestSpec is an agent's request for structured user input, as carried
// in an agent response envelope before the rendezvous opens it.
type UIRequestSpec struct {
	RequestID    string         `json:"request_id"`
	TemplateKind string         `json:"template_kind"`
	SemanticData map[string]any `json:"semantic_data,omitempty"`
	Priority     string         `json:"priority,omitempty"`
}

// DataPath returns the key path under which the eventual response payload is
// merged into task data. Declared in semantic_data as "data_path"
// (dot-separated); empty means merge at the root.
func (s *UIRequestSpec) DataPath() string {
	if s.SemanticData == nil {
		return ""
	}
	if p, ok := s.SemanticData["data_path"].(string); ok {
		return p
	}
	return ""
}

// UIResponse is a user's answer to a pending UI request.
type UIResponse struct {
	RequestID string         `json:"request_id"`
	Payload   map[string]any `json:"payload"`
	Actor     Actor          `json:"actor"`
}
