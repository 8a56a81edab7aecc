package models

// AppendEntryRequest contains fields for appending a context entry.
// ExpectedSequence is the tail sequence the caller last observed; the append
// is rejected with a concurrent-write error if the tail has moved.
type AppendEntryRequest struct {
	TaskID           string         `json:"task_id"`
	ExpectedSequence int            `json:"expected_sequence"`
	Actor            Actor          `json:"actor"`
	Operation        string         `json:"operation"`
	Data             map[string]any `json:"data,omitempty"`
	Reasoning        string         `json:"reasoning,omitempty"`
	Trigger          Trigger        `json:"trigger"`
}
