package models

import "encoding/json"

// TemplateSnapshot is the task template as captured at task creation.
// It is stored on the task row so later template edits never change how an
// existing task's history projects.
type TemplateSnapshot struct {
	TemplateID      string         `json:"template_id"`
	Name            string         `json:"name"`
	Description     string         `json:"description,omitempty"`
	InitialPhase    string         `json:"initial_phase"`
	Goals           []string       `json:"goals,omitempty"`
	RequiredFields  []string       `json:"required_fields,omitempty"`
	DataSchema      map[string]any `json:"data_schema,omitempty"`
	SuccessCriteria []string       `json:"success_criteria,omitempty"`
}

// Map returns the snapshot as a generic map for JSON column storage.
func (s *TemplateSnapshot) Map() (map[string]any, error) {
	buf, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(buf, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// SnapshotFromMap decodes a stored template_snapshot column value.
func SnapshotFromMap(m map[string]any) (*TemplateSnapshot, error) {
	buf, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var s TemplateSnapshot
	if err := json.Unmarshal(buf, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
