package config

import (
	"fmt"
	"sync"

	"github.com/gianmatteo-arcana/engine-lever/pkg/models"
)

// TemplateConfig defines a task template: the goals, phases, and required
// fields the planner works from. Keyed by template ID in engine.yaml.
// A task snapshots its template at creation time, so editing a template never
// affects tasks already in flight.
type TemplateConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`

	// InitialPhase is the phase a task enters when created. Empty defaults
	// to the projection's initialization phase.
	InitialPhase string `yaml:"initial_phase,omitempty"`

	// Goals the planner decomposes into phases.
	Goals []string `yaml:"goals"`

	// RequiredFields are dot-separated data paths that feed the completeness
	// percentage.
	RequiredFields []string `yaml:"required_fields,omitempty"`

	// DataSchema optionally constrains the accumulated task data.
	DataSchema map[string]any `yaml:"data_schema,omitempty"`

	// SuccessCriteria surfaced to the planner and the completion check.
	SuccessCriteria []string `yaml:"success_criteria,omitempty"`
}

// ToSnapshot freezes the template into the immutable form stored on a task.
func (t *TemplateConfig) ToSnapshot(templateID string) *models.TemplateSnapshot {
	return &models.TemplateSnapshot{
		TemplateID:      templateID,
		Name:            t.Name,
		Description:     t.Description,
		InitialPhase:    t.InitialPhase,
		Goals:           append([]string(nil), t.Goals...),
		RequiredFields:  append([]string(nil), t.RequiredFields...),
		DataSchema:      t.DataSchema,
		SuccessCriteria: append([]string(nil), t.SuccessCriteria...),
	}
}

// TemplateRegistry stores task template configurations with thread-safe access
type TemplateRegistry struct {
	templates map[string]*TemplateConfig
	mu        sync.RWMutex
}

// NewTemplateRegistry creates a new template registry
func NewTemplateRegistry(templates map[string]*TemplateConfig) *TemplateRegistry {
	copied := make(map[string]*TemplateConfig, len(templates))
	for k, v := range templates {
		copied[k] = v
	}
	return &TemplateRegistry{
		templates: copied,
	}
}

// Get retrieves a template configuration by ID (thread-safe)
func (r *TemplateRegistry) Get(id string) (*TemplateConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tmpl, exists := r.templates[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
	}
	return tmpl, nil
}

// GetAll returns all template configurations (thread-safe, returns copy)
func (r *TemplateRegistry) GetAll() map[string]*TemplateConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*TemplateConfig, len(r.templates))
	for k, v := range r.templates {
		result[k] = v
	}
	return result
}

// Has checks if a template exists in the registry (thread-safe)
func (r *TemplateRegistry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.templates[id]
	return exists
}

// Len returns the number of templates in the registry (thread-safe)
func (r *TemplateRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.templates)
}
