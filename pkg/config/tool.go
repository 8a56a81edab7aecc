package config

import (
	"fmt"
	"sync"
	"time"
)

// ToolConfig defines an external tool reachable through the tool gateway.
// Keyed by tool name in engine.yaml.
type ToolConfig struct {
	Description string `yaml:"description,omitempty"`

	// URL is the HTTP endpoint the gateway POSTs tool calls to.
	URL string `yaml:"url"`

	// Timeout for a single tool call. Zero falls back to the gateway default.
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// Headers added to every request (auth tokens via {{.VAR}} expansion).
	Headers map[string]string `yaml:"headers,omitempty"`
}

// ToolRegistry stores tool configurations with thread-safe access
type ToolRegistry struct {
	tools map[string]*ToolConfig
	mu    sync.RWMutex
}

// NewToolRegistry creates a new tool registry
func NewToolRegistry(tools map[string]*ToolConfig) *ToolRegistry {
	copied := make(map[string]*ToolConfig, len(tools))
	for k, v := range tools {
		copied[k] = v
	}
	return &ToolRegistry{
		tools: copied,
	}
}

// Get retrieves a tool configuration by name (thread-safe)
func (r *ToolRegistry) Get(name string) (*ToolConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, exists := r.tools[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	return tool, nil
}

// GetAll returns all tool configurations (thread-safe, returns copy)
func (r *ToolRegistry) GetAll() map[string]*ToolConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*ToolConfig, len(r.tools))
	for k, v := range r.tools {
		result[k] = v
	}
	return result
}

// Has checks if a tool exists in the registry (thread-safe)
func (r *ToolRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.tools[name]
	return exists
}

// Len returns the number of tools in the registry (thread-safe)
func (r *ToolRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}
