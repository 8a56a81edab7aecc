// Package config provides configuration management for the engine, including
// agent, task template, and tool configurations loaded from YAML.
package config

import (
	"fmt"
	"sort"
	"sync"
)

// AgentConfig defines a specialized agent: its capabilities, contract schemas,
// and the instruction set it accepts. Keyed by agent ID in engine.yaml.
type AgentConfig struct {
	// Semantic version of the agent definition, recorded on every entry the
	// agent writes.
	Version string `yaml:"version"`

	// Human-readable role description, surfaced to the planner prompt.
	Role string `yaml:"role,omitempty"`

	// Capability tags used by the dispatcher to match plan phases to agents.
	// Matching is case-sensitive and exact.
	Capabilities []string `yaml:"capabilities"`

	// Tools this agent is allowed to call through the tool gateway.
	RequiredTools []string `yaml:"required_tools,omitempty"`

	// Instructions the agent accepts. Dispatching an instruction outside this
	// set is rejected with an unknown_instruction error.
	Instructions []string `yaml:"instructions"`

	// JSON Schemas for the request data and the response envelope's data
	// field. Stored as generic YAML maps, compiled at validation time.
	InputSchema  map[string]any `yaml:"input_schema,omitempty"`
	OutputSchema map[string]any `yaml:"output_schema,omitempty"`

	// Mission and decision rules injected into the agent's system prompt.
	Mission       string   `yaml:"mission,omitempty"`
	DecisionRules []string `yaml:"decision_rules,omitempty"`

	// PromptTemplate renders the agent's LLM prompt (text/template syntax,
	// executed against the agent request).
	PromptTemplate string `yaml:"prompt_template"`

	// MaxConcurrent caps simultaneous executions of this agent per replica.
	// Zero means unlimited.
	MaxConcurrent int `yaml:"max_concurrent,omitempty"`
}

// HasInstruction reports whether the agent declares the given instruction.
func (a *AgentConfig) HasInstruction(instruction string) bool {
	for _, in := range a.Instructions {
		if in == instruction {
			return true
		}
	}
	return false
}

// HasCapability reports whether the agent declares the given capability tag.
func (a *AgentConfig) HasCapability(capability string) bool {
	for _, c := range a.Capabilities {
		if c == capability {
			return true
		}
	}
	return false
}

// AgentRegistry stores agent configurations in memory with thread-safe access
type AgentRegistry struct {
	agents map[string]*AgentConfig
	mu     sync.RWMutex
}

// NewAgentRegistry creates a new agent registry
func NewAgentRegistry(agents map[string]*AgentConfig) *AgentRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*AgentConfig, len(agents))
	for k, v := range agents {
		copied[k] = v
	}
	return &AgentRegistry{
		agents: copied,
	}
}

// Get retrieves an agent configuration by ID (thread-safe)
func (r *AgentRegistry) Get(id string) (*AgentConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	agent, exists := r.agents[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrAgentNotFound, id)
	}
	return agent, nil
}

// GetAll returns all agent configurations (thread-safe, returns copy)
func (r *AgentRegistry) GetAll() map[string]*AgentConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*AgentConfig, len(r.agents))
	for k, v := range r.agents {
		result[k] = v
	}
	return result
}

// Has checks if an agent exists in the registry (thread-safe)
func (r *AgentRegistry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.agents[id]
	return exists
}

// IDs returns all agent IDs in sorted order (thread-safe)
func (r *AgentRegistry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.agents))
	for id := range r.agents {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// FindByCapability returns the IDs of all agents declaring the given
// capability tag, in sorted order so selection is deterministic.
func (r *AgentRegistry) FindByCapability(capability string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []string
	for id, agent := range r.agents {
		if agent.HasCapability(capability) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of agents in the registry (thread-safe)
func (r *AgentRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.agents)
}
