package config

// Config is the umbrella configuration object that encapsulates
// all registries, defaults, and configuration state.
// This is the primary object returned by Initialize() and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// System-wide defaults
	Defaults *Defaults

	// Queue and worker pool configuration
	Queue *QueueConfig

	// LLM sidecar connection
	LLM *LLMConfig

	// Component registries
	AgentRegistry    *AgentRegistry
	TemplateRegistry *TemplateRegistry
	ToolRegistry     *ToolRegistry
}

// Stats contains statistics about loaded configuration
type Stats struct {
	Agents    int
	Templates int
	Tools     int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.AgentRegistry != nil {
		s.Agents = c.AgentRegistry.Len()
	}
	if c.TemplateRegistry != nil {
		s.Templates = c.TemplateRegistry.Len()
	}
	if c.ToolRegistry != nil {
		s.Tools = c.ToolRegistry.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetAgent retrieves an agent configuration by ID.
// This is a convenience method that wraps AgentRegistry.Get().
func (c *Config) GetAgent(id string) (*AgentConfig, error) {
	return c.AgentRegistry.Get(id)
}

// GetTemplate retrieves a task template configuration by ID.
// This is a convenience method that wraps TemplateRegistry.Get().
func (c *Config) GetTemplate(id string) (*TemplateConfig, error) {
	return c.TemplateRegistry.Get(id)
}

// GetTool retrieves a tool configuration by name.
// This is a convenience method that wraps ToolRegistry.Get().
func (c *Config) GetTool(name string) (*ToolConfig, error) {
	return c.ToolRegistry.Get(name)
}
