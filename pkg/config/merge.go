package config

// mergeAgents merges built-in and user-defined agents.
// User definitions override built-ins with the same ID.
func mergeAgents(builtin, user map[string]AgentConfig) map[string]*AgentConfig {
	result := make(map[string]*AgentConfig, len(builtin)+len(user))
	for id, cfg := range builtin {
		c := cfg
		result[id] = &c
	}
	for id, cfg := range user {
		c := cfg
		result[id] = &c
	}
	return result
}

// mergeTemplates merges built-in and user-defined task templates.
// User definitions override built-ins with the same ID.
func mergeTemplates(builtin, user map[string]TemplateConfig) map[string]*TemplateConfig {
	result := make(map[string]*TemplateConfig, len(builtin)+len(user))
	for id, cfg := range builtin {
		c := cfg
		result[id] = &c
	}
	for id, cfg := range user {
		c := cfg
		result[id] = &c
	}
	return result
}

// mergeTools merges built-in and user-defined tools.
// User definitions override built-ins with the same name.
func mergeTools(builtin, user map[string]ToolConfig) map[string]*ToolConfig {
	result := make(map[string]*ToolConfig, len(builtin)+len(user))
	for name, cfg := range builtin {
		c := cfg
		result[name] = &c
	}
	for name, cfg := range user {
		c := cfg
		result[name] = &c
	}
	return result
}
