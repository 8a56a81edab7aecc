package config

import (
	"sync"
)

// BuiltinConfig holds all built-in configuration data.
// This provides default agents so a fresh install can run the fallback plan
// (data collection, validation, completion) without any user YAML.
type BuiltinConfig struct {
	Agents    map[string]AgentConfig
	Templates map[string]TemplateConfig
	Tools     map[string]ToolConfig
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration (thread-safe, lazy-initialized)
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(initBuiltinConfig)
	return builtinConfig
}

func initBuiltinConfig() {
	builtinConfig = &BuiltinConfig{
		Agents:    initBuiltinAgents(),
		Templates: initBuiltinTemplates(),
		Tools:     map[string]ToolConfig{},
	}
}

func initBuiltinAgents() map[string]AgentConfig {
	return map[string]AgentConfig{
		"data_collection_agent": {
			Version:      "1.0.0",
			Role:         "Gathers the data a task template requires, asking the user when sources run dry",
			Capabilities: []string{"data_collection"},
			Instructions: []string{"collect_data"},
			Mission:      "Fill in the task's required fields from available data and tools. Request user input only for fields no tool can supply.",
			DecisionRules: []string{
				"Prefer data already accumulated on the task over asking again.",
				"Batch related missing fields into a single form request.",
			},
			PromptTemplate: builtinCollectPrompt,
		},
		"validation_agent": {
			Version:      "1.0.0",
			Role:         "Checks accumulated task data against the template's schema and success criteria",
			Capabilities: []string{"validation"},
			Instructions: []string{"validate_data"},
			Mission:      "Verify the accumulated data is complete and internally consistent. Report each violation precisely.",
			DecisionRules: []string{
				"A missing required field is a violation, not a guess opportunity.",
				"Never mutate data; only report findings.",
			},
			PromptTemplate: builtinValidatePrompt,
		},
		"completion_agent": {
			Version:      "1.0.0",
			Role:         "Summarizes the finished task and produces the final result payload",
			Capabilities: []string{"completion"},
			Instructions: []string{"finalize"},
			Mission:      "Assemble the final result from accumulated data and confirm the template's success criteria are met.",
			PromptTemplate: builtinFinalizePrompt,
		},
	}
}

func initBuiltinTemplates() map[string]TemplateConfig {
	return map[string]TemplateConfig{
		"generic": {
			Name:         "Generic task",
			Description:  "Catch-all template for ad-hoc tasks with no registered template",
			InitialPhase: "data_collection",
			Goals:        []string{"Complete the task described in the initial data"},
		},
	}
}

const builtinCollectPrompt = `You are a data collection agent.
Instruction: {{.Instruction}}
Task data so far:
{{.DataJSON}}

Identify which required fields are still missing and either fill them from
the data provided or request user input for them. Respond with the JSON
envelope only.`

const builtinValidatePrompt = `You are a validation agent.
Instruction: {{.Instruction}}
Task data so far:
{{.DataJSON}}

Check the data for completeness and consistency. Respond with the JSON
envelope only, listing violations in data.violations.`

const builtinFinalizePrompt = `You are a completion agent.
Instruction: {{.Instruction}}
Task data so far:
{{.DataJSON}}

Produce the final result summary for this task. Respond with the JSON
envelope only, placing the summary in data.summary.`
