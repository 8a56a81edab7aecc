package config

import (
	"fmt"
	"net/url"
	"text/template"

	"github.com/xeipuuv/gojsonschema"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	// Tools first: agents cross-reference them.
	if err := v.validateTools(); err != nil {
		return fmt.Errorf("tool validation failed: %w", err)
	}

	if err := v.validateAgents(); err != nil {
		return fmt.Errorf("agent validation failed: %w", err)
	}

	if err := v.validateTemplates(); err != nil {
		return fmt.Errorf("template validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateTools() error {
	for name, tool := range v.cfg.ToolRegistry.GetAll() {
		if tool.URL == "" {
			return NewValidationError("tool", name, "url", ErrMissingRequiredField)
		}
		if _, err := url.ParseRequestURI(tool.URL); err != nil {
			return NewValidationError("tool", name, "url", fmt.Errorf("%w: %v", ErrInvalidValue, err))
		}
		if tool.Timeout < 0 {
			return NewValidationError("tool", name, "timeout", fmt.Errorf("must not be negative"))
		}
	}
	return nil
}

func (v *ConfigValidator) validateAgents() error {
	for id, agent := range v.cfg.AgentRegistry.GetAll() {
		if agent.Version == "" {
			return NewValidationError("agent", id, "version", ErrMissingRequiredField)
		}
		if len(agent.Capabilities) == 0 {
			return NewValidationError("agent", id, "capabilities", fmt.Errorf("at least one capability required"))
		}
		if len(agent.Instructions) == 0 {
			return NewValidationError("agent", id, "instructions", fmt.Errorf("at least one instruction required"))
		}
		if agent.PromptTemplate == "" {
			return NewValidationError("agent", id, "prompt_template", ErrMissingRequiredField)
		}
		if _, err := template.New(id).Parse(agent.PromptTemplate); err != nil {
			return NewValidationError("agent", id, "prompt_template", fmt.Errorf("%w: %v", ErrInvalidValue, err))
		}
		if agent.MaxConcurrent < 0 {
			return NewValidationError("agent", id, "max_concurrent", fmt.Errorf("must not be negative"))
		}

		for _, tool := range agent.RequiredTools {
			if !v.cfg.ToolRegistry.Has(tool) {
				return NewValidationError("agent", id, "required_tools", fmt.Errorf("%w: tool '%s' not found", ErrInvalidReference, tool))
			}
		}

		if err := compileSchema(agent.InputSchema); err != nil {
			return NewValidationError("agent", id, "input_schema", fmt.Errorf("%w: %v", ErrInvalidValue, err))
		}
		if err := compileSchema(agent.OutputSchema); err != nil {
			return NewValidationError("agent", id, "output_schema", fmt.Errorf("%w: %v", ErrInvalidValue, err))
		}
	}

	return nil
}

func (v *ConfigValidator) validateTemplates() error {
	for id, tmpl := range v.cfg.TemplateRegistry.GetAll() {
		if tmpl.Name == "" {
			return NewValidationError("task_template", id, "name", ErrMissingRequiredField)
		}
		if len(tmpl.Goals) == 0 {
			return NewValidationError("task_template", id, "goals", fmt.Errorf("at least one goal required"))
		}
		if err := compileSchema(tmpl.DataSchema); err != nil {
			return NewValidationError("task_template", id, "data_schema", fmt.Errorf("%w: %v", ErrInvalidValue, err))
		}
	}
	return nil
}

// compileSchema checks that a YAML-decoded map is a loadable JSON Schema.
// A nil map is valid (no schema declared).
func compileSchema(schema map[string]any) error {
	if schema == nil {
		return nil
	}
	_, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(schema))
	return err
}
