package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// EngineYAMLConfig represents the complete engine.yaml file structure
type EngineYAMLConfig struct {
	Agents        map[string]AgentConfig    `yaml:"agents"`
	TaskTemplates map[string]TemplateConfig `yaml:"task_templates"`
	Tools         map[string]ToolConfig     `yaml:"tools"`
	Defaults      *Defaults                 `yaml:"defaults"`
	Queue         *QueueConfig              `yaml:"queue"`
	LLM           *LLMConfig                `yaml:"llm"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load engine.yaml from configDir
//  2. Expand environment variables
//  3. Merge built-in + user-defined configurations
//  4. Build in-memory registries
//  5. Apply default values
//  6. Validate all configuration
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"agents", stats.Agents,
		"templates", stats.Templates,
		"tools", stats.Tools)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	engineConfig, err := loader.loadEngineYAML()
	if err != nil {
		return nil, NewLoadError("engine.yaml", err)
	}

	builtin := GetBuiltinConfig()

	// Merge built-in + user-defined components (user overrides built-in)
	agents := mergeAgents(builtin.Agents, engineConfig.Agents)
	templates := mergeTemplates(builtin.Templates, engineConfig.TaskTemplates)
	tools := mergeTools(builtin.Tools, engineConfig.Tools)

	agentRegistry := NewAgentRegistry(agents)
	templateRegistry := NewTemplateRegistry(templates)
	toolRegistry := NewToolRegistry(tools)

	// Resolve defaults: start with built-ins, merge user YAML on top so unset
	// values keep their defaults.
	defaults := DefaultDefaults()
	if engineConfig.Defaults != nil {
		if err := mergo.Merge(defaults, engineConfig.Defaults, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge defaults: %w", err)
		}
	}

	queueConfig := DefaultQueueConfig()
	if engineConfig.Queue != nil {
		if err := mergo.Merge(queueConfig, engineConfig.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	llmConfig := DefaultLLMConfig()
	if engineConfig.LLM != nil {
		if err := mergo.Merge(llmConfig, engineConfig.LLM, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge llm config: %w", err)
		}
	}

	return &Config{
		configDir:        configDir,
		Defaults:         defaults,
		Queue:            queueConfig,
		LLM:              llmConfig,
		AgentRegistry:    agentRegistry,
		TemplateRegistry: templateRegistry,
		ToolRegistry:     toolRegistry,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// ExpandEnv passes through original data on parse/execution errors,
	// letting the YAML parser produce the clearer error message.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadEngineYAML() (*EngineYAMLConfig, error) {
	var config EngineYAMLConfig

	// Initialize maps to avoid nil maps
	config.Agents = make(map[string]AgentConfig)
	config.TaskTemplates = make(map[string]TemplateConfig)
	config.Tools = make(map[string]ToolConfig)

	if err := l.loadYAML("engine.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}
