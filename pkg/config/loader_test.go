package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEngineYAML(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "engine.yaml"), []byte(content), 0o644))
	return dir
}

const minimalYAML = `
llm:
  address: "localhost:50051"
`

func TestInitialize(t *testing.T) {
	t.Run("minimal config gets builtins and defaults", func(t *testing.T) {
		dir := writeEngineYAML(t, minimalYAML)

		cfg, err := Initialize(context.Background(), dir)
		require.NoError(t, err)

		// Built-in agents cover the fallback plan capabilities.
		assert.True(t, cfg.AgentRegistry.Has("data_collection_agent"))
		assert.True(t, cfg.AgentRegistry.Has("validation_agent"))
		assert.True(t, cfg.AgentRegistry.Has("completion_agent"))
		assert.True(t, cfg.TemplateRegistry.Has("generic"))

		assert.Equal(t, 120*time.Second, cfg.Defaults.LLMTimeout)
		assert.Equal(t, 5, cfg.Queue.WorkerCount)
		assert.Equal(t, "localhost:50051", cfg.LLM.Address)
	})

	t.Run("user values merge over builtins", func(t *testing.T) {
		dir := writeEngineYAML(t, `
defaults:
  llm_timeout: 10s
  max_subtask_retries: 5

queue:
  worker_count: 2

llm:
  address: "sidecar:50051"
  model: claude-sonnet

agents:
  data_collection_agent:
    version: "2.0.0"
    capabilities:
      - data_collection
    instructions:
      - collect_data
    prompt_template: "custom: {{"{{"}}.Instruction{{"}}"}}"

task_templates:
  onboarding:
    name: Onboarding
    goals:
      - Collect the profile
    required_fields:
      - business.legal_name
`)

		cfg, err := Initialize(context.Background(), dir)
		require.NoError(t, err)

		// Overridden agent replaces the built-in definition.
		agent, err := cfg.GetAgent("data_collection_agent")
		require.NoError(t, err)
		assert.Equal(t, "2.0.0", agent.Version)
		assert.Contains(t, agent.PromptTemplate, "custom:")

		// Untouched built-ins survive.
		assert.True(t, cfg.AgentRegistry.Has("validation_agent"))

		// Partial defaults keep built-in values for unset fields.
		assert.Equal(t, 10*time.Second, cfg.Defaults.LLMTimeout)
		assert.Equal(t, 5, cfg.Defaults.MaxSubtaskRetries)
		assert.Equal(t, 30*time.Minute, cfg.Defaults.UIWaitTimeout)
		assert.Equal(t, 2, cfg.Queue.WorkerCount)
		assert.Equal(t, 20, cfg.Queue.MaxConcurrentTasks)

		tmpl, err := cfg.GetTemplate("onboarding")
		require.NoError(t, err)
		assert.Equal(t, "Onboarding", tmpl.Name)
		snapshot := tmpl.ToSnapshot("onboarding")
		assert.Equal(t, "onboarding", snapshot.TemplateID)
		assert.Equal(t, []string{"business.legal_name"}, snapshot.RequiredFields)
	})

	t.Run("environment variables expand", func(t *testing.T) {
		t.Setenv("TEST_SIDECAR_ADDR", "llm.internal:50051")
		dir := writeEngineYAML(t, `
llm:
  address: "{{.TEST_SIDECAR_ADDR}}"
`)

		cfg, err := Initialize(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, "llm.internal:50051", cfg.LLM.Address)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Initialize(context.Background(), t.TempDir())
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		dir := writeEngineYAML(t, "agents: [not: a: map")
		_, err := Initialize(context.Background(), dir)
		assert.ErrorIs(t, err, ErrInvalidYAML)
	})
}

func TestInitializeValidation(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "agent without version",
			yaml: `
agents:
  broken:
    capabilities: [x]
    instructions: [y]
    prompt_template: "p"
`,
			wantErr: "version",
		},
		{
			name: "agent without capabilities",
			yaml: `
agents:
  broken:
    version: "1.0.0"
    instructions: [y]
    prompt_template: "p"
`,
			wantErr: "capabilities",
		},
		{
			name: "agent referencing unknown tool",
			yaml: `
agents:
  broken:
    version: "1.0.0"
    capabilities: [x]
    instructions: [y]
    prompt_template: "p"
    required_tools: [ghost]
`,
			wantErr: "ghost",
		},
		{
			name: "tool without url",
			yaml: `
tools:
  broken:
    description: no url here
`,
			wantErr: "url",
		},
		{
			name: "template without goals",
			yaml: `
task_templates:
  broken:
    name: Broken
`,
			wantErr: "goals",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := writeEngineYAML(t, tc.yaml)
			_, err := Initialize(context.Background(), dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestExpandEnv(t *testing.T) {
	t.Run("expands set variables", func(t *testing.T) {
		t.Setenv("TEST_EXPAND_A", "hello")
		out := ExpandEnv([]byte("value: {{.TEST_EXPAND_A}}"))
		assert.Equal(t, "value: hello", string(out))
	})

	t.Run("missing variables expand to empty", func(t *testing.T) {
		out := ExpandEnv([]byte("value: '{{.DEFINITELY_NOT_SET_ANYWHERE}}'"))
		assert.Equal(t, "value: ''", string(out))
	})

	t.Run("literal dollar signs pass through", func(t *testing.T) {
		in := []byte(`pattern: "^\\$ref$"`)
		assert.Equal(t, in, ExpandEnv(in))
	})

	t.Run("malformed template returns input unchanged", func(t *testing.T) {
		in := []byte("value: {{.unterminated")
		assert.Equal(t, in, ExpandEnv(in))
	})
}
