package config

import "time"

// Defaults contains system-wide default configurations.
// These values are used when specific components don't specify their own values.
type Defaults struct {
	// LLMTimeout bounds a single LLM completion call.
	LLMTimeout time.Duration `yaml:"llm_timeout,omitempty"`

	// LLMMaxAttempts is the retry budget for retryable LLM failures.
	LLMMaxAttempts int `yaml:"llm_max_attempts,omitempty"`

	// LLMMaxConcurrent caps in-flight LLM calls per replica; calls beyond the
	// cap fail fast with a busy error rather than queueing.
	LLMMaxConcurrent int `yaml:"llm_max_concurrent,omitempty"`

	// UIWaitTimeout bounds how long a dispatch waits for user input before
	// cancelling the UI request and failing the subtask.
	UIWaitTimeout time.Duration `yaml:"ui_wait_timeout,omitempty"`

	// MaxSubtaskRetries is how many times a failed subtask is retried before
	// the phase-failure policy escalates.
	MaxSubtaskRetries int `yaml:"max_subtask_retries,omitempty"`

	// MaxFailureRounds caps failure-policy consultations per subtask. A
	// subtask that keeps failing through advisor-directed retries and
	// escalations stops getting new rounds and fails the task.
	MaxFailureRounds int `yaml:"max_failure_rounds,omitempty"`

	// RecoveryWindow is the age limit for resuming an interrupted task after
	// a restart; older tasks are failed with a recovery_timeout entry.
	RecoveryWindow time.Duration `yaml:"recovery_window,omitempty"`

	// ToolTimeout bounds a single tool gateway call when the tool config
	// does not specify its own timeout.
	ToolTimeout time.Duration `yaml:"tool_timeout,omitempty"`

	// AgentMaxConcurrent is the per-agent concurrency cap applied when an
	// agent config leaves max_concurrent unset.
	AgentMaxConcurrent int `yaml:"agent_max_concurrent,omitempty"`
}

// DefaultDefaults returns the built-in system defaults.
func DefaultDefaults() *Defaults {
	return &Defaults{
		LLMTimeout:         120 * time.Second,
		LLMMaxAttempts:     3,
		LLMMaxConcurrent:   10,
		UIWaitTimeout:      30 * time.Minute,
		MaxSubtaskRetries:  2,
		MaxFailureRounds:   3,
		RecoveryWindow:     24 * time.Hour,
		ToolTimeout:        30 * time.Second,
		AgentMaxConcurrent: 4,
	}
}
