package config

// LLMConfig holds the connection settings for the LLM sidecar, which the
// engine reaches over gRPC.
type LLMConfig struct {
	// Address of the sidecar in host:port form.
	Address string `yaml:"address"`

	// Model requested for completions when the caller does not override it.
	Model string `yaml:"model,omitempty"`

	// PlannerModel optionally routes planning calls to a stronger model.
	// Empty falls back to Model.
	PlannerModel string `yaml:"planner_model,omitempty"`

	// TLS enables transport security; plaintext is the default for
	// same-pod sidecars.
	TLS bool `yaml:"tls,omitempty"`
}

// DefaultLLMConfig returns the built-in LLM connection defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Address: "localhost:50051",
		Model:   "default",
	}
}
