// Package llm talks to the LLM sidecar over gRPC and layers the engine's
// policy on top: per-call timeouts, bounded retry with backoff, a concurrency
// cap, and coercion of model output into valid JSON.
package llm

import "context"

// Message is a single chat message.
type Message struct {
	Role    string // system, user, assistant
	Content string
}

// Request is a completion request.
type Request struct {
	Model       string
	Messages    []Message
	Temperature *float32
	MaxTokens   *int32
	JSONMode    bool
}

// Usage reports token consumption for a completion.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
}

// Response is a completion result.
type Response struct {
	Content string
	Model   string
	Usage   Usage
}

// Client is the transport to the LLM sidecar. The gateway wraps it with
// retry, timeout, and concurrency policy; nothing else calls it directly.
type Client interface {
	Complete(ctx context.Context, req Request) (*Response, error)
	Close() error
}
