// Package tools executes agent tool calls against configured HTTP endpoints.
// Every call carries an idempotency key derived from the subtask request ID,
// so a re-dispatched subtask replays its calls without double side effects.
// The tool service is expected to deduplicate on the key.
package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gianmatteo-arcana/engine-lever/pkg/config"
)

// ErrToolNotFound indicates the named tool is not configured.
var ErrToolNotFound = errors.New("tool not found")

// Call is a single tool invocation.
type Call struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args,omitempty"`

	// IdempotencyKey identifies the logical call across retries.
	IdempotencyKey string `json:"-"`
}

// Result is the uniform tool response envelope.
type Result struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// Gateway dispatches tool calls to their configured endpoints.
type Gateway struct {
	registry       *config.ToolRegistry
	httpClient     *http.Client
	defaultTimeout time.Duration
}

// NewGateway creates a tool gateway.
func NewGateway(registry *config.ToolRegistry, defaultTimeout time.Duration) *Gateway {
	if defaultTimeout <= 0 {
		defaultTimeout = 30 * time.Second
	}
	return &Gateway{
		registry:       registry,
		httpClient:     &http.Client{},
		defaultTimeout: defaultTimeout,
	}
}

// Execute runs one tool call. Transport and non-2xx failures come back as an
// unsuccessful Result with the error string filled in, not as a Go error;
// the agent decides what a failed call means for its subtask. A Go error is
// returned only for unusable input (unknown tool, unmarshalable args).
func (g *Gateway) Execute(ctx context.Context, call Call) (*Result, error) {
	tool, err := g.registry.Get(call.Tool)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, call.Tool)
	}

	body, err := json.Marshal(call.Args)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tool args: %w", err)
	}

	timeout := tool.Timeout
	if timeout <= 0 {
		timeout = g.defaultTimeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodPost, tool.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build tool request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if call.IdempotencyKey != "" {
		req.Header.Set("X-Idempotency-Key", call.IdempotencyKey)
	}
	for k, v := range tool.Headers {
		req.Header.Set(k, v)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return &Result{Success: false, Error: err.Error()}, nil
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("failed to read tool response: %v", err)}, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Result{
			Success: false,
			Error:   fmt.Sprintf("tool %s returned HTTP %d: %s", call.Tool, resp.StatusCode, truncate(string(raw), 500)),
		}, nil
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("undecodable tool response: %v", err)}, nil
	}
	if _, hasEnvelope := probe["success"]; !hasEnvelope {
		// Bare JSON object without the envelope; a 2xx status means success.
		var data map[string]any
		if err := json.Unmarshal(raw, &data); err != nil {
			return &Result{Success: false, Error: fmt.Sprintf("undecodable tool response: %v", err)}, nil
		}
		return &Result{Success: true, Data: data}, nil
	}

	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("undecodable tool response: %v", err)}, nil
	}
	return &result, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
