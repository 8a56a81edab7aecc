package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/kaptinlin/jsonrepair"
)

// GatewayConfig tunes the gateway's policy layer.
type GatewayConfig struct {
	// Timeout bounds a single completion attempt.
	Timeout time.Duration

	// MaxAttempts is the total attempt budget for retryable failures.
	MaxAttempts int

	// MaxConcurrent caps in-flight completions; calls beyond it fail fast
	// with ErrBusy instead of queueing behind a stuck provider.
	MaxConcurrent int

	// Model is the default model when the request leaves it empty.
	Model string
}

// Gateway wraps a Client with the engine's call policy: deadline per attempt,
// exponential-backoff retry on retryable errors, a hard concurrency cap, and
// JSON coercion for structured outputs.
type Gateway struct {
	client Client
	cfg    GatewayConfig
	sem    chan struct{}
}

// NewGateway creates a gateway over the given client.
func NewGateway(client Client, cfg GatewayConfig) *Gateway {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 3
	}
	if cfg.MaxConcurrent < 1 {
		cfg.MaxConcurrent = 10
	}
	return &Gateway{
		client: client,
		cfg:    cfg,
		sem:    make(chan struct{}, cfg.MaxConcurrent),
	}
}

// Complete runs a completion with retry and timeout policy applied.
func (g *Gateway) Complete(ctx context.Context, req Request) (*Response, error) {
	select {
	case g.sem <- struct{}{}:
		defer func() { <-g.sem }()
	default:
		return nil, ErrBusy
	}

	if req.Model == "" {
		req.Model = g.cfg.Model
	}

	var resp *Response
	attempt := 0
	operation := func() error {
		attempt++
		callCtx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()

		r, err := g.client.Complete(callCtx, req)
		if err != nil {
			if !IsRetryable(err) || attempt >= g.cfg.MaxAttempts {
				return backoff.Permanent(err)
			}
			slog.Warn("LLM call failed, retrying", "attempt", attempt, "error", err)
			return err
		}
		resp = r
		return nil
	}

	b := backoff.WithContext(newCallBackOff(), ctx)
	if err := backoff.Retry(operation, b); err != nil {
		return nil, err
	}
	return resp, nil
}

// CompleteJSON runs a completion and coerces the output into JSON, decoding
// it into out (a pointer). Coercion ladder:
//
//  1. decode the raw content
//  2. decode the first fenced or balanced JSON block found in it
//  3. repair the candidate and decode again
//  4. one reinforcement round trip telling the model what was wrong
//
// If all rungs fail, ErrParseFailed carries the final parse error.
func (g *Gateway) CompleteJSON(ctx context.Context, req Request, out any) error {
	req.JSONMode = true

	resp, err := g.Complete(ctx, req)
	if err != nil {
		return err
	}

	parseErr := coerceJSON(resp.Content, out)
	if parseErr == nil {
		return nil
	}

	slog.Warn("LLM output not valid JSON, sending reinforcement", "error", parseErr)

	reinforced := req
	reinforced.Messages = append(append([]Message(nil), req.Messages...),
		Message{Role: "assistant", Content: resp.Content},
		Message{
			Role: "user",
			Content: fmt.Sprintf(
				"Your previous reply was not valid JSON (%v). Respond again with ONLY the JSON object, no prose and no code fences.",
				parseErr,
			),
		},
	)

	resp, err = g.Complete(ctx, reinforced)
	if err != nil {
		return err
	}
	if parseErr = coerceJSON(resp.Content, out); parseErr != nil {
		return fmt.Errorf("%w: %v", ErrParseFailed, parseErr)
	}
	return nil
}

// newCallBackOff returns the retry schedule for a single logical call.
func newCallBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 10 * time.Second
	b.MaxElapsedTime = 0 // attempts are bounded by MaxAttempts, not wall time
	return b
}

// coerceJSON tries progressively harder to decode content into out.
func coerceJSON(content string, out any) error {
	trimmed := strings.TrimSpace(content)
	if err := json.Unmarshal([]byte(trimmed), out); err == nil {
		return nil
	}

	candidate := extractJSON(trimmed)
	if candidate != "" {
		if err := json.Unmarshal([]byte(candidate), out); err == nil {
			return nil
		}
		if repaired, err := jsonrepair.JSONRepair(candidate); err == nil {
			if err := json.Unmarshal([]byte(repaired), out); err == nil {
				return nil
			}
		}
	}

	if repaired, err := jsonrepair.JSONRepair(trimmed); err == nil {
		if err := json.Unmarshal([]byte(repaired), out); err == nil {
			return nil
		}
	}

	return fmt.Errorf("no decodable JSON in %d-byte response", len(content))
}

// extractJSON pulls the first plausible JSON value out of surrounding prose:
// a ```json fenced block if present, otherwise the first balanced {...} or
// [...] span.
func extractJSON(s string) string {
	if idx := strings.Index(s, "```"); idx >= 0 {
		rest := s[idx+3:]
		rest = strings.TrimPrefix(rest, "json")
		rest = strings.TrimPrefix(rest, "\n")
		if end := strings.Index(rest, "```"); end >= 0 {
			return strings.TrimSpace(rest[:end])
		}
	}

	for _, open := range []byte{'{', '['} {
		start := strings.IndexByte(s, open)
		if start < 0 {
			continue
		}
		if span := balancedSpan(s[start:]); span != "" {
			return span
		}
	}
	return ""
}

// balancedSpan returns the prefix of s forming a balanced JSON value,
// respecting strings and escapes. Empty when s never balances.
func balancedSpan(s string) string {
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return s[:i+1]
			}
		}
	}
	return ""
}
