package agent

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gianmatteo-arcana/engine-lever/pkg/config"
	"github.com/gianmatteo-arcana/engine-lever/pkg/llm"
	"github.com/gianmatteo-arcana/engine-lever/pkg/models"
	"github.com/gianmatteo-arcana/engine-lever/pkg/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedLLM struct {
	mu        sync.Mutex
	responses []string
	calls     []llm.Request
	err       error
}

func (s *scriptedLLM) Complete(_ context.Context, req llm.Request) (*llm.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	s.calls = append(s.calls, req)
	idx := len(s.calls) - 1
	if idx >= len(s.responses) {
		idx = len(s.responses) - 1
	}
	return &llm.Response{Content: s.responses[idx], Model: "test"}, nil
}

func (s *scriptedLLM) Close() error { return nil }

func testAgent() *config.AgentConfig {
	return &config.AgentConfig{
		Version:        "1.0.0",
		Role:           "Test agent",
		Capabilities:   []string{"data_collection"},
		Instructions:   []string{"collect"},
		PromptTemplate: "Instruction: {{.Instruction}}\nData: {{.DataJSON}}",
	}
}

func newTestRuntime(client llm.Client, agents map[string]*config.AgentConfig, toolGW *tools.Gateway) *Runtime {
	gateway := llm.NewGateway(client, llm.GatewayConfig{
		Timeout:       5 * time.Second,
		MaxAttempts:   1,
		MaxConcurrent: 8,
	})
	return NewRuntime(config.NewAgentRegistry(agents), gateway, toolGW, nil, 4)
}

func collectRequest() Request {
	return Request{
		RequestID:   "req-1",
		TaskID:      "task-1",
		AgentID:     "collector",
		Instruction: "collect",
		Data:        map[string]any{"business": map[string]any{"legal_name": "Acme"}},
	}
}

func TestRuntimeExecute(t *testing.T) {
	t.Run("completed envelope passes through", func(t *testing.T) {
		client := &scriptedLLM{responses: []string{
			`{"status":"completed","data":{"business":{"entity_type":"llc"}},"reasoning":"looked it up","confidence":0.9}`,
		}}
		rt := newTestRuntime(client, map[string]*config.AgentConfig{"collector": testAgent()}, nil)

		resp, err := rt.Execute(context.Background(), collectRequest())
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, resp.Status)
		assert.Equal(t, "looked it up", resp.Reasoning)
		assert.Equal(t, "llc", resp.Data["business"].(map[string]any)["entity_type"])
	})

	t.Run("prompt renders instruction and data", func(t *testing.T) {
		client := &scriptedLLM{responses: []string{`{"status":"completed","data":{}}`}}
		rt := newTestRuntime(client, map[string]*config.AgentConfig{"collector": testAgent()}, nil)

		_, err := rt.Execute(context.Background(), collectRequest())
		require.NoError(t, err)

		prompt := client.calls[0].Messages[1].Content
		assert.Contains(t, prompt, "Instruction: collect")
		assert.Contains(t, prompt, "Acme")
	})

	t.Run("unknown agent", func(t *testing.T) {
		rt := newTestRuntime(&scriptedLLM{responses: []string{"{}"}}, nil, nil)

		resp, err := rt.Execute(context.Background(), collectRequest())
		require.NoError(t, err)
		assert.Equal(t, StatusError, resp.Status)
		assert.Equal(t, models.ErrKindCallFailed, resp.Error.Kind)
	})

	t.Run("unknown instruction", func(t *testing.T) {
		client := &scriptedLLM{responses: []string{"{}"}}
		rt := newTestRuntime(client, map[string]*config.AgentConfig{"collector": testAgent()}, nil)

		req := collectRequest()
		req.Instruction = "self_destruct"
		resp, err := rt.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, models.ErrKindUnknownInstruction, resp.Error.Kind)
		assert.Empty(t, client.calls, "rejected before reaching the model")
	})

	t.Run("input schema violation", func(t *testing.T) {
		cfg := testAgent()
		cfg.InputSchema = map[string]any{
			"type":     "object",
			"required": []any{"must_have"},
		}
		client := &scriptedLLM{responses: []string{"{}"}}
		rt := newTestRuntime(client, map[string]*config.AgentConfig{"collector": cfg}, nil)

		resp, err := rt.Execute(context.Background(), collectRequest())
		require.NoError(t, err)
		assert.Equal(t, models.ErrKindValidation, resp.Error.Kind)
		assert.Empty(t, client.calls)
	})

	t.Run("llm parse failure classified", func(t *testing.T) {
		client := &scriptedLLM{responses: []string{"not json", "still not json"}}
		rt := newTestRuntime(client, map[string]*config.AgentConfig{"collector": testAgent()}, nil)

		resp, err := rt.Execute(context.Background(), collectRequest())
		require.NoError(t, err)
		assert.Equal(t, StatusError, resp.Status)
		assert.Equal(t, models.ErrKindParseFailed, resp.Error.Kind)
	})

	t.Run("cancelled context returns the Go error", func(t *testing.T) {
		client := &scriptedLLM{err: context.Canceled}
		rt := newTestRuntime(client, map[string]*config.AgentConfig{"collector": testAgent()}, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := rt.Execute(ctx, collectRequest())
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRuntimeContract(t *testing.T) {
	run := func(t *testing.T, content string) *Response {
		client := &scriptedLLM{responses: []string{content, content}}
		rt := newTestRuntime(client, map[string]*config.AgentConfig{"collector": testAgent()}, nil)
		resp, err := rt.Execute(context.Background(), collectRequest())
		require.NoError(t, err)
		return resp
	}

	t.Run("needs_input without ui requests is a violation", func(t *testing.T) {
		resp := run(t, `{"status":"needs_input"}`)
		assert.Equal(t, models.ErrKindContractViolation, resp.Error.Kind)
	})

	t.Run("needs_input with unknown template kind is a violation", func(t *testing.T) {
		resp := run(t, `{"status":"needs_input","ui_requests":[{"template_kind":"hologram"}]}`)
		assert.Equal(t, models.ErrKindContractViolation, resp.Error.Kind)
	})

	t.Run("delegated without next agent is a violation", func(t *testing.T) {
		resp := run(t, `{"status":"delegated"}`)
		assert.Equal(t, models.ErrKindContractViolation, resp.Error.Kind)
	})

	t.Run("unknown status is a violation", func(t *testing.T) {
		resp := run(t, `{"status":"maybe_done"}`)
		assert.Equal(t, models.ErrKindContractViolation, resp.Error.Kind)
	})

	t.Run("status is case-normalized before checking", func(t *testing.T) {
		resp := run(t, `{"status":" Completed ","data":{}}`)
		assert.Equal(t, StatusCompleted, resp.Status)
	})

	t.Run("output schema enforced on completed", func(t *testing.T) {
		cfg := testAgent()
		cfg.OutputSchema = map[string]any{
			"type":     "object",
			"required": []any{"verdict"},
		}
		client := &scriptedLLM{responses: []string{`{"status":"completed","data":{"other":"thing"}}`}}
		rt := newTestRuntime(client, map[string]*config.AgentConfig{"collector": cfg}, nil)

		resp, err := rt.Execute(context.Background(), collectRequest())
		require.NoError(t, err)
		assert.Equal(t, models.ErrKindContractViolation, resp.Error.Kind)
	})
}

func TestNormalizeUIRequestIDs(t *testing.T) {
	resp := &Response{
		Status: StatusNeedsInput,
		UIRequests: []models.UIRequestSpec{
			{TemplateKind: models.UIKindForm},
			{TemplateKind: models.UIKindConfirmation, RequestID: "explicit"},
		},
	}
	req := Request{RequestID: "req-1"}

	normalize(resp, req)
	first := resp.UIRequests[0].RequestID
	assert.NotEmpty(t, first)
	assert.Equal(t, "explicit", resp.UIRequests[1].RequestID)

	// Same subtask regenerates the same ID.
	again := &Response{
		Status:     StatusNeedsInput,
		UIRequests: []models.UIRequestSpec{{TemplateKind: models.UIKindForm}},
	}
	normalize(again, req)
	assert.Equal(t, first, again.UIRequests[0].RequestID)
}

func TestRuntimeToolCalls(t *testing.T) {
	t.Run("successful call fills the record", func(t *testing.T) {
		var gotKey string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotKey = r.Header.Get("X-Idempotency-Key")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success":true,"data":{"found":true}}`))
		}))
		defer srv.Close()

		cfg := testAgent()
		cfg.RequiredTools = []string{"lookup"}
		toolGW := tools.NewGateway(config.NewToolRegistry(map[string]*config.ToolConfig{
			"lookup": {URL: srv.URL},
		}), 5*time.Second)

		client := &scriptedLLM{responses: []string{
			`{"status":"completed","data":{},"tool_calls":[{"tool":"lookup","args":{"q":"acme"}}]}`,
		}}
		rt := newTestRuntime(client, map[string]*config.AgentConfig{"collector": cfg}, toolGW)

		resp, err := rt.Execute(context.Background(), collectRequest())
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, resp.Status)
		require.Len(t, resp.ToolCalls, 1)
		assert.True(t, resp.ToolCalls[0].Success)
		assert.Equal(t, true, resp.ToolCalls[0].Result["found"])
		assert.Equal(t, "req-1/0", gotKey)
	})

	t.Run("disallowed tool converts to call_failed", func(t *testing.T) {
		toolGW := tools.NewGateway(config.NewToolRegistry(nil), 5*time.Second)
		client := &scriptedLLM{responses: []string{
			`{"status":"completed","data":{},"tool_calls":[{"tool":"forbidden","args":{}}]}`,
		}}
		rt := newTestRuntime(client, map[string]*config.AgentConfig{"collector": testAgent()}, toolGW)

		resp, err := rt.Execute(context.Background(), collectRequest())
		require.NoError(t, err)
		assert.Equal(t, StatusError, resp.Status)
		assert.Equal(t, models.ErrKindCallFailed, resp.Error.Kind)
		require.Len(t, resp.ToolCalls, 1)
		assert.False(t, resp.ToolCalls[0].Success)
	})

	t.Run("tool HTTP failure converts to call_failed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		}))
		defer srv.Close()

		cfg := testAgent()
		cfg.RequiredTools = []string{"lookup"}
		toolGW := tools.NewGateway(config.NewToolRegistry(map[string]*config.ToolConfig{
			"lookup": {URL: srv.URL},
		}), 5*time.Second)

		client := &scriptedLLM{responses: []string{
			`{"status":"completed","data":{},"tool_calls":[{"tool":"lookup","args":{}}]}`,
		}}
		rt := newTestRuntime(client, map[string]*config.AgentConfig{"collector": cfg}, toolGW)

		resp, err := rt.Execute(context.Background(), collectRequest())
		require.NoError(t, err)
		assert.Equal(t, models.ErrKindCallFailed, resp.Error.Kind)
		assert.Contains(t, resp.Error.Message, "lookup")
	})
}

func TestRuntimeConcurrencyLimit(t *testing.T) {
	cfg := testAgent()
	cfg.MaxConcurrent = 1

	client := &blockingLLM{
		inner:   &scriptedLLM{responses: []string{`{"status":"completed","data":{}}`}},
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	rt := newTestRuntime(client, map[string]*config.AgentConfig{"collector": cfg}, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = rt.Execute(context.Background(), collectRequest())
	}()

	// Wait until the first execution holds the agent's only slot.
	<-client.entered

	resp, err := rt.Execute(context.Background(), collectRequest())
	require.NoError(t, err)
	require.NotNil(t, resp.Error)
	assert.Equal(t, models.ErrKindBusy, resp.Error.Kind)

	close(client.release)
	wg.Wait()
}

type blockingLLM struct {
	inner   llm.Client
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (b *blockingLLM) Complete(ctx context.Context, req llm.Request) (*llm.Response, error) {
	b.once.Do(func() { close(b.entered) })
	<-b.release
	return b.inner.Complete(ctx, req)
}

func (b *blockingLLM) Close() error { return nil }
