package llm

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient returns scripted responses in order, then repeats the last one.
type fakeClient struct {
	mu       sync.Mutex
	script   []func(req Request) (*Response, error)
	requests []Request
}

func (f *fakeClient) Complete(_ context.Context, req Request) (*Response, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	idx := len(f.requests) - 1
	if idx >= len(f.script) {
		idx = len(f.script) - 1
	}
	fn := f.script[idx]
	f.mu.Unlock()
	return fn(req)
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func respondWith(content string) func(Request) (*Response, error) {
	return func(Request) (*Response, error) {
		return &Response{Content: content, Model: "test"}, nil
	}
}

func failWith(err error) func(Request) (*Response, error) {
	return func(Request) (*Response, error) { return nil, err }
}

func newTestGateway(client Client, maxAttempts int) *Gateway {
	return NewGateway(client, GatewayConfig{
		Timeout:       5 * time.Second,
		MaxAttempts:   maxAttempts,
		MaxConcurrent: 4,
		Model:         "default-model",
	})
}

func TestGatewayComplete(t *testing.T) {
	t.Run("success on first attempt", func(t *testing.T) {
		client := &fakeClient{script: []func(Request) (*Response, error){
			respondWith("hello"),
		}}
		g := newTestGateway(client, 3)

		resp, err := g.Complete(context.Background(), Request{Messages: []Message{{Role: "user", Content: "hi"}}})
		require.NoError(t, err)
		assert.Equal(t, "hello", resp.Content)
		assert.Equal(t, 1, client.calls())
	})

	t.Run("default model applied when request leaves it empty", func(t *testing.T) {
		client := &fakeClient{script: []func(Request) (*Response, error){
			respondWith("ok"),
		}}
		g := newTestGateway(client, 3)

		_, err := g.Complete(context.Background(), Request{})
		require.NoError(t, err)
		assert.Equal(t, "default-model", client.requests[0].Model)
	})

	t.Run("retries retryable errors up to the attempt budget", func(t *testing.T) {
		client := &fakeClient{script: []func(Request) (*Response, error){
			failWith(ErrUnavailable),
			failWith(ErrRateLimited),
			respondWith("recovered"),
		}}
		g := newTestGateway(client, 3)

		resp, err := g.Complete(context.Background(), Request{})
		require.NoError(t, err)
		assert.Equal(t, "recovered", resp.Content)
		assert.Equal(t, 3, client.calls())
	})

	t.Run("gives up after the attempt budget", func(t *testing.T) {
		client := &fakeClient{script: []func(Request) (*Response, error){
			failWith(ErrUnavailable),
		}}
		g := newTestGateway(client, 2)

		_, err := g.Complete(context.Background(), Request{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnavailable)
		assert.Equal(t, 2, client.calls())
	})

	t.Run("non-retryable error fails immediately", func(t *testing.T) {
		boom := errors.New("invalid request")
		client := &fakeClient{script: []func(Request) (*Response, error){
			failWith(boom),
		}}
		g := newTestGateway(client, 3)

		_, err := g.Complete(context.Background(), Request{})
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, client.calls())
	})

	t.Run("concurrency cap fails fast with ErrBusy", func(t *testing.T) {
		release := make(chan struct{})
		client := &fakeClient{script: []func(Request) (*Response, error){
			func(Request) (*Response, error) {
				<-release
				return &Response{Content: "done"}, nil
			},
		}}
		g := NewGateway(client, GatewayConfig{
			Timeout:       5 * time.Second,
			MaxAttempts:   1,
			MaxConcurrent: 1,
		})

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = g.Complete(context.Background(), Request{})
		}()

		// Wait until the first call holds the slot.
		require.Eventually(t, func() bool { return client.calls() == 1 }, time.Second, 5*time.Millisecond)

		_, err := g.Complete(context.Background(), Request{})
		assert.ErrorIs(t, err, ErrBusy)

		close(release)
		wg.Wait()
	})
}

func TestGatewayCompleteJSON(t *testing.T) {
	type out struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	t.Run("clean JSON decodes directly", func(t *testing.T) {
		client := &fakeClient{script: []func(Request) (*Response, error){
			respondWith(`{"name":"a","count":2}`),
		}}
		g := newTestGateway(client, 3)

		var v out
		require.NoError(t, g.CompleteJSON(context.Background(), Request{}, &v))
		assert.Equal(t, out{Name: "a", Count: 2}, v)
		assert.True(t, client.requests[0].JSONMode)
	})

	t.Run("fenced block inside prose", func(t *testing.T) {
		client := &fakeClient{script: []func(Request) (*Response, error){
			respondWith("Here is the result:\n```json\n{\"name\":\"b\",\"count\":1}\n```\nDone."),
		}}
		g := newTestGateway(client, 3)

		var v out
		require.NoError(t, g.CompleteJSON(context.Background(), Request{}, &v))
		assert.Equal(t, "b", v.Name)
		assert.Equal(t, 1, client.calls())
	})

	t.Run("balanced object embedded in prose", func(t *testing.T) {
		client := &fakeClient{script: []func(Request) (*Response, error){
			respondWith(`Sure thing. {"name":"c {braces} inside","count":7} hope that helps`),
		}}
		g := newTestGateway(client, 3)

		var v out
		require.NoError(t, g.CompleteJSON(context.Background(), Request{}, &v))
		assert.Equal(t, "c {braces} inside", v.Name)
	})

	t.Run("repairable JSON goes through jsonrepair", func(t *testing.T) {
		client := &fakeClient{script: []func(Request) (*Response, error){
			respondWith(`{name: 'd', count: 3,}`),
		}}
		g := newTestGateway(client, 3)

		var v out
		require.NoError(t, g.CompleteJSON(context.Background(), Request{}, &v))
		assert.Equal(t, "d", v.Name)
		assert.Equal(t, 1, client.calls())
	})

	t.Run("reinforcement round trip after unusable output", func(t *testing.T) {
		client := &fakeClient{script: []func(Request) (*Response, error){
			respondWith("I cannot answer in JSON, sorry."),
			respondWith(`{"name":"e","count":9}`),
		}}
		g := newTestGateway(client, 3)

		var v out
		require.NoError(t, g.CompleteJSON(context.Background(), Request{}, &v))
		assert.Equal(t, "e", v.Name)
		require.Equal(t, 2, client.calls())

		// The reinforcement carries the bad reply back as an assistant turn.
		second := client.requests[1]
		require.GreaterOrEqual(t, len(second.Messages), 2)
		assert.Equal(t, "assistant", second.Messages[len(second.Messages)-2].Role)
		assert.Equal(t, "I cannot answer in JSON, sorry.", second.Messages[len(second.Messages)-2].Content)
	})

	t.Run("ErrParseFailed when reinforcement also fails", func(t *testing.T) {
		client := &fakeClient{script: []func(Request) (*Response, error){
			respondWith("nope"),
			respondWith("still nope"),
		}}
		g := newTestGateway(client, 3)

		var v out
		err := g.CompleteJSON(context.Background(), Request{}, &v)
		assert.ErrorIs(t, err, ErrParseFailed)
	})
}

func TestCoerceJSON(t *testing.T) {
	var v map[string]any

	assert.NoError(t, coerceJSON(`  {"a":1}  `, &v))
	assert.NoError(t, coerceJSON("```json\n[1,2]\n```", &[]int{}))
	assert.Error(t, coerceJSON("no json anywhere", &v))
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSON("prefix {\"a\":1} suffix"))
	assert.Equal(t, `[1,2]`, extractJSON("list: [1,2]!"))
	assert.Equal(t, `{"s":"}"}`, extractJSON(`x {"s":"}"} y`))
	assert.Equal(t, "", extractJSON("nothing here"))
}
