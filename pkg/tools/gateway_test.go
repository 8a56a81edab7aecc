package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gianmatteo-arcana/engine-lever/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatewayFor(url string, headers map[string]string) *Gateway {
	return NewGateway(config.NewToolRegistry(map[string]*config.ToolConfig{
		"lookup": {URL: url, Headers: headers},
	}), 5*time.Second)
}

func TestGatewayExecute(t *testing.T) {
	t.Run("posts args and decodes the envelope", func(t *testing.T) {
		var gotBody map[string]any
		var gotHeaders http.Header
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotHeaders = r.Header.Clone()
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success":true,"data":{"entity_type":"llc"}}`))
		}))
		defer srv.Close()

		g := gatewayFor(srv.URL, map[string]string{"X-Api-Key": "secret"})
		result, err := g.Execute(context.Background(), Call{
			Tool:           "lookup",
			Args:           map[string]any{"q": "acme"},
			IdempotencyKey: "req-1/0",
		})
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "llc", result.Data["entity_type"])
		assert.Equal(t, "acme", gotBody["q"])
		assert.Equal(t, "req-1/0", gotHeaders.Get("X-Idempotency-Key"))
		assert.Equal(t, "secret", gotHeaders.Get("X-Api-Key"))
		assert.Equal(t, "application/json", gotHeaders.Get("Content-Type"))
	})

	t.Run("bare JSON payload without the envelope", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"entity_type":"llc"}`))
		}))
		defer srv.Close()

		result, err := gatewayFor(srv.URL, nil).Execute(context.Background(), Call{Tool: "lookup"})
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "llc", result.Data["entity_type"])
	})

	t.Run("non-2xx comes back as an unsuccessful result", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "upstream registry down", http.StatusBadGateway)
		}))
		defer srv.Close()

		result, err := gatewayFor(srv.URL, nil).Execute(context.Background(), Call{Tool: "lookup"})
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "HTTP 502")
		assert.Contains(t, result.Error, "upstream registry down")
	})

	t.Run("transport failure comes back as an unsuccessful result", func(t *testing.T) {
		result, err := gatewayFor("http://127.0.0.1:1", nil).Execute(context.Background(), Call{Tool: "lookup"})
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.NotEmpty(t, result.Error)
	})

	t.Run("unknown tool is a Go error", func(t *testing.T) {
		g := NewGateway(config.NewToolRegistry(nil), time.Second)
		_, err := g.Execute(context.Background(), Call{Tool: "ghost"})
		assert.ErrorIs(t, err, ErrToolNotFound)
	})

	t.Run("per-tool timeout applies", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(2 * time.Second):
			case <-r.Context().Done():
			}
		}))
		defer srv.Close()

		g := NewGateway(config.NewToolRegistry(map[string]*config.ToolConfig{
			"lookup": {URL: srv.URL, Timeout: 50 * time.Millisecond},
		}), 5*time.Second)

		result, err := g.Execute(context.Background(), Call{Tool: "lookup"})
		require.NoError(t, err)
		assert.False(t, result.Success)
	})

	t.Run("undecodable response is unsuccessful", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html>not json</html>"))
		}))
		defer srv.Close()

		result, err := gatewayFor(srv.URL, nil).Execute(context.Background(), Call{Tool: "lookup"})
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "undecodable")
	})
}
