package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonDecode(rec *httptest.ResponseRecorder, out any) error {
	return json.Unmarshal(rec.Body.Bytes(), out)
}

func authRouter(auth *Authenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", auth.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, CallerIdentity(c))
	})
	return r
}

func whoami(t *testing.T, r *gin.Engine, headers map[string]string) (*httptest.ResponseRecorder, Identity) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var id Identity
	if rec.Code == http.StatusOK {
		require.NoError(t, jsonDecode(rec, &id))
	}
	return rec, id
}

func TestAuthenticatorTokens(t *testing.T) {
	r := authRouter(NewAuthenticator(map[string]Identity{
		"secret-1": {Subject: "user-1", TenantID: "tenant-1"},
	}))

	t.Run("valid bearer token", func(t *testing.T) {
		rec, id := whoami(t, r, map[string]string{"Authorization": "Bearer secret-1"})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, Identity{Subject: "user-1", TenantID: "tenant-1"}, id)
	})

	t.Run("unknown token", func(t *testing.T) {
		rec, _ := whoami(t, r, map[string]string{"Authorization": "Bearer nope"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		rec, _ := whoami(t, r, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		rec, _ := whoami(t, r, map[string]string{"Authorization": "Basic secret-1"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("forwarding headers are ignored in token mode", func(t *testing.T) {
		rec, _ := whoami(t, r, map[string]string{"X-Tenant-ID": "tenant-1"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthenticatorProxyTrust(t *testing.T) {
	r := authRouter(NewAuthenticator(nil))

	t.Run("tenant header is required", func(t *testing.T) {
		rec, _ := whoami(t, r, map[string]string{"X-Forwarded-User": "alice"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("forwarded user wins", func(t *testing.T) {
		_, id := whoami(t, r, map[string]string{
			"X-Tenant-ID":       "tenant-1",
			"X-Forwarded-User":  "alice",
			"X-Forwarded-Email": "alice@acme.test",
		})
		assert.Equal(t, Identity{Subject: "alice", TenantID: "tenant-1"}, id)
	})

	t.Run("forwarded email fallback", func(t *testing.T) {
		_, id := whoami(t, r, map[string]string{
			"X-Tenant-ID":       "tenant-1",
			"X-Forwarded-Email": "alice@acme.test",
		})
		assert.Equal(t, "alice@acme.test", id.Subject)
	})

	t.Run("remote user fallback", func(t *testing.T) {
		_, id := whoami(t, r, map[string]string{
			"X-Tenant-ID":   "tenant-1",
			"X-Remote-User": "system:alice",
		})
		assert.Equal(t, "system:alice", id.Subject)
	})

	t.Run("default subject", func(t *testing.T) {
		_, id := whoami(t, r, map[string]string{"X-Tenant-ID": "tenant-1"})
		assert.Equal(t, "api-client", id.Subject)
	})
}
