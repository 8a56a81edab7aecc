package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Identity is the authenticated caller. TenantID scopes every task read and
// write; Subject is recorded as the actor on user-originated entries.
type Identity struct {
	Subject  string `json:"subject"`
	TenantID string `json:"tenant_id"`
}

const identityKey = "identity"

// Authenticator validates static bearer tokens mapped to identities.
//
// With no tokens configured the authenticator runs in proxy-trust mode and
// takes the identity from forwarding headers, the deployment's auth proxy
// being the actual gate.
type Authenticator struct {
	tokens map[string]Identity
}

// NewAuthenticator creates an authenticator over a token → identity map.
func NewAuthenticator(tokens map[string]Identity) *Authenticator {
	return &Authenticator{tokens: tokens}
}

// Middleware authenticates the request and stores the identity in the
// gin context.
func (a *Authenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := a.authenticate(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

func (a *Authenticator) authenticate(c *gin.Context) (Identity, bool) {
	if len(a.tokens) == 0 {
		return identityFromHeaders(c)
	}

	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return Identity{}, false
	}
	identity, ok := a.tokens[token]
	return identity, ok
}

// identityFromHeaders extracts the caller from proxy headers.
// Priority: X-Forwarded-User (oauth2-proxy) > X-Forwarded-Email (oauth2-proxy) >
// X-Remote-User (kube-rbac-proxy) > "api-client"
func identityFromHeaders(c *gin.Context) (Identity, bool) {
	tenantID := c.GetHeader("X-Tenant-ID")
	if tenantID == "" {
		return Identity{}, false
	}

	subject := "api-client"
	if user := c.GetHeader("X-Forwarded-User"); user != "" {
		subject = user
	} else if email := c.GetHeader("X-Forwarded-Email"); email != "" {
		subject = email
	} else if user := c.GetHeader("X-Remote-User"); user != "" {
		subject = user
	}

	return Identity{Subject: subject, TenantID: tenantID}, true
}

// CallerIdentity returns the identity the auth middleware stored.
func CallerIdentity(c *gin.Context) Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(Identity); ok {
			return id
		}
	}
	return Identity{}
}
