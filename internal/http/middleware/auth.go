// README: Caller identity middleware. Firebase bearer tokens are optional; anonymous callers
// are keyed by client IP so the lookup quota still applies.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ecofly/internal/infra"
)

const callerUIDKey = "caller_uid"

// AnonymousPrefix marks caller ids derived from the client address.
const AnonymousPrefix = "anon:"

// Auth verifies an optional "Bearer <token>" header. A present but invalid token is rejected
// with 401. A nil verifier treats every caller as anonymous.
func Auth(verifier infra.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || verifier == nil {
			c.Set(callerUIDKey, AnonymousPrefix+c.ClientIP())
			c.Next()
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			return
		}

		uid, err := verifier.VerifyCaller(c.Request.Context(), token)
		// A uid shaped like an anonymous id would share that address's history and quota.
		if err != nil || uid == "" || strings.HasPrefix(uid, AnonymousPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(callerUIDKey, uid)
		c.Next()
	}
}

// CallerUID returns the id set by Auth, or "" when Auth did not run.
func CallerUID(c *gin.Context) string {
	return c.GetString(callerUIDKey)
}
