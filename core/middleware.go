package core

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context key under which RequireToken stores the verified user ID.
const ctxUserID = "userID"

// RequireToken gates protected routes behind a bearer token. The raw signed
// token is read from the "authorization" header as-is (no "Bearer " prefix).
// A missing token is rejected with 403 before the handler runs; a token that
// fails verification (bad signature, expired, malformed) with 401. On success
// the decoded user ID is attached to the request context for downstream
// handlers. The middleware never touches any store.
func RequireToken(tm *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("authorization")
		if tokenString == "" {
			respondError(c, http.StatusForbidden, "FORBIDDEN", "no token provided")
			c.Abort()
			return
		}

		userID, err := tm.Verify(tokenString)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
			c.Abort()
			return
		}

		c.Set(ctxUserID, userID)
		c.Next()
	}
}

// userIDFromContext reads the ID stored by RequireToken.
func userIDFromContext(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// RequestIDMiddleware tags every request with an ID, echoed in the response
// header and available to handlers for log correlation.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
