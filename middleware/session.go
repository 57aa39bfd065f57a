package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionHeader = "X-Session-ID"
	sessionKey    = "sessionId"
)

// SessionMiddleware reuses the caller's X-Session-ID, or issues a new one,
// and echoes it back on the response.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if _, err := uuid.Parse(sessionID); err != nil {
			sessionID = uuid.NewString()
		}

		c.Set(sessionKey, sessionID)
		c.Writer.Header().Set(SessionHeader, sessionID)

		c.Next()
	}
}

// SessionID returns the id set by SessionMiddleware, or "" outside it.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
