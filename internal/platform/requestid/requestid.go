// Package requestid tags every request with a correlation id.
package requestid

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Header is the request/response header carrying the correlation id.
const Header = "X-Request-ID"

// contextKey is the gin context key under which the id is stored.
const contextKey = "requestID"

// New returns a Gin middleware that reuses the inbound X-Request-ID header or
// mints a new id, exposes it to handlers and echoes it on the response so the
// client can correlate logs.
func New() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(Header)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(contextKey, id)
		c.Header(Header, id)
		c.Next()
	}
}

// FromContext returns the id set by New, or "" outside the middleware.
func FromContext(c *gin.Context) string {
	return c.GetString(contextKey)
}
