package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the context key under which the per-request ID is stored.
const RequestIDKey = "request_id"

// RequestIDHeader is the header used to propagate the request ID to clients
// and accept one from upstream proxies.
const RequestIDHeader = "X-Request-ID"

// RequestID assigns every request a unique ID, honoring one supplied by the
// caller. The ID is echoed back in the response headers so failures can be
// correlated across the gateway and application logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}
