package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ContextRequestID = "requestID"

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an id, reusing the caller's
// X-Request-ID when one is supplied.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(ContextRequestID, id)
		c.Writer.Header().Set(requestIDHeader, id)

		c.Next()
	}
}
