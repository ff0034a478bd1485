package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/waveline-inc/waveline/internal/shared/constants"
	"github.com/waveline-inc/waveline/internal/shared/id"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an identifier so log lines from one
// request can be correlated. An inbound X-Request-ID is kept, otherwise a
// fresh one is generated. The identifier is echoed in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = id.MustGenerate(16)
		}

		c.Set(constants.ContextKeyRequestID, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)

		c.Next()
	}
}
