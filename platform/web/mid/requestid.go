package mid

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is echoed back on every response
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "requestID"

// RequestID reuses the incoming request id or generates a new one
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		ctx.Set(requestIDKey, id)
		ctx.Header(RequestIDHeader, id)
		ctx.Next()
	}
}

// GetRequestID returns the id set by RequestID, empty when the middleware did not run
func GetRequestID(ctx *gin.Context) string {
	return ctx.GetString(requestIDKey)
}
