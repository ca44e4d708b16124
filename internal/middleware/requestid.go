package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	HeaderRequestID = "X-Request-ID"

	ctxRequestID = "request_id"
	ctxLogger    = "logger"
)

// RequestID adds a unique request id to each request and a logger carrying it.
func RequestID(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
			c.Request.Header.Set(HeaderRequestID, id)
		}
		c.Writer.Header().Set(HeaderRequestID, id)

		c.Set(ctxRequestID, id)
		c.Set(ctxLogger, log.With(zap.String("request_id", id)))
		c.Next()
	}
}

// Logger returns the request scoped logger, or fallback when RequestID did not run.
func Logger(c *gin.Context, fallback *zap.Logger) *zap.Logger {
	if l, ok := c.Get(ctxLogger); ok {
		if zl, ok := l.(*zap.Logger); ok {
			return zl
		}
	}
	return fallback
}
