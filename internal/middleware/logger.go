package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorLogger logs every request, details of failed ones, and recovers from panics.
func ErrorLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			reqLog := Logger(c, log)

			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				reqLog.Error("panic recovered",
					requestFields(c, start,
						zap.Error(err),
						zap.ByteString("stack", debug.Stack()),
					)...,
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INTERNAL_SERVER_ERROR",
						"message": "Internal Server Error",
					},
				})
				return
			}

			for _, e := range c.Errors {
				reqLog.Error("request error", requestFields(c, start, zap.Error(e.Err))...)
			}
			if len(c.Errors) == 0 && c.Writer.Status() >= http.StatusInternalServerError {
				reqLog.Error("request failed", requestFields(c, start)...)
				return
			}
			reqLog.Info("HTTP Request", requestFields(c, start)...)
		}()

		c.Next()
	}
}

func requestFields(c *gin.Context, start time.Time, extra ...zap.Field) []zap.Field {
	fields := []zap.Field{
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("query", c.Request.URL.RawQuery),
		zap.Int("status", c.Writer.Status()),
		zap.Duration("latency", time.Since(start)),
		zap.String("client_ip", c.ClientIP()),
	}
	return append(fields, extra...)
}
