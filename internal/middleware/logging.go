package middleware

import (
	"time"

	"ai-solutions-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs status, latency and route of every request. Bodies are never logged.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []interface{}{
			"status", c.Writer.Status(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"ip", c.ClientIP(),
			"latency", time.Since(start).String(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}
		if c.Writer.Status() >= 500 {
			log.Warnw("request failed", fields...)
			return
		}
		log.Infow("request completed", fields...)
	}
}
