package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// AccessLog writes one line per request once the handler chain returns.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		args := []any{
			"http request",
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP(),
		}

		switch {
		case status >= 500:
			m.l.Error(ctx, args...)
		case status >= 400:
			m.l.Warn(ctx, args...)
		default:
			m.l.Info(ctx, args...)
		}
	}
}
