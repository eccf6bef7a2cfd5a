package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/pkg/response"
)

// RequestLog logs one line per request with latency and status.
func (m Middleware) RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		m.l.Infof(ctx, "%s %s -> %d (%s)",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start).Round(time.Microsecond),
		)
	}
}

// Recovery converts panics into a 500 without leaking internals.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				m.l.Errorf(c.Request.Context(), "panic recovered: %v", r)
				response.InternalError(c)
				c.Abort()
			}
		}()
		c.Next()
	}
}

// CORS allows the browser board client to call the API cross-origin.
func (m Middleware) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, "+OwnerHeader)

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
