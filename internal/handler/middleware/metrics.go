package middleware

import (
	"shareit/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics counts requests by the matched route pattern, not the raw path.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.IncHTTP(c.Request.Method, route, c.Writer.Status())
	}
}
