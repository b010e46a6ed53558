// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"blog-service/internal/metrics"
)

// Metrics returns a Gin middleware that records Prometheus metrics for HTTP requests.
// Requests to /metrics and to any of skipPaths are not recorded. Unmatched
// routes share the "unmatched" path label so arbitrary slugs cannot blow up
// label cardinality.
func Metrics(skipPaths ...string) gin.HandlerFunc {
	skip := map[string]struct{}{"/metrics": {}}
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.FullPath()]; ok {
			c.Next()
			return
		}

		start := time.Now()

		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
	}
}
