package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/slatedeck/GreenLight-Intelligence/internal/infrastructure/monitoring/prometheus"
)

// Metrics records per-request counters and latency.
func Metrics(m *prometheus.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveHTTP(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
