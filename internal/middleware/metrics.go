package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-records/pkg/metrics"
)

// Metrics records request count and latency per route template, so
// /delete_patient/1 and /delete_patient/2 share one series.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		code := c.Writer.Status()
		m.ObserveRequest(c.Request.Method, path, strconv.Itoa(code), code, time.Since(start))
	}
}
