package utils

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "s2inventory_http_requests_total",
		Help: "HTTP requests by method, path template and status code.",
	}, []string{"method", "path", "code"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "s2inventory_http_request_duration_seconds",
		Help:    "HTTP request latency by method and path template.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	importJobs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "s2inventory_import_jobs_total",
		Help: "Import jobs by final status.",
	}, []string{"status"})
)

// MetricsMiddleware records request counts and latencies. The route template
// is used as label, never the raw path, to keep cardinality bounded.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// CountImportJob increments the import job counter for a final status.
func CountImportJob(status string) {
	importJobs.WithLabelValues(status).Inc()
}

// MetricsHandler exposes the prometheus scrape endpoint.
func MetricsHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
