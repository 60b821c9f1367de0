package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestCounter counts all HTTP requests with labels
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	// RequestDurationHistogram records request duration in seconds
	RequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	// StatusCategoryCounter buckets responses into 2xx, 4xx and 5xx
	StatusCategoryCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_status_category_total",
			Help: "Total number of responses by status category (2xx, 4xx, 5xx)",
		},
		[]string{"service", "category"},
	)

	registerOnce sync.Once
)

func registerMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter, RequestDurationHistogram, StatusCategoryCounter)
	})
}

func statusCategory(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	case status >= 200:
		return "2xx"
	default:
		return ""
	}
}

// Metrics records request counts and latency labelled by route template.
func Metrics(serviceName string) gin.HandlerFunc {
	registerMetrics()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := c.Writer.Status()
		statusStr := strconv.Itoa(status)

		RequestCounter.WithLabelValues(serviceName, c.Request.Method, path, statusStr).Inc()
		RequestDurationHistogram.WithLabelValues(serviceName, c.Request.Method, path, statusStr).Observe(time.Since(start).Seconds())
		if category := statusCategory(status); category != "" {
			StatusCategoryCounter.WithLabelValues(serviceName, category).Inc()
		}
	}
}

// MetricsHandler exposes the default registry.
func MetricsHandler() http.Handler {
	registerMetrics()
	return promhttp.Handler()
}
