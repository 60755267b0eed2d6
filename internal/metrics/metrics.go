// Package metrics provides Prometheus metrics collection for the menu service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// ScaleCalculationsTotal tracks recipe scaling calculations.
	ScaleCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scale_calculations_total",
			Help: "Total number of recipe scaling calculations",
		},
		[]string{"status"},
	)

	// ShoppingListDuration tracks weekly shopping list generation duration.
	ShoppingListDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shopping_list_duration_seconds",
			Help:    "Weekly shopping list generation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// UnitConversionFallbacksTotal counts incompatible unit conversions that
	// fell back to the unconverted quantity.
	UnitConversionFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "unit_conversion_fallbacks_total",
			Help: "Total number of incompatible unit conversions returned unconverted",
		},
	)
)

// RecordScaleCalculation records a scaling calculation with its outcome.
func RecordScaleCalculation(status string) {
	ScaleCalculationsTotal.WithLabelValues(status).Inc()
}

// RecordShoppingList records the duration of a shopping list generation.
func RecordShoppingList(duration time.Duration) {
	ShoppingListDuration.Observe(duration.Seconds())
}

// RecordUnitConversionFallback records an incompatible unit conversion.
func RecordUnitConversionFallback() {
	UnitConversionFallbacksTotal.Inc()
}

// PrometheusMiddleware returns a gin middleware that records request metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)
		status := strconv.Itoa(c.Writer.Status())
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		HTTPRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration.Seconds())
		HTTPRequestTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	}
}
