package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HttpRequestsTotal counts HTTP requests by route and status.
var HttpRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "shop_http_requests_total",
		Help: "Total number of HTTP requests",
	},
	[]string{"method", "path", "status"},
)

// HttpRequestDuration observes HTTP latency by route.
var HttpRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "shop_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	},
	[]string{"method", "path"},
)

// DbQueryDuration observes SQL statement latency.
var DbQueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "shop_db_query_duration_seconds",
		Help:    "Duration of database queries in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	},
	[]string{"operation", "table"},
)

// DbErrors counts failed SQL statements.
var DbErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "shop_db_errors_total",
		Help: "Total number of database errors",
	},
	[]string{"operation", "table"},
)

// CommitsTotal counts unit of work commits by result (ok, failed).
var CommitsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "shop_commits_total",
		Help: "Total number of unit of work commits",
	},
	[]string{"store", "result"},
)

var CacheHits = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "shop_cache_hits_total",
		Help: "Total number of cache hits",
	},
	[]string{"key"},
)

var CacheMisses = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "shop_cache_misses_total",
		Help: "Total number of cache misses",
	},
	[]string{"key"},
)

// RecordCommit increments CommitsTotal for the given store.
func RecordCommit(store string, err error) {
	result := "ok"
	if err != nil {
		result = "failed"
	}
	CommitsTotal.WithLabelValues(store, result).Inc()
}

// RecordDBQuery records one SQL statement.
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DbQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DbErrors.WithLabelValues(operation, table).Inc()
	}
}

// Middleware records request count and latency per matched route.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		HttpRequestsTotal.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		HttpRequestDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler exposes the default registry for scraping.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
