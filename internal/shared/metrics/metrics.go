package metrics

import (
	"database/sql"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	recommendationsComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "recommendations_computed_total",
		Help: "Total recommendation sets computed",
	})

	recommendationsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recommendations_failed_total",
		Help: "Total recommendation computations that failed",
	}, []string{"reason"})

	conflictResolutions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "conflict_resolution_total",
		Help: "Combined scores where subjective and objective measures disagreed",
	})

	recommendationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommendation_duration_seconds",
		Help:    "Time to load the catalog and compute a recommendation set",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	snapshotFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "report_snapshots_failed_total",
		Help: "Assessment report snapshots that could not be written to object storage",
	})

	handlerPanics = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_handler_panics_total",
		Help: "Handler panics recovered by route",
	}, []string{"route"})
)

// IncRecommendationComputed increments the computed counter.
func IncRecommendationComputed() {
	recommendationsComputed.Inc()
}

// IncRecommendationFailed increments the failed counter for a reason label.
func IncRecommendationFailed(reason string) {
	recommendationsFailed.WithLabelValues(reason).Inc()
}

// IncConflictResolution counts a conservative combined score.
func IncConflictResolution() {
	conflictResolutions.Inc()
}

// ObserveRecommendationDuration records time since start.
func ObserveRecommendationDuration(start time.Time) {
	recommendationDuration.Observe(time.Since(start).Seconds())
}

// IncSnapshotFailed counts a report snapshot that was not stored.
func IncSnapshotFailed() {
	snapshotFailures.Inc()
}

// IncPanic counts a recovered handler panic.
func IncPanic(route string) {
	handlerPanics.WithLabelValues(route).Inc()
}

var (
	poolMu        sync.Mutex
	poolCollector prometheus.Collector
)

// TrackDBPool exports connection pool stats for sqlDB, replacing any pool
// tracked earlier in the process.
func TrackDBPool(sqlDB *sql.DB) {
	poolMu.Lock()
	defer poolMu.Unlock()
	if poolCollector != nil {
		prometheus.Unregister(poolCollector)
	}
	c := collectors.NewDBStatsCollector(sqlDB, "oaknee")
	if err := prometheus.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return
		}
	}
	poolCollector = c
}

// Middleware counts requests per matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
