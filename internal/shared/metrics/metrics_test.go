package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCountersIncrement(t *testing.T) {
	before := testutil.ToFloat64(recommendationsComputed)
	IncRecommendationComputed()
	if got := testutil.ToFloat64(recommendationsComputed); got != before+1 {
		t.Fatalf("expected %v, got %v", before+1, got)
	}

	IncRecommendationFailed("empty_catalog")
	if got := testutil.ToFloat64(recommendationsFailed.WithLabelValues("empty_catalog")); got < 1 {
		t.Fatalf("expected failed counter to be incremented, got %v", got)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware())
	router.GET("/metrics", Handler())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))
	IncConflictResolution()

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	for _, name := range []string{"conflict_resolution_total", `http_requests_total{method="GET",route="/ping",status="200"}`} {
		if !strings.Contains(body, name) {
			t.Fatalf("expected %s in metrics output", name)
		}
	}
}

func TestTrackDBPoolReplacesCollector(t *testing.T) {
	first, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer first.Close()
	second, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer second.Close()

	TrackDBPool(first)
	TrackDBPool(second)

	poolMu.Lock()
	c := poolCollector
	poolMu.Unlock()
	if c == nil {
		t.Fatalf("expected a tracked pool collector")
	}
	if n := testutil.CollectAndCount(c, "go_sql_max_open_connections"); n != 1 {
		t.Fatalf("expected one pool series, got %d", n)
	}
}

func TestIncPanic(t *testing.T) {
	before := testutil.ToFloat64(handlerPanics.WithLabelValues("/boom"))
	IncPanic("/boom")
	if got := testutil.ToFloat64(handlerPanics.WithLabelValues("/boom")); got != before+1 {
		t.Fatalf("expected %v, got %v", before+1, got)
	}
}
