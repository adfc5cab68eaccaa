package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"oaknee-backend/internal/assessments"
	"oaknee-backend/internal/exercises"
	"oaknee-backend/internal/services/health"
	"oaknee-backend/internal/shared/config"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	exSvc := &exercises.Service{Repo: exercises.NewMemoryRepo()}
	if _, err := exSvc.EnsureSeeded(context.Background()); err != nil {
		t.Fatalf("EnsureSeeded: %v", err)
	}
	asSvc := &assessments.Service{Repo: assessments.NewMemoryRepo(), Catalog: exSvc}
	return NewRouter(RouterDeps{
		Config:            config.Config{Env: "dev", RateLimitRPS: 5, RateLimitBurst: 20},
		ExerciseHandler:   exercises.NewHandler(exSvc),
		AssessmentHandler: assessments.NewHandler(asSvc),
		Health:            health.NewService(nil, exSvc),
	})
}

func TestHealthRoute(t *testing.T) {
	r := testRouter(t)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"database":"memory"`) {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
}

func TestMetricsRoute(t *testing.T) {
	r := testRouter(t)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/exercises", nil))

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "http_requests_total") {
		t.Fatalf("expected http_requests_total in metrics output")
	}
}

func TestDomainRoutesMounted(t *testing.T) {
	r := testRouter(t)
	for _, path := range []string{"/api/v1/exercises", "/api/v1/exercises/1"} {
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, resp.Code)
		}
	}
}

func TestAddr(t *testing.T) {
	tests := map[string]string{"": ":8080", "9000": ":9000", ":7000": ":7000"}
	for in, want := range tests {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
