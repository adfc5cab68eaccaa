package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"oaknee-backend/internal/assessments"
	"oaknee-backend/internal/exercises"
	"oaknee-backend/internal/services/health"
	"oaknee-backend/internal/shared/config"
	"oaknee-backend/internal/shared/metrics"
	"oaknee-backend/internal/shared/server/middleware"
	"oaknee-backend/internal/shared/server/respond"
)

// RouterDeps holds the handlers mounted under /api/v1.
type RouterDeps struct {
	Config            config.Config
	ExerciseHandler   *exercises.Handler
	AssessmentHandler *assessments.Handler
	Health            *health.Service
}

const computeRateLimitGroup = "COMPUTE"

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		metrics.Middleware(),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		if deps.Health == nil {
			respond.OK(c, gin.H{"ok": true})
			return
		}
		status := deps.Health.Status(c.Request.Context())
		code := http.StatusOK
		if !status.OK {
			code = http.StatusServiceUnavailable
		}
		respond.JSON(c, code, status)
	})

	limited := api.Group("")
	limited.Use(middleware.RateLimit(rateLimitConfig(deps.Config)))
	if deps.ExerciseHandler != nil {
		deps.ExerciseHandler.RegisterRoutes(limited)
	}
	if deps.AssessmentHandler != nil {
		deps.AssessmentHandler.RegisterRoutes(limited)
	}

	return r
}

// Engine computations get the configured rate; reads get five times that.
func rateLimitConfig(cfg config.Config) middleware.RateLimitConfig {
	rps := cfg.RateLimitRPS
	burst := cfg.RateLimitBurst
	return middleware.RateLimitConfig{
		DefaultGroup: "DEFAULT",
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost {
				return computeRateLimitGroup
			}
			return "DEFAULT"
		},
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT":             {Rate: rps * 5, Burst: burst * 5},
			computeRateLimitGroup: {Rate: rps, Burst: burst},
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
