package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"oaknee-backend/internal/shared/metrics"
	"oaknee-backend/internal/shared/server/respond"
	"oaknee-backend/internal/shared/telemetry"
)

// Recovery turns a handler panic into a 500 envelope, logging the stack with
// the patient and assessment the request was about.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			route := c.FullPath()
			if route == "" {
				route = "unmatched"
			}
			metrics.IncPanic(route)
			telemetry.Error("panic", map[string]any{
				"request_id":    RequestIDFromContext(c),
				"error":         rec,
				"stack":         string(debug.Stack()),
				"route":         route,
				"method":        c.Request.Method,
				"patient_id":    c.GetString("patientId"),
				"assessment_id": c.GetString("assessmentId"),
			})
			if c.Writer.Written() {
				c.Abort()
				return
			}
			respond.Error(c, http.StatusInternalServerError, "internal", "Unexpected server error", nil)
			c.Abort()
		}()
		c.Next()
	}
}
