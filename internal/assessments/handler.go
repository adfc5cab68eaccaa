package assessments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"oaknee-backend/internal/recommend"
	"oaknee-backend/internal/shared/server/respond"
	"oaknee-backend/internal/shared/validation"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches assessment routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/assessments", h.submit)
	rg.GET("/assessments/:id", h.get)
	rg.GET("/patients/:id/assessments", h.listByPatient)
	rg.POST("/recommendations/preview", h.preview)
}

func (h *Handler) submit(c *gin.Context) {
	var sub Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	c.Set("patientId", sub.PatientID)

	a, err := h.Svc.Submit(c.Request.Context(), sub)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set("assessmentId", a.ID)
	respond.Created(c, a)
}

func (h *Handler) preview(c *gin.Context) {
	var sub Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	result, err := h.Svc.Preview(c.Request.Context(), sub)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, result)
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	c.Set("assessmentId", id)

	a, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set("patientId", a.PatientID)
	respond.OK(c, a)
}

func (h *Handler) listByPatient(c *gin.Context) {
	patientID := c.Param("id")
	c.Set("patientId", patientID)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	items, err := h.Svc.ListByPatient(c.Request.Context(), patientID, limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.Page(c, items, limit, offset)
}

func writeError(c *gin.Context, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid assessment input", verr.Fields)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "assessment not found", nil)
	case errors.Is(err, recommend.ErrEmptyCatalog):
		respond.Error(c, http.StatusServiceUnavailable, "catalog_unavailable", "exercise catalog is empty", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process assessment", nil)
	}
}
