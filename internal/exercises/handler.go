package exercises

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"oaknee-backend/internal/shared/server/respond"
	"oaknee-backend/internal/shared/storage/object"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/exercises", h.list)
	rg.GET("/exercises/:id", h.get)
	rg.POST("/exercises/import", h.importCatalog)
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Svc.Catalog(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list exercises", nil)
		return
	}
	respond.List(c, list)
}

func (h *Handler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "id must be an integer", nil)
		return
	}
	ex, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "exercise not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch exercise", nil)
		}
		return
	}
	respond.OK(c, ex)
}

type importRequest struct {
	Key string `json:"key"`
}

func (h *Handler) importCatalog(c *gin.Context) {
	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	count, err := h.Svc.ImportFromStore(c.Request.Context(), req.Key)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidExercise):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, object.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "catalog object not found", nil)
		case errors.Is(err, ErrNoStore):
			respond.Error(c, http.StatusServiceUnavailable, "store_unavailable", "object store not configured", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to import catalog", nil)
		}
		return
	}
	respond.OK(c, gin.H{"imported": count})
}
