package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barberflow/internal/audit"
	"github.com/BruksfildServices01/barberflow/internal/middleware"
	"github.com/BruksfildServices01/barberflow/internal/models"
	"github.com/BruksfildServices01/barberflow/internal/state"
)

type ServiceHandler struct {
	state *state.AppState
	audit *audit.Dispatcher
}

func NewServiceHandler(st *state.AppState, ad *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{state: st, audit: ad}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Price           float64 `json:"price" binding:"min=0"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,min=1"`
}

type UpdateServiceRequest struct {
	Name            *string  `json:"name,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	DurationMinutes *int     `json:"duration_minutes,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.state.Services())
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	svc := models.Service{
		ID:              uuid.NewString(),
		Name:            name,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
	}

	if err := h.state.AddService(c.Request.Context(), svc); err != nil {
		writeError(c, err)
		return
	}

	h.dispatch(c, "service_created", svc.ID)
	c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	svc, ok := h.state.GetService(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
			return
		}
		svc.Name = name
	}
	if req.Price != nil {
		if *req.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
			return
		}
		svc.Price = *req.Price
	}
	if req.DurationMinutes != nil {
		if *req.DurationMinutes < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
			return
		}
		svc.DurationMinutes = *req.DurationMinutes
	}

	if err := h.state.UpdateService(c.Request.Context(), svc); err != nil {
		writeError(c, err)
		return
	}

	h.dispatch(c, "service_updated", svc.ID)
	c.JSON(http.StatusOK, svc)
}

// Delete removes the service unconditionally. Appointments already booked
// against it keep their reference and render a fallback label.
func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.state.DeleteService(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	h.dispatch(c, "service_deleted", id)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *ServiceHandler) dispatch(c *gin.Context, action, entityID string) {
	actorID, _ := c.Get(middleware.ContextUserID)
	id, _ := actorID.(string)

	h.audit.Dispatch(audit.Event{
		ActorID:   id,
		ActorRole: models.RoleBarber,
		Action:    action,
		Entity:    "service",
		EntityID:  entityID,
	})
}
