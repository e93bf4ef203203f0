package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberflow/internal/audit"
	"github.com/BruksfildServices01/barberflow/internal/middleware"
	"github.com/BruksfildServices01/barberflow/internal/models"
	"github.com/BruksfildServices01/barberflow/internal/state"
)

type HoursHandler struct {
	state *state.AppState
	audit *audit.Dispatcher
}

func NewHoursHandler(st *state.AppState, ad *audit.Dispatcher) *HoursHandler {
	return &HoursHandler{state: st, audit: ad}
}

// UpdateDayRequest edits one weekday row in place. Absent fields are left
// untouched, so toggling is_open keeps the stored start/end for re-opening.
type UpdateDayRequest struct {
	IsOpen *bool   `json:"is_open,omitempty"`
	Start  *string `json:"start,omitempty"`
	End    *string `json:"end,omitempty"`
}

func (h *HoursHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.state.Hours())
}

func (h *HoursHandler) UpdateDay(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 0 || day > 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_day"})
		return
	}

	var req UpdateDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	err = h.state.UpdateDay(c.Request.Context(), day, func(row *models.BusinessHours) {
		if req.IsOpen != nil {
			row.IsOpen = *req.IsOpen
		}
		if req.Start != nil {
			row.Start = *req.Start
		}
		if req.End != nil {
			row.End = *req.End
		}
	})
	if err != nil {
		writeError(c, err)
		return
	}

	actorID, _ := c.Get(middleware.ContextUserID)
	id, _ := actorID.(string)
	h.audit.Dispatch(audit.Event{
		ActorID:   id,
		ActorRole: models.RoleBarber,
		Action:    "hours_updated",
		Entity:    "business_hours",
		EntityID:  strconv.Itoa(day),
	})

	c.JSON(http.StatusOK, h.state.Hours())
}
