package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberflow/internal/httpresp"
	"github.com/BruksfildServices01/barberflow/internal/middleware"
	"github.com/BruksfildServices01/barberflow/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

// AppointmentHandler is the barber side of the appointment log: day view,
// status transitions and the dashboard numbers.
type AppointmentHandler struct {
	listDayUC  *booking.ListDayAppointments
	completeUC *booking.CompleteAppointment
	cancelUC   *booking.CancelAppointment
	statsUC    *booking.GetDayStats
}

func NewAppointmentHandler(
	listDayUC *booking.ListDayAppointments,
	completeUC *booking.CompleteAppointment,
	cancelUC *booking.CancelAppointment,
	statsUC *booking.GetDayStats,
) *AppointmentHandler {
	return &AppointmentHandler{
		listDayUC:  listDayUC,
		completeUC: completeUC,
		cancelUC:   cancelUC,
		statsUC:    statsUC,
	}
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))

	views := h.listDayUC.Execute(c.Request.Context(), date)
	httpresp.List(c, views)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	ap, err := h.completeUC.Execute(
		c.Request.Context(),
		actorID(c),
		c.Param("id"),
	)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ap, err := h.cancelUC.Execute(
		c.Request.Context(),
		actorID(c),
		c.Param("id"),
	)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Stats(c *gin.Context) {
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	httpresp.OK(c, h.statsUC.Execute(c.Request.Context(), date))
}

func actorID(c *gin.Context) string {
	v, _ := c.Get(middleware.ContextUserID)
	id, _ := v.(string)
	return id
}
