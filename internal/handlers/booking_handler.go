package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberflow/internal/dto"
	"github.com/BruksfildServices01/barberflow/internal/httpresp"
	"github.com/BruksfildServices01/barberflow/internal/middleware"
	"github.com/BruksfildServices01/barberflow/internal/state"
	"github.com/BruksfildServices01/barberflow/internal/usecase/booking"
)

// BookingHandler is the client side: browse the catalog, check free slots,
// book, and review own appointments.
type BookingHandler struct {
	state          *state.AppState
	createUC       *booking.CreateAppointment
	availabilityUC *booking.GetAvailability
}

func NewBookingHandler(
	st *state.AppState,
	createUC *booking.CreateAppointment,
	availabilityUC *booking.GetAvailability,
) *BookingHandler {
	return &BookingHandler{
		state:          st,
		createUC:       createUC,
		availabilityUC: availabilityUC,
	}
}

// --------- Requests ---------

type CreateBookingRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:MM
}

// --------- Public ---------

func (h *BookingHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, h.state.Services())
}

func (h *BookingHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_date"})
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), date)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, slots)
}

// --------- Client ---------

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	name, _ := c.Get(middleware.ContextUserName)
	phone, _ := c.Get(middleware.ContextUserPhone)
	clientName, _ := name.(string)
	clientPhone, _ := phone.(string)

	ap, err := h.createUC.Execute(c.Request.Context(), booking.CreateAppointmentInput{
		ClientID:    actorID(c),
		ClientName:  clientName,
		ClientPhone: clientPhone,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Time:        req.Time,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	views := dto.NewAppointmentViews(
		h.state.AppointmentsForClient(actorID(c)),
		h.state.Services(),
	)
	httpresp.List(c, views)
}
