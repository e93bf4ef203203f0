package schedule

import (
	"context"

	"github.com/BruksfildServices01/barberflow/internal/models"
)

// Repository is what the booking workflows need from the application state.
// The in-memory controller implements it; tests may swap in anything else.
type Repository interface {
	// -------- Catalog --------
	Services() []models.Service
	GetService(id string) (models.Service, bool)

	// -------- Hours --------
	Hours() []models.BusinessHours

	// -------- Appointments --------
	Appointments() []models.Appointment
	GetAppointment(id string) (models.Appointment, bool)
	AppointmentsForDate(date string) []models.Appointment
	AppointmentsForClient(clientID string) []models.Appointment
	AddAppointment(ctx context.Context, ap models.Appointment) error
	UpdateAppointment(ctx context.Context, ap models.Appointment) error
}
