package booking

import (
	"context"

	"github.com/BruksfildServices01/barberflow/internal/audit"
	"github.com/BruksfildServices01/barberflow/internal/domain/schedule"
	"github.com/BruksfildServices01/barberflow/internal/httperr"
	"github.com/BruksfildServices01/barberflow/internal/models"
)

type CancelAppointment struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo schedule.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute marks the appointment CANCELLED. The record stays in the log for
// history; the availability engine frees its slot immediately.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	barberID string,
	appointmentID string,
) (*models.Appointment, error) {

	ap, ok := uc.repo.GetAppointment(appointmentID)
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := schedule.CanCancel(schedule.Status(ap.Status)); err != nil {
		return nil, err
	}
	ap.Status = string(schedule.StatusCancelled)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   barberID,
		ActorRole: models.RoleBarber,
		Action:    "appointment_cancelled",
		Entity:    "appointment",
		EntityID:  ap.ID,
	})

	return &ap, nil
}
