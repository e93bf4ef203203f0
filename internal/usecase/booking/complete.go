package booking

import (
	"context"

	"github.com/BruksfildServices01/barberflow/internal/audit"
	"github.com/BruksfildServices01/barberflow/internal/domain/schedule"
	"github.com/BruksfildServices01/barberflow/internal/httperr"
	"github.com/BruksfildServices01/barberflow/internal/models"
)

type CompleteAppointment struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewCompleteAppointment(
	repo schedule.Repository,
	audit *audit.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	barberID string,
	appointmentID string,
) (*models.Appointment, error) {

	ap, ok := uc.repo.GetAppointment(appointmentID)
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := schedule.CanComplete(schedule.Status(ap.Status)); err != nil {
		return nil, err
	}
	ap.Status = string(schedule.StatusCompleted)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   barberID,
		ActorRole: models.RoleBarber,
		Action:    "appointment_completed",
		Entity:    "appointment",
		EntityID:  ap.ID,
	})

	return &ap, nil
}
