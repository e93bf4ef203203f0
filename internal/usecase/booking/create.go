package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barberflow/internal/audit"
	"github.com/BruksfildServices01/barberflow/internal/domain/schedule"
	"github.com/BruksfildServices01/barberflow/internal/httperr"
	"github.com/BruksfildServices01/barberflow/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID    string
	ClientName  string
	ClientPhone string

	ServiceID string

	Date string // YYYY-MM-DD
	Time string // HH:MM
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo schedule.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute books a pending appointment for the client. The requested time
// must be a member of the currently offered slot set; an unknown service id
// is accepted and left to dangle.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if in.ServiceID == "" || in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	if _, err := time.ParseInLocation("2006-01-02", in.Date, time.Local); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	hours := uc.repo.Hours()
	existing := uc.repo.Appointments()

	if !schedule.IsBookable(in.Date, in.Time, hours, existing) {
		if schedule.HasConflict(existing, in.Date, in.Time) {
			return nil, httperr.ErrBusiness("slot_taken")
		}
		return nil, httperr.ErrBusiness("outside_business_hours")
	}

	ap := models.Appointment{
		ID:          uuid.NewString(),
		ClientID:    in.ClientID,
		ClientName:  in.ClientName,
		ClientPhone: in.ClientPhone,
		ServiceID:   in.ServiceID,
		Date:        in.Date,
		Time:        in.Time,
		Status:      string(schedule.InitialStatus()),
	}

	if err := uc.repo.AddAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   in.ClientID,
		ActorRole: models.RoleClient,
		Action:    "appointment_created",
		Entity:    "appointment",
		EntityID:  ap.ID,
	})

	return &ap, nil
}
