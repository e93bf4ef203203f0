package booking

import (
	"context"

	"github.com/BruksfildServices01/barberflow/internal/domain/schedule"
	"github.com/BruksfildServices01/barberflow/internal/dto"
)

type ListDayAppointments struct {
	repo schedule.Repository
}

func NewListDayAppointments(repo schedule.Repository) *ListDayAppointments {
	return &ListDayAppointments{repo: repo}
}

// Execute is the barber's day view: every appointment of date in start
// order, with the service reference resolved for display.
func (uc *ListDayAppointments) Execute(
	ctx context.Context,
	date string,
) []dto.AppointmentView {
	return dto.NewAppointmentViews(
		uc.repo.AppointmentsForDate(date),
		uc.repo.Services(),
	)
}
