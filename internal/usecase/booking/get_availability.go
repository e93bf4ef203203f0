package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barberflow/internal/domain/schedule"
	"github.com/BruksfildServices01/barberflow/internal/httperr"
)

type GetAvailability struct {
	repo schedule.Repository
}

func NewGetAvailability(repo schedule.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute returns the offerable slots for date. Closed days come back as an
// empty set, not an error.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
) ([]string, error) {

	if _, err := time.ParseInLocation("2006-01-02", date, time.Local); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	slots := schedule.Slots(date, uc.repo.Hours(), uc.repo.Appointments())
	if slots == nil {
		slots = []string{}
	}
	return slots, nil
}
