package booking

import (
	"context"

	"github.com/BruksfildServices01/barberflow/internal/domain/schedule"
)

type DayStats struct {
	Date      string  `json:"date"`
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Revenue   float64 `json:"revenue"`
}

type GetDayStats struct {
	repo schedule.Repository
}

func NewGetDayStats(repo schedule.Repository) *GetDayStats {
	return &GetDayStats{repo: repo}
}

// Execute aggregates the barber dashboard numbers for one day. Revenue
// counts completed appointments only; dangling service refs contribute zero.
func (uc *GetDayStats) Execute(ctx context.Context, date string) DayStats {
	stats := DayStats{Date: date}
	services := uc.repo.Services()

	for _, ap := range uc.repo.AppointmentsForDate(date) {
		stats.Total++
		if schedule.Status(ap.Status) != schedule.StatusCompleted {
			continue
		}
		stats.Completed++
		for _, svc := range services {
			if svc.ID == ap.ServiceID {
				stats.Revenue += svc.Price
				break
			}
		}
	}
	return stats
}
