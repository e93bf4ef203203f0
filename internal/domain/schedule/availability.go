package schedule

import (
	"time"

	"github.com/BruksfildServices01/barberflow/internal/models"
)

// SlotInterval is the fixed grid the shop books on.
const SlotInterval = 30 * time.Minute

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Slots derives the offerable start times for date ("YYYY-MM-DD") from the
// weekly hours and the existing appointments, ascending.
//
// The grid is anchored at the day's start time, not at absolute clock hours,
// and stops strictly before the closing time. A slot is skipped while any
// non-cancelled appointment occupies the same (date, time) pair.
func Slots(date string, hours []models.BusinessHours, appointments []models.Appointment) []string {
	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return nil
	}

	cfg, ok := hoursFor(hours, int(day.Weekday()))
	if !ok || !cfg.IsOpen {
		return nil
	}

	start, err := atTime(day, cfg.Start)
	if err != nil {
		return nil
	}
	end, err := atTime(day, cfg.End)
	if err != nil {
		return nil
	}

	var slots []string
	for cur := start; cur.Before(end); cur = cur.Add(SlotInterval) {
		hm := cur.Format(timeLayout)
		if !HasConflict(appointments, date, hm) {
			slots = append(slots, hm)
		}
	}
	return slots
}

// IsBookable reports whether hm is currently a member of the offered slot set
// for date.
func IsBookable(date, hm string, hours []models.BusinessHours, appointments []models.Appointment) bool {
	for _, s := range Slots(date, hours, appointments) {
		if s == hm {
			return true
		}
	}
	return false
}

func hoursFor(hours []models.BusinessHours, weekday int) (models.BusinessHours, bool) {
	for _, h := range hours {
		if h.Day == weekday {
			return h, true
		}
	}
	return models.BusinessHours{}, false
}

// HasConflict reports whether a non-cancelled appointment already occupies
// (date, hm). Cancelled records stay in the log but never block a slot.
func HasConflict(appointments []models.Appointment, date, hm string) bool {
	for _, ap := range appointments {
		if ap.Date == date && ap.Time == hm && Status(ap.Status) != StatusCancelled {
			return true
		}
	}
	return false
}

func atTime(day time.Time, hm string) (time.Time, error) {
	t, err := time.Parse(timeLayout, hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		day.Location(),
	), nil
}
