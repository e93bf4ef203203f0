package models

import "github.com/google/uuid"

// DefaultServices is the catalog a fresh shop starts with.
func DefaultServices() []Service {
	return []Service{
		{ID: uuid.NewString(), Name: "Corte Social", Price: 40, DurationMinutes: 30},
		{ID: uuid.NewString(), Name: "Degradê / Fade", Price: 50, DurationMinutes: 45},
		{ID: uuid.NewString(), Name: "Barba Completa", Price: 30, DurationMinutes: 20},
		{ID: uuid.NewString(), Name: "Combo: Corte + Barba", Price: 70, DurationMinutes: 60},
		{ID: uuid.NewString(), Name: "Platinado / Nevou", Price: 120, DurationMinutes: 120},
	}
}

// DefaultBusinessHours closes Sunday and opens the rest of the week.
func DefaultBusinessHours() []BusinessHours {
	return []BusinessHours{
		{Day: 0, IsOpen: false, Start: "09:00", End: "18:00"},
		{Day: 1, IsOpen: true, Start: "09:00", End: "19:00"},
		{Day: 2, IsOpen: true, Start: "09:00", End: "19:00"},
		{Day: 3, IsOpen: true, Start: "09:00", End: "19:00"},
		{Day: 4, IsOpen: true, Start: "09:00", End: "19:00"},
		{Day: 5, IsOpen: true, Start: "09:00", End: "20:00"},
		{Day: 6, IsOpen: true, Start: "08:00", End: "18:00"},
	}
}
