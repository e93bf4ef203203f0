package models

// BusinessHours holds the opening window for one weekday (0 = Sunday).
// Exactly seven rows exist at all times, one per day index; edits are always
// in-place against the row matching Day. Start and End keep their values
// while the day is closed so re-opening restores them.
type BusinessHours struct {
	Day    int    `json:"day"`
	IsOpen bool   `json:"is_open"`
	Start  string `json:"start"` // HH:MM
	End    string `json:"end"`   // HH:MM
}
