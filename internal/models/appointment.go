package models

// Appointment denormalizes the client's name and phone at booking time;
// later edits to the client identity do not flow back into it. ServiceID may
// dangle after a catalog delete, views render a fallback label for it.
type Appointment struct {
	ID          string `json:"id"`
	ClientID    string `json:"client_id"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	ServiceID   string `json:"service_id"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:MM
	Status      string `json:"status"`
}
