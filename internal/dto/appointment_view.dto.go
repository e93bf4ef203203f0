package dto

import "github.com/BruksfildServices01/barberflow/internal/models"

// ServiceUnavailable labels appointments whose service was deleted from the
// catalog after booking.
const ServiceUnavailable = "Serviço indisponível"

type AppointmentView struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Status      string  `json:"status"`
	ClientName  string  `json:"client_name"`
	ClientPhone string  `json:"client_phone"`
	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Price       float64 `json:"price"`
}

// NewAppointmentView resolves the service reference, falling back to a
// placeholder when it dangles.
func NewAppointmentView(ap models.Appointment, services []models.Service) AppointmentView {
	view := AppointmentView{
		ID:          ap.ID,
		Date:        ap.Date,
		Time:        ap.Time,
		Status:      ap.Status,
		ClientName:  ap.ClientName,
		ClientPhone: ap.ClientPhone,
		ServiceID:   ap.ServiceID,
		ServiceName: ServiceUnavailable,
	}

	for _, svc := range services {
		if svc.ID == ap.ServiceID {
			view.ServiceName = svc.Name
			view.Price = svc.Price
			break
		}
	}
	return view
}

func NewAppointmentViews(aps []models.Appointment, services []models.Service) []AppointmentView {
	views := make([]AppointmentView, 0, len(aps))
	for _, ap := range aps {
		views = append(views, NewAppointmentView(ap, services))
	}
	return views
}
