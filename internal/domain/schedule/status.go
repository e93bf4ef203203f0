package schedule

import "github.com/BruksfildServices01/barberflow/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// ===============================
// Validations
// ===============================

// CanComplete allows completing only a pending appointment.
func CanComplete(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel allows cancelling only a pending appointment. COMPLETED and
// CANCELLED are terminal.
func CanCancel(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
