package state

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/BruksfildServices01/barberflow/internal/domain/schedule"
	"github.com/BruksfildServices01/barberflow/internal/httperr"
	"github.com/BruksfildServices01/barberflow/internal/models"
	"github.com/BruksfildServices01/barberflow/internal/store"
)

// Store keys. The collection shapes behind them are the contract with the
// persistence collaborator.
const (
	KeySession      = "active-session-user"
	KeyBarbers      = "barber-registry"
	KeyServices     = "service-catalog"
	KeyAppointments = "appointment-log"
	KeyHours        = "business-hours"
)

// AppState owns every domain collection plus the active identity. All
// mutations run under one mutex, preserving a single-writer model, and are
// mirrored to the store before they are acknowledged.
type AppState struct {
	mu sync.Mutex
	st store.Store

	current      *models.User
	barbers      []models.User
	services     []models.Service
	appointments []models.Appointment
	hours        []models.BusinessHours
}

func New(st store.Store) *AppState {
	return &AppState{st: st}
}

// Load hydrates every collection from the store, seeding catalog and hours
// on first run. Called once at startup before any request is served.
func (s *AppState) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(ctx, KeySession, &s.current); err != nil {
		return err
	}
	if err := s.load(ctx, KeyBarbers, &s.barbers); err != nil {
		return err
	}
	if err := s.load(ctx, KeyAppointments, &s.appointments); err != nil {
		return err
	}

	if err := s.load(ctx, KeyServices, &s.services); err != nil {
		return err
	}
	if len(s.services) == 0 {
		s.services = models.DefaultServices()
	}

	if err := s.load(ctx, KeyHours, &s.hours); err != nil {
		return err
	}
	s.hours = normalizeHours(s.hours)

	return s.save(ctx)
}

func (s *AppState) load(ctx context.Context, key string, dest any) error {
	if err := s.st.Get(ctx, key, dest); err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	return nil
}

// save mirrors the full state. Small data volumes make the blanket write
// cheaper than tracking dirty collections.
func (s *AppState) save(ctx context.Context) error {
	pairs := []struct {
		key string
		val any
	}{
		{KeySession, s.current},
		{KeyBarbers, s.barbers},
		{KeyServices, s.services},
		{KeyAppointments, s.appointments},
		{KeyHours, s.hours},
	}

	for _, p := range pairs {
		if err := s.st.Set(ctx, p.key, p.val); err != nil {
			return err
		}
	}
	return nil
}

// normalizeHours guarantees exactly one row per day index 0..6, filling any
// gap from the defaults.
func normalizeHours(hours []models.BusinessHours) []models.BusinessHours {
	out := models.DefaultBusinessHours()
	for _, h := range hours {
		if h.Day >= 0 && h.Day <= 6 {
			out[h.Day] = h
		}
	}
	return out
}

// --------------------------------------------------
// Identity
// --------------------------------------------------

func (s *AppState) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// SetCurrentUser replaces the active-session slot; nil clears it.
func (s *AppState) SetCurrentUser(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = u
	return s.save(ctx)
}

func (s *AppState) Barbers() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.User(nil), s.barbers...)
}

func (s *AppState) FindBarberByPhone(phone string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.barbers {
		if b.Phone == phone {
			return b, true
		}
	}
	return models.User{}, false
}

// AddBarber appends to the registry and promotes the account to the active
// session in the same write.
func (s *AppState) AddBarber(ctx context.Context, u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.barbers = append(s.barbers, u)
	s.current = &u
	return s.save(ctx)
}

// --------------------------------------------------
// Service catalog
// --------------------------------------------------

func (s *AppState) Services() []models.Service {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Service(nil), s.services...)
}

func (s *AppState) GetService(id string) (models.Service, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, svc := range s.services {
		if svc.ID == id {
			return svc, true
		}
	}
	return models.Service{}, false
}

func (s *AppState) AddService(ctx context.Context, svc models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.services = append(s.services, svc)
	return s.save(ctx)
}

func (s *AppState) UpdateService(ctx context.Context, svc models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.services {
		if s.services[i].ID == svc.ID {
			s.services[i] = svc
			return s.save(ctx)
		}
	}
	return httperr.ErrBusiness("service_not_found")
}

// DeleteService removes unconditionally. Appointments referencing the id are
// left alone and dangle.
func (s *AppState) DeleteService(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.services[:0]
	for _, svc := range s.services {
		if svc.ID != id {
			kept = append(kept, svc)
		}
	}
	s.services = kept
	return s.save(ctx)
}

// --------------------------------------------------
// Business hours
// --------------------------------------------------

func (s *AppState) Hours() []models.BusinessHours {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.BusinessHours(nil), s.hours...)
}

// UpdateDay applies an in-place edit to the row matching day. Rows are never
// inserted or removed here.
func (s *AppState) UpdateDay(ctx context.Context, day int, apply func(*models.BusinessHours)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.hours {
		if s.hours[i].Day == day {
			apply(&s.hours[i])
			return s.save(ctx)
		}
	}
	return httperr.ErrBusiness("day_not_found")
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (s *AppState) Appointments() []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Appointment(nil), s.appointments...)
}

func (s *AppState) GetAppointment(id string) (models.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ap := range s.appointments {
		if ap.ID == id {
			return ap, true
		}
	}
	return models.Appointment{}, false
}

func (s *AppState) AppointmentsForDate(date string) []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Appointment
	for _, ap := range s.appointments {
		if ap.Date == date {
			out = append(out, ap)
		}
	}
	sortByStart(out)
	return out
}

func (s *AppState) AppointmentsForClient(clientID string) []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Appointment
	for _, ap := range s.appointments {
		if ap.ClientID == clientID {
			out = append(out, ap)
		}
	}
	sortByStart(out)
	return out
}

func (s *AppState) AddAppointment(ctx context.Context, ap models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appointments = append(s.appointments, ap)
	return s.save(ctx)
}

func (s *AppState) UpdateAppointment(ctx context.Context, ap models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appointments {
		if s.appointments[i].ID == ap.ID {
			s.appointments[i] = ap
			return s.save(ctx)
		}
	}
	return httperr.ErrBusiness("appointment_not_found")
}

// Compile-time check
var _ schedule.Repository = (*AppState)(nil)

// ISO date plus HH:MM compare lexicographically in chronological order.
func sortByStart(aps []models.Appointment) {
	sort.Slice(aps, func(i, j int) bool {
		if aps[i].Date != aps[j].Date {
			return aps[i].Date < aps[j].Date
		}
		return aps[i].Time < aps[j].Time
	})
}
