package identity

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barberflow/internal/httperr"
	"github.com/BruksfildServices01/barberflow/internal/models"
	"github.com/BruksfildServices01/barberflow/internal/state"
	"github.com/BruksfildServices01/barberflow/internal/validators"
)

// Manager owns the session rules: who may become the active identity and
// how. Credentials are compared in plaintext against the barber registry;
// hardening the auth model is an explicit non-goal of this product.
type Manager struct {
	state *state.AppState
}

func New(st *state.AppState) *Manager {
	return &Manager{state: st}
}

// RegisterBarber creates a barber account and logs it in. One account per
// phone number.
func (m *Manager) RegisterBarber(ctx context.Context, name, phone, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	phone = validators.NormalizePhone(phone)

	if name == "" || phone == "" || password == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}
	if !validators.IsPhoneValid(phone) {
		return nil, httperr.ErrBusiness("invalid_phone")
	}
	if _, exists := m.state.FindBarberByPhone(phone); exists {
		return nil, httperr.ErrBusiness("phone_already_registered")
	}

	barber := models.User{
		ID:       uuid.NewString(),
		Name:     name,
		Phone:    phone,
		Password: password,
		Role:     models.RoleBarber,
	}

	if err := m.state.AddBarber(ctx, barber); err != nil {
		return nil, err
	}
	return &barber, nil
}

// LoginBarber scans the registry for an exact (phone, password) pair.
func (m *Manager) LoginBarber(ctx context.Context, phone, password string) (*models.User, error) {
	phone = validators.NormalizePhone(phone)

	for _, b := range m.state.Barbers() {
		if b.Phone == phone && b.Password == password {
			barber := b
			if err := m.state.SetCurrentUser(ctx, &barber); err != nil {
				return nil, err
			}
			return &barber, nil
		}
	}
	return nil, httperr.ErrBusiness("invalid_credentials")
}

// LoginClient mints a fresh ephemeral client identity on every submission.
// Two logins with the same phone are unrelated identities: appointment
// history is scoped to the generated id, not the number.
func (m *Manager) LoginClient(ctx context.Context, name, phone string) (*models.User, error) {
	name = strings.TrimSpace(name)
	phone = validators.NormalizePhone(phone)

	if name == "" || phone == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	client := models.User{
		ID:    uuid.NewString(),
		Name:  name,
		Phone: phone,
		Role:  models.RoleClient,
	}

	if err := m.state.SetCurrentUser(ctx, &client); err != nil {
		return nil, err
	}
	return &client, nil
}

// Logout clears the active identity only; the registry and the domain
// collections stay.
func (m *Manager) Logout(ctx context.Context) error {
	return m.state.SetCurrentUser(ctx, nil)
}

func (m *Manager) Current() *models.User {
	return m.state.CurrentUser()
}
