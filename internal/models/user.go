package models

const (
	RoleClient = "client"
	RoleBarber = "barber"
)

// User is whoever is in front of the app: an ephemeral client minted on
// every client login, or a registered barber account. Password is set only
// for barber accounts.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Password string `json:"password,omitempty"`
}

func (u *User) IsBarber() bool {
	return u != nil && u.Role == RoleBarber
}
