package user

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("user name cannot be empty")
	ErrInvalidEmail = errors.New("invalid email address")
)

// User is the already-resolved identity handed to the core. The core
// never authenticates; it only needs an id and a role for ownership
// and capability checks.
type User struct {
	id    uuid.UUID
	name  string
	email string
	role  Role
}

func NewUser(id uuid.UUID, name, email string, role Role) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if _, err := NewRole(role.String()); err != nil {
		return nil, err
	}
	return &User{id: id, name: name, email: email, role: role}, nil
}

func (u *User) ID() uuid.UUID { return u.id }
func (u *User) Name() string  { return u.name }
func (u *User) Email() string { return u.email }
func (u *User) Role() Role    { return u.role }
