package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RolePlayer  Role = "PLAYER"
	RoleStaff   Role = "STAFF"
	RoleTrainer Role = "TRAINER"
	RoleAdmin   Role = "ADMIN"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RolePlayer, RoleStaff, RoleTrainer, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}
