package repository

import (
	"context"
	"errors"

	"arenaos/internal/domain/user"
	"arenaos/internal/infra"
	"arenaos/internal/infra/store"

	"github.com/google/uuid"
)

type UserRepository struct {
	store *store.Store
}

func NewUserRepository(s *store.Store) *UserRepository {
	return &UserRepository{store: s}
}

func (r *UserRepository) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	rec, err := r.store.Get(tableUsers, id.String())
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return recordToUser(rec)
}

// FindByRole returns the first seeded user with the given role, the
// demo login's selection rule.
func (r *UserRepository) FindByRole(_ context.Context, role user.Role) (*user.User, error) {
	recs, err := r.store.List(tableUsers, store.Filter{"role": role.String()})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	if len(recs) == 0 {
		return nil, infra.WrapRepoErr("no user with role", store.ErrRecordNotFound, infra.KindNotFound)
	}
	return recordToUser(recs[0])
}

func (r *UserRepository) Create(_ context.Context, u *user.User) error {
	if err := r.store.Insert(tableUsers, userToRecord(u)); err != nil {
		if errors.Is(err, store.ErrDuplicateID) {
			return infra.WrapRepoErr("user already exists", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func userToRecord(u *user.User) store.Record {
	return store.Record{
		"id":    u.ID().String(),
		"name":  u.Name(),
		"email": u.Email(),
		"role":  u.Role().String(),
	}
}

func recordToUser(rec store.Record) (*user.User, error) {
	id, err := uuid.Parse(asString(rec, "id"))
	if err != nil {
		return nil, infra.WrapRepoErr("malformed user id", err)
	}
	role, err := user.NewRole(asString(rec, "role"))
	if err != nil {
		return nil, infra.WrapRepoErr("malformed user role", err)
	}
	u, err := user.NewUser(id, asString(rec, "name"), asString(rec, "email"), role)
	if err != nil {
		return nil, infra.WrapRepoErr("malformed user record", err)
	}
	return u, nil
}
