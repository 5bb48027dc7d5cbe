package commands

import (
	"context"

	"arenaos/internal/domain/user"
	"arenaos/internal/infra"
	"arenaos/internal/pkg/errs"
	"arenaos/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.New("user not found")

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByRole(ctx context.Context, role user.Role) (*user.User, error)
}

type LoginResult struct {
	Token  string    `json:"token"`
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
}

type AuthCommands interface {
	LoginAs(ctx context.Context, role user.Role) (*LoginResult, error)
}

type authCommandsImpl struct {
	users  UserRepository
	tokens *jwt.Service
}

func NewAuthCommands(users UserRepository, tokens *jwt.Service) AuthCommands {
	return &authCommandsImpl{users: users, tokens: tokens}
}

// TokenValidator is the middleware-facing slice of the token service.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	tokens *jwt.Service
}

func NewTokenValidator(tokens *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{tokens: tokens}
}

func (v *tokenValidatorImpl) ValidateToken(token string) (uuid.UUID, user.Role, error) {
	claims, err := v.tokens.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", err
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}
	return claims.UserID, role, nil
}

// LoginAs issues a token for the seeded account of the given role. This
// is the demo's role-picker login; there is no credential check.
func (a *authCommandsImpl) LoginAs(ctx context.Context, role user.Role) (*LoginResult, error) {
	u, err := a.users.FindByRole(ctx, role)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrPersistenceFailed)
	}

	token, err := a.tokens.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &LoginResult{
		Token:  token,
		UserID: u.ID(),
		Name:   u.Name(),
		Email:  u.Email(),
		Role:   u.Role().String(),
	}, nil
}
