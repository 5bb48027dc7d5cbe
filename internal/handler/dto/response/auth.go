package response

import (
	"arenaos/internal/usecase/commands"

	"github.com/google/uuid"
)

type LoginResponse struct {
	Token  string    `json:"token"`
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
}

func FromLoginResult(result *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token:  result.Token,
		UserID: result.UserID,
		Name:   result.Name,
		Email:  result.Email,
		Role:   result.Role,
	}
}
