package api

import (
	"errors"
	"net/http"

	"arenaos/internal/domain/user"
	reqdto "arenaos/internal/handler/dto/request"
	resdto "arenaos/internal/handler/dto/response"
	"arenaos/internal/handler/httperr"
	"arenaos/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
}

func NewAuthHandler(authCommands commands.AuthCommands) *AuthHandler {
	return &AuthHandler{authCommands: authCommands}
}

// @Summary Demo login
// @Description Log in as the seeded account for a role
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Role to log in as"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	role, err := user.NewRole(req.Role)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown role", nil)
		return
	}

	result, err := h.authCommands.LoginAs(c.Request.Context(), role)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No account seeded for this role", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}
