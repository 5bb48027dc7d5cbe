package request

type LoginRequest struct {
	Role string `json:"role" binding:"required"`
}
