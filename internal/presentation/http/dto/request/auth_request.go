package request

// LoginRequest represents an admin login request
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}
