package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/opygoal/nextride-api/internal/application/service"
	"github.com/opygoal/nextride-api/internal/presentation/http/dto/request"
	"github.com/opygoal/nextride-api/internal/presentation/http/dto/response"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates the admin and returns a session token
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	out, err := h.authService.Login(&service.LoginInput{Password: req.Password})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{"access_token": out.AccessToken})
}
