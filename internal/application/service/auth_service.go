package service

import (
	"github.com/opygoal/nextride-api/internal/config"
	"github.com/opygoal/nextride-api/pkg/apperror"
	"github.com/opygoal/nextride-api/pkg/utils"
)

// AuthService authenticates the deployment admin. There are no user accounts;
// a single admin password gates the company settings endpoint.
type AuthService struct {
	adminPassword string
	jwtManager    *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(cfg config.AuthConfig, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		adminPassword: cfg.AdminPassword,
		jwtManager:    jwtManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	AccessToken string
}

// Login checks the admin password and returns a session token. The configured
// password may be a bcrypt hash or, for development, plaintext.
func (s *AuthService) Login(input *LoginInput) (*LoginOutput, error) {
	ok := false
	if utils.IsBcryptHash(s.adminPassword) {
		ok = utils.CheckPasswordHash(input.Password, s.adminPassword)
	} else {
		ok = input.Password != "" && input.Password == s.adminPassword
	}
	if !ok {
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateAccessToken()
	if err != nil {
		return nil, err
	}

	return &LoginOutput{AccessToken: token}, nil
}
