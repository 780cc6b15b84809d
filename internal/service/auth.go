package service

import (
	"errors"
	"fmt"
	"time"

	"company-portal-backend/internal/auth"
	"company-portal-backend/internal/database/models"
	apperrors "company-portal-backend/internal/errors"
	"company-portal-backend/internal/repository"
	"company-portal-backend/internal/validation"

	"gorm.io/gorm"
)

// AuthService handles credential authentication and session tokens
type AuthService struct {
	users     *repository.UserRepository
	tokens    *auth.Service
	validator *validation.Validator
}

// NewAuthService creates a new auth service
func NewAuthService(users *repository.UserRepository, tokens *auth.Service, validator *validation.Validator) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		validator: validator,
	}
}

// LoginRequest represents the login credentials
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// LoginResult represents a successful login: the user plus a fresh token
type LoginResult struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// Login validates the credentials and issues a new bearer token. Bad input
// is a ValidationError; a credential mismatch is an AuthenticationError.
func (s *AuthService) Login(req *LoginRequest) (*LoginResult, error) {
	if report := s.validator.Check(req); report.Any() {
		return nil, &apperrors.ValidationError{Fields: report}
	}

	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.CheckPassword(req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.IssueToken(user, "auth-token")
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResult{
		User:  toUserResponse(user),
		Token: token,
	}, nil
}

// Logout revokes the token used for the current request only
func (s *AuthService) Logout(tokenID uint) error {
	if err := s.tokens.RevokeToken(tokenID); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}
}
