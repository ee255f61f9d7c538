package service

import (
	"errors"
	"fmt"
	"time"

	"football-manager-backend/internal/auth"
	"football-manager-backend/internal/database/models"
	apperrors "football-manager-backend/internal/errors"
	"football-manager-backend/internal/logger"
	"football-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles authentication against the users table
type UserService struct {
	userRepo    repository.UserRepositoryInterface
	authService *auth.Service
	validator   *validator.Validate
	log         *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepositoryInterface, authService *auth.Service, validator *validator.Validate) *UserService {
	return &UserService{
		userRepo:    userRepo,
		authService: authService,
		validator:   validator,
		log:         logger.New().WithField("service", "user"),
	}
}

// LoginRequest represents the login request
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest represents the token refresh request
type RefreshRequest struct {
	ExpiredToken string `json:"expired_token" validate:"required"`
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthResponse represents the response for authentication operations
type AuthResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// Authenticate verifies credentials and issues a token pair
func (s *UserService) Authenticate(req *LoginRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.issueTokens(user.Username, user.Role)
}

// Refresh exchanges an expired access token plus a valid refresh token for a
// new token pair. Refresh tokens are single use.
func (s *UserService) Refresh(req *RefreshRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	claims, err := s.authService.ValidateExpiredToken(req.ExpiredToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(claims.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.authService.ConsumeRefreshToken(user.Username, req.RefreshToken); err != nil {
		return nil, err
	}

	return s.issueTokens(user.Username, user.Role)
}

func (s *UserService) issueTokens(username string, role models.UserRole) (*AuthResponse, error) {
	accessToken, refreshToken, err := s.authService.GenerateTokens(username, role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	return &AuthResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.authService.AccessTokenTTL().Seconds()),
	}, nil
}
