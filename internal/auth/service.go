package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"time"

	"football-manager-backend/internal/database/models"
	apperrors "football-manager-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims represents JWT access token claims
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// RefreshTokenData stores information about an issued refresh token
type RefreshTokenData struct {
	Username  string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Service issues and validates access tokens and keeps the refresh token
// store. Refresh tokens are opaque random values held in memory; a restart
// invalidates them, which only forces a re-login.
type Service struct {
	secret        []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	refreshTokens map[string]*RefreshTokenData
	tokenMutex    sync.RWMutex
}

// NewService creates a new auth service
func NewService(secret string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		secret:        []byte(secret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		refreshTokens: make(map[string]*RefreshTokenData),
	}
}

// AccessTokenTTL returns the access token lifetime
func (s *Service) AccessTokenTTL() time.Duration {
	return s.accessTTL
}

// GenerateTokens issues an access/refresh token pair for the user
func (s *Service) GenerateTokens(username string, role models.UserRole) (string, string, error) {
	now := time.Now()
	claims := &Claims{
		Username: username,
		Role:     string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, err := generateRefreshToken()
	if err != nil {
		return "", "", err
	}

	s.tokenMutex.Lock()
	s.refreshTokens[refreshToken] = &RefreshTokenData{
		Username:  username,
		ExpiresAt: now.Add(s.refreshTTL),
		CreatedAt: now,
	}
	s.tokenMutex.Unlock()

	return accessToken, refreshToken, nil
}

// ValidateToken parses and verifies an access token
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	return s.parseToken(tokenString, false)
}

// ValidateExpiredToken parses and verifies an access token while accepting an
// elapsed expiry. Used by the refresh flow to recover the token's subject.
func (s *Service) ValidateExpiredToken(tokenString string) (*Claims, error) {
	return s.parseToken(tokenString, true)
}

func (s *Service) parseToken(tokenString string, allowExpired bool) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if allowExpired && errors.Is(err, jwt.ErrTokenExpired) {
			return claims, nil
		}
		return nil, apperrors.ErrInvalidToken
	}
	if !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

// ConsumeRefreshToken validates a refresh token for the given user and
// removes it from the store (single use)
func (s *Service) ConsumeRefreshToken(username, refreshToken string) error {
	s.tokenMutex.Lock()
	defer s.tokenMutex.Unlock()

	data, ok := s.refreshTokens[refreshToken]
	if !ok || data.Username != username || time.Now().After(data.ExpiresAt) {
		return apperrors.ErrInvalidToken
	}

	delete(s.refreshTokens, refreshToken)
	return nil
}

func generateRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}
