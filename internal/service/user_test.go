package service_test

import (
	"testing"
	"time"

	"football-manager-backend/internal/auth"
	"football-manager-backend/internal/database/models"
	apperrors "football-manager-backend/internal/errors"
	"football-manager-backend/internal/mocks"
	"football-manager-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	authService  *auth.Service
	userService  *service.UserService
	validator    *validator.Validate
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.authService = auth.NewService("test-secret", 15*time.Minute, time.Hour)
	suite.validator = validator.New()

	suite.userService = service.NewUserService(suite.mockUserRepo, suite.authService, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserServiceTestSuite) testUser(password string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	suite.Require().NoError(err)
	return &models.User{
		ID:           1,
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         models.UserRoleAdmin,
	}
}

// TestAuthenticate tests a successful login
func (suite *UserServiceTestSuite) TestAuthenticate() {
	user := suite.testUser("secret123")

	suite.mockUserRepo.EXPECT().
		GetByUsername("admin").
		Return(user, nil).
		Times(1)
	suite.mockUserRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(u *models.User) error {
			assert.NotNil(suite.T(), u.LastLoginAt)
			return nil
		}).
		Times(1)

	response, err := suite.userService.Authenticate(&service.LoginRequest{
		Username: "admin",
		Password: "secret123",
	})

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), response.Token)
	assert.NotEmpty(suite.T(), response.RefreshToken)
	assert.Equal(suite.T(), int((15 * time.Minute).Seconds()), response.ExpiresIn)

	claims, err := suite.authService.ValidateToken(response.Token)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "admin", claims.Username)
	assert.Equal(suite.T(), "admin", claims.Role)
}

// TestAuthenticateWrongPassword tests a login with a wrong password
func (suite *UserServiceTestSuite) TestAuthenticateWrongPassword() {
	user := suite.testUser("secret123")

	suite.mockUserRepo.EXPECT().
		GetByUsername("admin").
		Return(user, nil).
		Times(1)

	response, err := suite.userService.Authenticate(&service.LoginRequest{
		Username: "admin",
		Password: "wrong",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
	assert.Nil(suite.T(), response)
}

// TestAuthenticateUnknownUser tests that a missing user maps to the same
// credentials error as a wrong password
func (suite *UserServiceTestSuite) TestAuthenticateUnknownUser() {
	suite.mockUserRepo.EXPECT().
		GetByUsername("ghost").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.userService.Authenticate(&service.LoginRequest{
		Username: "ghost",
		Password: "whatever",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
	assert.Nil(suite.T(), response)
}

// TestAuthenticateValidation tests that empty credentials fail validation
func (suite *UserServiceTestSuite) TestAuthenticateValidation() {
	response, err := suite.userService.Authenticate(&service.LoginRequest{})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestRefresh tests exchanging a token pair for a fresh one
func (suite *UserServiceTestSuite) TestRefresh() {
	user := suite.testUser("secret123")

	accessToken, refreshToken, err := suite.authService.GenerateTokens(user.Username, user.Role)
	suite.Require().NoError(err)

	suite.mockUserRepo.EXPECT().
		GetByUsername("admin").
		Return(user, nil).
		Times(1)

	response, err := suite.userService.Refresh(&service.RefreshRequest{
		ExpiredToken: accessToken,
		RefreshToken: refreshToken,
	})

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), response.Token)
	assert.NotEqual(suite.T(), refreshToken, response.RefreshToken)
}

// TestRefreshTokenSingleUse tests that a refresh token cannot be replayed
func (suite *UserServiceTestSuite) TestRefreshTokenSingleUse() {
	user := suite.testUser("secret123")

	accessToken, refreshToken, err := suite.authService.GenerateTokens(user.Username, user.Role)
	suite.Require().NoError(err)

	suite.mockUserRepo.EXPECT().
		GetByUsername("admin").
		Return(user, nil).
		Times(2)

	_, err = suite.userService.Refresh(&service.RefreshRequest{
		ExpiredToken: accessToken,
		RefreshToken: refreshToken,
	})
	suite.Require().NoError(err)

	response, err := suite.userService.Refresh(&service.RefreshRequest{
		ExpiredToken: accessToken,
		RefreshToken: refreshToken,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidToken)
	assert.Nil(suite.T(), response)
}

// TestRefreshGarbageToken tests that an unparseable access token is rejected
func (suite *UserServiceTestSuite) TestRefreshGarbageToken() {
	response, err := suite.userService.Refresh(&service.RefreshRequest{
		ExpiredToken: "not-a-jwt",
		RefreshToken: "whatever",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidToken)
	assert.Nil(suite.T(), response)
}

// TestUserServiceTestSuite runs the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
