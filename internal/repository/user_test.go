package repository_test

import (
	"testing"
	"time"

	"football-manager-backend/internal/repository"
	"football-manager-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite runs user repository tests against the shared
// Postgres container
type UserRepositoryTestSuite struct {
	*testutils.BaseTestSuite
	repo        *repository.UserRepository
	userFactory *testutils.UserFactory
}

// SetupTest sets up each test
func (s *UserRepositoryTestSuite) SetupTest() {
	s.CleanTestDB()
	s.repo = repository.NewUserRepository(s.DB)
	s.userFactory = testutils.NewUserFactory()
}

// TestCreateAndGetByUsername tests the login lookup path
func (s *UserRepositoryTestSuite) TestCreateAndGetByUsername() {
	user := s.userFactory.WithUsername("scout")
	s.Require().NoError(s.repo.Create(user))

	found, err := s.repo.GetByUsername("scout")
	s.Require().NoError(err)
	s.Equal(user.ID, found.ID)
	s.Equal(user.PasswordHash, found.PasswordHash)
}

// TestGetByUsernameNotFound tests the lookup of an unknown user
func (s *UserRepositoryTestSuite) TestGetByUsernameNotFound() {
	_, err := s.repo.GetByUsername("nobody")
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUpdateLastLogin tests persisting the login timestamp
func (s *UserRepositoryTestSuite) TestUpdateLastLogin() {
	user := s.userFactory.Create()
	s.Require().NoError(s.repo.Create(user))

	now := time.Now().UTC().Truncate(time.Second)
	user.LastLoginAt = &now
	s.Require().NoError(s.repo.Update(user))

	found, err := s.repo.GetByID(user.ID)
	s.Require().NoError(err)
	s.Require().NotNil(found.LastLoginAt)
	s.WithinDuration(now, *found.LastLoginAt, time.Second)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, &UserRepositoryTestSuite{BaseTestSuite: testutils.SetupTestSuite(t)})
}
