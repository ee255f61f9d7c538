package service_test

import (
	"testing"
	"time"

	"football-manager-backend/internal/database/models"
	apperrors "football-manager-backend/internal/errors"
	"football-manager-backend/internal/mocks"
	"football-manager-backend/internal/notifications"
	"football-manager-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// PlayerServiceTestSuite defines the test suite for PlayerService
type PlayerServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockPlayerRepo *mocks.MockPlayerRepositoryInterface
	mockClubRepo   *mocks.MockClubRepositoryInterface
	mockDispatcher *mocks.MockNotificationDispatcher
	playerService  *service.PlayerService
	validator      *validator.Validate
}

// SetupTest sets up the test suite
func (suite *PlayerServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPlayerRepo = mocks.NewMockPlayerRepositoryInterface(suite.ctrl)
	suite.mockClubRepo = mocks.NewMockClubRepositoryInterface(suite.ctrl)
	suite.mockDispatcher = mocks.NewMockNotificationDispatcher(suite.ctrl)
	suite.validator = validator.New()

	suite.playerService = service.NewPlayerService(suite.mockPlayerRepo, suite.mockClubRepo, suite.mockDispatcher, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *PlayerServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PlayerServiceTestSuite) freeAgent() *models.Player {
	return &models.Player{
		Employee: models.Employee{
			ID:          10,
			FirstName:   "Marco",
			LastName:    "Silva",
			Email:       "marco.silva@test.com",
			DateOfBirth: time.Date(1996, 4, 12, 0, 0, 0, 0, time.UTC),
			Salary:      decimal.NewFromInt(30_000),
			Version:     1,
		},
		Position: models.PositionForward,
	}
}

func (suite *PlayerServiceTestSuite) rosteredAgent(clubID uint) *models.Player {
	player := suite.freeAgent()
	player.ClubID = &clubID
	return player
}

func newTestClub(id uint, budget int64) *models.Club {
	club := models.NewClub("Test FC", decimal.NewFromInt(budget))
	club.ID = id
	return club
}

// TestCreatePlayer tests creating a free agent
func (suite *PlayerServiceTestSuite) TestCreatePlayer() {
	req := &service.CreatePlayerRequest{
		FirstName:   "Marco",
		LastName:    "Silva",
		Email:       "marco.silva@test.com",
		DateOfBirth: "1996-04-12",
		Position:    models.PositionForward,
		Salary:      decimal.NewFromInt(30_000),
	}

	suite.mockPlayerRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.playerService.CreatePlayer(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "Marco", response.FirstName)
	assert.Equal(suite.T(), "1996-04-12", response.DateOfBirth)
	assert.Nil(suite.T(), response.ClubID)
}

// TestCreatePlayerValidationError tests creating a player with missing fields
func (suite *PlayerServiceTestSuite) TestCreatePlayerValidationError() {
	req := &service.CreatePlayerRequest{
		FirstName: "Marco",
	}

	response, err := suite.playerService.CreatePlayer(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestCreatePlayerInvalidPosition tests creating a player with an unknown position
func (suite *PlayerServiceTestSuite) TestCreatePlayerInvalidPosition() {
	req := &service.CreatePlayerRequest{
		FirstName:   "Marco",
		LastName:    "Silva",
		Email:       "marco.silva@test.com",
		DateOfBirth: "1996-04-12",
		Position:    models.Position("striker"),
		Salary:      decimal.NewFromInt(30_000),
	}

	response, err := suite.playerService.CreatePlayer(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)

	var validationErr *apperrors.ValidationError
	assert.ErrorAs(suite.T(), err, &validationErr)
}

// TestCreatePlayerBadDate tests creating a player with a malformed date of birth
func (suite *PlayerServiceTestSuite) TestCreatePlayerBadDate() {
	req := &service.CreatePlayerRequest{
		FirstName:   "Marco",
		LastName:    "Silva",
		Email:       "marco.silva@test.com",
		DateOfBirth: "12/04/1996",
		Position:    models.PositionForward,
		Salary:      decimal.NewFromInt(30_000),
	}

	response, err := suite.playerService.CreatePlayer(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
}

// TestGetPlayerByIDNotFound tests retrieving a missing player
func (suite *PlayerServiceTestSuite) TestGetPlayerByIDNotFound() {
	suite.mockPlayerRepo.EXPECT().
		GetByID(uint(99)).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.playerService.GetPlayerByID(99)

	assert.ErrorIs(suite.T(), err, apperrors.ErrPlayerNotFound)
	assert.Nil(suite.T(), response)
}

// TestTransferFreeAgent tests signing an unattached player to a club
func (suite *PlayerServiceTestSuite) TestTransferFreeAgent() {
	club := newTestClub(1, 100_000)

	suite.mockPlayerRepo.EXPECT().
		GetByID(uint(10)).
		Return(suite.freeAgent(), nil).
		Times(1)
	suite.mockClubRepo.EXPECT().
		GetByID(uint(1)).
		Return(club, nil).
		Times(1)
	suite.mockClubRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(c *models.Club) error {
			assert.True(suite.T(), c.Budget.Equal(decimal.NewFromInt(70_000)))
			return nil
		}).
		Times(1)
	suite.mockPlayerRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)
	suite.mockDispatcher.EXPECT().
		Dispatch(gomock.Any()).
		Do(func(msg *notifications.Message) {
			assert.Equal(suite.T(), notifications.ChannelEmail, msg.Channel)
			assert.Equal(suite.T(), "marco.silva@test.com", msg.RecipientID)
		}).
		Times(1)

	response, err := suite.playerService.TransferPlayer(10, 1)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.NotNil(suite.T(), response.ClubID)
	assert.Equal(suite.T(), uint(1), *response.ClubID)
}

// TestTransferBetweenClubs tests that a transfer credits the origin before
// debiting the destination
func (suite *PlayerServiceTestSuite) TestTransferBetweenClubs() {
	origin := newTestClub(1, 50_000)
	destination := newTestClub(2, 100_000)
	destination.Name = "Harbor City FC"

	suite.mockPlayerRepo.EXPECT().
		GetByID(uint(10)).
		Return(suite.rosteredAgent(1), nil).
		Times(1)
	suite.mockClubRepo.EXPECT().
		GetByID(uint(1)).
		Return(origin, nil).
		Times(1)
	suite.mockClubRepo.EXPECT().
		GetByID(uint(2)).
		Return(destination, nil).
		Times(1)
	suite.mockClubRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(2)
	suite.mockPlayerRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(2)
	suite.mockDispatcher.EXPECT().
		Dispatch(gomock.Any()).
		Times(1)

	response, err := suite.playerService.TransferPlayer(10, 2)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(2), *response.ClubID)
	assert.True(suite.T(), origin.Budget.Equal(decimal.NewFromInt(80_000)), "origin credited the salary back")
	assert.True(suite.T(), destination.Budget.Equal(decimal.NewFromInt(70_000)), "destination debited the salary")
}

// TestTransferDestinationCannotAfford tests that a failed destination check
// leaves the player a free agent with the origin already credited
func (suite *PlayerServiceTestSuite) TestTransferDestinationCannotAfford() {
	origin := newTestClub(1, 50_000)
	destination := newTestClub(2, 10_000)

	suite.mockPlayerRepo.EXPECT().
		GetByID(uint(10)).
		Return(suite.rosteredAgent(1), nil).
		Times(1)
	suite.mockClubRepo.EXPECT().
		GetByID(uint(1)).
		Return(origin, nil).
		Times(1)
	suite.mockClubRepo.EXPECT().
		GetByID(uint(2)).
		Return(destination, nil).
		Times(1)
	// Only the origin release is persisted
	suite.mockClubRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)
	suite.mockPlayerRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(p *models.Player) error {
			assert.Nil(suite.T(), p.ClubID, "player persisted as a free agent")
			return nil
		}).
		Times(1)

	response, err := suite.playerService.TransferPlayer(10, 2)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInsufficientBudget)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), origin.Budget.Equal(decimal.NewFromInt(80_000)), "origin keeps the credited salary")
	assert.True(suite.T(), destination.Budget.Equal(decimal.NewFromInt(10_000)), "destination unchanged")
}

// TestTransferDestinationNotFound tests transferring to a missing club
func (suite *PlayerServiceTestSuite) TestTransferDestinationNotFound() {
	suite.mockPlayerRepo.EXPECT().
		GetByID(uint(10)).
		Return(suite.freeAgent(), nil).
		Times(1)
	suite.mockClubRepo.EXPECT().
		GetByID(uint(5)).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.playerService.TransferPlayer(10, 5)

	assert.ErrorIs(suite.T(), err, apperrors.ErrClubNotFound)
	assert.Nil(suite.T(), response)
}

// TestTransferRetriesOnConflict tests that a stale-version save is retried
// from a fresh load and succeeds
func (suite *PlayerServiceTestSuite) TestTransferRetriesOnConflict() {
	suite.mockPlayerRepo.EXPECT().
		GetByID(uint(10)).
		DoAndReturn(func(uint) (*models.Player, error) { return suite.freeAgent(), nil }).
		Times(2)
	suite.mockClubRepo.EXPECT().
		GetByID(uint(1)).
		DoAndReturn(func(uint) (*models.Club, error) { return newTestClub(1, 100_000), nil }).
		Times(2)
	suite.mockClubRepo.EXPECT().
		Update(gomock.Any()).
		Return(apperrors.ErrConcurrencyConflict).
		Times(1)
	suite.mockClubRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)
	suite.mockPlayerRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)
	suite.mockDispatcher.EXPECT().
		Dispatch(gomock.Any()).
		Times(1)

	response, err := suite.playerService.TransferPlayer(10, 1)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
}

// TestTransferConflictExhaustsRetries tests that a persistent conflict
// eventually surfaces to the caller
func (suite *PlayerServiceTestSuite) TestTransferConflictExhaustsRetries() {
	suite.mockPlayerRepo.EXPECT().
		GetByID(uint(10)).
		DoAndReturn(func(uint) (*models.Player, error) { return suite.freeAgent(), nil }).
		Times(3)
	suite.mockClubRepo.EXPECT().
		GetByID(uint(1)).
		DoAndReturn(func(uint) (*models.Club, error) { return newTestClub(1, 100_000), nil }).
		Times(3)
	suite.mockClubRepo.EXPECT().
		Update(gomock.Any()).
		Return(apperrors.ErrConcurrencyConflict).
		Times(3)

	response, err := suite.playerService.TransferPlayer(10, 1)

	assert.ErrorIs(suite.T(), err, apperrors.ErrConcurrencyConflict)
	assert.Nil(suite.T(), response)
}

// TestReleasePlayer tests releasing a rostered player
func (suite *PlayerServiceTestSuite) TestReleasePlayer() {
	origin := newTestClub(1, 50_000)

	suite.mockPlayerRepo.EXPECT().
		GetByID(uint(10)).
		Return(suite.rosteredAgent(1), nil).
		Times(1)
	suite.mockClubRepo.EXPECT().
		GetByID(uint(1)).
		Return(origin, nil).
		Times(1)
	suite.mockClubRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)
	suite.mockPlayerRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)
	suite.mockDispatcher.EXPECT().
		Dispatch(gomock.Any()).
		Do(func(msg *notifications.Message) {
			assert.Equal(suite.T(), "Release Notification", msg.Title)
		}).
		Times(1)

	response, err := suite.playerService.ReleasePlayer(10)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), response.ClubID)
	assert.True(suite.T(), origin.Budget.Equal(decimal.NewFromInt(80_000)))
}

// TestReleaseFreeAgent tests that releasing an unattached player is a no-op
func (suite *PlayerServiceTestSuite) TestReleaseFreeAgent() {
	suite.mockPlayerRepo.EXPECT().
		GetByID(uint(10)).
		Return(suite.freeAgent(), nil).
		Times(1)

	response, err := suite.playerService.ReleasePlayer(10)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), response.ClubID)
}

// TestReleaseWithMissingOriginClub tests that a dangling club reference does
// not block the release
func (suite *PlayerServiceTestSuite) TestReleaseWithMissingOriginClub() {
	suite.mockPlayerRepo.EXPECT().
		GetByID(uint(10)).
		Return(suite.rosteredAgent(1), nil).
		Times(1)
	suite.mockClubRepo.EXPECT().
		GetByID(uint(1)).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockPlayerRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(p *models.Player) error {
			assert.Nil(suite.T(), p.ClubID)
			return nil
		}).
		Times(1)
	suite.mockDispatcher.EXPECT().
		Dispatch(gomock.Any()).
		Times(1)

	response, err := suite.playerService.ReleasePlayer(10)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), response.ClubID)
}

// TestPlayerServiceTestSuite runs the test suite
func TestPlayerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerServiceTestSuite))
}
