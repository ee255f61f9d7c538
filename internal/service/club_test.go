package service_test

import (
	"testing"

	"football-manager-backend/internal/database/models"
	apperrors "football-manager-backend/internal/errors"
	"football-manager-backend/internal/mocks"
	"football-manager-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ClubServiceTestSuite defines the test suite for ClubService
type ClubServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockClubRepo   *mocks.MockClubRepositoryInterface
	mockPlayerRepo *mocks.MockPlayerRepositoryInterface
	mockCoachRepo  *mocks.MockCoachRepositoryInterface
	mockDispatcher *mocks.MockNotificationDispatcher
	clubService    *service.ClubService
	validator      *validator.Validate
}

// SetupTest sets up the test suite
func (suite *ClubServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockClubRepo = mocks.NewMockClubRepositoryInterface(suite.ctrl)
	suite.mockPlayerRepo = mocks.NewMockPlayerRepositoryInterface(suite.ctrl)
	suite.mockCoachRepo = mocks.NewMockCoachRepositoryInterface(suite.ctrl)
	suite.mockDispatcher = mocks.NewMockNotificationDispatcher(suite.ctrl)
	suite.validator = validator.New()

	suite.clubService = service.NewClubService(suite.mockClubRepo, suite.mockPlayerRepo, suite.mockCoachRepo, suite.mockDispatcher, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *ClubServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func playerDraft(name string, salary int64) service.CreatePlayerRequest {
	return service.CreatePlayerRequest{
		FirstName:   name,
		LastName:    "Tester",
		Email:       name + "@test.com",
		DateOfBirth: "1998-01-01",
		Position:    models.PositionMidfielder,
		Salary:      decimal.NewFromInt(salary),
	}
}

// TestCreateClub tests creating a club
func (suite *ClubServiceTestSuite) TestCreateClub() {
	req := &service.CreateClubRequest{
		Name:   "Riverside United",
		Budget: decimal.NewFromInt(1_000_000),
	}

	suite.mockClubRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.clubService.CreateClub(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Riverside United", response.Name)
	assert.True(suite.T(), response.Budget.Equal(decimal.NewFromInt(1_000_000)))
}

// TestCreateClubNegativeBudget tests that a negative initial budget is rejected
func (suite *ClubServiceTestSuite) TestCreateClubNegativeBudget() {
	req := &service.CreateClubRequest{
		Name:   "Riverside United",
		Budget: decimal.NewFromInt(-1),
	}

	response, err := suite.clubService.CreateClub(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)

	var validationErr *apperrors.ValidationError
	assert.ErrorAs(suite.T(), err, &validationErr)
}

// TestGetClubByIDNotFound tests retrieving a missing club
func (suite *ClubServiceTestSuite) TestGetClubByIDNotFound() {
	suite.mockClubRepo.EXPECT().
		GetWithRoster(uint(9)).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.clubService.GetClubByID(9)

	assert.ErrorIs(suite.T(), err, apperrors.ErrClubNotFound)
	assert.Nil(suite.T(), response)
}

// TestAddPlayersToClub tests a successful bulk add
func (suite *ClubServiceTestSuite) TestAddPlayersToClub() {
	club := newTestClub(1, 100_000)
	req := &service.AddPlayersRequest{
		Players: []service.CreatePlayerRequest{
			playerDraft("ana", 40_000),
			playerDraft("ben", 30_000),
		},
	}

	suite.mockClubRepo.EXPECT().
		GetByID(uint(1)).
		Return(club, nil).
		Times(1)
	suite.mockClubRepo.EXPECT().
		AddPlayersToClub(club, gomock.Any()).
		DoAndReturn(func(c *models.Club, players []*models.Player) error {
			assert.Len(suite.T(), players, 2)
			assert.True(suite.T(), c.Budget.Equal(decimal.NewFromInt(30_000)))
			for _, p := range players {
				assert.NotNil(suite.T(), p.ClubID)
			}
			return nil
		}).
		Times(1)
	suite.mockDispatcher.EXPECT().
		Dispatch(gomock.Any()).
		Times(2)
	suite.mockClubRepo.EXPECT().
		GetWithRoster(uint(1)).
		Return(club, nil).
		Times(1)

	response, err := suite.clubService.AddPlayersToClub(1, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
}

// TestAddPlayersAllOrNothing tests that the first unaffordable draft aborts
// the whole batch before anything is persisted
func (suite *ClubServiceTestSuite) TestAddPlayersAllOrNothing() {
	club := newTestClub(1, 100_000)
	req := &service.AddPlayersRequest{
		Players: []service.CreatePlayerRequest{
			playerDraft("ana", 40_000),
			playerDraft("ben", 70_000), // would overdraw the remaining 60k
			playerDraft("carl", 10_000),
		},
	}

	suite.mockClubRepo.EXPECT().
		GetByID(uint(1)).
		Return(club, nil).
		Times(1)
	// No AddPlayersToClub, no dispatch: the batch never reaches persistence

	response, err := suite.clubService.AddPlayersToClub(1, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInsufficientBudget)
	assert.Nil(suite.T(), response)
}

// TestAddPlayersZeroSalaryAborts tests that a zero-salary draft fails the
// batch even when the budget could absorb everyone else
func (suite *ClubServiceTestSuite) TestAddPlayersZeroSalaryAborts() {
	club := newTestClub(1, 100_000)
	req := &service.AddPlayersRequest{
		Players: []service.CreatePlayerRequest{
			playerDraft("ana", 40_000),
			playerDraft("ben", 0),
		},
	}

	suite.mockClubRepo.EXPECT().
		GetByID(uint(1)).
		Return(club, nil).
		Times(1)

	response, err := suite.clubService.AddPlayersToClub(1, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidSalary)
	assert.Nil(suite.T(), response)
}

// TestAddPlayersEmptyBatch tests that an empty batch fails validation
func (suite *ClubServiceTestSuite) TestAddPlayersEmptyBatch() {
	req := &service.AddPlayersRequest{Players: []service.CreatePlayerRequest{}}

	response, err := suite.clubService.AddPlayersToClub(1, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestAddPlayersRetriesOnConflict tests that a conflicting batch save is
// replayed against a fresh club
func (suite *ClubServiceTestSuite) TestAddPlayersRetriesOnConflict() {
	req := &service.AddPlayersRequest{
		Players: []service.CreatePlayerRequest{playerDraft("ana", 40_000)},
	}

	suite.mockClubRepo.EXPECT().
		GetByID(uint(1)).
		DoAndReturn(func(uint) (*models.Club, error) { return newTestClub(1, 100_000), nil }).
		Times(2)
	suite.mockClubRepo.EXPECT().
		AddPlayersToClub(gomock.Any(), gomock.Any()).
		Return(apperrors.ErrConcurrencyConflict).
		Times(1)
	suite.mockClubRepo.EXPECT().
		AddPlayersToClub(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)
	suite.mockDispatcher.EXPECT().
		Dispatch(gomock.Any()).
		Times(1)
	suite.mockClubRepo.EXPECT().
		GetWithRoster(uint(1)).
		DoAndReturn(func(uint) (*models.Club, error) { return newTestClub(1, 60_000), nil }).
		Times(1)

	response, err := suite.clubService.AddPlayersToClub(1, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
}

// TestAddCoachToClub tests creating a coach directly onto a roster
func (suite *ClubServiceTestSuite) TestAddCoachToClub() {
	club := newTestClub(1, 200_000)
	req := &service.CreateCoachRequest{
		FirstName:   "Erik",
		LastName:    "Lund",
		Email:       "erik.lund@test.com",
		DateOfBirth: "1968-05-21",
		Salary:      decimal.NewFromInt(150_000),
	}

	suite.mockClubRepo.EXPECT().
		GetByID(uint(1)).
		Return(club, nil).
		Times(1)
	suite.mockClubRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)
	suite.mockCoachRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(c *models.Coach) error {
			assert.NotNil(suite.T(), c.ClubID)
			assert.Equal(suite.T(), uint(1), *c.ClubID)
			return nil
		}).
		Times(1)
	suite.mockDispatcher.EXPECT().
		Dispatch(gomock.Any()).
		Times(1)

	response, err := suite.clubService.AddCoachToClub(1, req)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), response.Club.Budget.Equal(decimal.NewFromInt(50_000)))
	assert.Equal(suite.T(), "Erik", response.Coach.FirstName)
}

// TestAddCoachInsufficientBudget tests that an unaffordable coach is rejected
func (suite *ClubServiceTestSuite) TestAddCoachInsufficientBudget() {
	club := newTestClub(1, 100_000)
	req := &service.CreateCoachRequest{
		FirstName:   "Erik",
		LastName:    "Lund",
		Email:       "erik.lund@test.com",
		DateOfBirth: "1968-05-21",
		Salary:      decimal.NewFromInt(150_000),
	}

	suite.mockClubRepo.EXPECT().
		GetByID(uint(1)).
		Return(club, nil).
		Times(1)

	response, err := suite.clubService.AddCoachToClub(1, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInsufficientBudget)
	assert.Nil(suite.T(), response)
}

// TestAdjustBudget tests a budget adjustment above the payroll floor
func (suite *ClubServiceTestSuite) TestAdjustBudget() {
	club := newTestClub(1, 100_000)

	suite.mockClubRepo.EXPECT().
		GetByID(uint(1)).
		Return(club, nil).
		Times(1)
	suite.mockClubRepo.EXPECT().
		GetTotalPayroll(uint(1)).
		Return(decimal.NewFromInt(60_000), nil).
		Times(1)
	suite.mockClubRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.clubService.AdjustBudget(1, &service.AdjustBudgetRequest{Amount: decimal.NewFromInt(-20_000)})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), response.Budget.Equal(decimal.NewFromInt(80_000)))
}

// TestAdjustBudgetBelowPayroll tests that a cut below the payroll floor fails
func (suite *ClubServiceTestSuite) TestAdjustBudgetBelowPayroll() {
	club := newTestClub(1, 100_000)

	suite.mockClubRepo.EXPECT().
		GetByID(uint(1)).
		Return(club, nil).
		Times(1)
	suite.mockClubRepo.EXPECT().
		GetTotalPayroll(uint(1)).
		Return(decimal.NewFromInt(90_000), nil).
		Times(1)

	response, err := suite.clubService.AdjustBudget(1, &service.AdjustBudgetRequest{Amount: decimal.NewFromInt(-20_000)})

	assert.ErrorIs(suite.T(), err, apperrors.ErrBelowPayrollFloor)
	assert.Nil(suite.T(), response)
}

// TestGetClubPlayersClubNotFound tests that listing players of a missing club fails
func (suite *ClubServiceTestSuite) TestGetClubPlayersClubNotFound() {
	suite.mockClubRepo.EXPECT().
		GetByID(uint(9)).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.clubService.GetClubPlayers(9, &service.PlayerQuery{})

	assert.ErrorIs(suite.T(), err, apperrors.ErrClubNotFound)
	assert.Nil(suite.T(), response)
}

// TestGetClubPlayers tests a filtered roster listing
func (suite *ClubServiceTestSuite) TestGetClubPlayers() {
	club := newTestClub(1, 100_000)
	position := models.PositionForward

	suite.mockClubRepo.EXPECT().
		GetByID(uint(1)).
		Return(club, nil).
		Times(1)
	suite.mockPlayerRepo.EXPECT().
		GetFiltered(gomock.Any()).
		Return([]models.Player{
			{Employee: models.Employee{ID: 10, FirstName: "Marco", Salary: decimal.NewFromInt(30_000)}, Position: position},
		}, int64(1), nil).
		Times(1)

	response, err := suite.clubService.GetClubPlayers(1, &service.PlayerQuery{Position: &position, Page: 1, PageSize: 10})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Players, 1)
	assert.Equal(suite.T(), int64(1), response.Total)
}

// TestClubServiceTestSuite runs the test suite
func TestClubServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClubServiceTestSuite))
}
