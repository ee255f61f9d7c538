package models_test

import (
	"testing"

	"football-manager-backend/internal/database/models"
	apperrors "football-manager-backend/internal/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// ClubTestSuite defines the test suite for the Club aggregate
type ClubTestSuite struct {
	suite.Suite
	club *models.Club
}

// SetupTest sets up the test suite
func (suite *ClubTestSuite) SetupTest() {
	suite.club = models.NewClub("Test FC", decimal.NewFromInt(100_000))
	suite.club.ID = 1
}

func (suite *ClubTestSuite) newEmployee(salary int64) *models.Employee {
	return &models.Employee{
		ID:        42,
		FirstName: "Jamie",
		LastName:  "Keeper",
		Email:     "jamie.keeper@test.com",
		Salary:    decimal.NewFromInt(salary),
	}
}

// TestAcceptMemberDebitsBudget tests that accepting a member debits the salary
func (suite *ClubTestSuite) TestAcceptMemberDebitsBudget() {
	employee := suite.newEmployee(30_000)

	err := suite.club.AcceptMember(employee)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), suite.club.Budget.Equal(decimal.NewFromInt(70_000)))
}

// TestAcceptMemberExactBudget tests that a salary equal to the budget is allowed
func (suite *ClubTestSuite) TestAcceptMemberExactBudget() {
	employee := suite.newEmployee(100_000)

	err := suite.club.AcceptMember(employee)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), suite.club.Budget.IsZero())
}

// TestAcceptMemberInsufficientBudget tests that an unaffordable salary is rejected
func (suite *ClubTestSuite) TestAcceptMemberInsufficientBudget() {
	employee := suite.newEmployee(100_001)

	err := suite.club.AcceptMember(employee)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInsufficientBudget)
	assert.True(suite.T(), suite.club.Budget.Equal(decimal.NewFromInt(100_000)), "budget must be unchanged on failure")
}

// TestAcceptMemberZeroSalary tests that a zero salary is rejected before the budget check
func (suite *ClubTestSuite) TestAcceptMemberZeroSalary() {
	employee := suite.newEmployee(0)

	err := suite.club.AcceptMember(employee)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidSalary)
	assert.True(suite.T(), suite.club.Budget.Equal(decimal.NewFromInt(100_000)))
}

// TestAcceptMemberNegativeSalary tests that a negative salary is rejected
func (suite *ClubTestSuite) TestAcceptMemberNegativeSalary() {
	employee := suite.newEmployee(-5_000)

	err := suite.club.AcceptMember(employee)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidSalary)
}

// TestAcceptMemberAlreadyOnThisClub tests that re-accepting a current member fails
// instead of debiting the budget twice
func (suite *ClubTestSuite) TestAcceptMemberAlreadyOnThisClub() {
	employee := suite.newEmployee(30_000)
	suite.Require().NoError(suite.club.AcceptMember(employee))
	employee.JoinClub(suite.club)

	err := suite.club.AcceptMember(employee)

	assert.ErrorIs(suite.T(), err, apperrors.ErrAlreadyRostered)
	assert.Contains(suite.T(), err.Error(), "already on the roster of this club")
	assert.True(suite.T(), suite.club.Budget.Equal(decimal.NewFromInt(70_000)), "budget must not be debited twice")
}

// TestAcceptMemberAttachedElsewhere tests that a member of another club is rejected
func (suite *ClubTestSuite) TestAcceptMemberAttachedElsewhere() {
	other := models.NewClub("Other FC", decimal.NewFromInt(500_000))
	other.ID = 2
	employee := suite.newEmployee(30_000)
	employee.JoinClub(other)

	err := suite.club.AcceptMember(employee)

	assert.ErrorIs(suite.T(), err, apperrors.ErrAlreadyRostered)
	assert.Contains(suite.T(), err.Error(), "already assigned to another club")
}

// TestReleaseMemberCreditsBudget tests that releasing a member credits the salary back
func (suite *ClubTestSuite) TestReleaseMemberCreditsBudget() {
	employee := suite.newEmployee(30_000)
	suite.Require().NoError(suite.club.AcceptMember(employee))
	employee.JoinClub(suite.club)

	err := suite.club.ReleaseMember(employee)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), suite.club.Budget.Equal(decimal.NewFromInt(100_000)))
}

// TestReleaseMemberNotAMember tests that releasing a non-member fails
func (suite *ClubTestSuite) TestReleaseMemberNotAMember() {
	employee := suite.newEmployee(30_000)

	err := suite.club.ReleaseMember(employee)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotAMember)
	assert.True(suite.T(), suite.club.Budget.Equal(decimal.NewFromInt(100_000)))
}

// TestReleaseMemberOfOtherClub tests that a member of another club cannot be released here
func (suite *ClubTestSuite) TestReleaseMemberOfOtherClub() {
	other := models.NewClub("Other FC", decimal.NewFromInt(500_000))
	other.ID = 2
	employee := suite.newEmployee(30_000)
	employee.JoinClub(other)

	err := suite.club.ReleaseMember(employee)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotAMember)
}

// TestAcceptReleaseRoundTrip tests that accept followed by release restores the budget exactly
func (suite *ClubTestSuite) TestAcceptReleaseRoundTrip() {
	employee := suite.newEmployee(33_333)
	original := suite.club.Budget

	suite.Require().NoError(suite.club.AcceptMember(employee))
	employee.JoinClub(suite.club)
	suite.Require().NoError(suite.club.ReleaseMember(employee))

	assert.True(suite.T(), suite.club.Budget.Equal(original))
}

// TestAdjustBudgetIncrease tests a positive budget adjustment
func (suite *ClubTestSuite) TestAdjustBudgetIncrease() {
	err := suite.club.AdjustBudget(decimal.NewFromInt(50_000), decimal.Zero)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), suite.club.Budget.Equal(decimal.NewFromInt(150_000)))
}

// TestAdjustBudgetBelowPayrollFloor tests that a cut below the payroll is rejected
func (suite *ClubTestSuite) TestAdjustBudgetBelowPayrollFloor() {
	payroll := decimal.NewFromInt(80_000)

	err := suite.club.AdjustBudget(decimal.NewFromInt(-30_000), payroll)

	assert.ErrorIs(suite.T(), err, apperrors.ErrBelowPayrollFloor)
	assert.True(suite.T(), suite.club.Budget.Equal(decimal.NewFromInt(100_000)))
}

// TestAdjustBudgetToExactPayroll tests that cutting exactly to the payroll floor is allowed
func (suite *ClubTestSuite) TestAdjustBudgetToExactPayroll() {
	payroll := decimal.NewFromInt(80_000)

	err := suite.club.AdjustBudget(decimal.NewFromInt(-20_000), payroll)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), suite.club.Budget.Equal(payroll))
}

// TestClubTestSuite runs the test suite
func TestClubTestSuite(t *testing.T) {
	suite.Run(t, new(ClubTestSuite))
}
