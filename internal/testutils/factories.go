package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"football-manager-backend/internal/database/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

var emailSeq atomic.Uint64

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@test.com", prefix, emailSeq.Add(1))
}

// ClubFactory provides methods to create test Club data
type ClubFactory struct{}

// NewClubFactory creates a new ClubFactory
func NewClubFactory() *ClubFactory {
	return &ClubFactory{}
}

// Create creates a test Club with default values
func (f *ClubFactory) Create() *models.Club {
	return &models.Club{
		Name:    "Test FC",
		Budget:  decimal.NewFromInt(1_000_000),
		Version: 1,
	}
}

// WithName sets a custom name for the club
func (f *ClubFactory) WithName(name string) *models.Club {
	club := f.Create()
	club.Name = name
	return club
}

// WithBudget sets a custom budget for the club
func (f *ClubFactory) WithBudget(budget decimal.Decimal) *models.Club {
	club := f.Create()
	club.Budget = budget
	return club
}

// PlayerFactory provides methods to create test Player data
type PlayerFactory struct{}

// NewPlayerFactory creates a new PlayerFactory
func NewPlayerFactory() *PlayerFactory {
	return &PlayerFactory{}
}

// Create creates a free-agent test Player with default values
func (f *PlayerFactory) Create() *models.Player {
	return &models.Player{
		Employee: models.Employee{
			FirstName:   "Jamie",
			LastName:    "Keeper",
			Email:       uniqueEmail("player"),
			DateOfBirth: time.Date(1998, 3, 14, 0, 0, 0, 0, time.UTC),
			Salary:      decimal.NewFromInt(50_000),
			Version:     1,
		},
		Position: models.PositionGoalkeeper,
	}
}

// WithClub attaches the player to the given club
func (f *PlayerFactory) WithClub(clubID uint) *models.Player {
	player := f.Create()
	player.ClubID = &clubID
	return player
}

// WithSalary sets a custom salary for the player
func (f *PlayerFactory) WithSalary(salary decimal.Decimal) *models.Player {
	player := f.Create()
	player.Salary = salary
	return player
}

// WithPosition sets a custom position for the player
func (f *PlayerFactory) WithPosition(position models.Position) *models.Player {
	player := f.Create()
	player.Position = position
	return player
}

// CoachFactory provides methods to create test Coach data
type CoachFactory struct{}

// NewCoachFactory creates a new CoachFactory
func NewCoachFactory() *CoachFactory {
	return &CoachFactory{}
}

// Create creates a free-agent test Coach with default values
func (f *CoachFactory) Create() *models.Coach {
	return &models.Coach{
		Employee: models.Employee{
			FirstName:   "Alex",
			LastName:    "Gaffer",
			Email:       uniqueEmail("coach"),
			DateOfBirth: time.Date(1975, 11, 2, 0, 0, 0, 0, time.UTC),
			Salary:      decimal.NewFromInt(80_000),
			Version:     1,
		},
	}
}

// WithClub attaches the coach to the given club
func (f *CoachFactory) WithClub(clubID uint) *models.Coach {
	coach := f.Create()
	coach.ClubID = &clubID
	return coach
}

// WithSalary sets a custom salary for the coach
func (f *CoachFactory) WithSalary(salary decimal.Decimal) *models.Coach {
	coach := f.Create()
	coach.Salary = salary
	return coach
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with the password "password123"
func (f *UserFactory) Create() *models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	return &models.User{
		Username:     fmt.Sprintf("user-%d", emailSeq.Add(1)),
		PasswordHash: string(hash),
		Role:         models.UserRoleUser,
	}
}

// WithUsername sets a custom username for the user
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}
