package repository

import (
	"football-manager-backend/internal/database/models"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// PlayerFilter narrows and paginates roster queries
type PlayerFilter struct {
	ClubID    *uint
	Name      string
	Position  *models.Position
	MinSalary *decimal.Decimal
	MaxSalary *decimal.Decimal
	Limit     int
	Offset    int
}

// ClubRepositoryInterface defines the interface for club repository operations
type ClubRepositoryInterface interface {
	Create(club *models.Club) error
	GetByID(id uint) (*models.Club, error)
	GetWithRoster(id uint) (*models.Club, error)
	GetAll(limit, offset int) ([]models.Club, int64, error)
	Update(club *models.Club) error
	Delete(id uint) error
	GetTotalPayroll(clubID uint) (decimal.Decimal, error)
	AddPlayersToClub(club *models.Club, players []*models.Player) error
}

// PlayerRepositoryInterface defines the interface for player repository operations
type PlayerRepositoryInterface interface {
	Create(player *models.Player) error
	GetByID(id uint) (*models.Player, error)
	GetFiltered(filter PlayerFilter) ([]models.Player, int64, error)
	Update(player *models.Player) error
	Delete(id uint) error
}

// CoachRepositoryInterface defines the interface for coach repository operations
type CoachRepositoryInterface interface {
	Create(coach *models.Coach) error
	GetByID(id uint) (*models.Coach, error)
	Update(coach *models.Coach) error
	Delete(id uint) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Update(user *models.User) error
}
