package repository

import (
	"football-manager-backend/internal/database/models"
	apperrors "football-manager-backend/internal/errors"

	"gorm.io/gorm"
)

// PlayerRepository handles database operations for players
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Create creates a new player
func (r *PlayerRepository) Create(player *models.Player) error {
	return r.db.Create(player).Error
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(id uint) (*models.Player, error) {
	var player models.Player
	err := r.db.First(&player, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// GetFiltered retrieves players matching the filter with pagination
func (r *PlayerRepository) GetFiltered(filter PlayerFilter) ([]models.Player, int64, error) {
	query := r.db.Model(&models.Player{})

	if filter.ClubID != nil {
		query = query.Where("club_id = ?", *filter.ClubID)
	}
	if filter.Name != "" {
		query = query.Where("first_name || ' ' || last_name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Position != nil {
		query = query.Where("position = ?", *filter.Position)
	}
	if filter.MinSalary != nil {
		query = query.Where("salary >= ?", *filter.MinSalary)
	}
	if filter.MaxSalary != nil {
		query = query.Where("salary <= ?", *filter.MaxSalary)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var players []models.Player
	err := query.Order("id").Limit(filter.Limit).Offset(filter.Offset).Find(&players).Error
	if err != nil {
		return nil, 0, err
	}

	return players, total, nil
}

// Update persists a player with an optimistic-concurrency check on the
// version column. Stale saves are reported as conflicts.
func (r *PlayerRepository) Update(player *models.Player) error {
	res := r.db.Model(&models.Player{}).
		Where("id = ? AND version = ?", player.ID, player.Version).
		Updates(map[string]interface{}{
			"first_name":    player.FirstName,
			"last_name":     player.LastName,
			"email":         player.Email,
			"date_of_birth": player.DateOfBirth,
			"salary":        player.Salary,
			"position":      player.Position,
			"club_id":       player.ClubID,
			"version":       player.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrConcurrencyConflict
	}
	player.Version++
	return nil
}

// Delete deletes a player
func (r *PlayerRepository) Delete(id uint) error {
	return r.db.Delete(&models.Player{}, "id = ?", id).Error
}
