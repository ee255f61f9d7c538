package repository

import (
	"football-manager-backend/internal/database/models"
	apperrors "football-manager-backend/internal/errors"

	"gorm.io/gorm"
)

// CoachRepository handles database operations for coaches
type CoachRepository struct {
	db *gorm.DB
}

// NewCoachRepository creates a new coach repository
func NewCoachRepository(db *gorm.DB) *CoachRepository {
	return &CoachRepository{db: db}
}

// Create creates a new coach
func (r *CoachRepository) Create(coach *models.Coach) error {
	return r.db.Create(coach).Error
}

// GetByID retrieves a coach by ID
func (r *CoachRepository) GetByID(id uint) (*models.Coach, error) {
	var coach models.Coach
	err := r.db.First(&coach, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &coach, nil
}

// Update persists a coach with an optimistic-concurrency check on the
// version column. Stale saves are reported as conflicts.
func (r *CoachRepository) Update(coach *models.Coach) error {
	res := r.db.Model(&models.Coach{}).
		Where("id = ? AND version = ?", coach.ID, coach.Version).
		Updates(map[string]interface{}{
			"first_name":    coach.FirstName,
			"last_name":     coach.LastName,
			"email":         coach.Email,
			"date_of_birth": coach.DateOfBirth,
			"salary":        coach.Salary,
			"club_id":       coach.ClubID,
			"version":       coach.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrConcurrencyConflict
	}
	coach.Version++
	return nil
}

// Delete deletes a coach
func (r *CoachRepository) Delete(id uint) error {
	return r.db.Delete(&models.Coach{}, "id = ?", id).Error
}
