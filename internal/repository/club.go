package repository

import (
	"football-manager-backend/internal/database/models"
	apperrors "football-manager-backend/internal/errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ClubRepository handles database operations for clubs
type ClubRepository struct {
	db *gorm.DB
}

// NewClubRepository creates a new club repository
func NewClubRepository(db *gorm.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

// Create creates a new club
func (r *ClubRepository) Create(club *models.Club) error {
	return r.db.Create(club).Error
}

// GetByID retrieves a club by ID
func (r *ClubRepository) GetByID(id uint) (*models.Club, error) {
	var club models.Club
	err := r.db.First(&club, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &club, nil
}

// GetWithRoster retrieves a club by ID with its players and coaches preloaded
func (r *ClubRepository) GetWithRoster(id uint) (*models.Club, error) {
	var club models.Club
	err := r.db.Preload("Players").Preload("Coaches").First(&club, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &club, nil
}

// GetAll retrieves all clubs with pagination
func (r *ClubRepository) GetAll(limit, offset int) ([]models.Club, int64, error) {
	var clubs []models.Club
	var total int64

	if err := r.db.Model(&models.Club{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("id").Limit(limit).Offset(offset).Find(&clubs).Error
	if err != nil {
		return nil, 0, err
	}

	return clubs, total, nil
}

// Update persists a club with an optimistic-concurrency check. A save of a
// stale version (or of a club deleted meanwhile) matches zero rows and is
// reported as a conflict so the caller can retry from a fresh load.
func (r *ClubRepository) Update(club *models.Club) error {
	res := r.db.Model(&models.Club{}).
		Where("id = ? AND version = ?", club.ID, club.Version).
		Updates(map[string]interface{}{
			"name":    club.Name,
			"budget":  club.Budget,
			"version": club.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrConcurrencyConflict
	}
	club.Version++
	return nil
}

// Delete deletes a club
func (r *ClubRepository) Delete(id uint) error {
	return r.db.Delete(&models.Club{}, "id = ?", id).Error
}

// GetTotalPayroll sums the salaries of all players and coaches currently
// attached to the club
func (r *ClubRepository) GetTotalPayroll(clubID uint) (decimal.Decimal, error) {
	var playersTotal, coachesTotal decimal.Decimal

	row := r.db.Model(&models.Player{}).
		Where("club_id = ?", clubID).
		Select("COALESCE(SUM(salary), 0)").Row()
	if err := row.Scan(&playersTotal); err != nil {
		return decimal.Zero, err
	}

	row = r.db.Model(&models.Coach{}).
		Where("club_id = ?", clubID).
		Select("COALESCE(SUM(salary), 0)").Row()
	if err := row.Scan(&coachesTotal); err != nil {
		return decimal.Zero, err
	}

	return playersTotal.Add(coachesTotal), nil
}

// AddPlayersToClub persists a bulk join in a single transaction: the club's
// debited budget (version-checked) together with the new players. Either the
// whole batch lands or none of it does.
func (r *ClubRepository) AddPlayersToClub(club *models.Club, players []*models.Player) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Club{}).
			Where("id = ? AND version = ?", club.ID, club.Version).
			Updates(map[string]interface{}{
				"budget":  club.Budget,
				"version": club.Version + 1,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrConcurrencyConflict
		}

		for _, player := range players {
			if err := tx.Create(player).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	club.Version++
	return nil
}
