package service

import (
	"errors"
	"fmt"

	"football-manager-backend/internal/database/models"
	apperrors "football-manager-backend/internal/errors"
	"football-manager-backend/internal/logger"
	"football-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CoachService orchestrates coach transfers and releases. Same discipline as
// the player service: release before accept, version-checked saves, bounded
// retry on conflicts.
type CoachService struct {
	coachRepo  repository.CoachRepositoryInterface
	clubRepo   repository.ClubRepositoryInterface
	dispatcher NotificationDispatcher
	validator  *validator.Validate
	log        *logger.Logger
}

// NewCoachService creates a new coach service
func NewCoachService(coachRepo repository.CoachRepositoryInterface, clubRepo repository.ClubRepositoryInterface, dispatcher NotificationDispatcher, validator *validator.Validate) *CoachService {
	return &CoachService{
		coachRepo:  coachRepo,
		clubRepo:   clubRepo,
		dispatcher: dispatcher,
		validator:  validator,
		log:        logger.New().WithField("service", "coach"),
	}
}

// CreateCoachRequest represents the request to create a coach
type CreateCoachRequest struct {
	FirstName   string          `json:"first_name" validate:"required,max=100"`
	LastName    string          `json:"last_name" validate:"required,max=100"`
	Email       string          `json:"email" validate:"required,email,max=255"`
	DateOfBirth string          `json:"date_of_birth" validate:"required"`
	Salary      decimal.Decimal `json:"salary"`
}

// CoachResponse represents the response for coach operations
type CoachResponse struct {
	ID          uint            `json:"id"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Email       string          `json:"email"`
	DateOfBirth string          `json:"date_of_birth"`
	Salary      decimal.Decimal `json:"salary"`
	ClubID      *uint           `json:"club_id,omitempty"`
}

// CreateCoach creates a new unattached coach
func (s *CoachService) CreateCoach(req *CreateCoachRequest) (*CoachResponse, error) {
	coach, err := buildCoach(s.validator, req)
	if err != nil {
		return nil, err
	}

	if err := s.coachRepo.Create(coach); err != nil {
		return nil, fmt.Errorf("failed to create coach: %w", err)
	}

	return toCoachResponse(coach), nil
}

// GetCoachByID retrieves a coach by ID
func (s *CoachService) GetCoachByID(id uint) (*CoachResponse, error) {
	coach, err := s.coachRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCoachNotFound
		}
		return nil, fmt.Errorf("failed to get coach: %w", err)
	}

	return toCoachResponse(coach), nil
}

// TransferCoach moves a coach to the destination club, releasing them from
// their current club first
func (s *CoachService) TransferCoach(coachID, clubID uint) (*CoachResponse, error) {
	var resp *CoachResponse
	var err error
	for attempt := 1; attempt <= maxConflictRetries; attempt++ {
		resp, err = s.transferOnce(coachID, clubID)
		if !errors.Is(err, apperrors.ErrConcurrencyConflict) {
			return resp, err
		}
		s.log.WithFields(map[string]interface{}{
			"coach_id": coachID,
			"club_id":  clubID,
			"attempt":  attempt,
		}).Warn("transfer hit a concurrent modification, retrying")
	}
	return nil, err
}

func (s *CoachService) transferOnce(coachID, clubID uint) (*CoachResponse, error) {
	coach, err := s.coachRepo.GetByID(coachID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCoachNotFound
		}
		return nil, fmt.Errorf("failed to get coach: %w", err)
	}

	if err := s.releaseFromOrigin(coach); err != nil {
		return nil, err
	}

	club, err := s.clubRepo.GetByID(clubID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to get club: %w", err)
	}

	if err := club.AcceptMember(&coach.Employee); err != nil {
		return nil, err
	}
	if err := s.clubRepo.Update(club); err != nil {
		return nil, err
	}

	coach.JoinClub(club)
	if err := s.coachRepo.Update(coach); err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(transferMessage(&coach.Employee, club))
	return toCoachResponse(coach), nil
}

// ReleaseCoach detaches a coach from their club and credits the salary back
// to the club's budget
func (s *CoachService) ReleaseCoach(coachID uint) (*CoachResponse, error) {
	var resp *CoachResponse
	var err error
	for attempt := 1; attempt <= maxConflictRetries; attempt++ {
		resp, err = s.releaseOnce(coachID)
		if !errors.Is(err, apperrors.ErrConcurrencyConflict) {
			return resp, err
		}
		s.log.WithFields(map[string]interface{}{
			"coach_id": coachID,
			"attempt":  attempt,
		}).Warn("release hit a concurrent modification, retrying")
	}
	return nil, err
}

func (s *CoachService) releaseOnce(coachID uint) (*CoachResponse, error) {
	coach, err := s.coachRepo.GetByID(coachID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCoachNotFound
		}
		return nil, fmt.Errorf("failed to get coach: %w", err)
	}

	wasAttached := coach.IsAttached()
	if err := s.releaseFromOrigin(coach); err != nil {
		return nil, err
	}
	if !wasAttached {
		return toCoachResponse(coach), nil
	}

	s.dispatcher.Dispatch(releaseMessage(&coach.Employee))
	return toCoachResponse(coach), nil
}

func (s *CoachService) releaseFromOrigin(coach *models.Coach) error {
	if !coach.IsAttached() {
		return nil
	}

	origin, err := s.clubRepo.GetByID(*coach.ClubID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to get origin club: %w", err)
		}
		s.log.WithFields(map[string]interface{}{
			"coach_id": coach.ID,
			"club_id":  *coach.ClubID,
		}).Warn("origin club no longer exists, treating coach as released")
	} else {
		if err := origin.ReleaseMember(&coach.Employee); err != nil {
			return err
		}
		if err := s.clubRepo.Update(origin); err != nil {
			return err
		}
	}

	coach.LeaveClub()
	return s.coachRepo.Update(coach)
}

func buildCoach(v *validator.Validate, req *CreateCoachRequest) (*models.Coach, error) {
	if err := v.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	dob, err := parseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return nil, &apperrors.ValidationError{Field: "date_of_birth", Message: err.Error()}
	}

	return &models.Coach{
		Employee: models.Employee{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Email:       req.Email,
			DateOfBirth: dob,
			Salary:      req.Salary,
		},
	}, nil
}

func toCoachResponse(coach *models.Coach) *CoachResponse {
	return &CoachResponse{
		ID:          coach.ID,
		FirstName:   coach.FirstName,
		LastName:    coach.LastName,
		Email:       coach.Email,
		DateOfBirth: coach.DateOfBirth.Format(dateLayout),
		Salary:      coach.Salary,
		ClubID:      coach.ClubID,
	}
}
