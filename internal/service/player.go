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

// PlayerService orchestrates player transfers and releases across the club
// and player aggregates. There is no transaction spanning both; every step is
// an aggregate-local mutation followed by a version-checked save, ordered so
// a mid-sequence failure leaves a valid, representable state.
type PlayerService struct {
	playerRepo repository.PlayerRepositoryInterface
	clubRepo   repository.ClubRepositoryInterface
	dispatcher NotificationDispatcher
	validator  *validator.Validate
	log        *logger.Logger
}

// NewPlayerService creates a new player service
func NewPlayerService(playerRepo repository.PlayerRepositoryInterface, clubRepo repository.ClubRepositoryInterface, dispatcher NotificationDispatcher, validator *validator.Validate) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		clubRepo:   clubRepo,
		dispatcher: dispatcher,
		validator:  validator,
		log:        logger.New().WithField("service", "player"),
	}
}

// CreatePlayerRequest represents the request to create a player
type CreatePlayerRequest struct {
	FirstName   string          `json:"first_name" validate:"required,max=100"`
	LastName    string          `json:"last_name" validate:"required,max=100"`
	Email       string          `json:"email" validate:"required,email,max=255"`
	DateOfBirth string          `json:"date_of_birth" validate:"required"`
	Position    models.Position `json:"position" validate:"required"`
	Salary      decimal.Decimal `json:"salary"`
}

// PlayerResponse represents the response for player operations
type PlayerResponse struct {
	ID          uint            `json:"id"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Email       string          `json:"email"`
	DateOfBirth string          `json:"date_of_birth"`
	Position    models.Position `json:"position"`
	Salary      decimal.Decimal `json:"salary"`
	ClubID      *uint           `json:"club_id,omitempty"`
}

// PlayerListResponse represents a paginated list of players
type PlayerListResponse struct {
	Players  []PlayerResponse `json:"players"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// CreatePlayer creates a new unattached player (free agent)
func (s *PlayerService) CreatePlayer(req *CreatePlayerRequest) (*PlayerResponse, error) {
	player, err := s.buildPlayer(req)
	if err != nil {
		return nil, err
	}

	if err := s.playerRepo.Create(player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return toPlayerResponse(player), nil
}

// GetPlayerByID retrieves a player by ID
func (s *PlayerService) GetPlayerByID(id uint) (*PlayerResponse, error) {
	player, err := s.playerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return toPlayerResponse(player), nil
}

// TransferPlayer moves a player to the destination club, releasing them from
// their current club first. A stale-version save restarts the operation from
// a fresh load; invariant violations and missing entities surface as-is.
func (s *PlayerService) TransferPlayer(playerID, clubID uint) (*PlayerResponse, error) {
	var resp *PlayerResponse
	var err error
	for attempt := 1; attempt <= maxConflictRetries; attempt++ {
		resp, err = s.transferOnce(playerID, clubID)
		if !errors.Is(err, apperrors.ErrConcurrencyConflict) {
			return resp, err
		}
		s.log.WithFields(map[string]interface{}{
			"player_id": playerID,
			"club_id":   clubID,
			"attempt":   attempt,
		}).Warn("transfer hit a concurrent modification, retrying")
	}
	return nil, err
}

func (s *PlayerService) transferOnce(playerID, clubID uint) (*PlayerResponse, error) {
	player, err := s.playerRepo.GetByID(playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	// Release before accept: once this step is persisted the player is a
	// free agent and the origin club is credited, so a failure at the
	// destination cannot double-count the salary anywhere.
	if err := s.releaseFromOrigin(player); err != nil {
		return nil, err
	}

	club, err := s.clubRepo.GetByID(clubID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to get club: %w", err)
	}

	if err := club.AcceptMember(&player.Employee); err != nil {
		return nil, err
	}
	if err := s.clubRepo.Update(club); err != nil {
		return nil, err
	}

	player.JoinClub(club)
	if err := s.playerRepo.Update(player); err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(transferMessage(&player.Employee, club))
	return toPlayerResponse(player), nil
}

// ReleasePlayer detaches a player from their club and credits the salary
// back to the club's budget
func (s *PlayerService) ReleasePlayer(playerID uint) (*PlayerResponse, error) {
	var resp *PlayerResponse
	var err error
	for attempt := 1; attempt <= maxConflictRetries; attempt++ {
		resp, err = s.releaseOnce(playerID)
		if !errors.Is(err, apperrors.ErrConcurrencyConflict) {
			return resp, err
		}
		s.log.WithFields(map[string]interface{}{
			"player_id": playerID,
			"attempt":   attempt,
		}).Warn("release hit a concurrent modification, retrying")
	}
	return nil, err
}

func (s *PlayerService) releaseOnce(playerID uint) (*PlayerResponse, error) {
	player, err := s.playerRepo.GetByID(playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	wasAttached := player.IsAttached()
	if err := s.releaseFromOrigin(player); err != nil {
		return nil, err
	}
	if !wasAttached {
		// Releasing a free agent is a safe no-op; still persist nothing.
		return toPlayerResponse(player), nil
	}

	s.dispatcher.Dispatch(releaseMessage(&player.Employee))
	return toPlayerResponse(player), nil
}

// releaseFromOrigin credits the player's salary back to the origin club and
// persists the player unattached. An origin club that no longer exists is
// treated as already released (logged, not fatal).
func (s *PlayerService) releaseFromOrigin(player *models.Player) error {
	if !player.IsAttached() {
		return nil
	}

	origin, err := s.clubRepo.GetByID(*player.ClubID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to get origin club: %w", err)
		}
		s.log.WithFields(map[string]interface{}{
			"player_id": player.ID,
			"club_id":   *player.ClubID,
		}).Warn("origin club no longer exists, treating player as released")
	} else {
		if err := origin.ReleaseMember(&player.Employee); err != nil {
			return err
		}
		if err := s.clubRepo.Update(origin); err != nil {
			return err
		}
	}

	player.LeaveClub()
	return s.playerRepo.Update(player)
}

func (s *PlayerService) buildPlayer(req *CreatePlayerRequest) (*models.Player, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Position.IsValid() {
		return nil, &apperrors.ValidationError{Field: "position", Message: fmt.Sprintf("unknown position %q", req.Position)}
	}
	dob, err := parseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return nil, &apperrors.ValidationError{Field: "date_of_birth", Message: err.Error()}
	}

	return &models.Player{
		Employee: models.Employee{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Email:       req.Email,
			DateOfBirth: dob,
			Salary:      req.Salary,
		},
		Position: req.Position,
	}, nil
}

func toPlayerResponse(player *models.Player) *PlayerResponse {
	return &PlayerResponse{
		ID:          player.ID,
		FirstName:   player.FirstName,
		LastName:    player.LastName,
		Email:       player.Email,
		DateOfBirth: player.DateOfBirth.Format(dateLayout),
		Position:    player.Position,
		Salary:      player.Salary,
		ClubID:      player.ClubID,
	}
}
