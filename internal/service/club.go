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

// maxRosterPageSize caps page sizes for roster queries
const maxRosterPageSize = 50

// ClubService handles business logic for clubs: creation, budget
// adjustments, and the join orchestration that brings new employees onto a
// club's roster.
type ClubService struct {
	clubRepo   repository.ClubRepositoryInterface
	playerRepo repository.PlayerRepositoryInterface
	coachRepo  repository.CoachRepositoryInterface
	dispatcher NotificationDispatcher
	validator  *validator.Validate
	log        *logger.Logger
}

// NewClubService creates a new club service
func NewClubService(clubRepo repository.ClubRepositoryInterface, playerRepo repository.PlayerRepositoryInterface, coachRepo repository.CoachRepositoryInterface, dispatcher NotificationDispatcher, validator *validator.Validate) *ClubService {
	return &ClubService{
		clubRepo:   clubRepo,
		playerRepo: playerRepo,
		coachRepo:  coachRepo,
		dispatcher: dispatcher,
		validator:  validator,
		log:        logger.New().WithField("service", "club"),
	}
}

// CreateClubRequest represents the request to create a club
type CreateClubRequest struct {
	Name   string          `json:"name" validate:"required,max=100"`
	Budget decimal.Decimal `json:"budget"`
}

// AddPlayersRequest represents the request to bulk-add new players to a club
type AddPlayersRequest struct {
	Players []CreatePlayerRequest `json:"players" validate:"required,min=1,dive"`
}

// AdjustBudgetRequest represents the request to adjust a club's budget
type AdjustBudgetRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// PlayerQuery narrows and paginates a club roster listing
type PlayerQuery struct {
	Name      string
	Position  *models.Position
	MinSalary *decimal.Decimal
	MaxSalary *decimal.Decimal
	Page      int
	PageSize  int
}

// ClubSummary is the list representation of a club
type ClubSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ClubResponse represents the response for club operations
type ClubResponse struct {
	ID     uint            `json:"id"`
	Name   string          `json:"name"`
	Budget decimal.Decimal `json:"budget"`
}

// ClubDetailResponse is a club with its current roster
type ClubDetailResponse struct {
	ID      uint             `json:"id"`
	Name    string           `json:"name"`
	Budget  decimal.Decimal  `json:"budget"`
	Players []PlayerResponse `json:"players"`
	Coaches []CoachResponse  `json:"coaches"`
}

// ClubListResponse represents a paginated list of clubs
type ClubListResponse struct {
	Clubs    []ClubSummary `json:"clubs"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// AddCoachResponse pairs the updated club with the newly added coach
type AddCoachResponse struct {
	Club  ClubResponse  `json:"club"`
	Coach CoachResponse `json:"coach"`
}

// CreateClub creates a new club with its initial budget
func (s *ClubService) CreateClub(req *CreateClubRequest) (*ClubResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Budget.IsNegative() {
		return nil, &apperrors.ValidationError{Field: "budget", Message: "initial budget cannot be negative"}
	}

	club := models.NewClub(req.Name, req.Budget)
	if err := s.clubRepo.Create(club); err != nil {
		return nil, fmt.Errorf("failed to create club: %w", err)
	}

	return toClubResponse(club), nil
}

// GetClubByID retrieves a club with its roster
func (s *ClubService) GetClubByID(id uint) (*ClubDetailResponse, error) {
	club, err := s.clubRepo.GetWithRoster(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to get club: %w", err)
	}

	return toClubDetailResponse(club), nil
}

// GetAllClubs retrieves all clubs with pagination
func (s *ClubService) GetAllClubs(page, pageSize int) (*ClubListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxRosterPageSize {
		pageSize = 10
	}

	offset := (page - 1) * pageSize
	clubs, total, err := s.clubRepo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get clubs: %w", err)
	}

	summaries := make([]ClubSummary, len(clubs))
	for i, club := range clubs {
		summaries[i] = ClubSummary{ID: club.ID, Name: club.Name}
	}

	return &ClubListResponse{
		Clubs:    summaries,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// AddPlayersToClub runs a bulk join: every draft passes through the club's
// budget check in request order, the first violation aborts the whole batch,
// and the surviving batch is persisted in one transaction. All-or-nothing.
func (s *ClubService) AddPlayersToClub(clubID uint, req *AddPlayersRequest) (*ClubDetailResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var resp *ClubDetailResponse
	var err error
	for attempt := 1; attempt <= maxConflictRetries; attempt++ {
		resp, err = s.addPlayersOnce(clubID, req)
		if !errors.Is(err, apperrors.ErrConcurrencyConflict) {
			return resp, err
		}
		s.log.WithFields(map[string]interface{}{
			"club_id": clubID,
			"attempt": attempt,
		}).Warn("bulk add hit a concurrent modification, retrying")
	}
	return nil, err
}

func (s *ClubService) addPlayersOnce(clubID uint, req *AddPlayersRequest) (*ClubDetailResponse, error) {
	club, err := s.clubRepo.GetByID(clubID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to get club: %w", err)
	}

	players := make([]*models.Player, 0, len(req.Players))
	for i := range req.Players {
		player, err := buildPlayerDraft(s.validator, &req.Players[i])
		if err != nil {
			return nil, err
		}
		if err := club.AcceptMember(&player.Employee); err != nil {
			return nil, err
		}
		player.JoinClub(club)
		players = append(players, player)
	}

	if err := s.clubRepo.AddPlayersToClub(club, players); err != nil {
		return nil, err
	}

	for _, player := range players {
		s.dispatcher.Dispatch(transferMessage(&player.Employee, club))
	}

	return s.GetClubByID(clubID)
}

// AddCoachToClub creates a coach directly onto a club's roster
func (s *ClubService) AddCoachToClub(clubID uint, req *CreateCoachRequest) (*AddCoachResponse, error) {
	var resp *AddCoachResponse
	var err error
	for attempt := 1; attempt <= maxConflictRetries; attempt++ {
		resp, err = s.addCoachOnce(clubID, req)
		if !errors.Is(err, apperrors.ErrConcurrencyConflict) {
			return resp, err
		}
		s.log.WithFields(map[string]interface{}{
			"club_id": clubID,
			"attempt": attempt,
		}).Warn("add coach hit a concurrent modification, retrying")
	}
	return nil, err
}

func (s *ClubService) addCoachOnce(clubID uint, req *CreateCoachRequest) (*AddCoachResponse, error) {
	club, err := s.clubRepo.GetByID(clubID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to get club: %w", err)
	}

	coach, err := buildCoach(s.validator, req)
	if err != nil {
		return nil, err
	}

	if err := club.AcceptMember(&coach.Employee); err != nil {
		return nil, err
	}
	coach.JoinClub(club)

	// Club first, coach second. If the coach insert fails the budget stays
	// debited with no member, which overstates spending but never breaks
	// the invariant.
	if err := s.clubRepo.Update(club); err != nil {
		return nil, err
	}
	if err := s.coachRepo.Create(coach); err != nil {
		return nil, fmt.Errorf("failed to create coach: %w", err)
	}

	s.dispatcher.Dispatch(transferMessage(&coach.Employee, club))

	return &AddCoachResponse{
		Club:  *toClubResponse(club),
		Coach: *toCoachResponse(coach),
	}, nil
}

// AdjustBudget applies a delta to a club's budget, holding it above the
// current payroll floor. The floor is fetched separately; the version-checked
// save catches any roster change that slipped in between.
func (s *ClubService) AdjustBudget(clubID uint, req *AdjustBudgetRequest) (*ClubResponse, error) {
	var resp *ClubResponse
	var err error
	for attempt := 1; attempt <= maxConflictRetries; attempt++ {
		resp, err = s.adjustBudgetOnce(clubID, req)
		if !errors.Is(err, apperrors.ErrConcurrencyConflict) {
			return resp, err
		}
		s.log.WithFields(map[string]interface{}{
			"club_id": clubID,
			"attempt": attempt,
		}).Warn("budget adjustment hit a concurrent modification, retrying")
	}
	return nil, err
}

func (s *ClubService) adjustBudgetOnce(clubID uint, req *AdjustBudgetRequest) (*ClubResponse, error) {
	club, err := s.clubRepo.GetByID(clubID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to get club: %w", err)
	}

	payroll, err := s.clubRepo.GetTotalPayroll(clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to get total payroll: %w", err)
	}

	if err := club.AdjustBudget(req.Amount, payroll); err != nil {
		return nil, err
	}
	if err := s.clubRepo.Update(club); err != nil {
		return nil, err
	}

	return toClubResponse(club), nil
}

// GetClubPlayers retrieves a club's players filtered and paginated
func (s *ClubService) GetClubPlayers(clubID uint, query *PlayerQuery) (*PlayerListResponse, error) {
	if _, err := s.clubRepo.GetByID(clubID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to get club: %w", err)
	}

	page := query.Page
	pageSize := query.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxRosterPageSize {
		pageSize = 10
	}

	filter := repository.PlayerFilter{
		ClubID:    &clubID,
		Name:      query.Name,
		Position:  query.Position,
		MinSalary: query.MinSalary,
		MaxSalary: query.MaxSalary,
		Limit:     pageSize,
		Offset:    (page - 1) * pageSize,
	}

	players, total, err := s.playerRepo.GetFiltered(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	responses := make([]PlayerResponse, len(players))
	for i := range players {
		responses[i] = *toPlayerResponse(&players[i])
	}

	return &PlayerListResponse{
		Players:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func buildPlayerDraft(v *validator.Validate, req *CreatePlayerRequest) (*models.Player, error) {
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

func toClubResponse(club *models.Club) *ClubResponse {
	return &ClubResponse{
		ID:     club.ID,
		Name:   club.Name,
		Budget: club.Budget,
	}
}

func toClubDetailResponse(club *models.Club) *ClubDetailResponse {
	players := make([]PlayerResponse, len(club.Players))
	for i := range club.Players {
		players[i] = *toPlayerResponse(&club.Players[i])
	}
	coaches := make([]CoachResponse, len(club.Coaches))
	for i := range club.Coaches {
		coaches[i] = *toCoachResponse(&club.Coaches[i])
	}

	return &ClubDetailResponse{
		ID:      club.ID,
		Name:    club.Name,
		Budget:  club.Budget,
		Players: players,
		Coaches: coaches,
	}
}
