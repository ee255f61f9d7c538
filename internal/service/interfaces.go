package service

import (
	"football-manager-backend/internal/notifications"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// NotificationDispatcher hands a notification to a background delivery
// context without blocking the caller
type NotificationDispatcher interface {
	Dispatch(msg *notifications.Message)
}

// ClubServiceInterface defines the interface for club service
type ClubServiceInterface interface {
	CreateClub(req *CreateClubRequest) (*ClubResponse, error)
	GetClubByID(id uint) (*ClubDetailResponse, error)
	GetAllClubs(page, pageSize int) (*ClubListResponse, error)
	AddPlayersToClub(clubID uint, req *AddPlayersRequest) (*ClubDetailResponse, error)
	AddCoachToClub(clubID uint, req *CreateCoachRequest) (*AddCoachResponse, error)
	AdjustBudget(clubID uint, req *AdjustBudgetRequest) (*ClubResponse, error)
	GetClubPlayers(clubID uint, query *PlayerQuery) (*PlayerListResponse, error)
}

// PlayerServiceInterface defines the interface for player service
type PlayerServiceInterface interface {
	CreatePlayer(req *CreatePlayerRequest) (*PlayerResponse, error)
	GetPlayerByID(id uint) (*PlayerResponse, error)
	TransferPlayer(playerID, clubID uint) (*PlayerResponse, error)
	ReleasePlayer(playerID uint) (*PlayerResponse, error)
}

// CoachServiceInterface defines the interface for coach service
type CoachServiceInterface interface {
	CreateCoach(req *CreateCoachRequest) (*CoachResponse, error)
	GetCoachByID(id uint) (*CoachResponse, error)
	TransferCoach(coachID, clubID uint) (*CoachResponse, error)
	ReleaseCoach(coachID uint) (*CoachResponse, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Authenticate(req *LoginRequest) (*AuthResponse, error)
	Refresh(req *RefreshRequest) (*AuthResponse, error)
}
