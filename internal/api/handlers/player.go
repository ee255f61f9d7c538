package handlers

import (
	"net/http"

	"football-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PlayerHandler handles HTTP requests for player operations
type PlayerHandler struct {
	playerService service.PlayerServiceInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService service.PlayerServiceInterface) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// TransferRequest identifies the destination club of a transfer
type TransferRequest struct {
	ClubID uint `json:"club_id" binding:"required"`
}

// CreatePlayer handles POST /players
// @Summary Create a new player
// @Description Create a new unattached player (free agent)
// @Tags players
// @Accept json
// @Produce json
// @Param player body service.CreatePlayerRequest true "Player data"
// @Success 201 {object} service.PlayerResponse "Successfully created player"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /players [post]
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req service.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.playerService.CreatePlayer(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, player)
}

// GetPlayer handles GET /players/:id
// @Summary Get player by ID
// @Description Get a specific player by ID
// @Tags players
// @Accept json
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} service.PlayerResponse "Successfully retrieved player"
// @Failure 400 {object} map[string]interface{} "Invalid player ID"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /players/{id} [get]
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	player, err := h.playerService.GetPlayerByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}

// TransferPlayer handles POST /players/:id/transfer
// @Summary Transfer a player to a club
// @Description Move a player to the destination club, releasing them from their current club first
// @Tags players
// @Accept json
// @Produce json
// @Param id path int true "Player ID"
// @Param transfer body TransferRequest true "Destination club"
// @Success 200 {object} service.PlayerResponse "Successfully transferred player"
// @Failure 400 {object} map[string]interface{} "Budget or roster violation"
// @Failure 404 {object} map[string]interface{} "Player or club not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /players/{id}/transfer [post]
func (h *PlayerHandler) TransferPlayer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.playerService.TransferPlayer(id, req.ClubID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}

// ReleasePlayer handles POST /players/:id/release
// @Summary Release a player
// @Description Detach a player from their club, crediting the salary back to the club's budget
// @Tags players
// @Accept json
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} service.PlayerResponse "Successfully released player"
// @Failure 400 {object} map[string]interface{} "Invalid player ID"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /players/{id}/release [post]
func (h *PlayerHandler) ReleasePlayer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	player, err := h.playerService.ReleasePlayer(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}
