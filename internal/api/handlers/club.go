package handlers

import (
	"net/http"

	"football-manager-backend/internal/database/models"
	"football-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ClubHandler handles HTTP requests for club operations
type ClubHandler struct {
	clubService service.ClubServiceInterface
}

// NewClubHandler creates a new club handler
func NewClubHandler(clubService service.ClubServiceInterface) *ClubHandler {
	return &ClubHandler{
		clubService: clubService,
	}
}

// CreateClub handles POST /clubs
// @Summary Create a new club
// @Description Create a new club with a name and initial budget
// @Tags clubs
// @Accept json
// @Produce json
// @Param club body service.CreateClubRequest true "Club data"
// @Success 201 {object} service.ClubResponse "Successfully created club"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /clubs [post]
func (h *ClubHandler) CreateClub(c *gin.Context) {
	var req service.CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	club, err := h.clubService.CreateClub(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, club)
}

// GetClub handles GET /clubs/:id
// @Summary Get club by ID
// @Description Get a club with its budget, players and coaches
// @Tags clubs
// @Accept json
// @Produce json
// @Param id path int true "Club ID"
// @Success 200 {object} service.ClubDetailResponse "Successfully retrieved club"
// @Failure 400 {object} map[string]interface{} "Invalid club ID"
// @Failure 404 {object} map[string]interface{} "Club not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /clubs/{id} [get]
func (h *ClubHandler) GetClub(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	club, err := h.clubService.GetClubByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, club)
}

// GetAllClubs handles GET /clubs
// @Summary List all clubs
// @Description Get all clubs with pagination
// @Tags clubs
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(10)
// @Success 200 {object} service.ClubListResponse "Successfully retrieved clubs"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /clubs [get]
func (h *ClubHandler) GetAllClubs(c *gin.Context) {
	page, pageSize := parsePagination(c)

	clubs, err := h.clubService.GetAllClubs(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, clubs)
}

// AddPlayers handles POST /clubs/:id/players
// @Summary Bulk-add new players to a club
// @Description Add a batch of new players to a club; the first budget violation aborts the whole batch
// @Tags clubs
// @Accept json
// @Produce json
// @Param id path int true "Club ID"
// @Param players body service.AddPlayersRequest true "Players to add"
// @Success 201 {object} service.ClubDetailResponse "Successfully added players"
// @Failure 400 {object} map[string]interface{} "Invalid request or budget violation"
// @Failure 404 {object} map[string]interface{} "Club not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /clubs/{id}/players [post]
func (h *ClubHandler) AddPlayers(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.AddPlayersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	club, err := h.clubService.AddPlayersToClub(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, club)
}

// AddCoach handles POST /clubs/:id/coaches
// @Summary Add a new coach to a club
// @Description Create a coach directly onto a club's roster
// @Tags clubs
// @Accept json
// @Produce json
// @Param id path int true "Club ID"
// @Param coach body service.CreateCoachRequest true "Coach data"
// @Success 201 {object} service.AddCoachResponse "Successfully added coach"
// @Failure 400 {object} map[string]interface{} "Invalid request or budget violation"
// @Failure 404 {object} map[string]interface{} "Club not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /clubs/{id}/coaches [post]
func (h *ClubHandler) AddCoach(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CreateCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.clubService.AddCoachToClub(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// AdjustBudget handles PATCH /clubs/:id/budget
// @Summary Adjust a club's budget
// @Description Apply a positive or negative amount to a club's budget; the budget can never drop below the current payroll
// @Tags clubs
// @Accept json
// @Produce json
// @Param id path int true "Club ID"
// @Param adjustment body service.AdjustBudgetRequest true "Budget adjustment"
// @Success 200 {object} service.ClubResponse "Successfully adjusted budget"
// @Failure 400 {object} map[string]interface{} "Budget below payroll floor"
// @Failure 404 {object} map[string]interface{} "Club not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /clubs/{id}/budget [patch]
func (h *ClubHandler) AdjustBudget(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.AdjustBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	club, err := h.clubService.AdjustBudget(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, club)
}

// GetClubPlayers handles GET /clubs/:id/players
// @Summary List a club's players
// @Description Get a club's players filtered by name, position and salary range, with pagination
// @Tags clubs
// @Accept json
// @Produce json
// @Param id path int true "Club ID"
// @Param name query string false "Name substring filter"
// @Param position query string false "Position filter" Enums(goalkeeper, defender, midfielder, forward)
// @Param min_salary query number false "Minimum salary"
// @Param max_salary query number false "Maximum salary"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(10)
// @Success 200 {object} service.PlayerListResponse "Successfully retrieved players"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 404 {object} map[string]interface{} "Club not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /clubs/{id}/players [get]
func (h *ClubHandler) GetClubPlayers(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	query := service.PlayerQuery{Name: c.Query("name")}
	query.Page, query.PageSize = parsePagination(c)

	if raw := c.Query("position"); raw != "" {
		position := models.Position(raw)
		if !position.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid position"})
			return
		}
		query.Position = &position
	}
	if raw := c.Query("min_salary"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_salary"})
			return
		}
		query.MinSalary = &min
	}
	if raw := c.Query("max_salary"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_salary"})
			return
		}
		query.MaxSalary = &max
	}

	players, err := h.clubService.GetClubPlayers(id, &query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, players)
}
