package handlers

import (
	"net/http"

	"football-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CoachHandler handles HTTP requests for coach operations
type CoachHandler struct {
	coachService service.CoachServiceInterface
}

// NewCoachHandler creates a new coach handler
func NewCoachHandler(coachService service.CoachServiceInterface) *CoachHandler {
	return &CoachHandler{
		coachService: coachService,
	}
}

// CreateCoach handles POST /coaches
// @Summary Create a new coach
// @Description Create a new unattached coach (free agent)
// @Tags coaches
// @Accept json
// @Produce json
// @Param coach body service.CreateCoachRequest true "Coach data"
// @Success 201 {object} service.CoachResponse "Successfully created coach"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /coaches [post]
func (h *CoachHandler) CreateCoach(c *gin.Context) {
	var req service.CreateCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coach, err := h.coachService.CreateCoach(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, coach)
}

// GetCoach handles GET /coaches/:id
// @Summary Get coach by ID
// @Description Get a specific coach by ID
// @Tags coaches
// @Accept json
// @Produce json
// @Param id path int true "Coach ID"
// @Success 200 {object} service.CoachResponse "Successfully retrieved coach"
// @Failure 400 {object} map[string]interface{} "Invalid coach ID"
// @Failure 404 {object} map[string]interface{} "Coach not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /coaches/{id} [get]
func (h *CoachHandler) GetCoach(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	coach, err := h.coachService.GetCoachByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, coach)
}

// TransferCoach handles POST /coaches/:id/transfer
// @Summary Transfer a coach to a club
// @Description Move a coach to the destination club, releasing them from their current club first
// @Tags coaches
// @Accept json
// @Produce json
// @Param id path int true "Coach ID"
// @Param transfer body TransferRequest true "Destination club"
// @Success 200 {object} service.CoachResponse "Successfully transferred coach"
// @Failure 400 {object} map[string]interface{} "Budget or roster violation"
// @Failure 404 {object} map[string]interface{} "Coach or club not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /coaches/{id}/transfer [post]
func (h *CoachHandler) TransferCoach(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coach, err := h.coachService.TransferCoach(id, req.ClubID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, coach)
}

// ReleaseCoach handles POST /coaches/:id/release
// @Summary Release a coach
// @Description Detach a coach from their club, crediting the salary back to the club's budget
// @Tags coaches
// @Accept json
// @Produce json
// @Param id path int true "Coach ID"
// @Success 200 {object} service.CoachResponse "Successfully released coach"
// @Failure 400 {object} map[string]interface{} "Invalid coach ID"
// @Failure 404 {object} map[string]interface{} "Coach not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /coaches/{id}/release [post]
func (h *CoachHandler) ReleaseCoach(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	coach, err := h.coachService.ReleaseCoach(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, coach)
}
