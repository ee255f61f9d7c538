package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "football-manager-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError maps service errors onto HTTP statuses. Domain violations
// carry their machine-readable reason so clients can react to the specific
// rule that was broken.
func respondError(c *gin.Context, err error) {
	var notFound *apperrors.NotFoundError
	var violation *apperrors.DomainViolationError
	var validation *apperrors.ValidationError
	var authErr *apperrors.AuthenticationError
	var fieldErrs validator.ValidationErrors

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &violation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "reason": string(violation.Reason)})
	case errors.As(err, &validation) || errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &authErr):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(value), true
}

func parsePagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if err != nil || pageSize < 1 {
		pageSize = 10
	}
	return page, pageSize
}
