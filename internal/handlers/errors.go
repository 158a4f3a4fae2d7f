package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rolecall/rolecall-backend/internal/services"
)

// respondError maps service errors onto the HTTP surface: not-found to 404,
// duplicate application to 400, everything else to a generic 500 that does
// not leak storage internals.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrJobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, services.ErrAlreadyApplied):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Already applied to this job"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
