package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rolecall/rolecall-backend/internal/dtos"
	"github.com/rolecall/rolecall-backend/internal/services"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(a *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: a}
}

// ListJobs is the GET /jobs/?user_id= endpoint: every posting with the
// requesting user's applied flag.
func (h *ApplicationHandler) ListJobs(c *gin.Context) {
	userID, ok := requireUserIDQuery(c)
	if !ok {
		return
	}
	jobs, err := h.Applications.ListJobsForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// JobDetail is the GET /jobs/:id?user_id= endpoint
func (h *ApplicationHandler) JobDetail(c *gin.Context) {
	userID, ok := requireUserIDQuery(c)
	if !ok {
		return
	}
	detail, err := h.Applications.GetJobDetail(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Apply is the POST /jobs/:id/apply?user_id= endpoint
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := requireUserIDQuery(c)
	if !ok {
		return
	}
	app, job, err := h.Applications.Apply(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.ApplyResponse{
		Message:       "Successfully applied to job: " + job.Title,
		ApplicationID: app.ID,
		JobID:         job.ID,
		JobTitle:      job.Title,
		Status:        app.Status,
	})
}

// UserApplications is the GET /jobs/applications/:user_id endpoint
func (h *ApplicationHandler) UserApplications(c *gin.Context) {
	rows, err := h.Applications.ListApplicationsForUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// AllApplications is the GET /jobs/applications admin endpoint
func (h *ApplicationHandler) AllApplications(c *gin.Context) {
	rows, err := h.Applications.ListAllApplications(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func requireUserIDQuery(c *gin.Context) (string, bool) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id query parameter is required"})
		return "", false
	}
	return userID, true
}
