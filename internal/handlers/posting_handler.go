package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rolecall/rolecall-backend/internal/dtos"
	"github.com/rolecall/rolecall-backend/internal/services"
)

type JobPostingHandler struct {
	Postings *services.JobPostingService
}

// NewJobPostingHandler creates the handler with dependencies
func NewJobPostingHandler(p *services.JobPostingService) *JobPostingHandler {
	return &JobPostingHandler{Postings: p}
}

// Create is the POST /job_postings/ endpoint
func (h *JobPostingHandler) Create(c *gin.Context) {
	var req dtos.JobPostingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	posting, err := h.Postings.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posting)
}

// List is the GET /job_postings/ endpoint
func (h *JobPostingHandler) List(c *gin.Context) {
	postings, err := h.Postings.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, postings)
}

// Update is the PUT /job_postings/:id endpoint. Both title and description
// are required; there is no partial update.
func (h *JobPostingHandler) Update(c *gin.Context) {
	var req dtos.JobPostingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	posting, err := h.Postings.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posting)
}

// Delete is the DELETE /job_postings/:id endpoint
func (h *JobPostingHandler) Delete(c *gin.Context) {
	if err := h.Postings.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job posting deleted"})
}
