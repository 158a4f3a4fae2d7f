package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires the route table. Paths are part of the public contract
// consumed by the frontend and must not be renamed.
func NewRouter(postings *JobPostingHandler, applications *ApplicationHandler, logger *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(logger))

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true // For development only
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	r.GET("/api/v1/health", HealthCheck)

	// Posting management (admin side)
	r.POST("/job_postings/", postings.Create)
	r.GET("/job_postings/", postings.List)
	r.PUT("/job_postings/:id", postings.Update)
	r.DELETE("/job_postings/:id", postings.Delete)

	// User-facing job browsing and applications
	r.GET("/jobs/", applications.ListJobs)
	r.GET("/jobs/applications", applications.AllApplications)
	r.GET("/jobs/applications/:user_id", applications.UserApplications)
	r.GET("/jobs/:id", applications.JobDetail)
	r.POST("/jobs/:id/apply", applications.Apply)

	return r
}
