package routes

import (
	"github.com/gin-gonic/gin"

	"gigboard/internal/controllers"
	"gigboard/internal/middleware"
	"gigboard/internal/models"
)

func JobRoutes(r *gin.Engine, ct *controllers.JobController, tokens *middleware.TokenManager) {
	jobs := r.Group("/jobs")
	{
		// Browsing is public
		jobs.GET("", ct.ListJobs)
		jobs.GET("/status/open", ct.ListOpenJobs)
		jobs.GET("/:id", ct.GetJob)
		jobs.GET("/:id/proposals", ct.GetJobProposals)

		// Mutations always act as the token's subject.
		jobs.POST("", tokens.RequireAuthWithRole(models.CategoryEmployer), ct.CreateJob)
		jobs.PATCH("/:id", tokens.RequireAuthWithRole(models.CategoryEmployer), ct.UpdateJob)
		jobs.POST("/:id/award", tokens.RequireAuthWithRole(models.CategoryEmployer), ct.AwardJob)
		jobs.POST("/:id/apply", tokens.RequireAuthWithRole(models.CategoryWorker), ct.ApplyToJob)
	}
}
