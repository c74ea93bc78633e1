package routes

import (
	"github.com/gin-gonic/gin"

	"gigboard/internal/controllers"
	"gigboard/internal/middleware"
	"gigboard/internal/models"
)

func EmployerRoutes(r *gin.Engine, ct *controllers.EmployerController, tokens *middleware.TokenManager) {
	employers := r.Group("/employers")
	employers.Use(tokens.RequireAuthWithRole(models.CategoryEmployer))
	{
		employers.GET("/profile", ct.Profile)
		employers.GET("/jobs", ct.Jobs)
		employers.GET("/workers", ct.Workers)
		employers.GET("/jobs/:id/proposals", ct.JobProposals)
		employers.PATCH("/phone", ct.UpdatePhone)
		employers.PATCH("/photo", ct.UpdatePhoto)
		employers.PATCH("/credit", ct.AddCredit)
	}
}
