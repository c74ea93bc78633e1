package routes

import (
	"github.com/gin-gonic/gin"

	"gigboard/internal/controllers"
	"gigboard/internal/middleware"
	"gigboard/internal/models"
)

func WorkerRoutes(r *gin.Engine, ct *controllers.WorkerController, tokens *middleware.TokenManager) {
	workers := r.Group("/workers")
	{
		workers.GET("/:id", ct.GetWorker)

		authed := workers.Group("")
		authed.Use(tokens.RequireAuthWithRole(models.CategoryWorker))
		{
			authed.GET("/profile", ct.Profile)
			authed.PATCH("/phone", ct.UpdatePhone)
			authed.PATCH("/photo", ct.UpdatePhoto)
			authed.PATCH("/expertise", ct.UpdateExpertise)
		}
	}
}
