package routes

import (
	"github.com/gin-gonic/gin"

	"gigboard/internal/controllers"
	"gigboard/internal/middleware"
)

func AuthRoutes(r *gin.Engine, ct *controllers.AuthController) {
	auth := r.Group("/auth")
	auth.Use(middleware.RateLimit(5, 10))
	{
		auth.POST("/signup", ct.Signup)
		auth.POST("/login", ct.Login)
	}
}
