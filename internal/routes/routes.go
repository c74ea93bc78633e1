package routes

import (
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"gigboard/internal/config"
	"gigboard/internal/controllers"
	"gigboard/internal/middleware"
	"gigboard/internal/service"
	"gigboard/internal/store"
)

// SetupRouter wires stores, services and controllers onto the gin
// engine. The caller owns listening.
func SetupRouter(db *gorm.DB, cfg config.Config) *gin.Engine {
	r := gin.New()
	r.Use(ginlogger.SetLogger())
	r.Use(gin.Recovery())

	tokens := middleware.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)

	users := store.NewUsers(db)
	employers := store.NewEmployers(db)
	workers := store.NewWorkers(db)
	jobs := store.NewJobs(db)

	authSvc := service.NewAuthService(users, tokens)
	jobSvc := service.NewJobService(jobs, workers, employers)
	employerSvc := service.NewEmployerService(employers, jobs)
	workerSvc := service.NewWorkerService(workers)

	AuthRoutes(r, controllers.NewAuthController(authSvc))
	JobRoutes(r, controllers.NewJobController(jobSvc, employerSvc, workerSvc), tokens)
	EmployerRoutes(r, controllers.NewEmployerController(employerSvc), tokens)
	WorkerRoutes(r, controllers.NewWorkerController(workerSvc), tokens)

	return r
}
