package main

import (
	"log"
	"net/http"

	"gigboard/internal/config"
	"gigboard/internal/logger"
	"gigboard/internal/middleware"
	"gigboard/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	cfg := config.Load()

	// Connect to the database and migrate the schema
	db := config.InitDB()

	// Setup Gin router
	r := routes.SetupRouter(db, cfg)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Printf("🚀 Server running at %s", cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, handler))
}
