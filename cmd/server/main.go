package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/jskang/quillpress/backend/internal/router"
	"github.com/jskang/quillpress/backend/pkg/config"
	"github.com/jskang/quillpress/backend/pkg/identity"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database connection
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB() // Ensure database connection is closed when main exits

	// Identity provider client for the token exchange
	idp := identity.NewClient(cfg)

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e, cfg)

	// Setup routes and dependencies
	router.SetupRoutes(e, cfg, db.Mongo, idp)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
