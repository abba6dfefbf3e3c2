package router

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jskang/quillpress/backend/internal/handlers"
	"github.com/jskang/quillpress/backend/internal/middleware"
	"github.com/jskang/quillpress/backend/internal/repositories"
	"github.com/jskang/quillpress/backend/pkg/config"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo, cfg *config.Config) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(middleware.CORS(cfg.AllowedOrigin))
	e.HTTPErrorHandler = handlers.HTTPErrorHandler
	log.Println("Global middleware configured.")
}

// SetupRoutes wires repositories and handlers and registers all routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, mgClient *mongo.Client, exchanger handlers.CodeExchanger) {
	db := mgClient.Database(cfg.DatabaseName)

	// --- Initialize Repositories ---
	postRepo := repositories.NewMongoPostRepository(db, cfg.PostCollection)
	mediaRepo := repositories.NewMongoMediaRepository(db, cfg.MediaCollection)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := postRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create post indexes: %v", err)
	}
	if err := mediaRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create media indexes: %v", err)
	}
	log.Println("Owner indexes ensured for post and media collections.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Token exchange (no bearer middleware: login happens here) ---
	authHandler := handlers.NewAuthHandler(exchanger, cfg.CookieDomain)
	authHandler.RegisterAuthRoutes(e)
	log.Println("Token exchange routes configured.")

	// --- Content routes ---
	api := e.Group("", middleware.BearerClaims(cfg.AuthRequired))

	postHandler := handlers.NewPostHandler(postRepo)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	mediaHandler := handlers.NewMediaHandler(mediaRepo)
	mediaHandler.RegisterMediaRoutes(api)
	log.Println("Media routes configured.")

	itemHandler := handlers.NewItemHandler(postRepo, mediaRepo)
	itemHandler.RegisterItemRoutes(api)
	log.Println("Item query routes configured.")

	log.Println("All routes configured.")
}
