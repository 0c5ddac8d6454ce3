package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/recipeshare/backend/config"
	"github.com/recipeshare/backend/internal/api"
	"github.com/recipeshare/backend/internal/database"
	"github.com/recipeshare/backend/internal/middleware"
	"github.com/recipeshare/backend/internal/router"
	"github.com/recipeshare/backend/internal/server"
	"github.com/recipeshare/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Rate limiting is an optional extra; the server runs without Redis.
	var rateLimiter *middleware.RateLimiter
	if redisClient, err := database.NewRedisClient(cfg); err != nil {
		log.Printf("Redis unavailable, recipe creation rate limiting disabled: %v", err)
	} else {
		rateLimiter = middleware.NewRecipeCreationRateLimiter(redisClient)
	}

	// Same for S3: without credentials, image uploads return 503.
	var imageService *service.ImageService
	if s3Config, err := config.NewS3Config(context.Background()); err != nil {
		log.Printf("S3 unavailable, recipe image uploads disabled: %v", err)
	} else {
		imageService = service.NewImageService(s3Config)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	recipeService := service.NewRecipeService(db)
	profileService := service.NewProfileService(db)

	engine := router.SetupRouter(router.Handlers{
		Auth:      api.NewAuthHandler(authService),
		Recipe:    api.NewRecipeHandler(recipeService, imageService),
		Profile:   api.NewProfileHandler(profileService, recipeService),
		Dashboard: api.NewDashboardHandler(recipeService),
	}, authService, rateLimiter, db)

	srv := server.New(engine, cfg.ServerHost, cfg.ServerPort)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s:%s", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
