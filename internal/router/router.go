package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/recipeshare/backend/internal/api"
	"github.com/recipeshare/backend/internal/database"
	"github.com/recipeshare/backend/internal/middleware"
)

// Handlers collects everything the router needs to wire routes.
type Handlers struct {
	Auth      *api.AuthHandler
	Recipe    *api.RecipeHandler
	Profile   *api.ProfileHandler
	Dashboard *api.DashboardHandler
}

// SetupRouter configures the application routes. rateLimiter may be nil
// when Redis is unavailable; creation then runs unthrottled.
func SetupRouter(h Handlers, validator middleware.TokenValidator, rateLimiter *middleware.RateLimiter, db *gorm.DB) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://frontend:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(c.Request.Context(), db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	h.Auth.RegisterRoutes(v1)
	v1.GET("/recipes", h.Recipe.ListRecipes)
	v1.GET("/recipes/:id", h.Recipe.GetRecipe)
	v1.GET("/users/:username", h.Profile.GetPublicProfile)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		create := protected.Group("")
		if rateLimiter != nil {
			create.Use(rateLimiter.Middleware())
			protected.GET("/recipes/limit", rateLimiter.StatusHandler())
		}
		create.POST("/recipes", h.Recipe.CreateRecipe)
		create.POST("/recipes/form", h.Recipe.CreateRecipeFromForm)

		protected.GET("/recipes/mine", h.Recipe.MyRecipes)
		protected.DELETE("/recipes/:id", h.Recipe.DeleteRecipe)
		protected.POST("/recipes/:id/image", h.Recipe.UploadImage)

		profile := protected.Group("/profile")
		{
			profile.GET("", h.Profile.GetProfile)
			profile.PUT("", h.Profile.UpdateProfile)
		}

		protected.PUT("/auth/password", h.Auth.UpdatePassword)
		protected.GET("/dashboard", h.Dashboard.GetDashboard)
	}

	return router
}
