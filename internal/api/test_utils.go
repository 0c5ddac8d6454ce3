package api

import (
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/recipeshare/backend/internal/middleware"
	"github.com/recipeshare/backend/internal/models"
	"github.com/recipeshare/backend/internal/service"
)

// TestDB holds the test database and services
type TestDB struct {
	DB          *gorm.DB
	AuthService *service.AuthService
}

// SetupTestDB creates an isolated in-memory database with the full schema.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Recipe{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return &TestDB{
		DB:          db,
		AuthService: service.NewAuthService(db, "test-secret"),
	}
}

// CreateTestUserAndToken creates a test user with a profile and returns
// their ID and a valid JWT token.
func CreateTestUserAndToken(t *testing.T, db *TestDB) (uuid.UUID, string) {
	t.Helper()

	userID := uuid.New()
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("testpassword123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := models.User{
		ID:           userID,
		Name:         "Test User",
		Email:        fmt.Sprintf("testuser+%s@example.com", userID.String()),
		PasswordHash: string(hashedPassword),
	}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	profile := models.Profile{
		UserID:   userID,
		Username: fmt.Sprintf("testuser_%s", userID.String()),
		FullName: "Test User",
	}
	if err := db.DB.Create(&profile).Error; err != nil {
		t.Fatalf("failed to create test user profile: %v", err)
	}

	token, err := db.AuthService.GenerateToken(userID, profile.Username)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	return userID, token
}

// SetupTestRouter mirrors the production route table against a test
// database. Routes are registered here directly to avoid an import cycle
// with the router package.
func SetupTestRouter(t *testing.T) (*gin.Engine, *TestDB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	testDB := SetupTestDB(t)

	recipeService := service.NewRecipeService(testDB.DB)
	profileService := service.NewProfileService(testDB.DB)

	authHandler := NewAuthHandler(testDB.AuthService)
	recipeHandler := NewRecipeHandler(recipeService, nil)
	profileHandler := NewProfileHandler(profileService, recipeService)
	dashboardHandler := NewDashboardHandler(recipeService)

	engine := gin.New()
	engine.Use(gin.Recovery())

	v1 := engine.Group("/api/v1")
	authHandler.RegisterRoutes(v1)
	v1.GET("/recipes", recipeHandler.ListRecipes)
	v1.GET("/recipes/:id", recipeHandler.GetRecipe)
	v1.GET("/users/:username", profileHandler.GetPublicProfile)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(testDB.AuthService))
	{
		protected.POST("/recipes", recipeHandler.CreateRecipe)
		protected.POST("/recipes/form", recipeHandler.CreateRecipeFromForm)
		protected.GET("/recipes/mine", recipeHandler.MyRecipes)
		protected.DELETE("/recipes/:id", recipeHandler.DeleteRecipe)
		protected.POST("/recipes/:id/image", recipeHandler.UploadImage)
		protected.GET("/profile", profileHandler.GetProfile)
		protected.PUT("/profile", profileHandler.UpdateProfile)
		protected.PUT("/auth/password", authHandler.UpdatePassword)
		protected.GET("/dashboard", dashboardHandler.GetDashboard)
	}

	return engine, testDB
}
