package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/recipeshare/backend/internal/service"
)

// recentRecipeLimit caps how many recipes the dashboard shows.
const recentRecipeLimit = 5

type DashboardHandler struct {
	recipeService *service.RecipeService
}

func NewDashboardHandler(recipeService *service.RecipeService) *DashboardHandler {
	return &DashboardHandler{recipeService: recipeService}
}

// GetDashboard returns the caller's recipe count and their most recent
// recipes.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	uid := userID.(uuid.UUID)

	count, err := h.recipeService.CountByOwner(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recipes, err := h.recipeService.ListByOwner(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(recipes) > recentRecipeLimit {
		recipes = recipes[:recentRecipeLimit]
	}

	c.JSON(http.StatusOK, gin.H{
		"recipe_count":   count,
		"recent_recipes": recipes,
	})
}
